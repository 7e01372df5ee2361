package engine

import (
	"context"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	mintvalidator "github.com/dropforge/drop-engine/modules/dropmint/internal/validator/mint"
	"github.com/holiman/uint256"
	"github.com/samber/lo"
)

type MintBatchParams struct {
	DropID     int64
	Caller     string
	Recipients []string
	Paid       *uint256.Int
}

// MintBatch mints one token per recipient, paid for by the caller in a
// single exact payment. The whole batch commits or nothing does.
func (e *Engine) MintBatch(ctx context.Context, arg MintBatchParams) ([]entity.Token, error) {
	caller, err := normalizeAddress(arg.Caller)
	if err != nil {
		return nil, err
	}
	if len(arg.Recipients) == 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "at least one recipient is required")
	}
	recipients := make([]string, len(arg.Recipients))
	for i, recipient := range arg.Recipients {
		recipients[i], err = normalizeAddress(recipient)
		if err != nil {
			return nil, err
		}
		if recipients[i] == entity.ZeroAddress {
			return nil, errors.Wrap(errs.InvalidArgument, "cannot mint to the zero address")
		}
	}
	count := int64(len(recipients))

	qtx, err := e.dropMintDg.BeginDropMintTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = qtx.Rollback(ctx) }()

	drop, err := qtx.GetDropForUpdate(ctx, arg.DropID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get drop")
	}
	pricing, err := qtx.GetPricing(ctx, arg.DropID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pricing")
	}
	listed, err := qtx.GetAllowListFlag(ctx, arg.DropID, caller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get allow-list flag")
	}
	eligible, err := e.isEligibleFor(ctx, drop, pricing, caller, listed)
	if err != nil {
		return nil, err
	}
	minted, err := qtx.GetMintCount(ctx, arg.DropID, caller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mint count")
	}
	unitPrice, err := e.quotePriceFor(ctx, pricing, caller)
	if err != nil {
		return nil, err
	}

	validator := mintvalidator.New()
	validator.Eligible(eligible)
	validator.EnoughSupply(drop.RemainingSupply(), count)
	validator.WithinMintLimit(currentMintLimitFor(drop, pricing, caller), minted, count)
	validator.ExactPayment(unitPrice, count, arg.Paid)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	tokens := make([]entity.Token, count)
	for i, recipient := range recipients {
		tokenID := drop.CurrentIndex + int64(i)
		tokens[i] = entity.Token{
			DropID:            arg.DropID,
			TokenID:           tokenID,
			State:             entity.TokenMinted,
			OwnerWallet:       recipient,
			MintedMetadataURL: e.metadataURL(drop, tokenID),
			MintedAt:          now,
		}
	}

	if err := qtx.CreateTokens(ctx, tokens); err != nil {
		return nil, errors.Wrap(err, "failed to insert tokens")
	}
	if err := qtx.IncrementMintCount(ctx, datagateway.IncrementMintCountParams{
		DropID: arg.DropID,
		Wallet: caller,
		Count:  count,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to increment mint count")
	}
	if err := qtx.UpdateDropCounters(ctx, datagateway.UpdateDropCountersParams{
		DropID:       arg.DropID,
		ClaimCount:   drop.ClaimCount + count,
		CurrentIndex: drop.CurrentIndex + count,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to update drop counters")
	}
	if err := addEvent(ctx, qtx, arg.DropID, entity.EventSold, caller, map[string]any{
		"recipients": recipients,
		"tokenIds":   lo.Map(tokens, func(t entity.Token, _ int) int64 { return t.TokenID }),
		"unitPrice":  unitPrice.Dec(),
		"paid":       orZero(arg.Paid).Dec(),
	}); err != nil {
		return nil, err
	}

	if err := qtx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}
	return tokens, nil
}

// metadataURL composes the minted metadata URL. The variant index is
// 1-based within differentEditions; random drops offset the walk by a
// fresh seed so the variant order is not predictable from token ids.
func (e *Engine) metadataURL(drop *entity.Drop, tokenID int64) string {
	editions := uint64(drop.DifferentEditions)
	var seed uint64
	if drop.RandomMint {
		seed = e.entropy.Seed()
	}
	variant := 1 + (uint64(tokenID-1)+seed)%editions
	return drop.BaseDir + strconv.FormatUint(variant, 10) + ".json"
}

// NumberCanMint returns how many tokens are still mintable.
func (e *Engine) NumberCanMint(ctx context.Context, dropID int64) (int64, error) {
	drop, err := e.dropMintDg.GetDrop(ctx, dropID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get drop")
	}
	return drop.RemainingSupply(), nil
}

// TokenURI resolves the metadata URL of a minted token. Redeemed
// tokens point at their redeemed URL.
func (e *Engine) TokenURI(ctx context.Context, dropID int64, tokenID int64) (string, error) {
	drop, err := e.dropMintDg.GetDrop(ctx, dropID)
	if err != nil {
		return "", errors.Wrap(err, "failed to get drop")
	}
	if tokenID < 1 || tokenID > drop.DropSize {
		return "", errors.Wrapf(errs.InvalidTokenID, "token id %d out of range", tokenID)
	}
	token, err := e.dropMintDg.GetToken(ctx, dropID, tokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return "", errors.Wrapf(errs.InvalidTokenID, "token %d is not minted", tokenID)
		}
		return "", errors.Wrap(err, "failed to get token")
	}
	return token.MetadataURL(), nil
}

// GetToken fetches a minted token.
func (e *Engine) GetToken(ctx context.Context, dropID int64, tokenID int64) (*entity.Token, error) {
	token, err := e.dropMintDg.GetToken(ctx, dropID, tokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(errs.InvalidTokenID, "token %d is not minted", tokenID)
		}
		return nil, errors.Wrap(err, "failed to get token")
	}
	return token, nil
}

// GetTokensByWallet lists the wallet's tokens in a drop.
func (e *Engine) GetTokensByWallet(ctx context.Context, dropID int64, wallet string) ([]entity.Token, error) {
	wallet, err := normalizeAddress(wallet)
	if err != nil {
		return nil, err
	}
	tokens, err := e.dropMintDg.GetTokensByWallet(ctx, dropID, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tokens")
	}
	return tokens, nil
}

// Burn detaches a token from its owner. The token id is never
// reassigned and the claim count is not decremented, so a burn does
// not free supply.
func (e *Engine) Burn(ctx context.Context, dropID int64, caller string, tokenID int64) error {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return err
	}

	qtx, err := e.dropMintDg.BeginDropMintTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = qtx.Rollback(ctx) }()

	token, err := qtx.GetToken(ctx, dropID, tokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errors.Wrapf(errs.InvalidTokenID, "token %d is not minted", tokenID)
		}
		return errors.Wrap(err, "failed to get token")
	}
	if token.OwnerWallet == "" || !sameWallet(token.OwnerWallet, caller) {
		return errors.Wrap(errs.Unauthorized, "caller does not own the token")
	}

	if err := qtx.ClearTokenOwner(ctx, dropID, tokenID); err != nil {
		return errors.Wrap(err, "failed to clear token owner")
	}
	if err := addEvent(ctx, qtx, dropID, entity.EventBurned, caller, map[string]any{
		"tokenId": tokenID,
	}); err != nil {
		return err
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}
