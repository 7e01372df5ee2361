package engine

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
)

// StartRedeem moves a MINTED token into REDEEM_STARTED. Owner-only.
func (e *Engine) StartRedeem(ctx context.Context, dropID int64, caller string, tokenID int64) error {
	return e.transitionToken(ctx, dropID, caller, tokenID, entity.TokenMinted, func(qtx datagateway.DropMintDataGatewayWithTx, token *entity.Token) error {
		if err := qtx.UpdateTokenState(ctx, datagateway.UpdateTokenStateParams{
			DropID:  dropID,
			TokenID: tokenID,
			State:   entity.TokenRedeemStarted,
		}); err != nil {
			return errors.Wrap(err, "failed to update token state")
		}
		return addEvent(ctx, qtx, dropID, entity.EventRedeemStarted, caller, map[string]any{
			"tokenId": tokenID,
		})
	})
}

// CompleteProduction moves a REDEEM_STARTED token into REDEEMED and
// pins its redeemed metadata URL. Owner-only.
func (e *Engine) CompleteProduction(ctx context.Context, dropID int64, caller string, tokenID int64, redeemedURL string) error {
	if redeemedURL == "" {
		return errors.Wrap(errs.InvalidArgument, "redeemed metadata URL is required")
	}
	return e.transitionToken(ctx, dropID, caller, tokenID, entity.TokenRedeemStarted, func(qtx datagateway.DropMintDataGatewayWithTx, token *entity.Token) error {
		if err := qtx.UpdateTokenState(ctx, datagateway.UpdateTokenStateParams{
			DropID:              dropID,
			TokenID:             tokenID,
			State:               entity.TokenRedeemed,
			RedeemedMetadataURL: redeemedURL,
		}); err != nil {
			return errors.Wrap(err, "failed to update token state")
		}
		if err := addEvent(ctx, qtx, dropID, entity.EventProductionComplete, caller, map[string]any{
			"tokenId": tokenID,
		}); err != nil {
			return err
		}
		return addEvent(ctx, qtx, dropID, entity.EventMetadataUpdate, caller, map[string]any{
			"tokenId":     tokenID,
			"metadataUrl": redeemedURL,
		})
	})
}

// transitionToken runs an owner-only token state transition, enforcing
// the expected current state.
func (e *Engine) transitionToken(ctx context.Context, dropID int64, caller string, tokenID int64, expected entity.TokenState, apply func(qtx datagateway.DropMintDataGatewayWithTx, token *entity.Token) error) error {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return err
	}

	qtx, err := e.dropMintDg.BeginDropMintTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = qtx.Rollback(ctx) }()

	drop, err := qtx.GetDrop(ctx, dropID)
	if err != nil {
		return errors.Wrap(err, "failed to get drop")
	}
	if err := e.requireOwner(drop, caller); err != nil {
		return err
	}
	token, err := qtx.GetToken(ctx, dropID, tokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errors.Wrapf(errs.InvalidTokenID, "token %d is not minted", tokenID)
		}
		return errors.Wrap(err, "failed to get token")
	}
	if token.State != expected {
		return errors.Wrapf(errs.WrongState, "token %d is %s, expected %s", tokenID, token.State, expected)
	}

	if err := apply(qtx, token); err != nil {
		return err
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}
