package engine

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/holiman/uint256"
)

const maxBPS = 10000

func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return uint256.NewInt(0)
	}
	return v
}

func (e *Engine) holdsPass(ctx context.Context, passAddress, wallet string) (bool, error) {
	if passAddress == "" || passAddress == entity.ZeroAddress {
		return false, nil
	}
	balance, err := e.passes.BalanceOf(ctx, passAddress, wallet)
	if err != nil {
		return false, errors.Wrap(err, "failed to read pass balance")
	}
	return balance > 0, nil
}

// SetPassHolding records a wallet's pass balance in the holdings
// store. Quoting and eligibility read these balances; they mirror
// on-chain holdings and are pushed in through the holdings endpoint.
func (e *Engine) SetPassHolding(ctx context.Context, passAddress string, wallet string, balance uint64) error {
	passAddress, err := normalizeAddress(passAddress)
	if err != nil {
		return err
	}
	if passAddress == entity.ZeroAddress {
		return errors.Wrap(errs.InvalidArgument, "pass address must not be the zero address")
	}
	wallet, err = normalizeAddress(wallet)
	if err != nil {
		return err
	}
	if wallet == entity.ZeroAddress {
		return errors.Wrap(errs.InvalidArgument, "wallet must not be the zero address")
	}
	if err := e.dropMintDg.SetPassBalance(ctx, passAddress, wallet, balance); err != nil {
		return errors.Wrap(err, "failed to set pass balance")
	}
	return nil
}

// quotePriceFor resolves the unit price for a caller. Pass precedence
// is lifetime over annual over base, independent of which price is
// numerically lower.
func (e *Engine) quotePriceFor(ctx context.Context, pricing *entity.Pricing, caller string) (*uint256.Int, error) {
	var base, annual, lifetime *uint256.Int
	switch pricing.WhoCanMint {
	case entity.TierNotForSale:
		return uint256.NewInt(0), nil
	case entity.TierAllowList:
		base = pricing.AllowListPrice
		annual = pricing.AnnualAllowListPrice
		lifetime = pricing.LifetimeAllowListPrice
	case entity.TierAnyone:
		base = pricing.GeneralPrice
		annual = pricing.AnnualGeneralPrice
		lifetime = pricing.LifetimeGeneralPrice
	default:
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown access tier: %d", pricing.WhoCanMint)
	}

	holdsLifetime, err := e.holdsPass(ctx, pricing.LifetimePassAddress, caller)
	if err != nil {
		return nil, err
	}
	if holdsLifetime {
		return orZero(lifetime), nil
	}
	holdsAnnual, err := e.holdsPass(ctx, pricing.AnnualPassAddress, caller)
	if err != nil {
		return nil, err
	}
	if holdsAnnual {
		return orZero(annual), nil
	}
	return orZero(base), nil
}

// isEligibleFor reports whether the caller may mint. The owner is
// always eligible, even while the drop is NOT_FOR_SALE.
func (e *Engine) isEligibleFor(ctx context.Context, drop *entity.Drop, pricing *entity.Pricing, caller string, listed bool) (bool, error) {
	if pricing.WhoCanMint == entity.TierAnyone {
		return true, nil
	}
	if sameWallet(drop.Owner, caller) {
		return true, nil
	}
	if pricing.WhoCanMint == entity.TierAllowList {
		if listed {
			return true, nil
		}
		holdsAnnual, err := e.holdsPass(ctx, pricing.AnnualPassAddress, caller)
		if err != nil {
			return false, err
		}
		if holdsAnnual {
			return true, nil
		}
		holdsLifetime, err := e.holdsPass(ctx, pricing.LifetimePassAddress, caller)
		if err != nil {
			return false, err
		}
		if holdsLifetime {
			return true, nil
		}
	}
	return false, nil
}

// currentMintLimitFor is tier-driven and does not mirror the owner
// bypass of isEligibleFor: under ALLOWLIST and ANYONE the owner gets
// the same limit as everyone else. Only while NOT_FOR_SALE does the
// owner fall through to the remaining supply.
func currentMintLimitFor(drop *entity.Drop, pricing *entity.Pricing, caller string) int64 {
	switch pricing.WhoCanMint {
	case entity.TierAllowList:
		return pricing.AllowListMintLimit
	case entity.TierAnyone:
		return pricing.GeneralMintLimit
	}
	if sameWallet(drop.Owner, caller) {
		return drop.RemainingSupply()
	}
	return 0
}

// SetAccessTier switches who may mint.
func (e *Engine) SetAccessTier(ctx context.Context, dropID int64, caller string, tier entity.AccessTier) error {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return err
	}
	if !tier.IsValid() {
		return errors.Wrapf(errs.InvalidArgument, "unknown access tier: %d", tier)
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
	pricing, err := qtx.GetPricing(ctx, dropID)
	if err != nil {
		return errors.Wrap(err, "failed to get pricing")
	}

	pricing.WhoCanMint = tier
	if err := qtx.UpdatePricing(ctx, *pricing); err != nil {
		return errors.Wrap(err, "failed to update pricing")
	}
	if err := addEvent(ctx, qtx, dropID, entity.EventTierChanged, caller, map[string]any{
		"tier": tier.String(),
	}); err != nil {
		return err
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// SetAllowListMembership applies per-wallet membership flags. New
// members are appended to the ordered list; removed members leave a
// zero-address tombstone so positions never shift. Writing a flag a
// wallet already has touches neither the list nor the count.
func (e *Engine) SetAllowListMembership(ctx context.Context, dropID int64, caller string, wallets []string, flags []bool) error {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return err
	}
	if len(wallets) != len(flags) {
		return errors.Wrap(errs.LengthMismatch, "wallets and flags must have the same length")
	}
	normalized := make([]string, len(wallets))
	for i, wallet := range wallets {
		normalized[i], err = normalizeAddress(wallet)
		if err != nil {
			return err
		}
		if normalized[i] == entity.ZeroAddress {
			return errors.Wrap(errs.InvalidArgument, "zero address cannot be an allow-list member")
		}
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
	pricing, err := qtx.GetPricing(ctx, dropID)
	if err != nil {
		return errors.Wrap(err, "failed to get pricing")
	}

	for i, wallet := range normalized {
		current, err := qtx.GetAllowListFlag(ctx, dropID, wallet)
		if err != nil {
			return errors.Wrap(err, "failed to get allow-list flag")
		}
		if err := qtx.SetAllowListFlag(ctx, dropID, wallet, flags[i]); err != nil {
			return errors.Wrap(err, "failed to set allow-list flag")
		}
		if current == flags[i] {
			continue
		}
		if flags[i] {
			if _, err := qtx.AppendAllowListEntry(ctx, dropID, wallet); err != nil {
				return errors.Wrap(err, "failed to append allow-list entry")
			}
			pricing.AllowListCount++
		} else {
			if _, err := qtx.TombstoneAllowListEntry(ctx, dropID, wallet); err != nil {
				return errors.Wrap(err, "failed to tombstone allow-list entry")
			}
			pricing.AllowListCount--
		}
	}

	if err := qtx.UpdatePricing(ctx, *pricing); err != nil {
		return errors.Wrap(err, "failed to update pricing")
	}
	if err := addEvent(ctx, qtx, dropID, entity.EventAllowListUpdated, caller, map[string]any{
		"wallets": normalized,
		"flags":   flags,
	}); err != nil {
		return err
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// SetBasePrices updates both tier prices without touching the tier.
func (e *Engine) SetBasePrices(ctx context.Context, dropID int64, caller string, allowListPrice, generalPrice *uint256.Int) error {
	return e.updatePricing(ctx, dropID, caller, func(pricing *entity.Pricing) map[string]any {
		pricing.AllowListPrice = orZero(allowListPrice)
		pricing.GeneralPrice = orZero(generalPrice)
		return map[string]any{
			"allowListPrice": pricing.AllowListPrice.Dec(),
			"generalPrice":   pricing.GeneralPrice.Dec(),
		}
	})
}

// SetAllowListPrice sets the allow-list price and forces the tier to
// ALLOWLIST.
func (e *Engine) SetAllowListPrice(ctx context.Context, dropID int64, caller string, price *uint256.Int) error {
	return e.updatePricing(ctx, dropID, caller, func(pricing *entity.Pricing) map[string]any {
		pricing.AllowListPrice = orZero(price)
		pricing.WhoCanMint = entity.TierAllowList
		return map[string]any{
			"allowListPrice": pricing.AllowListPrice.Dec(),
			"tier":           pricing.WhoCanMint.String(),
		}
	})
}

// SetGeneralPrice sets the general price and forces the tier to ANYONE.
func (e *Engine) SetGeneralPrice(ctx context.Context, dropID int64, caller string, price *uint256.Int) error {
	return e.updatePricing(ctx, dropID, caller, func(pricing *entity.Pricing) map[string]any {
		pricing.GeneralPrice = orZero(price)
		pricing.WhoCanMint = entity.TierAnyone
		return map[string]any{
			"generalPrice": pricing.GeneralPrice.Dec(),
			"tier":         pricing.WhoCanMint.String(),
		}
	})
}

type SetFullPricingParams struct {
	RoyaltyBPS         int32
	SplitBPS           int32
	AllowListPrice     *uint256.Int
	GeneralPrice       *uint256.Int
	AllowListMintLimit int64
	GeneralMintLimit   int64
}

// SetFullPricing atomically replaces royalty, split, both prices and
// both limits. The tier is left unchanged.
func (e *Engine) SetFullPricing(ctx context.Context, dropID int64, caller string, arg SetFullPricingParams) error {
	if arg.RoyaltyBPS < 0 || arg.RoyaltyBPS > maxBPS {
		return errors.Wrapf(errs.InvalidArgument, "royaltyBPS out of range: %d", arg.RoyaltyBPS)
	}
	if arg.SplitBPS < 0 || arg.SplitBPS > maxBPS {
		return errors.Wrapf(errs.InvalidArgument, "splitBPS out of range: %d", arg.SplitBPS)
	}
	if arg.AllowListMintLimit < 0 || arg.GeneralMintLimit < 0 {
		return errors.Wrap(errs.InvalidArgument, "mint limits must not be negative")
	}
	return e.updatePricing(ctx, dropID, caller, func(pricing *entity.Pricing) map[string]any {
		pricing.RoyaltyBPS = arg.RoyaltyBPS
		pricing.SplitBPS = arg.SplitBPS
		pricing.AllowListPrice = orZero(arg.AllowListPrice)
		pricing.GeneralPrice = orZero(arg.GeneralPrice)
		pricing.AllowListMintLimit = arg.AllowListMintLimit
		pricing.GeneralMintLimit = arg.GeneralMintLimit
		return map[string]any{
			"royaltyBPS":         arg.RoyaltyBPS,
			"splitBPS":           arg.SplitBPS,
			"allowListPrice":     pricing.AllowListPrice.Dec(),
			"generalPrice":       pricing.GeneralPrice.Dec(),
			"allowListMintLimit": arg.AllowListMintLimit,
			"generalMintLimit":   arg.GeneralMintLimit,
		}
	})
}

type SetDiscountsParams struct {
	AnnualPassAddress      string
	LifetimePassAddress    string
	AnnualAllowListPrice   *uint256.Int
	AnnualGeneralPrice     *uint256.Int
	LifetimeAllowListPrice *uint256.Int
	LifetimeGeneralPrice   *uint256.Int
}

// SetDiscounts replaces the whole discount configuration. A zero pass
// address disables that pass tier.
func (e *Engine) SetDiscounts(ctx context.Context, dropID int64, caller string, arg SetDiscountsParams) error {
	annualPass, err := normalizeAddress(arg.AnnualPassAddress)
	if err != nil {
		return err
	}
	lifetimePass, err := normalizeAddress(arg.LifetimePassAddress)
	if err != nil {
		return err
	}
	return e.updatePricing(ctx, dropID, caller, func(pricing *entity.Pricing) map[string]any {
		pricing.AnnualPassAddress = annualPass
		pricing.LifetimePassAddress = lifetimePass
		pricing.AnnualAllowListPrice = orZero(arg.AnnualAllowListPrice)
		pricing.AnnualGeneralPrice = orZero(arg.AnnualGeneralPrice)
		pricing.LifetimeAllowListPrice = orZero(arg.LifetimeAllowListPrice)
		pricing.LifetimeGeneralPrice = orZero(arg.LifetimeGeneralPrice)
		return map[string]any{
			"annualPassAddress":   annualPass,
			"lifetimePassAddress": lifetimePass,
		}
	})
}

// updatePricing runs an owner-only read-modify-write of the pricing
// row. mutate returns the event payload; discount updates emit
// DISCOUNTS_UPDATED, everything else PRICING_UPDATED.
func (e *Engine) updatePricing(ctx context.Context, dropID int64, caller string, mutate func(pricing *entity.Pricing) map[string]any) error {
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
	pricing, err := qtx.GetPricing(ctx, dropID)
	if err != nil {
		return errors.Wrap(err, "failed to get pricing")
	}

	eventType := entity.EventPricingUpdated
	payload := mutate(pricing)
	if _, ok := payload["annualPassAddress"]; ok {
		eventType = entity.EventDiscountsUpdated
	}

	if err := qtx.UpdatePricing(ctx, *pricing); err != nil {
		return errors.Wrap(err, "failed to update pricing")
	}
	if err := addEvent(ctx, qtx, dropID, eventType, caller, payload); err != nil {
		return err
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// QuotePrice returns the unit price the caller would pay right now.
func (e *Engine) QuotePrice(ctx context.Context, dropID int64, caller string) (*uint256.Int, error) {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return nil, err
	}
	pricing, err := e.dropMintDg.GetPricing(ctx, dropID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pricing")
	}
	return e.quotePriceFor(ctx, pricing, caller)
}

// IsEligible reports whether the caller may mint from the drop.
func (e *Engine) IsEligible(ctx context.Context, dropID int64, caller string) (bool, error) {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return false, err
	}
	drop, err := e.dropMintDg.GetDrop(ctx, dropID)
	if err != nil {
		return false, errors.Wrap(err, "failed to get drop")
	}
	pricing, err := e.dropMintDg.GetPricing(ctx, dropID)
	if err != nil {
		return false, errors.Wrap(err, "failed to get pricing")
	}
	listed, err := e.dropMintDg.GetAllowListFlag(ctx, dropID, caller)
	if err != nil {
		return false, errors.Wrap(err, "failed to get allow-list flag")
	}
	return e.isEligibleFor(ctx, drop, pricing, caller, listed)
}

// CurrentMintLimit returns the per-wallet limit the caller is subject
// to under the active tier.
func (e *Engine) CurrentMintLimit(ctx context.Context, dropID int64, caller string) (int64, error) {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return 0, err
	}
	drop, err := e.dropMintDg.GetDrop(ctx, dropID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get drop")
	}
	pricing, err := e.dropMintDg.GetPricing(ctx, dropID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pricing")
	}
	return currentMintLimitFor(drop, pricing, caller), nil
}

// RemainingMintAllowance returns how many more tokens the caller can
// mint before hitting the per-wallet limit.
func (e *Engine) RemainingMintAllowance(ctx context.Context, dropID int64, caller string) (int64, error) {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return 0, err
	}
	drop, err := e.dropMintDg.GetDrop(ctx, dropID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get drop")
	}
	if sameWallet(drop.Owner, caller) {
		return drop.RemainingSupply(), nil
	}
	pricing, err := e.dropMintDg.GetPricing(ctx, dropID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pricing")
	}
	if pricing.WhoCanMint == entity.TierAllowList {
		listed, err := e.dropMintDg.GetAllowListFlag(ctx, dropID, caller)
		if err != nil {
			return 0, errors.Wrap(err, "failed to get allow-list flag")
		}
		eligible, err := e.isEligibleFor(ctx, drop, pricing, caller, listed)
		if err != nil {
			return 0, err
		}
		if !eligible {
			return 0, nil
		}
	}
	minted, err := e.dropMintDg.GetMintCount(ctx, dropID, caller)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get mint count")
	}
	allowance := currentMintLimitFor(drop, pricing, caller) - minted
	if allowance < 0 {
		allowance = 0
	}
	return allowance, nil
}

// RoyaltyInfo returns the royalty receiver and amount for a sale
// price, in the manner of ERC-2981. The receiver is the drop owner.
func (e *Engine) RoyaltyInfo(ctx context.Context, dropID int64, tokenID int64, salePrice *uint256.Int) (string, *uint256.Int, error) {
	drop, err := e.dropMintDg.GetDrop(ctx, dropID)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to get drop")
	}
	if drop.Owner == entity.ZeroAddress {
		return entity.ZeroAddress, uint256.NewInt(0), nil
	}
	pricing, err := e.dropMintDg.GetPricing(ctx, dropID)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to get pricing")
	}
	amount, overflow := new(uint256.Int).MulOverflow(orZero(salePrice), uint256.NewInt(uint64(pricing.RoyaltyBPS)))
	if overflow {
		return "", nil, errors.Wrap(errs.OverflowUint256, "royalty amount does not fit in uint256")
	}
	amount.Div(amount, uint256.NewInt(maxBPS))
	return drop.Owner, amount, nil
}
