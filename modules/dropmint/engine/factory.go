package engine

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/holiman/uint256"
)

type CreateDropParams struct {
	Caller            string
	Name              string
	Symbol            string
	BaseDir           string
	ArtistWallet      string
	DropSize          int64
	DifferentEditions int32
	RandomMint        bool
}

// CreateDrop registers a new drop with the caller as owner and an
// initial NOT_FOR_SALE pricing row. DropSize 0 means unbounded.
// Drop ids come from an insert-only sequence and are never reused.
func (e *Engine) CreateDrop(ctx context.Context, arg CreateDropParams) (int64, error) {
	caller, err := normalizeAddress(arg.Caller)
	if err != nil {
		return 0, err
	}
	if caller == entity.ZeroAddress {
		return 0, errors.Wrap(errs.InvalidArgument, "caller is required")
	}
	artistWallet, err := normalizeAddress(arg.ArtistWallet)
	if err != nil {
		return 0, err
	}
	if arg.Name == "" || arg.Symbol == "" {
		return 0, errors.Wrap(errs.InvalidArgument, "name and symbol are required")
	}
	if arg.BaseDir == "" {
		return 0, errors.Wrap(errs.InvalidArgument, "baseDir is required")
	}
	if arg.DropSize < 0 {
		return 0, errors.Wrap(errs.InvalidArgument, "dropSize must not be negative")
	}
	dropSize := arg.DropSize
	if dropSize == 0 {
		dropSize = entity.UnboundedDropSize
	}
	differentEditions := arg.DifferentEditions
	if differentEditions == 0 {
		differentEditions = 1
	}
	if differentEditions < 0 {
		return 0, errors.Wrap(errs.InvalidArgument, "differentEditions must be positive")
	}

	qtx, err := e.dropMintDg.BeginDropMintTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = qtx.Rollback(ctx) }()

	dropID, err := qtx.CreateDrop(ctx, datagateway.CreateDropParams{
		Name:              arg.Name,
		Symbol:            arg.Symbol,
		BaseDir:           arg.BaseDir,
		ArtistWallet:      artistWallet,
		Owner:             caller,
		DropSize:          dropSize,
		RandomMint:        arg.RandomMint,
		DifferentEditions: differentEditions,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert drop")
	}

	if err := qtx.CreatePricing(ctx, entity.Pricing{
		DropID:              dropID,
		WhoCanMint:          entity.TierNotForSale,
		AllowListPrice:      uint256.NewInt(0),
		GeneralPrice:        uint256.NewInt(0),
		AnnualPassAddress:   entity.ZeroAddress,
		LifetimePassAddress: entity.ZeroAddress,
	}); err != nil {
		return 0, errors.Wrap(err, "failed to insert pricing")
	}

	if err := addEvent(ctx, qtx, dropID, entity.EventDropCreated, caller, map[string]any{
		"name":     arg.Name,
		"symbol":   arg.Symbol,
		"dropSize": dropSize,
	}); err != nil {
		return 0, err
	}

	if err := qtx.Commit(ctx); err != nil {
		return 0, errors.Wrap(err, "failed to commit transaction")
	}
	return dropID, nil
}

// GetDropAtID returns the drop or a NotFound error.
func (e *Engine) GetDropAtID(ctx context.Context, dropID int64) (*entity.Drop, error) {
	drop, err := e.dropMintDg.GetDrop(ctx, dropID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(errs.NotFound, "drop %d not found", dropID)
		}
		return nil, errors.Wrap(err, "failed to get drop")
	}
	return drop, nil
}

// ListDrops returns one page of drops plus the total count.
func (e *Engine) ListDrops(ctx context.Context, limit, offset int32) ([]entity.Drop, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	drops, err := e.dropMintDg.GetDrops(ctx, datagateway.GetDropsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list drops")
	}
	total, err := e.dropMintDg.CountDrops(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count drops")
	}
	return drops, total, nil
}

// TransferOwnership hands the drop to a new owner wallet.
func (e *Engine) TransferOwnership(ctx context.Context, dropID int64, caller, newOwner string) error {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return err
	}
	newOwner, err = normalizeAddress(newOwner)
	if err != nil {
		return err
	}
	if newOwner == entity.ZeroAddress {
		return errors.Wrap(errs.InvalidArgument, "new owner is required")
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

	if err := qtx.SetDropOwner(ctx, dropID, newOwner); err != nil {
		return errors.Wrap(err, "failed to set drop owner")
	}
	if err := addEvent(ctx, qtx, dropID, entity.EventOwnerTransferred, caller, map[string]any{
		"previousOwner": drop.Owner,
		"newOwner":      newOwner,
	}); err != nil {
		return err
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}
