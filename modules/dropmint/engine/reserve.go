package engine

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/samber/lo"
)

// Reserve binds unminted token ids to wallets. Reservations are
// bookkeeping only; mint id assignment does not consult them.
func (e *Engine) Reserve(ctx context.Context, dropID int64, caller string, wallets []string, tokenIDs []int64) error {
	caller, err := normalizeAddress(caller)
	if err != nil {
		return err
	}
	if len(wallets) != len(tokenIDs) {
		return errors.Wrap(errs.LengthMismatch, "wallets and token ids must have the same length")
	}
	normalized := make([]string, len(wallets))
	for i, wallet := range wallets {
		normalized[i], err = normalizeAddress(wallet)
		if err != nil {
			return err
		}
		if normalized[i] == entity.ZeroAddress {
			return errors.Wrap(errs.InvalidArgument, "cannot reserve for the zero address")
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

	for i, tokenID := range tokenIDs {
		if tokenID < 1 || tokenID > drop.DropSize {
			return errors.Wrapf(errs.InvalidTokenID, "token id %d out of range", tokenID)
		}
		existing, err := qtx.GetReservation(ctx, dropID, tokenID)
		if err != nil && !errors.Is(err, errs.NotFound) {
			return errors.Wrap(err, "failed to get reservation")
		}
		if existing != nil {
			return errors.Wrapf(errs.MustBeUnminted, "token %d is already reserved", tokenID)
		}
		_, err = qtx.GetToken(ctx, dropID, tokenID)
		if err == nil {
			return errors.Wrapf(errs.MustBeUnminted, "token %d is already minted", tokenID)
		}
		if !errors.Is(err, errs.NotFound) {
			return errors.Wrap(err, "failed to get token")
		}

		if err := qtx.CreateReservation(ctx, entity.Reservation{
			DropID:  dropID,
			TokenID: tokenID,
			Wallet:  normalized[i],
		}); err != nil {
			return errors.Wrap(err, "failed to insert reservation")
		}
		if _, err := qtx.AppendReservationEntry(ctx, dropID, normalized[i], tokenID); err != nil {
			return errors.Wrap(err, "failed to append reservation entry")
		}
	}

	if err := addEvent(ctx, qtx, dropID, entity.EventReserved, caller, map[string]any{
		"wallets":  normalized,
		"tokenIds": tokenIDs,
	}); err != nil {
		return err
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// Unreserve releases reservations. The slot in the owning wallet's
// ordered list is tombstoned, not removed, so positions stay stable.
func (e *Engine) Unreserve(ctx context.Context, dropID int64, caller string, tokenIDs []int64) error {
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

	for _, tokenID := range tokenIDs {
		reservation, err := qtx.GetReservation(ctx, dropID, tokenID)
		if err != nil {
			if errors.Is(err, errs.NotFound) {
				return errors.Wrapf(errs.NotReserved, "token %d is not reserved", tokenID)
			}
			return errors.Wrap(err, "failed to get reservation")
		}
		if err := qtx.DeleteReservation(ctx, dropID, tokenID); err != nil {
			return errors.Wrap(err, "failed to delete reservation")
		}
		if _, err := qtx.TombstoneReservationEntry(ctx, dropID, reservation.Wallet, tokenID); err != nil {
			return errors.Wrap(err, "failed to tombstone reservation entry")
		}
	}

	if err := addEvent(ctx, qtx, dropID, entity.EventUnreserved, caller, map[string]any{
		"tokenIds": tokenIDs,
	}); err != nil {
		return err
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// IsReserved reports whether a token id is currently reserved.
func (e *Engine) IsReserved(ctx context.Context, dropID int64, tokenID int64) (bool, error) {
	_, err := e.dropMintDg.GetReservation(ctx, dropID, tokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to get reservation")
	}
	return true, nil
}

// WhoReserved returns the reserving wallet, or the zero address when
// the token is unreserved.
func (e *Engine) WhoReserved(ctx context.Context, dropID int64, tokenID int64) (string, error) {
	reservation, err := e.dropMintDg.GetReservation(ctx, dropID, tokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return entity.ZeroAddress, nil
		}
		return "", errors.Wrap(err, "failed to get reservation")
	}
	return reservation.Wallet, nil
}

// ReservationCount returns the wallet's count of live reservations.
func (e *Engine) ReservationCount(ctx context.Context, dropID int64, wallet string) (int64, error) {
	wallet, err := normalizeAddress(wallet)
	if err != nil {
		return 0, err
	}
	count, err := e.dropMintDg.CountActiveReservations(ctx, dropID, wallet)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count reservations")
	}
	return count, nil
}

// ReservationList returns the wallet's raw ordered list of reserved
// token ids, tombstones (0) included.
func (e *Engine) ReservationList(ctx context.Context, dropID int64, wallet string) ([]int64, error) {
	wallet, err := normalizeAddress(wallet)
	if err != nil {
		return nil, err
	}
	entries, err := e.dropMintDg.GetReservationEntries(ctx, dropID, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reservation entries")
	}
	return lo.Map(entries, func(entry entity.ReservationEntry, _ int) int64 { return entry.TokenID }), nil
}
