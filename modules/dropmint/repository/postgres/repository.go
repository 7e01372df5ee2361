package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/internal/postgres"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/dropforge/drop-engine/modules/dropmint/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

var _ datagateway.DropMintDataGateway = (*Repository)(nil)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}

func (r *Repository) CreateDrop(ctx context.Context, arg datagateway.CreateDropParams) (int64, error) {
	id, err := r.queries.CreateDrop(ctx, gen.CreateDropParams{
		Name:              arg.Name,
		Symbol:            arg.Symbol,
		BaseDir:           arg.BaseDir,
		ArtistWallet:      arg.ArtistWallet,
		Owner:             arg.Owner,
		DropSize:          arg.DropSize,
		RandomMint:        arg.RandomMint,
		DifferentEditions: arg.DifferentEditions,
	})
	if err != nil {
		return 0, errors.Wrap(err, "error during exec")
	}
	return id, nil
}

func (r *Repository) GetDrop(ctx context.Context, dropID int64) (*entity.Drop, error) {
	model, err := r.queries.GetDrop(ctx, dropID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	drop := mapDropModelToType(model)
	return &drop, nil
}

func (r *Repository) GetDropForUpdate(ctx context.Context, dropID int64) (*entity.Drop, error) {
	model, err := r.queries.GetDropForUpdate(ctx, dropID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	drop := mapDropModelToType(model)
	return &drop, nil
}

func (r *Repository) GetDrops(ctx context.Context, arg datagateway.GetDropsParams) ([]entity.Drop, error) {
	models, err := r.queries.GetDrops(ctx, gen.GetDropsParams{
		Limit:  arg.Limit,
		Offset: arg.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.DropmintDrop, _ int) entity.Drop {
		return mapDropModelToType(model)
	}), nil
}

func (r *Repository) CountDrops(ctx context.Context) (int64, error) {
	count, err := r.queries.CountDrops(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return count, nil
}

func (r *Repository) UpdateDropCounters(ctx context.Context, arg datagateway.UpdateDropCountersParams) error {
	if err := r.queries.UpdateDropCounters(ctx, gen.UpdateDropCountersParams{
		ID:           arg.DropID,
		ClaimCount:   arg.ClaimCount,
		CurrentIndex: arg.CurrentIndex,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) SetDropOwner(ctx context.Context, dropID int64, owner string) error {
	if err := r.queries.SetDropOwner(ctx, gen.SetDropOwnerParams{
		ID:    dropID,
		Owner: owner,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreatePricing(ctx context.Context, arg entity.Pricing) error {
	params, err := mapPricingTypeToParams(arg)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := r.queries.CreatePricing(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetPricing(ctx context.Context, dropID int64) (*entity.Pricing, error) {
	model, err := r.queries.GetPricing(ctx, dropID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	pricing, err := mapPricingModelToType(model)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &pricing, nil
}

func (r *Repository) UpdatePricing(ctx context.Context, arg entity.Pricing) error {
	params, err := mapPricingTypeToParams(arg)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := r.queries.UpdatePricing(ctx, gen.UpdatePricingParams(params)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetAllowListFlag(ctx context.Context, dropID int64, wallet string) (bool, error) {
	allowed, err := r.queries.GetAllowListFlag(ctx, gen.GetAllowListFlagParams{
		DropID: dropID,
		Wallet: wallet,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrap(err, "error during query")
	}
	return allowed, nil
}

func (r *Repository) SetAllowListFlag(ctx context.Context, dropID int64, wallet string, allowed bool) error {
	if err := r.queries.SetAllowListFlag(ctx, gen.SetAllowListFlagParams{
		DropID:  dropID,
		Wallet:  wallet,
		Allowed: allowed,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) AppendAllowListEntry(ctx context.Context, dropID int64, wallet string) (int32, error) {
	position, err := r.queries.AppendAllowListEntry(ctx, gen.AppendAllowListEntryParams{
		DropID: dropID,
		Wallet: wallet,
	})
	if err != nil {
		return 0, errors.Wrap(err, "error during exec")
	}
	return position, nil
}

func (r *Repository) TombstoneAllowListEntry(ctx context.Context, dropID int64, wallet string) (bool, error) {
	affected, err := r.queries.TombstoneAllowListEntry(ctx, gen.TombstoneAllowListEntryParams{
		DropID: dropID,
		Wallet: wallet,
	})
	if err != nil {
		return false, errors.Wrap(err, "error during exec")
	}
	return affected > 0, nil
}

func (r *Repository) GetAllowListEntries(ctx context.Context, dropID int64) ([]entity.AllowListEntry, error) {
	models, err := r.queries.GetAllowListEntries(ctx, dropID)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.DropmintAllowListEntry, _ int) entity.AllowListEntry {
		return mapAllowListEntryModelToType(model)
	}), nil
}

func (r *Repository) GetMintCount(ctx context.Context, dropID int64, wallet string) (int64, error) {
	count, err := r.queries.GetMintCount(ctx, gen.GetMintCountParams{
		DropID: dropID,
		Wallet: wallet,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "error during query")
	}
	return count, nil
}

func (r *Repository) IncrementMintCount(ctx context.Context, arg datagateway.IncrementMintCountParams) error {
	if err := r.queries.IncrementMintCount(ctx, gen.IncrementMintCountParams{
		DropID: arg.DropID,
		Wallet: arg.Wallet,
		Count:  arg.Count,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateTokens(ctx context.Context, tokens []entity.Token) error {
	for _, token := range tokens {
		if err := r.queries.CreateToken(ctx, gen.CreateTokenParams{
			DropID:              token.DropID,
			TokenID:             token.TokenID,
			State:               int32(token.State),
			OwnerWallet:         token.OwnerWallet,
			MintedMetadataUrl:   token.MintedMetadataURL,
			RedeemedMetadataUrl: token.RedeemedMetadataURL,
			MintedAt:            timestampFromTime(token.MintedAt),
		}); err != nil {
			return errors.Wrap(err, "error during exec")
		}
	}
	return nil
}

func (r *Repository) GetToken(ctx context.Context, dropID int64, tokenID int64) (*entity.Token, error) {
	model, err := r.queries.GetToken(ctx, gen.GetTokenParams{
		DropID:  dropID,
		TokenID: tokenID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	token := mapTokenModelToType(model)
	return &token, nil
}

func (r *Repository) GetTokensByWallet(ctx context.Context, dropID int64, wallet string) ([]entity.Token, error) {
	models, err := r.queries.GetTokensByWallet(ctx, gen.GetTokensByWalletParams{
		DropID:      dropID,
		OwnerWallet: wallet,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.DropmintToken, _ int) entity.Token {
		return mapTokenModelToType(model)
	}), nil
}

func (r *Repository) UpdateTokenState(ctx context.Context, arg datagateway.UpdateTokenStateParams) error {
	if err := r.queries.UpdateTokenState(ctx, gen.UpdateTokenStateParams{
		DropID:              arg.DropID,
		TokenID:             arg.TokenID,
		State:               int32(arg.State),
		RedeemedMetadataUrl: arg.RedeemedMetadataURL,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) ClearTokenOwner(ctx context.Context, dropID int64, tokenID int64) error {
	if err := r.queries.ClearTokenOwner(ctx, gen.ClearTokenOwnerParams{
		DropID:  dropID,
		TokenID: tokenID,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetReservation(ctx context.Context, dropID int64, tokenID int64) (*entity.Reservation, error) {
	model, err := r.queries.GetReservation(ctx, gen.GetReservationParams{
		DropID:  dropID,
		TokenID: tokenID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	return &entity.Reservation{
		DropID:  model.DropID,
		TokenID: model.TokenID,
		Wallet:  model.Wallet,
	}, nil
}

func (r *Repository) CreateReservation(ctx context.Context, arg entity.Reservation) error {
	if err := r.queries.CreateReservation(ctx, gen.CreateReservationParams{
		DropID:  arg.DropID,
		TokenID: arg.TokenID,
		Wallet:  arg.Wallet,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteReservation(ctx context.Context, dropID int64, tokenID int64) error {
	if err := r.queries.DeleteReservation(ctx, gen.DeleteReservationParams{
		DropID:  dropID,
		TokenID: tokenID,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) AppendReservationEntry(ctx context.Context, dropID int64, wallet string, tokenID int64) (int32, error) {
	position, err := r.queries.AppendReservationEntry(ctx, gen.AppendReservationEntryParams{
		DropID:  dropID,
		Wallet:  wallet,
		TokenID: tokenID,
	})
	if err != nil {
		return 0, errors.Wrap(err, "error during exec")
	}
	return position, nil
}

func (r *Repository) TombstoneReservationEntry(ctx context.Context, dropID int64, wallet string, tokenID int64) (bool, error) {
	affected, err := r.queries.TombstoneReservationEntry(ctx, gen.TombstoneReservationEntryParams{
		DropID:  dropID,
		Wallet:  wallet,
		TokenID: tokenID,
	})
	if err != nil {
		return false, errors.Wrap(err, "error during exec")
	}
	return affected > 0, nil
}

func (r *Repository) GetReservationEntries(ctx context.Context, dropID int64, wallet string) ([]entity.ReservationEntry, error) {
	models, err := r.queries.GetReservationEntries(ctx, gen.GetReservationEntriesParams{
		DropID: dropID,
		Wallet: wallet,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.DropmintReservationEntry, _ int) entity.ReservationEntry {
		return mapReservationEntryModelToType(model)
	}), nil
}

func (r *Repository) CountActiveReservations(ctx context.Context, dropID int64, wallet string) (int64, error) {
	count, err := r.queries.CountActiveReservations(ctx, gen.CountActiveReservationsParams{
		DropID: dropID,
		Wallet: wallet,
	})
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return count, nil
}

func (r *Repository) AddEvent(ctx context.Context, arg datagateway.AddEventParams) error {
	payload := arg.Payload
	if payload == nil {
		payload = []byte("{}")
	}
	if err := r.queries.CreateEvent(ctx, gen.CreateEventParams{
		DropID:    arg.DropID,
		Type:      string(arg.Type),
		Caller:    arg.Caller,
		Payload:   payload,
		CreatedAt: timestampFromTime(arg.CreatedAt),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetEventsByDrop(ctx context.Context, arg datagateway.GetEventsByDropParams) ([]entity.DropEvent, error) {
	models, err := r.queries.GetEventsByDrop(ctx, gen.GetEventsByDropParams{
		DropID: arg.DropID,
		Limit:  arg.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.DropmintEvent, _ int) entity.DropEvent {
		return mapEventModelToType(model)
	}), nil
}

func (r *Repository) GetEventsByWallet(ctx context.Context, wallet string) ([]entity.DropEvent, error) {
	models, err := r.queries.GetEventsByWallet(ctx, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.DropmintEvent, _ int) entity.DropEvent {
		return mapEventModelToType(model)
	}), nil
}

func (r *Repository) GetEventsAfter(ctx context.Context, arg datagateway.GetEventsAfterParams) ([]entity.DropEvent, error) {
	models, err := r.queries.GetEventsAfter(ctx, gen.GetEventsAfterParams{
		ID:    arg.AfterID,
		Limit: arg.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.DropmintEvent, _ int) entity.DropEvent {
		return mapEventModelToType(model)
	}), nil
}

func (r *Repository) CountEvents(ctx context.Context) (int64, error) {
	count, err := r.queries.CountEvents(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return count, nil
}

func (r *Repository) CountMintedTokens(ctx context.Context) (int64, error) {
	count, err := r.queries.CountMintedTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return count, nil
}

func (r *Repository) GetPassBalance(ctx context.Context, passAddress string, wallet string) (uint64, error) {
	balance, err := r.queries.GetPassBalance(ctx, gen.GetPassBalanceParams{
		PassAddress: passAddress,
		Wallet:      wallet,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "error during query")
	}
	if balance < 0 {
		return 0, nil
	}
	return uint64(balance), nil
}

func (r *Repository) SetPassBalance(ctx context.Context, passAddress string, wallet string, balance uint64) error {
	if err := r.queries.SetPassBalance(ctx, gen.SetPassBalanceParams{
		PassAddress: passAddress,
		Wallet:      wallet,
		Balance:     int64(balance),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
