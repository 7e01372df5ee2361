package postgres

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/dropforge/drop-engine/modules/dropmint/repository/postgres/gen"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgtype"
)

func uint256FromNumeric(src pgtype.Numeric) (*uint256.Int, error) {
	if !src.Valid {
		return nil, nil
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	result, err := uint256.FromDecimal(string(bytes))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return result, nil
}

func numericFromUint256(src *uint256.Int) (pgtype.Numeric, error) {
	if src == nil {
		return pgtype.Numeric{}, nil
	}
	var result pgtype.Numeric
	if err := result.UnmarshalJSON([]byte(src.Dec())); err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func timestampFromTime(src time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: src.UTC(), Valid: true}
}

func timeFromTimestamp(src pgtype.Timestamp) time.Time {
	if !src.Valid {
		return time.Time{}
	}
	return src.Time.UTC()
}

func mapDropModelToType(src gen.DropmintDrop) entity.Drop {
	return entity.Drop{
		ID:                src.ID,
		Name:              src.Name,
		Symbol:            src.Symbol,
		BaseDir:           src.BaseDir,
		ArtistWallet:      src.ArtistWallet,
		Owner:             src.Owner,
		DropSize:          src.DropSize,
		ClaimCount:        src.ClaimCount,
		CurrentIndex:      src.CurrentIndex,
		RandomMint:        src.RandomMint,
		DifferentEditions: src.DifferentEditions,
		CreatedAt:         timeFromTimestamp(src.CreatedAt),
	}
}

func mapPricingModelToType(src gen.DropmintPricing) (entity.Pricing, error) {
	allowListPrice, err := uint256FromNumeric(src.AllowListPrice)
	if err != nil {
		return entity.Pricing{}, errors.Wrap(err, "invalid allow_list_price")
	}
	generalPrice, err := uint256FromNumeric(src.GeneralPrice)
	if err != nil {
		return entity.Pricing{}, errors.Wrap(err, "invalid general_price")
	}
	annualAllowListPrice, err := uint256FromNumeric(src.AnnualAllowListPrice)
	if err != nil {
		return entity.Pricing{}, errors.Wrap(err, "invalid annual_allow_list_price")
	}
	annualGeneralPrice, err := uint256FromNumeric(src.AnnualGeneralPrice)
	if err != nil {
		return entity.Pricing{}, errors.Wrap(err, "invalid annual_general_price")
	}
	lifetimeAllowListPrice, err := uint256FromNumeric(src.LifetimeAllowListPrice)
	if err != nil {
		return entity.Pricing{}, errors.Wrap(err, "invalid lifetime_allow_list_price")
	}
	lifetimeGeneralPrice, err := uint256FromNumeric(src.LifetimeGeneralPrice)
	if err != nil {
		return entity.Pricing{}, errors.Wrap(err, "invalid lifetime_general_price")
	}
	return entity.Pricing{
		DropID:                 src.DropID,
		RoyaltyBPS:             src.RoyaltyBps,
		SplitBPS:               src.SplitBps,
		AllowListPrice:         allowListPrice,
		GeneralPrice:           generalPrice,
		AllowListMintLimit:     src.AllowListMintLimit,
		GeneralMintLimit:       src.GeneralMintLimit,
		WhoCanMint:             entity.AccessTier(src.WhoCanMint),
		AllowListCount:         src.AllowListCount,
		AnnualPassAddress:      src.AnnualPassAddress,
		LifetimePassAddress:    src.LifetimePassAddress,
		AnnualAllowListPrice:   annualAllowListPrice,
		AnnualGeneralPrice:     annualGeneralPrice,
		LifetimeAllowListPrice: lifetimeAllowListPrice,
		LifetimeGeneralPrice:   lifetimeGeneralPrice,
	}, nil
}

func mapPricingTypeToParams(src entity.Pricing) (gen.CreatePricingParams, error) {
	allowListPrice, err := numericFromUint256(src.AllowListPrice)
	if err != nil {
		return gen.CreatePricingParams{}, errors.Wrap(err, "invalid allow-list price")
	}
	generalPrice, err := numericFromUint256(src.GeneralPrice)
	if err != nil {
		return gen.CreatePricingParams{}, errors.Wrap(err, "invalid general price")
	}
	annualAllowListPrice, err := numericFromUint256(src.AnnualAllowListPrice)
	if err != nil {
		return gen.CreatePricingParams{}, errors.Wrap(err, "invalid annual allow-list price")
	}
	annualGeneralPrice, err := numericFromUint256(src.AnnualGeneralPrice)
	if err != nil {
		return gen.CreatePricingParams{}, errors.Wrap(err, "invalid annual general price")
	}
	lifetimeAllowListPrice, err := numericFromUint256(src.LifetimeAllowListPrice)
	if err != nil {
		return gen.CreatePricingParams{}, errors.Wrap(err, "invalid lifetime allow-list price")
	}
	lifetimeGeneralPrice, err := numericFromUint256(src.LifetimeGeneralPrice)
	if err != nil {
		return gen.CreatePricingParams{}, errors.Wrap(err, "invalid lifetime general price")
	}
	return gen.CreatePricingParams{
		DropID:                 src.DropID,
		RoyaltyBps:             src.RoyaltyBPS,
		SplitBps:               src.SplitBPS,
		AllowListPrice:         allowListPrice,
		GeneralPrice:           generalPrice,
		AllowListMintLimit:     src.AllowListMintLimit,
		GeneralMintLimit:       src.GeneralMintLimit,
		WhoCanMint:             int32(src.WhoCanMint),
		AllowListCount:         src.AllowListCount,
		AnnualPassAddress:      src.AnnualPassAddress,
		LifetimePassAddress:    src.LifetimePassAddress,
		AnnualAllowListPrice:   annualAllowListPrice,
		AnnualGeneralPrice:     annualGeneralPrice,
		LifetimeAllowListPrice: lifetimeAllowListPrice,
		LifetimeGeneralPrice:   lifetimeGeneralPrice,
	}, nil
}

func mapTokenModelToType(src gen.DropmintToken) entity.Token {
	return entity.Token{
		DropID:              src.DropID,
		TokenID:             src.TokenID,
		State:               entity.TokenState(src.State),
		OwnerWallet:         src.OwnerWallet,
		MintedMetadataURL:   src.MintedMetadataUrl,
		RedeemedMetadataURL: src.RedeemedMetadataUrl,
		MintedAt:            timeFromTimestamp(src.MintedAt),
	}
}

func mapEventModelToType(src gen.DropmintEvent) entity.DropEvent {
	return entity.DropEvent{
		ID:        src.ID,
		DropID:    src.DropID,
		Type:      entity.EventType(src.Type),
		Caller:    src.Caller,
		Payload:   src.Payload,
		CreatedAt: timeFromTimestamp(src.CreatedAt),
	}
}

func mapAllowListEntryModelToType(src gen.DropmintAllowListEntry) entity.AllowListEntry {
	return entity.AllowListEntry{
		DropID:   src.DropID,
		Position: src.Position,
		Wallet:   src.Wallet,
	}
}

func mapReservationEntryModelToType(src gen.DropmintReservationEntry) entity.ReservationEntry {
	return entity.ReservationEntry{
		DropID:   src.DropID,
		Wallet:   src.Wallet,
		Position: src.Position,
		TokenID:  src.TokenID,
	}
}
