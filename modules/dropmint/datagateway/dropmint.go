package datagateway

import (
	"context"
	"time"

	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
)

type DropMintDataGateway interface {
	BeginDropMintTx(ctx context.Context) (DropMintDataGatewayWithTx, error)

	CreateDrop(ctx context.Context, arg CreateDropParams) (int64, error)
	GetDrop(ctx context.Context, dropID int64) (*entity.Drop, error)
	// GetDropForUpdate locks the drop row for the remainder of the
	// transaction so concurrent mints serialize on the counters.
	GetDropForUpdate(ctx context.Context, dropID int64) (*entity.Drop, error)
	GetDrops(ctx context.Context, arg GetDropsParams) ([]entity.Drop, error)
	CountDrops(ctx context.Context) (int64, error)
	UpdateDropCounters(ctx context.Context, arg UpdateDropCountersParams) error
	SetDropOwner(ctx context.Context, dropID int64, owner string) error

	CreatePricing(ctx context.Context, arg entity.Pricing) error
	GetPricing(ctx context.Context, dropID int64) (*entity.Pricing, error)
	UpdatePricing(ctx context.Context, arg entity.Pricing) error

	GetAllowListFlag(ctx context.Context, dropID int64, wallet string) (bool, error)
	SetAllowListFlag(ctx context.Context, dropID int64, wallet string, allowed bool) error
	AppendAllowListEntry(ctx context.Context, dropID int64, wallet string) (int32, error)
	// TombstoneAllowListEntry overwrites the wallet's ordered-list slot
	// with the zero address, keeping positions stable. Returns false if
	// the wallet has no live slot.
	TombstoneAllowListEntry(ctx context.Context, dropID int64, wallet string) (bool, error)
	GetAllowListEntries(ctx context.Context, dropID int64) ([]entity.AllowListEntry, error)

	GetMintCount(ctx context.Context, dropID int64, wallet string) (int64, error)
	IncrementMintCount(ctx context.Context, arg IncrementMintCountParams) error

	CreateTokens(ctx context.Context, tokens []entity.Token) error
	GetToken(ctx context.Context, dropID int64, tokenID int64) (*entity.Token, error)
	GetTokensByWallet(ctx context.Context, dropID int64, wallet string) ([]entity.Token, error)
	UpdateTokenState(ctx context.Context, arg UpdateTokenStateParams) error
	// ClearTokenOwner detaches the token from its wallet on burn. The
	// token row survives with its state intact.
	ClearTokenOwner(ctx context.Context, dropID int64, tokenID int64) error

	GetReservation(ctx context.Context, dropID int64, tokenID int64) (*entity.Reservation, error)
	CreateReservation(ctx context.Context, arg entity.Reservation) error
	DeleteReservation(ctx context.Context, dropID int64, tokenID int64) error
	AppendReservationEntry(ctx context.Context, dropID int64, wallet string, tokenID int64) (int32, error)
	// TombstoneReservationEntry zeroes the wallet's ordered-list slot
	// holding tokenID. Positions are stable, slots are never compacted.
	TombstoneReservationEntry(ctx context.Context, dropID int64, wallet string, tokenID int64) (bool, error)
	GetReservationEntries(ctx context.Context, dropID int64, wallet string) ([]entity.ReservationEntry, error)
	CountActiveReservations(ctx context.Context, dropID int64, wallet string) (int64, error)

	AddEvent(ctx context.Context, arg AddEventParams) error
	GetEventsByDrop(ctx context.Context, arg GetEventsByDropParams) ([]entity.DropEvent, error)
	GetEventsByWallet(ctx context.Context, wallet string) ([]entity.DropEvent, error)
	GetEventsAfter(ctx context.Context, arg GetEventsAfterParams) ([]entity.DropEvent, error)
	CountEvents(ctx context.Context) (int64, error)
	CountMintedTokens(ctx context.Context) (int64, error)

	GetPassBalance(ctx context.Context, passAddress string, wallet string) (uint64, error)
	SetPassBalance(ctx context.Context, passAddress string, wallet string, balance uint64) error
}

type DropMintDataGatewayWithTx interface {
	DropMintDataGateway
	Tx
}

type CreateDropParams struct {
	Name              string
	Symbol            string
	BaseDir           string
	ArtistWallet      string
	Owner             string
	DropSize          int64
	RandomMint        bool
	DifferentEditions int32
}

type GetDropsParams struct {
	Limit  int32
	Offset int32
}

type UpdateDropCountersParams struct {
	DropID       int64
	ClaimCount   int64
	CurrentIndex int64
}

type IncrementMintCountParams struct {
	DropID int64
	Wallet string
	Count  int64
}

type UpdateTokenStateParams struct {
	DropID              int64
	TokenID             int64
	State               entity.TokenState
	RedeemedMetadataURL string
}

type AddEventParams struct {
	DropID    int64
	Type      entity.EventType
	Caller    string
	Payload   []byte
	CreatedAt time.Time
}

type GetEventsByDropParams struct {
	DropID int64
	Limit  int32
}

type GetEventsAfterParams struct {
	AfterID int64
	Limit   int32
}
