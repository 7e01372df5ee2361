package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/holiman/uint256"
)

// ZeroAddress is the null wallet. It doubles as the tombstone value in
// the ordered allow-list and as the "pass tier disabled" marker.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// UnboundedDropSize is the stored drop size for drops created with
// size 0. Token ids stay within int64 range.
const UnboundedDropSize = int64(math.MaxInt64)

// AccessTier gates who may mint from a drop.
type AccessTier int32

const (
	TierNotForSale AccessTier = iota
	TierAllowList
	TierAnyone
)

func (t AccessTier) String() string {
	switch t {
	case TierNotForSale:
		return "NOT_FOR_SALE"
	case TierAllowList:
		return "ALLOWLIST"
	case TierAnyone:
		return "ANYONE"
	}
	return "UNKNOWN"
}

func (t AccessTier) IsValid() bool {
	return t >= TierNotForSale && t <= TierAnyone
}

// TokenState is the redemption lifecycle of a minted token.
// TokenProductionComplete exists as a state value but no public
// transition targets it; TokenRedeemed and TokenProductionComplete are
// both terminal.
type TokenState int32

const (
	TokenUnminted TokenState = iota
	TokenMinted
	TokenRedeemStarted
	TokenProductionComplete
	TokenRedeemed
)

func (s TokenState) String() string {
	switch s {
	case TokenUnminted:
		return "UNMINTED"
	case TokenMinted:
		return "MINTED"
	case TokenRedeemStarted:
		return "REDEEM_STARTED"
	case TokenProductionComplete:
		return "PRODUCTION_COMPLETE"
	case TokenRedeemed:
		return "REDEEMED"
	}
	return "UNKNOWN"
}

// Drop is one edition series. ClaimCount and CurrentIndex are
// monotonically increasing; token ids are never reused, including
// after burn.
type Drop struct {
	ID                int64
	Name              string
	Symbol            string
	BaseDir           string
	ArtistWallet      string
	Owner             string
	DropSize          int64
	ClaimCount        int64
	CurrentIndex      int64
	RandomMint        bool
	DifferentEditions int32
	CreatedAt         time.Time
}

// RemainingSupply returns how many tokens can still be minted.
func (d Drop) RemainingSupply() int64 {
	return d.DropSize - d.ClaimCount
}

// Pricing carries the access tier, prices, limits and discount-pass
// references for a drop. Prices are wei amounts.
type Pricing struct {
	DropID             int64
	RoyaltyBPS         int32
	SplitBPS           int32
	AllowListPrice     *uint256.Int
	GeneralPrice       *uint256.Int
	AllowListMintLimit int64
	GeneralMintLimit   int64
	WhoCanMint         AccessTier
	AllowListCount     int64

	AnnualPassAddress   string
	LifetimePassAddress string

	AnnualAllowListPrice   *uint256.Int
	AnnualGeneralPrice     *uint256.Int
	LifetimeAllowListPrice *uint256.Int
	LifetimeGeneralPrice   *uint256.Int
}

// Token is a minted token. OwnerWallet becomes empty after burn while
// State keeps its pre-burn value.
type Token struct {
	DropID              int64
	TokenID             int64
	State               TokenState
	OwnerWallet         string
	MintedMetadataURL   string
	RedeemedMetadataURL string
	MintedAt            time.Time
}

// MetadataURL returns the redeemed URL once the token is redeemed,
// else the minted URL.
func (t Token) MetadataURL() string {
	if t.State == TokenRedeemed {
		return t.RedeemedMetadataURL
	}
	return t.MintedMetadataURL
}

// AllowListEntry is one slot of the ordered allow-list. Removed
// wallets leave a ZeroAddress tombstone; positions are stable.
type AllowListEntry struct {
	DropID   int64
	Position int32
	Wallet   string
}

func (e AllowListEntry) IsTombstone() bool {
	return e.Wallet == ZeroAddress
}

// Reservation binds an unminted token id to a wallet.
type Reservation struct {
	DropID  int64
	TokenID int64
	Wallet  string
}

// ReservationEntry is one slot of a wallet's ordered reservation
// list. TokenID 0 is the tombstone.
type ReservationEntry struct {
	DropID   int64
	Wallet   string
	Position int32
	TokenID  int64
}

func (e ReservationEntry) IsTombstone() bool {
	return e.TokenID == 0
}

type EventType string

const (
	EventDropCreated        EventType = "DROP_CREATED"
	EventTierChanged        EventType = "TIER_CHANGED"
	EventAllowListUpdated   EventType = "ALLOWLIST_UPDATED"
	EventPricingUpdated     EventType = "PRICING_UPDATED"
	EventDiscountsUpdated   EventType = "DISCOUNTS_UPDATED"
	EventOwnerTransferred   EventType = "OWNERSHIP_TRANSFERRED"
	EventSold               EventType = "SOLD"
	EventBurned             EventType = "BURNED"
	EventRedeemStarted      EventType = "REDEEM_STARTED"
	EventProductionComplete EventType = "PRODUCTION_COMPLETE"
	EventMetadataUpdate     EventType = "METADATA_UPDATE"
	EventReserved           EventType = "RESERVED"
	EventUnreserved         EventType = "UNRESERVED"
)

// DropEvent is one entry of the per-drop event log, the service
// counterpart of the on-chain event surface.
type DropEvent struct {
	ID        int64
	DropID    int64
	Type      EventType
	Caller    string
	Payload   json.RawMessage
	CreatedAt time.Time
}
