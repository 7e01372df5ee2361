package engine

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway/mocks"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/dropforge/drop-engine/pkg/entropy"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectMintReads(mockDgTx *mocks.DropMintDataGatewayWithTx, drop *entity.Drop, pricing *entity.Pricing, caller string, listed bool, minted int64) {
	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDropForUpdate(mock.Anything, drop.ID).Return(drop, nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, drop.ID).Return(pricing, nil)
	mockDgTx.EXPECT().GetAllowListFlag(mock.Anything, drop.ID, caller).Return(listed, nil)
	mockDgTx.EXPECT().GetMintCount(mock.Anything, drop.ID, caller).Return(minted, nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)
}

func TestMintBatch(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	drop := testDrop()
	expectMintReads(mockDgTx, drop, testPricing(entity.TierAnyone), testMinter, false, 0)

	mockDgTx.EXPECT().CreateTokens(mock.Anything, mock.MatchedBy(func(tokens []entity.Token) bool {
		return len(tokens) == 2 &&
			tokens[0].TokenID == 1 && tokens[0].OwnerWallet == testMinter &&
			tokens[1].TokenID == 2 && tokens[1].OwnerWallet == testMinter2 &&
			tokens[0].State == entity.TokenMinted &&
			tokens[0].MintedMetadataURL == "https://meta.example.com/1/1.json"
	})).Return(nil)
	mockDgTx.EXPECT().IncrementMintCount(mock.Anything, datagateway.IncrementMintCountParams{
		DropID: 1,
		Wallet: testMinter,
		Count:  2,
	}).Return(nil)
	mockDgTx.EXPECT().UpdateDropCounters(mock.Anything, datagateway.UpdateDropCountersParams{
		DropID:       1,
		ClaimCount:   2,
		CurrentIndex: 3,
	}).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventSold && arg.Caller == testMinter
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)

	tokens, err := e.MintBatch(ctx, MintBatchParams{
		DropID:     1,
		Caller:     testMinter,
		Recipients: []string{testMinter, testMinter2},
		Paid:       uint256.NewInt(400),
	})
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Equal(t, int64(1), tokens[0].TokenID)
	require.Equal(t, int64(2), tokens[1].TokenID)
}

func TestMintBatchNotEligible(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	// eligibility is checked before supply, limit and payment, so even
	// a mint that would fail all four reports NOT_ALLOWED first
	drop := testDrop()
	drop.ClaimCount = 10
	expectMintReads(mockDgTx, drop, testPricing(entity.TierNotForSale), testMinter, false, 0)

	_, err := e.MintBatch(ctx, MintBatchParams{
		DropID:     1,
		Caller:     testMinter,
		Recipients: []string{testMinter},
		Paid:       uint256.NewInt(1),
	})
	require.ErrorIs(t, err, errs.NotAllowedToMint)
	mockDgTx.AssertNotCalled(t, "CreateTokens")
}

func TestMintBatchNotEnoughSupply(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	drop := testDrop()
	drop.ClaimCount = 9
	drop.CurrentIndex = 10
	expectMintReads(mockDgTx, drop, testPricing(entity.TierAnyone), testMinter, false, 0)

	_, err := e.MintBatch(ctx, MintBatchParams{
		DropID:     1,
		Caller:     testMinter,
		Recipients: []string{testMinter, testMinter2},
		Paid:       uint256.NewInt(400),
	})
	require.ErrorIs(t, err, errs.NotEnoughSupply)
}

func TestMintBatchOverLimit(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	expectMintReads(mockDgTx, testDrop(), testPricing(entity.TierAnyone), testMinter, false, 2)

	_, err := e.MintBatch(ctx, MintBatchParams{
		DropID:     1,
		Caller:     testMinter,
		Recipients: []string{testMinter, testMinter2},
		Paid:       uint256.NewInt(400),
	})
	require.ErrorIs(t, err, errs.MintingTooMany)
}

func TestMintBatchWrongPrice(t *testing.T) {
	ctx := context.Background()

	testcases := []struct {
		name string
		paid *uint256.Int
	}{
		{name: "underpaid", paid: uint256.NewInt(399)},
		{name: "overpaid", paid: uint256.NewInt(401)},
		{name: "unpaid", paid: nil},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockDgTx := newTestEngine(t, nil)
			expectMintReads(mockDgTx, testDrop(), testPricing(entity.TierAnyone), testMinter, false, 0)

			_, err := e.MintBatch(ctx, MintBatchParams{
				DropID:     1,
				Caller:     testMinter,
				Recipients: []string{testMinter, testMinter2},
				Paid:       tc.paid,
			})
			require.ErrorIs(t, err, errs.WrongPrice)
		})
	}
}

func TestMintBatchLifetimePassHolder(t *testing.T) {
	ctx := context.Background()

	passPricing := func() *entity.Pricing {
		pricing := testPricing(entity.TierAllowList)
		pricing.AnnualPassAddress = testAnnualPass
		pricing.LifetimePassAddress = testLifetimePass
		return pricing
	}

	t.Run("discounted payment mints", func(t *testing.T) {
		e, mockDgTx := newTestEngine(t, nil)

		// unlisted, the lifetime pass alone grants eligibility and sets
		// the unit price to the lifetime allow-list price
		expectMintReads(mockDgTx, testDrop(), passPricing(), testMinter, false, 0)
		mockDgTx.EXPECT().GetPassBalance(mock.Anything, testAnnualPass, testMinter).Return(uint64(0), nil)
		mockDgTx.EXPECT().GetPassBalance(mock.Anything, testLifetimePass, testMinter).Return(uint64(1), nil)

		mockDgTx.EXPECT().CreateTokens(mock.Anything, mock.MatchedBy(func(tokens []entity.Token) bool {
			return len(tokens) == 2 && tokens[0].TokenID == 1 && tokens[1].TokenID == 2
		})).Return(nil)
		mockDgTx.EXPECT().IncrementMintCount(mock.Anything, datagateway.IncrementMintCountParams{
			DropID: 1,
			Wallet: testMinter,
			Count:  2,
		}).Return(nil)
		mockDgTx.EXPECT().UpdateDropCounters(mock.Anything, datagateway.UpdateDropCountersParams{
			DropID:       1,
			ClaimCount:   2,
			CurrentIndex: 3,
		}).Return(nil)
		mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
			return arg.Type == entity.EventSold
		})).Return(nil)
		mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)

		tokens, err := e.MintBatch(ctx, MintBatchParams{
			DropID:     1,
			Caller:     testMinter,
			Recipients: []string{testMinter, testMinter2},
			Paid:       uint256.NewInt(100),
		})
		require.NoError(t, err)
		require.Len(t, tokens, 2)
	})

	t.Run("undiscounted payment is rejected", func(t *testing.T) {
		e, mockDgTx := newTestEngine(t, nil)

		// paying the base allow-list price overpays a pass holder's quote
		expectMintReads(mockDgTx, testDrop(), passPricing(), testMinter, false, 0)
		mockDgTx.EXPECT().GetPassBalance(mock.Anything, testAnnualPass, testMinter).Return(uint64(0), nil)
		mockDgTx.EXPECT().GetPassBalance(mock.Anything, testLifetimePass, testMinter).Return(uint64(1), nil)

		_, err := e.MintBatch(ctx, MintBatchParams{
			DropID:     1,
			Caller:     testMinter,
			Recipients: []string{testMinter, testMinter2},
			Paid:       uint256.NewInt(200),
		})
		require.ErrorIs(t, err, errs.WrongPrice)
		mockDgTx.AssertNotCalled(t, "CreateTokens")
	})
}

func TestMintBatchZeroPriceDiscount(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	// a zero lifetime price makes the mint free for pass holders
	pricing := testPricing(entity.TierAnyone)
	pricing.LifetimePassAddress = testLifetimePass
	pricing.LifetimeGeneralPrice = uint256.NewInt(0)

	expectMintReads(mockDgTx, testDrop(), pricing, testMinter, false, 0)
	mockDgTx.EXPECT().GetPassBalance(mock.Anything, testLifetimePass, testMinter).Return(uint64(1), nil)

	mockDgTx.EXPECT().CreateTokens(mock.Anything, mock.MatchedBy(func(tokens []entity.Token) bool {
		return len(tokens) == 1 && tokens[0].TokenID == 1
	})).Return(nil)
	mockDgTx.EXPECT().IncrementMintCount(mock.Anything, datagateway.IncrementMintCountParams{
		DropID: 1,
		Wallet: testMinter,
		Count:  1,
	}).Return(nil)
	mockDgTx.EXPECT().UpdateDropCounters(mock.Anything, datagateway.UpdateDropCountersParams{
		DropID:       1,
		ClaimCount:   1,
		CurrentIndex: 2,
	}).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventSold
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)

	tokens, err := e.MintBatch(ctx, MintBatchParams{
		DropID:     1,
		Caller:     testMinter,
		Recipients: []string{testMinter},
		Paid:       uint256.NewInt(0),
	})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
}

func TestMintBatchZeroAddressRecipient(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, nil)

	_, err := e.MintBatch(ctx, MintBatchParams{
		DropID:     1,
		Caller:     testMinter,
		Recipients: []string{entity.ZeroAddress},
		Paid:       uint256.NewInt(0),
	})
	require.ErrorIs(t, err, errs.InvalidArgument)
}

func TestMetadataURLSequential(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	drop := testDrop()
	drop.DifferentEditions = 3

	require.Equal(t, "https://meta.example.com/1/1.json", e.metadataURL(drop, 1))
	require.Equal(t, "https://meta.example.com/1/2.json", e.metadataURL(drop, 2))
	require.Equal(t, "https://meta.example.com/1/3.json", e.metadataURL(drop, 3))
	require.Equal(t, "https://meta.example.com/1/1.json", e.metadataURL(drop, 4))
}

func TestMetadataURLRandom(t *testing.T) {
	e, _ := newTestEngine(t, entropy.FixedSource(5))

	drop := testDrop()
	drop.DifferentEditions = 3
	drop.RandomMint = true

	// variant = 1 + ((tokenID-1+seed) % editions)
	require.Equal(t, "https://meta.example.com/1/3.json", e.metadataURL(drop, 1))
	require.Equal(t, "https://meta.example.com/1/1.json", e.metadataURL(drop, 2))
	require.Equal(t, "https://meta.example.com/1/2.json", e.metadataURL(drop, 3))
}

func TestMetadataURLVariantInRange(t *testing.T) {
	e, _ := newTestEngine(t, entropy.NewWeakSource())

	drop := testDrop()
	drop.DifferentEditions = 4
	drop.RandomMint = true

	for tokenID := int64(1); tokenID <= 32; tokenID++ {
		url := e.metadataURL(drop, tokenID)
		require.Contains(t, []string{
			"https://meta.example.com/1/1.json",
			"https://meta.example.com/1/2.json",
			"https://meta.example.com/1/3.json",
			"https://meta.example.com/1/4.json",
		}, url)
	}
}

func TestNumberCanMint(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	drop := testDrop()
	drop.ClaimCount = 4
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(drop, nil)

	remaining, err := e.NumberCanMint(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(6), remaining)
}

func TestTokenURI(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(3)).Return(&entity.Token{
		DropID:              1,
		TokenID:             3,
		State:               entity.TokenRedeemed,
		MintedMetadataURL:   "https://meta.example.com/1/1.json",
		RedeemedMetadataURL: "https://meta.example.com/1/redeemed/3.json",
	}, nil)

	url, err := e.TokenURI(ctx, 1, 3)
	require.NoError(t, err)
	require.Equal(t, "https://meta.example.com/1/redeemed/3.json", url)
}

func TestTokenURIOutOfRange(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)

	_, err := e.TokenURI(ctx, 1, 11)
	require.ErrorIs(t, err, errs.InvalidTokenID)
	mockDgTx.AssertNotCalled(t, "GetToken")
}

func TestTokenURIUnminted(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(5)).Return(nil, errors.WithStack(errs.NotFound))

	_, err := e.TokenURI(ctx, 1, 5)
	require.ErrorIs(t, err, errs.InvalidTokenID)
}

func TestBurn(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(2)).Return(&entity.Token{
		DropID:      1,
		TokenID:     2,
		State:       entity.TokenMinted,
		OwnerWallet: testMinter,
	}, nil)
	mockDgTx.EXPECT().ClearTokenOwner(mock.Anything, int64(1), int64(2)).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventBurned
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Burn(ctx, 1, testMinter, 2)
	require.NoError(t, err)
}

func TestBurnNotTokenOwner(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(2)).Return(&entity.Token{
		DropID:      1,
		TokenID:     2,
		State:       entity.TokenMinted,
		OwnerWallet: testMinter,
	}, nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Burn(ctx, 1, testMinter2, 2)
	require.ErrorIs(t, err, errs.Unauthorized)
	mockDgTx.AssertNotCalled(t, "ClearTokenOwner")
}

func TestBurnAlreadyBurned(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(2)).Return(&entity.Token{
		DropID:      1,
		TokenID:     2,
		State:       entity.TokenMinted,
		OwnerWallet: "",
	}, nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Burn(ctx, 1, testMinter, 2)
	require.ErrorIs(t, err, errs.Unauthorized)
}
