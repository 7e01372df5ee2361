package engine

import (
	"context"
	"testing"

	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuotePriceNotForSale(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierNotForSale), nil)

	price, err := e.QuotePrice(ctx, 1, testMinter)
	require.NoError(t, err)
	require.True(t, price.IsZero())
}

func TestQuotePricePrecedence(t *testing.T) {
	ctx := context.Background()

	testcases := []struct {
		name            string
		annualBalance   uint64
		lifetimeBalance uint64
		expected        uint64
	}{
		{
			name:     "no pass pays base",
			expected: 200,
		},
		{
			name:          "annual pass",
			annualBalance: 1,
			expected:      160,
		},
		{
			name:            "lifetime wins over annual",
			annualBalance:   1,
			lifetimeBalance: 1,
			expected:        120,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockDgTx := newTestEngine(t, nil)

			pricing := testPricing(entity.TierAnyone)
			pricing.AnnualPassAddress = testAnnualPass
			pricing.LifetimePassAddress = testLifetimePass
			mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(pricing, nil)
			mockDgTx.EXPECT().GetPassBalance(mock.Anything, testLifetimePass, testMinter).Return(tc.lifetimeBalance, nil)
			if tc.lifetimeBalance == 0 {
				mockDgTx.EXPECT().GetPassBalance(mock.Anything, testAnnualPass, testMinter).Return(tc.annualBalance, nil)
			}

			price, err := e.QuotePrice(ctx, 1, testMinter)
			require.NoError(t, err)
			require.Equal(t, uint256.NewInt(tc.expected), price)
		})
	}
}

func TestQuotePriceDisabledPasses(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	// zero pass addresses never hit the pass source
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierAllowList), nil)

	price, err := e.QuotePrice(ctx, 1, testMinter)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(100), price)
	mockDgTx.AssertNotCalled(t, "GetPassBalance")
}

func TestSetAccessTier(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierNotForSale), nil)
	mockDgTx.EXPECT().UpdatePricing(mock.Anything, mock.MatchedBy(func(pricing entity.Pricing) bool {
		return pricing.WhoCanMint == entity.TierAnyone
	})).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventTierChanged
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.SetAccessTier(ctx, 1, testOwner, entity.TierAnyone)
	require.NoError(t, err)
}

func TestSetAccessTierInvalid(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, nil)

	err := e.SetAccessTier(ctx, 1, testOwner, entity.AccessTier(9))
	require.ErrorIs(t, err, errs.InvalidArgument)
}

func TestSetAllowListPriceForcesTier(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierNotForSale), nil)
	mockDgTx.EXPECT().UpdatePricing(mock.Anything, mock.MatchedBy(func(pricing entity.Pricing) bool {
		return pricing.WhoCanMint == entity.TierAllowList && pricing.AllowListPrice.Eq(uint256.NewInt(42))
	})).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventPricingUpdated
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.SetAllowListPrice(ctx, 1, testOwner, uint256.NewInt(42))
	require.NoError(t, err)
}

func TestSetGeneralPriceForcesTier(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierAllowList), nil)
	mockDgTx.EXPECT().UpdatePricing(mock.Anything, mock.MatchedBy(func(pricing entity.Pricing) bool {
		return pricing.WhoCanMint == entity.TierAnyone && pricing.GeneralPrice.Eq(uint256.NewInt(9))
	})).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.Anything).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.SetGeneralPrice(ctx, 1, testOwner, uint256.NewInt(9))
	require.NoError(t, err)
}

func TestSetBasePricesKeepsTier(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierAllowList), nil)
	mockDgTx.EXPECT().UpdatePricing(mock.Anything, mock.MatchedBy(func(pricing entity.Pricing) bool {
		return pricing.WhoCanMint == entity.TierAllowList &&
			pricing.AllowListPrice.Eq(uint256.NewInt(1)) &&
			pricing.GeneralPrice.Eq(uint256.NewInt(2))
	})).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.Anything).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.SetBasePrices(ctx, 1, testOwner, uint256.NewInt(1), uint256.NewInt(2))
	require.NoError(t, err)
}

func TestSetFullPricingInvalidBPS(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, nil)

	err := e.SetFullPricing(ctx, 1, testOwner, SetFullPricingParams{RoyaltyBPS: 10001})
	require.ErrorIs(t, err, errs.InvalidArgument)

	err = e.SetFullPricing(ctx, 1, testOwner, SetFullPricingParams{SplitBPS: -1})
	require.ErrorIs(t, err, errs.InvalidArgument)

	err = e.SetFullPricing(ctx, 1, testOwner, SetFullPricingParams{AllowListMintLimit: -1})
	require.ErrorIs(t, err, errs.InvalidArgument)
}

func TestSetDiscountsEmitsDiscountEvent(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierAnyone), nil)
	mockDgTx.EXPECT().UpdatePricing(mock.Anything, mock.MatchedBy(func(pricing entity.Pricing) bool {
		return pricing.AnnualPassAddress == testAnnualPass &&
			pricing.LifetimePassAddress == entity.ZeroAddress
	})).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventDiscountsUpdated
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.SetDiscounts(ctx, 1, testOwner, SetDiscountsParams{
		AnnualPassAddress:  testAnnualPass,
		AnnualGeneralPrice: uint256.NewInt(1),
	})
	require.NoError(t, err)
}

func TestUpdatePricingNotOwner(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.SetGeneralPrice(ctx, 1, testMinter, uint256.NewInt(1))
	require.ErrorIs(t, err, errs.Unauthorized)
	mockDgTx.AssertNotCalled(t, "UpdatePricing")
}

func TestIsEligible(t *testing.T) {
	ctx := context.Background()

	testcases := []struct {
		name     string
		tier     entity.AccessTier
		caller   string
		listed   bool
		expected bool
	}{
		{name: "anyone tier allows stranger", tier: entity.TierAnyone, caller: testMinter, expected: true},
		{name: "not for sale allows owner", tier: entity.TierNotForSale, caller: testOwner, expected: true},
		{name: "not for sale blocks stranger", tier: entity.TierNotForSale, caller: testMinter, expected: false},
		{name: "allow list member", tier: entity.TierAllowList, caller: testMinter, listed: true, expected: true},
		{name: "allow list stranger", tier: entity.TierAllowList, caller: testMinter, expected: false},
		{name: "allow list owner bypass", tier: entity.TierAllowList, caller: testOwner, expected: true},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockDgTx := newTestEngine(t, nil)

			mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
			mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(tc.tier), nil)
			mockDgTx.EXPECT().GetAllowListFlag(mock.Anything, int64(1), tc.caller).Return(tc.listed, nil)

			eligible, err := e.IsEligible(ctx, 1, tc.caller)
			require.NoError(t, err)
			require.Equal(t, tc.expected, eligible)
		})
	}
}

func TestIsEligiblePassHolder(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	pricing := testPricing(entity.TierAllowList)
	pricing.AnnualPassAddress = testAnnualPass
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(pricing, nil)
	mockDgTx.EXPECT().GetAllowListFlag(mock.Anything, int64(1), testMinter).Return(false, nil)
	mockDgTx.EXPECT().GetPassBalance(mock.Anything, testAnnualPass, testMinter).Return(uint64(2), nil)

	eligible, err := e.IsEligible(ctx, 1, testMinter)
	require.NoError(t, err)
	require.True(t, eligible)
}

// The owner bypass of eligibility does not extend to limits. Under an
// active tier the owner is limited like everyone else; only while
// NOT_FOR_SALE does the owner get the remaining supply.
func TestCurrentMintLimit(t *testing.T) {
	ctx := context.Background()

	testcases := []struct {
		name     string
		tier     entity.AccessTier
		caller   string
		expected int64
	}{
		{name: "not for sale owner gets remaining supply", tier: entity.TierNotForSale, caller: testOwner, expected: 10},
		{name: "not for sale stranger gets zero", tier: entity.TierNotForSale, caller: testMinter, expected: 0},
		{name: "allow list limit applies to owner", tier: entity.TierAllowList, caller: testOwner, expected: 5},
		{name: "general limit applies to owner", tier: entity.TierAnyone, caller: testOwner, expected: 3},
		{name: "general limit applies to stranger", tier: entity.TierAnyone, caller: testMinter, expected: 3},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockDgTx := newTestEngine(t, nil)

			mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
			mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(tc.tier), nil)

			limit, err := e.CurrentMintLimit(ctx, 1, tc.caller)
			require.NoError(t, err)
			require.Equal(t, tc.expected, limit)
		})
	}
}

func TestRemainingMintAllowance(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierAnyone), nil)
	mockDgTx.EXPECT().GetMintCount(mock.Anything, int64(1), testMinter).Return(int64(2), nil)

	allowance, err := e.RemainingMintAllowance(ctx, 1, testMinter)
	require.NoError(t, err)
	require.Equal(t, int64(1), allowance)
}

func TestRemainingMintAllowanceIneligible(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierAllowList), nil)
	mockDgTx.EXPECT().GetAllowListFlag(mock.Anything, int64(1), testMinter).Return(false, nil)

	allowance, err := e.RemainingMintAllowance(ctx, 1, testMinter)
	require.NoError(t, err)
	require.Equal(t, int64(0), allowance)
	mockDgTx.AssertNotCalled(t, "GetMintCount")
}

func TestSetAllowListMembership(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	pricing := testPricing(entity.TierAllowList)
	pricing.AllowListCount = 1
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(pricing, nil)

	// testMinter joins the list, testMinter2 leaves it
	mockDgTx.EXPECT().GetAllowListFlag(mock.Anything, int64(1), testMinter).Return(false, nil)
	mockDgTx.EXPECT().SetAllowListFlag(mock.Anything, int64(1), testMinter, true).Return(nil)
	mockDgTx.EXPECT().AppendAllowListEntry(mock.Anything, int64(1), testMinter).Return(int32(1), nil)

	mockDgTx.EXPECT().GetAllowListFlag(mock.Anything, int64(1), testMinter2).Return(true, nil)
	mockDgTx.EXPECT().SetAllowListFlag(mock.Anything, int64(1), testMinter2, false).Return(nil)
	mockDgTx.EXPECT().TombstoneAllowListEntry(mock.Anything, int64(1), testMinter2).Return(true, nil)

	mockDgTx.EXPECT().UpdatePricing(mock.Anything, mock.MatchedBy(func(pricing entity.Pricing) bool {
		return pricing.AllowListCount == 1
	})).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventAllowListUpdated
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.SetAllowListMembership(ctx, 1, testOwner, []string{testMinter, testMinter2}, []bool{true, false})
	require.NoError(t, err)
}

func TestSetAllowListMembershipNoop(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(testPricing(entity.TierAllowList), nil)

	// flag already set, the ordered list must not change
	mockDgTx.EXPECT().GetAllowListFlag(mock.Anything, int64(1), testMinter).Return(true, nil)
	mockDgTx.EXPECT().SetAllowListFlag(mock.Anything, int64(1), testMinter, true).Return(nil)

	mockDgTx.EXPECT().UpdatePricing(mock.Anything, mock.MatchedBy(func(pricing entity.Pricing) bool {
		return pricing.AllowListCount == 0
	})).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.Anything).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.SetAllowListMembership(ctx, 1, testOwner, []string{testMinter}, []bool{true})
	require.NoError(t, err)
	mockDgTx.AssertNotCalled(t, "AppendAllowListEntry")
	mockDgTx.AssertNotCalled(t, "TombstoneAllowListEntry")
}

func TestSetAllowListMembershipLengthMismatch(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, nil)

	err := e.SetAllowListMembership(ctx, 1, testOwner, []string{testMinter}, []bool{true, false})
	require.ErrorIs(t, err, errs.LengthMismatch)
}

func TestRoyaltyInfo(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	pricing := testPricing(entity.TierAnyone)
	pricing.RoyaltyBPS = 500
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(pricing, nil)

	receiver, amount, err := e.RoyaltyInfo(ctx, 1, 1, uint256.NewInt(10000))
	require.NoError(t, err)
	require.Equal(t, testOwner, receiver)
	require.Equal(t, uint256.NewInt(500), amount)
}

func TestRoyaltyInfoOverflow(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	pricing := testPricing(entity.TierAnyone)
	pricing.RoyaltyBPS = 500
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetPricing(mock.Anything, int64(1)).Return(pricing, nil)

	salePrice := new(uint256.Int).SetAllOne()
	_, _, err := e.RoyaltyInfo(ctx, 1, 1, salePrice)
	require.ErrorIs(t, err, errs.OverflowUint256)
}

func TestSetPassHolding(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().SetPassBalance(mock.Anything, testLifetimePass, testMinter, uint64(2)).Return(nil)

	err := e.SetPassHolding(ctx, testLifetimePass, testMinter, 2)
	require.NoError(t, err)
}

func TestSetPassHoldingZeroAddress(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	err := e.SetPassHolding(ctx, entity.ZeroAddress, testMinter, 2)
	require.ErrorIs(t, err, errs.InvalidArgument)
	mockDgTx.AssertNotCalled(t, "SetPassBalance")
}
