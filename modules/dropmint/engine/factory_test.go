package engine

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDrop(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().CreateDrop(mock.Anything, datagateway.CreateDropParams{
		Name:              "Test Drop",
		Symbol:            "TD",
		BaseDir:           "https://meta.example.com/1/",
		ArtistWallet:      testArtist,
		Owner:             testOwner,
		DropSize:          10,
		RandomMint:        false,
		DifferentEditions: 1,
	}).Return(int64(7), nil)
	mockDgTx.EXPECT().CreatePricing(mock.Anything, mock.MatchedBy(func(pricing entity.Pricing) bool {
		return pricing.DropID == 7 &&
			pricing.WhoCanMint == entity.TierNotForSale &&
			pricing.AllowListPrice.IsZero() &&
			pricing.GeneralPrice.IsZero()
	})).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.DropID == 7 && arg.Type == entity.EventDropCreated && arg.Caller == testOwner
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	dropID, err := e.CreateDrop(ctx, CreateDropParams{
		Caller:            testOwner,
		Name:              "Test Drop",
		Symbol:            "TD",
		BaseDir:           "https://meta.example.com/1/",
		ArtistWallet:      testArtist,
		DropSize:          10,
		DifferentEditions: 1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), dropID)
}

func TestCreateDropDefaults(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().CreateDrop(mock.Anything, mock.MatchedBy(func(arg datagateway.CreateDropParams) bool {
		return arg.DropSize == entity.UnboundedDropSize && arg.DifferentEditions == 1
	})).Return(int64(1), nil)
	mockDgTx.EXPECT().CreatePricing(mock.Anything, mock.Anything).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.Anything).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	// dropSize 0 means unbounded, differentEditions 0 defaults to 1
	_, err := e.CreateDrop(ctx, CreateDropParams{
		Caller:  testOwner,
		Name:    "Open Edition",
		Symbol:  "OE",
		BaseDir: "https://meta.example.com/open/",
	})
	require.NoError(t, err)
}

func TestCreateDropValidation(t *testing.T) {
	ctx := context.Background()

	testcases := []struct {
		name string
		arg  CreateDropParams
	}{
		{
			name: "missing caller",
			arg:  CreateDropParams{Name: "D", Symbol: "D", BaseDir: "https://x/"},
		},
		{
			name: "missing name",
			arg:  CreateDropParams{Caller: testOwner, Symbol: "D", BaseDir: "https://x/"},
		},
		{
			name: "missing baseDir",
			arg:  CreateDropParams{Caller: testOwner, Name: "D", Symbol: "D"},
		},
		{
			name: "negative dropSize",
			arg:  CreateDropParams{Caller: testOwner, Name: "D", Symbol: "D", BaseDir: "https://x/", DropSize: -1},
		},
		{
			name: "negative differentEditions",
			arg:  CreateDropParams{Caller: testOwner, Name: "D", Symbol: "D", BaseDir: "https://x/", DifferentEditions: -2},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newTestEngine(t, nil)
			_, err := e.CreateDrop(ctx, tc.arg)
			require.ErrorIs(t, err, errs.InvalidArgument)
		})
	}
}

func TestTransferOwnership(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().SetDropOwner(mock.Anything, int64(1), testMinter).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventOwnerTransferred
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.TransferOwnership(ctx, 1, testOwner, testMinter)
	require.NoError(t, err)
}

func TestTransferOwnershipNotOwner(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.TransferOwnership(ctx, 1, testMinter, testMinter2)
	require.ErrorIs(t, err, errs.Unauthorized)
	mockDgTx.AssertNotCalled(t, "SetDropOwner")
}

func TestGetDropAtIDNotFound(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(99)).Return(nil, errors.WithStack(errs.NotFound))

	_, err := e.GetDropAtID(ctx, 99)
	require.ErrorIs(t, err, errs.NotFound)
}
