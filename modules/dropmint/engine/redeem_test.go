package engine

import (
	"context"
	"testing"

	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartRedeem(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(2)).Return(&entity.Token{
		DropID:      1,
		TokenID:     2,
		State:       entity.TokenMinted,
		OwnerWallet: testMinter,
	}, nil)
	mockDgTx.EXPECT().UpdateTokenState(mock.Anything, datagateway.UpdateTokenStateParams{
		DropID:  1,
		TokenID: 2,
		State:   entity.TokenRedeemStarted,
	}).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventRedeemStarted
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.StartRedeem(ctx, 1, testOwner, 2)
	require.NoError(t, err)
}

func TestStartRedeemWrongState(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(2)).Return(&entity.Token{
		DropID:  1,
		TokenID: 2,
		State:   entity.TokenRedeemStarted,
	}, nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.StartRedeem(ctx, 1, testOwner, 2)
	require.ErrorIs(t, err, errs.WrongState)
	mockDgTx.AssertNotCalled(t, "UpdateTokenState")
}

func TestStartRedeemNotOwner(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	// redemption is owner-driven, even the token holder can't start it
	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.StartRedeem(ctx, 1, testMinter, 2)
	require.ErrorIs(t, err, errs.Unauthorized)
}

func TestCompleteProduction(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(2)).Return(&entity.Token{
		DropID:  1,
		TokenID: 2,
		State:   entity.TokenRedeemStarted,
	}, nil)
	mockDgTx.EXPECT().UpdateTokenState(mock.Anything, datagateway.UpdateTokenStateParams{
		DropID:              1,
		TokenID:             2,
		State:               entity.TokenRedeemed,
		RedeemedMetadataURL: "https://meta.example.com/1/redeemed/2.json",
	}).Return(nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventProductionComplete
	})).Return(nil).Once()
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventMetadataUpdate
	})).Return(nil).Once()
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.CompleteProduction(ctx, 1, testOwner, 2, "https://meta.example.com/1/redeemed/2.json")
	require.NoError(t, err)
}

func TestCompleteProductionRequiresURL(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, nil)

	err := e.CompleteProduction(ctx, 1, testOwner, 2, "")
	require.ErrorIs(t, err, errs.InvalidArgument)
}

func TestCompleteProductionFromMinted(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(2)).Return(&entity.Token{
		DropID:  1,
		TokenID: 2,
		State:   entity.TokenMinted,
	}, nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.CompleteProduction(ctx, 1, testOwner, 2, "https://meta.example.com/1/redeemed/2.json")
	require.ErrorIs(t, err, errs.WrongState)
}
