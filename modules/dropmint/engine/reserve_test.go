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

func TestReserve(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetReservation(mock.Anything, int64(1), int64(3)).Return(nil, errors.WithStack(errs.NotFound))
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(3)).Return(nil, errors.WithStack(errs.NotFound))
	mockDgTx.EXPECT().CreateReservation(mock.Anything, entity.Reservation{
		DropID:  1,
		TokenID: 3,
		Wallet:  testMinter,
	}).Return(nil)
	mockDgTx.EXPECT().AppendReservationEntry(mock.Anything, int64(1), testMinter, int64(3)).Return(int32(1), nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventReserved
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Reserve(ctx, 1, testOwner, []string{testMinter}, []int64{3})
	require.NoError(t, err)
}

func TestReserveAlreadyReserved(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetReservation(mock.Anything, int64(1), int64(3)).Return(&entity.Reservation{
		DropID:  1,
		TokenID: 3,
		Wallet:  testMinter2,
	}, nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Reserve(ctx, 1, testOwner, []string{testMinter}, []int64{3})
	require.ErrorIs(t, err, errs.MustBeUnminted)
	mockDgTx.AssertNotCalled(t, "CreateReservation")
}

func TestReserveAlreadyMinted(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetReservation(mock.Anything, int64(1), int64(3)).Return(nil, errors.WithStack(errs.NotFound))
	mockDgTx.EXPECT().GetToken(mock.Anything, int64(1), int64(3)).Return(&entity.Token{
		DropID:      1,
		TokenID:     3,
		State:       entity.TokenMinted,
		OwnerWallet: testMinter2,
	}, nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Reserve(ctx, 1, testOwner, []string{testMinter}, []int64{3})
	require.ErrorIs(t, err, errs.MustBeUnminted)
}

func TestReserveTokenIDOutOfRange(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Reserve(ctx, 1, testOwner, []string{testMinter}, []int64{11})
	require.ErrorIs(t, err, errs.InvalidTokenID)
}

func TestReserveNotOwner(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Reserve(ctx, 1, testMinter, []string{testMinter}, []int64{3})
	require.ErrorIs(t, err, errs.Unauthorized)
}

func TestUnreserve(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetReservation(mock.Anything, int64(1), int64(3)).Return(&entity.Reservation{
		DropID:  1,
		TokenID: 3,
		Wallet:  testMinter,
	}, nil)
	mockDgTx.EXPECT().DeleteReservation(mock.Anything, int64(1), int64(3)).Return(nil)
	mockDgTx.EXPECT().TombstoneReservationEntry(mock.Anything, int64(1), testMinter, int64(3)).Return(true, nil)
	mockDgTx.EXPECT().AddEvent(mock.Anything, mock.MatchedBy(func(arg datagateway.AddEventParams) bool {
		return arg.Type == entity.EventUnreserved
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Unreserve(ctx, 1, testOwner, []int64{3})
	require.NoError(t, err)
}

func TestUnreserveNotReserved(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().BeginDropMintTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetDrop(mock.Anything, int64(1)).Return(testDrop(), nil)
	mockDgTx.EXPECT().GetReservation(mock.Anything, int64(1), int64(3)).Return(nil, errors.WithStack(errs.NotFound))
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := e.Unreserve(ctx, 1, testOwner, []int64{3})
	require.ErrorIs(t, err, errs.NotReserved)
	mockDgTx.AssertNotCalled(t, "DeleteReservation")
}

func TestIsReserved(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetReservation(mock.Anything, int64(1), int64(3)).Return(&entity.Reservation{
		DropID:  1,
		TokenID: 3,
		Wallet:  testMinter,
	}, nil)

	reserved, err := e.IsReserved(ctx, 1, 3)
	require.NoError(t, err)
	require.True(t, reserved)
}

func TestWhoReservedUnreserved(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetReservation(mock.Anything, int64(1), int64(3)).Return(nil, errors.WithStack(errs.NotFound))

	wallet, err := e.WhoReserved(ctx, 1, 3)
	require.NoError(t, err)
	require.Equal(t, entity.ZeroAddress, wallet)
}

// The raw list keeps tombstoned slots, the count does not.
func TestReservationListKeepsTombstones(t *testing.T) {
	ctx := context.Background()
	e, mockDgTx := newTestEngine(t, nil)

	mockDgTx.EXPECT().GetReservationEntries(mock.Anything, int64(1), testMinter).Return([]entity.ReservationEntry{
		{DropID: 1, Wallet: testMinter, Position: 1, TokenID: 3},
		{DropID: 1, Wallet: testMinter, Position: 2, TokenID: 0},
		{DropID: 1, Wallet: testMinter, Position: 3, TokenID: 7},
	}, nil)
	mockDgTx.EXPECT().CountActiveReservations(mock.Anything, int64(1), testMinter).Return(int64(2), nil)

	list, err := e.ReservationList(ctx, 1, testMinter)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 0, 7}, list)

	count, err := e.ReservationCount(ctx, 1, testMinter)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
