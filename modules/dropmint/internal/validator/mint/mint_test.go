package mintvalidator

import (
	"testing"

	"github.com/dropforge/drop-engine/common/errs"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidChain(t *testing.T) {
	v := New()
	v.Eligible(true)
	v.EnoughSupply(10, 2)
	v.WithinMintLimit(5, 1, 2)
	v.ExactPayment(uint256.NewInt(100), 2, uint256.NewInt(200))
	require.NoError(t, v.Err())
}

func TestFirstFailureWins(t *testing.T) {
	// every later check would also fail, the first failing check
	// decides the error
	v := New()
	v.Eligible(false)
	v.EnoughSupply(0, 2)
	v.WithinMintLimit(0, 0, 2)
	v.ExactPayment(uint256.NewInt(100), 2, uint256.NewInt(1))
	require.ErrorIs(t, v.Err(), errs.NotAllowedToMint)
	assert.Equal(t, NOT_ALLOWED_TO_MINT, v.Reason)
}

func TestEnoughSupply(t *testing.T) {
	v := New()
	v.Eligible(true)
	v.EnoughSupply(1, 2)
	require.ErrorIs(t, v.Err(), errs.NotEnoughSupply)
}

func TestWithinMintLimit(t *testing.T) {
	t.Run("at limit", func(t *testing.T) {
		v := New()
		v.WithinMintLimit(3, 1, 2)
		require.NoError(t, v.Err())
	})
	t.Run("over limit", func(t *testing.T) {
		v := New()
		v.WithinMintLimit(3, 2, 2)
		require.ErrorIs(t, v.Err(), errs.MintingTooMany)
	})
	t.Run("zero limit blocks", func(t *testing.T) {
		v := New()
		v.WithinMintLimit(0, 0, 1)
		require.ErrorIs(t, v.Err(), errs.MintingTooMany)
	})
}

func TestExactPayment(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		v := New()
		v.ExactPayment(uint256.NewInt(100), 3, uint256.NewInt(300))
		require.NoError(t, v.Err())
	})
	t.Run("underpaid", func(t *testing.T) {
		v := New()
		v.ExactPayment(uint256.NewInt(100), 3, uint256.NewInt(299))
		require.ErrorIs(t, v.Err(), errs.WrongPrice)
	})
	t.Run("overpaid", func(t *testing.T) {
		v := New()
		v.ExactPayment(uint256.NewInt(100), 3, uint256.NewInt(301))
		require.ErrorIs(t, v.Err(), errs.WrongPrice)
	})
	t.Run("nil paid means zero", func(t *testing.T) {
		v := New()
		v.ExactPayment(uint256.NewInt(0), 3, nil)
		require.NoError(t, v.Err())
	})
}
