package decimals

import (
	"math/big"
	"testing"

	"github.com/gaze-network/uint128"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	t.Run("from_string", func(t *testing.T) {
		assert.Equal(t, "1.5", ToDecimal("1500000000000000000", 18).String())
	})
	t.Run("from_big_int", func(t *testing.T) {
		v := new(big.Int).SetUint64(123456)
		assert.Equal(t, "1.23456", ToDecimal(v, 5).String())
	})
	t.Run("from_uint128", func(t *testing.T) {
		v := uint128.From64(1000)
		assert.Equal(t, "10", ToDecimal(v, 2).String())
	})
	t.Run("from_uint256", func(t *testing.T) {
		v := uint256.NewInt(42)
		assert.Equal(t, "42", ToDecimal(v, 0).String())
	})
}

func TestWeiToEther(t *testing.T) {
	wei := uint256.MustFromDecimal("800000000000000000")
	assert.Equal(t, "0.8", WeiToEther(wei).String())
}
