package decimals

import (
	"math"
	"math/big"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/gaze-network/uint128"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

const (
	DefaultDivPrecision = 36

	// EtherDecimals is the number of decimals of the native payment unit (wei).
	EtherDecimals = 18
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// MustFromString convert string to decimal.Decimal. Panic if error.
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// ToDecimal converts an integer-like value to decimal.Decimal shifted
// down by the given number of decimals (safety floating point).
func ToDecimal[T constraints.Integer](ivalue any, decimals T) decimal.Decimal {
	value := new(big.Int)
	switch v := ivalue.(type) {
	case string:
		value.SetString(v, 10)
	case *big.Int:
		value = v
	case int64:
		value = big.NewInt(v)
	case uint64:
		value = new(big.Int).SetUint64(v)
	case []byte:
		value.SetBytes(v)
	case uint128.Uint128:
		value = v.Big()
	case uint256.Int:
		value = v.ToBig()
	case *uint256.Int:
		value = v.ToBig()
	}

	if int64(decimals) > math.MaxInt32 || int64(decimals) < math.MinInt32 {
		decimals = 0
	}

	return decimal.NewFromBigInt(value, 0).Shift(-int32(decimals))
}

// WeiToEther renders a wei amount as a decimal ether value.
func WeiToEther(wei *uint256.Int) decimal.Decimal {
	return ToDecimal(wei, EtherDecimals)
}
