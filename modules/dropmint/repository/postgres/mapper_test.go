package postgres

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestUint256FromNumeric(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		numeric := pgtype.Numeric{}
		numeric.ScanInt64(pgtype.Int8{
			Int64: 1000,
			Valid: true,
		})

		result, err := uint256FromNumeric(numeric)
		assert.NoError(t, err)
		assert.Equal(t, uint256.NewInt(1000), result)
	})
	t.Run("nil", func(t *testing.T) {
		numeric := pgtype.Numeric{}
		numeric.ScanInt64(pgtype.Int8{
			Valid: false,
		})

		result, err := uint256FromNumeric(numeric)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestNumericFromUint256(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		expected := pgtype.Numeric{}
		expected.ScanInt64(pgtype.Int8{
			Int64: 1,
			Valid: true,
		})

		result, err := numericFromUint256(uint256.NewInt(1))
		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	})
	t.Run("nil", func(t *testing.T) {
		result, err := numericFromUint256(nil)
		assert.NoError(t, err)
		assert.Equal(t, pgtype.Numeric{}, result)
	})
	t.Run("round trip wei amount", func(t *testing.T) {
		// 1.5e18 wei does not fit in int64
		price, err := uint256.FromDecimal("1500000000000000000")
		assert.NoError(t, err)

		numeric, err := numericFromUint256(price)
		assert.NoError(t, err)
		result, err := uint256FromNumeric(numeric)
		assert.NoError(t, err)
		assert.Equal(t, price, result)
	})
}
