package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givebridge/givebridge/pkg/money"
)

func TestNewCurrency(t *testing.T) {
	t.Run("accepts 3 uppercase letters", func(t *testing.T) {
		c, err := money.NewCurrency("ILS")
		require.NoError(t, err)
		assert.Equal(t, "ILS", c.Code())
	})

	t.Run("rejects lowercase", func(t *testing.T) {
		_, err := money.NewCurrency("usd")
		require.Error(t, err)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := money.NewCurrency("US")
		require.Error(t, err)
	})
}

func TestPercentOf(t *testing.T) {
	t.Run("five percent of 1000", func(t *testing.T) {
		got := money.PercentOf(decimal.NewFromInt(1000), decimal.NewFromInt(5))
		assert.Equal(t, "50.00", got.StringFixed(2))
	})

	t.Run("rounds half up", func(t *testing.T) {
		// 2.5% of 100.10 = 2.5025 -> 2.50; 2.5% of 100.30 = 2.5075 -> 2.51
		got := money.PercentOf(decimal.NewFromFloat(100.10), decimal.NewFromFloat(2.5))
		assert.Equal(t, "2.50", got.StringFixed(2))
		got = money.PercentOf(decimal.NewFromFloat(100.30), decimal.NewFromFloat(2.5))
		assert.Equal(t, "2.51", got.StringFixed(2))
	})

	t.Run("zero percentage yields 0.00", func(t *testing.T) {
		got := money.PercentOf(decimal.NewFromInt(1000), decimal.Zero)
		assert.Equal(t, "0.00", got.StringFixed(2))
	})
}

func TestWithinCentTolerance(t *testing.T) {
	a := decimal.NewFromFloat(10000.00)

	assert.True(t, money.WithinCentTolerance(a, decimal.NewFromFloat(10000.01)))
	assert.True(t, money.WithinCentTolerance(a, decimal.NewFromFloat(9999.99)))
	assert.False(t, money.WithinCentTolerance(a, decimal.NewFromFloat(9999.98)))
	assert.False(t, money.WithinCentTolerance(a, decimal.NewFromFloat(10000.02)))
}
