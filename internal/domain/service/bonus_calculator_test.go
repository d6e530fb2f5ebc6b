package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/givebridge/givebridge/internal/domain/service"
)

func TestBonusCalculator_Calculate(t *testing.T) {
	calc := service.NewBonusCalculator()

	cases := []struct {
		name       string
		amountUSD  string
		percentage string
		want       string
	}{
		{"five percent of a round amount", "1000", "5", "50.00"},
		{"rounds half up", "1001", "2.5", "25.03"},
		{"zero percentage yields zero", "1000", "0", "0.00"},
		{"fractional percentage", "333.33", "7.5", "25.00"},
		{"full percentage", "250", "100", "250.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Calculate(
				decimal.RequireFromString(tc.amountUSD),
				decimal.RequireFromString(tc.percentage),
			)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestIsDonationCategory(t *testing.T) {
	assert.True(t, service.IsDonationCategory("Donations"))
	assert.True(t, service.IsDonationCategory("general donation"))
	assert.True(t, service.IsDonationCategory("DONATION DRIVE"))
	assert.False(t, service.IsDonationCategory("Tuition"))
	assert.False(t, service.IsDonationCategory(""))
}
