package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnOnStock(t *testing.T) {
	// Result is a percentage, not a decimal.
	result := ReturnOnStock(100, 120, 5)
	assert.InDelta(t, 25.0, result, 1e-9)

	loss := ReturnOnStock(100, 80, 5)
	assert.InDelta(t, -15.0, loss, 1e-9)
}

func TestDividendDiscountModel(t *testing.T) {
	// Finite horizon: the DDM price equals the matching annuity price.
	price := DividendDiscountModel(5, 0.05, 10)
	assert.InDelta(t, 38.608675, price, 1e-4)
	assert.InDelta(t, AnnuityPrice(5, 0.05, 10), price, 1e-9)

	// Zero horizon discounts nothing.
	assert.Zero(t, DividendDiscountModel(5, 0.05, 0))
}

func TestGordonGrowthModel(t *testing.T) {
	price, err := GordonGrowthModel(5, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 166.666667, price, 1e-4)
}

func TestGordonGrowthModel_RateNotAboveGrowth(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		g    float64
	}{
		{name: "rate equals growth", r: 0.05, g: 0.05},
		{name: "rate below growth", r: 0.02, g: 0.05},
		{name: "both zero", r: 0, g: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GordonGrowthModel(5, tt.r, tt.g)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestPriceToEarningsRatio(t *testing.T) {
	ratio, err := PriceToEarningsRatio(100, 5)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, ratio, 1e-9)

	_, err = PriceToEarningsRatio(100, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = PriceToEarningsRatio(100, -2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEarningsYield(t *testing.T) {
	yield, err := EarningsYield(100, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, yield, 1e-9)

	_, err = EarningsYield(100, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDividendYield(t *testing.T) {
	yield, err := DividendYield(3, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.03, yield, 1e-9)

	_, err = DividendYield(3, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = DividendYield(3, -50)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNetPresentValue(t *testing.T) {
	tests := []struct {
		name      string
		cashFlows []float64
		r         float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "initial outlay with three inflows",
			cashFlows: []float64{-100, 50, 60, 70},
			r:         0.05,
			expected:  62.509448,
			tolerance: 1e-4,
		},
		{
			name:      "single undiscounted flow",
			cashFlows: []float64{100},
			r:         0.10,
			expected:  100,
			tolerance: 1e-9,
		},
		{
			name:      "zero rate sums the flows",
			cashFlows: []float64{-100, 40, 40, 40},
			r:         0,
			expected:  20,
			tolerance: 1e-9,
		},
		{
			name:      "empty sequence",
			cashFlows: nil,
			r:         0.05,
			expected:  0,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NetPresentValue(tt.cashFlows, tt.r)
			assert.InDelta(t, tt.expected, result, tt.tolerance)
		})
	}
}
