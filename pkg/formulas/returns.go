package formulas

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ReturnsFromPrices converts a price series to per-period returns:
// Returns[i] = (Price[i+1] - Price[i]) / Price[i]. Returns
// ErrInvalidArgument for fewer than two prices, or for a non-positive
// price anywhere a return would be taken from it.
func ReturnsFromPrices(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: need at least two prices, got %d", ErrInvalidArgument, len(prices))
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] <= 0 {
			return nil, fmt.Errorf("%w: price at index %d must be positive, got %v", ErrInvalidArgument, i-1, prices[i-1])
		}
		returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}
	return returns, nil
}

// SharpeRatio calculates the annualized Sharpe ratio of a return sequence:
// mean excess return over its standard deviation, scaled by
// sqrt(periodsPerYear). riskFreeRate is annual and is de-annualized by
// simple division. Returns ErrInvalidArgument for fewer than two returns
// or a sequence with zero dispersion.
func SharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) (float64, error) {
	if len(returns) < 2 {
		return 0, fmt.Errorf("%w: need at least two returns, got %d", ErrInvalidArgument, len(returns))
	}

	stdDev := stat.StdDev(returns, nil)
	if stdDev == 0 {
		return 0, fmt.Errorf("%w: returns have zero dispersion", ErrInvalidArgument)
	}

	periodicRiskFree := riskFreeRate / float64(periodsPerYear)
	sharpe := (stat.Mean(returns, nil) - periodicRiskFree) / stdDev
	return sharpe * math.Sqrt(float64(periodsPerYear)), nil
}

// MaxDrawdown calculates the deepest peak-to-trough decline of a value
// series as a positive fraction (0.25 = 25% below the running peak).
// Returns ErrInvalidArgument for fewer than two values.
func MaxDrawdown(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("%w: need at least two values, got %d", ErrInvalidArgument, len(values))
	}

	maxDrawdown := 0.0
	peak := values[0]
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			drawdown := (peak - v) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	return maxDrawdown, nil
}
