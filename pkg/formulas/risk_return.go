package formulas

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ReturnOnSecurity calculates the holding-period return on a security from
// its start value v0, end value v1, and cash flows received in between.
func ReturnOnSecurity(v0, v1, cashFlows float64) float64 {
	return (v1+cashFlows)/v0 - 1
}

// GeometricMeanReturn calculates the compound average per-period return.
// The period count is the sequence length: one return per realized period.
//
// Formula: ((1+r_1)·...·(1+r_N))^(1/N) - 1
//
// Returns ErrInvalidArgument for an empty sequence.
func GeometricMeanReturn(returns []float64) (float64, error) {
	if len(returns) == 0 {
		return 0, fmt.Errorf("%w: returns must not be empty", ErrInvalidArgument)
	}

	growth := 1.0
	for _, r := range returns {
		growth *= 1 + r
	}
	return math.Pow(growth, 1/float64(len(returns))) - 1, nil
}

// AnnualizedGeometricMeanReturn compounds the geometric mean return over
// periodsPerYear periods. Returns ErrInvalidArgument for an empty sequence.
func AnnualizedGeometricMeanReturn(returns []float64, periodsPerYear int) (float64, error) {
	mean, err := GeometricMeanReturn(returns)
	if err != nil {
		return 0, err
	}
	return math.Pow(1+mean, float64(periodsPerYear)) - 1, nil
}

// ArithmeticMeanReturn calculates the probability-weighted mean of a return
// sequence. A nil probabilities slice means equal weighting (1/N per
// observation). Probabilities, when given, must align one-to-one with
// returns and sum to 1; neither is validated.
func ArithmeticMeanReturn(returns, probabilities []float64) float64 {
	return stat.Mean(returns, probabilities)
}

// Volatility calculates the weighted standard deviation of a return
// sequence, scaled by sqrt(timePeriod) per the square-root-of-time rule
// (pass 1 for no scaling). A nil probabilities slice means equal
// weighting. The population definition of the standard deviation is used.
func Volatility(returns, probabilities []float64, timePeriod float64) float64 {
	return stat.PopStdDev(returns, probabilities) * math.Sqrt(timePeriod)
}
