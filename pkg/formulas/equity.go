package formulas

import (
	"fmt"
	"math"
)

// ReturnOnStock calculates the total holding-period return on a stock,
// capital gains plus dividend, relative to the initial price.
//
// Unlike the other return functions in this package, the result is a
// percentage (25.0 = 25%), not a decimal.
func ReturnOnStock(initialPrice, currentPrice, dividend float64) float64 {
	return (currentPrice - initialPrice + dividend) / initialPrice * 100
}

// DividendDiscountModel calculates the present value of a finite stream of
// constant dividends over t periods, with no terminal value.
//
// Formula: P = Σ_{i=1..t} dividend / (1+r)^i
func DividendDiscountModel(dividend, r float64, t int) float64 {
	price := 0.0
	for i := 1; i <= t; i++ {
		price += dividend / math.Pow(1+r, float64(i))
	}
	return price
}

// GordonGrowthModel calculates the value of a stock as a perpetuity of
// dividends growing at rate g, discounted at rate r.
//
// Formula: P = dividend / (r - g)
//
// Returns ErrInvalidArgument when r <= g, where the model is undefined.
func GordonGrowthModel(dividend, r, g float64) (float64, error) {
	if r <= g {
		return 0, fmt.Errorf("%w: discount rate %v must exceed growth rate %v", ErrInvalidArgument, r, g)
	}
	return dividend / (r - g), nil
}

// PriceToEarningsRatio calculates price per unit of earnings. Returns
// ErrInvalidArgument when earnings per share is not positive.
func PriceToEarningsRatio(price, earningsPerShare float64) (float64, error) {
	if earningsPerShare <= 0 {
		return 0, fmt.Errorf("%w: earnings per share must be positive, got %v", ErrInvalidArgument, earningsPerShare)
	}
	return price / earningsPerShare, nil
}

// EarningsYield calculates earnings per unit of price, the inverse of the
// P/E ratio. Returns ErrInvalidArgument when earnings per share is not
// positive.
func EarningsYield(price, earningsPerShare float64) (float64, error) {
	if earningsPerShare <= 0 {
		return 0, fmt.Errorf("%w: earnings per share must be positive, got %v", ErrInvalidArgument, earningsPerShare)
	}
	return earningsPerShare / price, nil
}

// DividendYield calculates the annual dividend as a fraction of price.
// Returns ErrInvalidArgument when price is not positive.
func DividendYield(dividend, price float64) (float64, error) {
	if price <= 0 {
		return 0, fmt.Errorf("%w: price must be positive, got %v", ErrInvalidArgument, price)
	}
	return dividend / price, nil
}

// NetPresentValue calculates the NPV of a cash-flow sequence at discount
// rate r. The index is the time offset: cashFlows[0] is today's flow and
// is not discounted, so an initial outlay goes in as a negative entry at
// index 0.
//
// Formula: NPV = Σ_{t=0..len-1} cashFlows[t] / (1+r)^t
func NetPresentValue(cashFlows []float64, r float64) float64 {
	npv := 0.0
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+r, float64(t))
	}
	return npv
}
