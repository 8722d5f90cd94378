package formulas

import "math"

// EffectiveAnnualRate calculates the effective annual rate (EAR) from a
// periodic rate r compounded n times per year.
//
// Formula: EAR = (1+r)^n - 1
func EffectiveAnnualRate(r float64, n int) float64 {
	return math.Pow(1+r, float64(n)) - 1
}

// AnnuityCompoundFactor calculates the future value of an ordinary annuity
// per unit payment over n periods. Undefined at r = 0 (yields NaN).
//
// Formula: ((1+r)^n - 1) / r
func AnnuityCompoundFactor(r float64, n int) float64 {
	return (math.Pow(1+r, float64(n)) - 1) / r
}

// AnnuityDiscountFactor calculates the present value of an ordinary annuity
// per unit payment over n periods. Undefined at r = 0 (yields NaN).
//
// Formula: (1 - (1+r)^-n) / r
func AnnuityDiscountFactor(r float64, n int) float64 {
	return (1 - math.Pow(1+r, -float64(n))) / r
}

// BondPrice calculates the price of a coupon bond as the discounted coupon
// stream plus the discounted principal. A bond whose coupon equals
// r*principal prices at par.
func BondPrice(coupon, principal, r float64, n int) float64 {
	return coupon*AnnuityDiscountFactor(r, n) + principal/math.Pow(1+r, float64(n))
}

// AnnuityPrice calculates the present value of an ordinary annuity paying a
// fixed amount per period for n periods.
func AnnuityPrice(payment, r float64, n int) float64 {
	return payment * AnnuityDiscountFactor(r, n)
}

// PerpetuityPrice calculates the price of a growing perpetuity. Pass g = 0
// for a level perpetuity. Undefined at r = g (yields ±Inf).
//
// Formula: P = cashFlow / (r - g)
func PerpetuityPrice(cashFlow, r, g float64) float64 {
	return cashFlow / (r - g)
}

// TreasuryBillPrice calculates the price of a treasury bill from its
// discount yield d and days to maturity, on the 360-day discount
// convention.
func TreasuryBillPrice(principal, d float64, days int) float64 {
	return principal * (1 - d*float64(days)/360)
}

// YieldForTreasuryBill calculates the periodic yield implied by a treasury
// bill's price.
func YieldForTreasuryBill(principal, price float64) float64 {
	return principal/price - 1
}

// APRForTreasuryBills annualizes a treasury bill's periodic yield by simple
// scaling over a 365-day year. Note the asymmetry with TreasuryBillPrice,
// which discounts on a 360-day base; each convention matches how its quote
// is stated in the market.
func APRForTreasuryBills(r float64, days int) float64 {
	return r * 365 / float64(days)
}
