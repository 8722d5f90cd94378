// Package formulas provides closed-form financial formulas: fixed-income
// pricing, equity valuation, and portfolio risk/return statistics.
//
// Every function is a stateless pure mapping from numeric arguments to a
// numeric result, safe for concurrent use. Functions with explicit
// preconditions return an error wrapping ErrInvalidArgument; everywhere
// else, degenerate inputs propagate as IEEE-754 infinities and NaNs or as
// panics from the underlying gonum primitives.
package formulas
