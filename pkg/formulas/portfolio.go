package formulas

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PortfolioReturn calculates the return of a portfolio as the weighted sum
// of its asset returns. Weights and returns must have equal length; the
// underlying dot product panics on a mismatch.
func PortfolioReturn(weights, returns []float64) float64 {
	return floats.Dot(weights, returns)
}

// CovarianceBetween calculates the sample covariance between two assets'
// return series.
func CovarianceBetween(returnsA, returnsB []float64) float64 {
	return stat.Covariance(returnsA, returnsB, nil)
}

// CorrelationBetween calculates the Pearson correlation between two assets'
// return series.
func CorrelationBetween(returnsA, returnsB []float64) float64 {
	return stat.Correlation(returnsA, returnsB, nil)
}

// CovarianceMatrix calculates the sample covariance matrix of asset
// returns. returnOfAssets has one row per asset and one column per
// observation period; all rows must have equal length.
func CovarianceMatrix(returnOfAssets [][]float64) [][]float64 {
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, observationMatrix(returnOfAssets), nil)
	return symToRows(&cov)
}

// CorrelationMatrix calculates the Pearson correlation matrix of asset
// returns, with the same input shape as CovarianceMatrix.
func CorrelationMatrix(returnOfAssets [][]float64) [][]float64 {
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, observationMatrix(returnOfAssets), nil)
	return symToRows(&corr)
}

// PortfolioRisk calculates the standard deviation of a portfolio via the
// quadratic form sqrt(w' Σ w), where Σ is the sample covariance matrix of
// the asset returns. weights must have one entry per asset row.
func PortfolioRisk(weights []float64, returnOfAssets [][]float64) float64 {
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, observationMatrix(returnOfAssets), nil)
	w := mat.NewVecDense(len(weights), weights)
	return math.Sqrt(mat.Inner(w, &cov, w))
}

// observationMatrix transposes per-asset return rows into the
// observations-in-rows layout gonum's matrix statistics expect.
func observationMatrix(returnOfAssets [][]float64) *mat.Dense {
	assets := len(returnOfAssets)
	observations := 0
	if assets > 0 {
		observations = len(returnOfAssets[0])
	}

	x := mat.NewDense(observations, assets, nil)
	for i, series := range returnOfAssets {
		for j, r := range series {
			x.Set(j, i, r)
		}
	}
	return x
}

// symToRows copies a symmetric gonum matrix into plain row slices.
func symToRows(s *mat.SymDense) [][]float64 {
	n := s.SymmetricDim()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = s.At(i, j)
		}
	}
	return rows
}
