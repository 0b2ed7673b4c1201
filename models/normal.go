package models

import "gonum.org/v1/gonum/stat/distuv"

// NormCDF returns the cumulative probability of the standard normal
// distribution at x.
func NormCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormPDF returns the density of the standard normal distribution at x.
func NormPDF(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
