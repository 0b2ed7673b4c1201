package finance

import "fmt"

// FactorExposure pairs a factor's expected premium with the asset's
// sensitivity (beta) to it.
type FactorExposure struct {
	Beta    float64
	Premium float64
}

// CAPMReturn is the Capital Asset Pricing Model expected return:
// riskFree + beta * marketPremium.
func CAPMReturn(riskFree, marketPremium, beta float64) float64 {
	return riskFree + beta*marketPremium
}

// FactorModelReturn is the generic linear factor model: the risk-free rate
// plus each factor premium scaled by its beta.
func FactorModelReturn(riskFree float64, factors ...FactorExposure) float64 {
	expected := riskFree
	for _, f := range factors {
		expected += f.Beta * f.Premium
	}
	return expected
}

// FamaFrench3Return is the Fama-French three-factor expected return over the
// market, size (SMB) and value (HML) factors.
func FamaFrench3Return(riskFree float64, market, smb, hml FactorExposure) float64 {
	return FactorModelReturn(riskFree, market, smb, hml)
}

// FamaFrench5Return extends the three-factor model with the profitability
// (RMW) and investment (CMA) factors.
func FamaFrench5Return(riskFree float64, market, smb, hml, rmw, cma FactorExposure) float64 {
	return FactorModelReturn(riskFree, market, smb, hml, rmw, cma)
}

// SharpeRatio is the excess return per unit of total risk.
func SharpeRatio(portfolioReturn, riskFree, stdDev float64) (float64, error) {
	if stdDev <= 0 {
		return 0, fmt.Errorf("portfolio standard deviation must be positive to calculate the Sharpe ratio")
	}
	return (portfolioReturn - riskFree) / stdDev, nil
}
