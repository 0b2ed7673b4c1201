package models

import (
	"fmt"
	"math"
)

const greeksContext = " for Greeks calculation"

// Greeks bundles the five Black-Scholes-Merton sensitivities of a single
// contract. Gamma and Vega carry no call/put distinction.
type Greeks struct {
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

// Delta is the sensitivity of the option price to the underlying price.
// Call deltas lie in (0, e^{-qT}); put deltas lie in (-e^{-qT}, 0).
func Delta(typ OptionType, s, k, t, r, sigma, q float64) (float64, error) {
	d1, _, err := d1d2(s, k, t, r, sigma, q, greeksContext)
	if err != nil {
		return 0, err
	}
	switch typ {
	case Call:
		return math.Exp(-q*t) * NormCDF(d1), nil
	case Put:
		return math.Exp(-q*t) * (NormCDF(d1) - 1), nil
	}
	return 0, fmt.Errorf("%w, got %v", ErrInvalidOptionType, typ)
}

// Gamma is the sensitivity of Delta to the underlying price, identical for
// calls and puts.
func Gamma(s, k, t, r, sigma, q float64) (float64, error) {
	d1, _, err := d1d2(s, k, t, r, sigma, q, greeksContext)
	if err != nil {
		return 0, err
	}
	return math.Exp(-q*t) * NormPDF(d1) / (s * sigma * math.Sqrt(t)), nil
}

// Vega is the sensitivity of the option price to volatility, identical for
// calls and puts. It is quoted per unit of volatility; divide by 100 for a
// one-percentage-point move.
func Vega(s, k, t, r, sigma, q float64) (float64, error) {
	d1, _, err := d1d2(s, k, t, r, sigma, q, greeksContext)
	if err != nil {
		return 0, err
	}
	return s * math.Exp(-q*t) * NormPDF(d1) * math.Sqrt(t), nil
}

// Theta is the time decay of the option price, expressed per year. Divide by
// 365 for per-day decay.
func Theta(typ OptionType, s, k, t, r, sigma, q float64) (float64, error) {
	d1, d2, err := d1d2(s, k, t, r, sigma, q, greeksContext)
	if err != nil {
		return 0, err
	}
	decay := -(s * math.Exp(-q*t) * NormPDF(d1) * sigma) / (2 * math.Sqrt(t))
	switch typ {
	case Call:
		return decay + q*s*math.Exp(-q*t)*NormCDF(d1) - r*k*math.Exp(-r*t)*NormCDF(d2), nil
	case Put:
		return decay - q*s*math.Exp(-q*t)*NormCDF(-d1) + r*k*math.Exp(-r*t)*NormCDF(-d2), nil
	}
	return 0, fmt.Errorf("%w, got %v", ErrInvalidOptionType, typ)
}

// Rho is the sensitivity of the option price to the risk-free rate, quoted
// per unit of rate.
func Rho(typ OptionType, s, k, t, r, sigma, q float64) (float64, error) {
	_, d2, err := d1d2(s, k, t, r, sigma, q, greeksContext)
	if err != nil {
		return 0, err
	}
	switch typ {
	case Call:
		return k * t * math.Exp(-r*t) * NormCDF(d2), nil
	case Put:
		return -k * t * math.Exp(-r*t) * NormCDF(-d2), nil
	}
	return 0, fmt.Errorf("%w, got %v", ErrInvalidOptionType, typ)
}

// BSMGreeks computes all five sensitivities in one call.
func BSMGreeks(typ OptionType, s, k, t, r, sigma, q float64) (Greeks, error) {
	delta, err := Delta(typ, s, k, t, r, sigma, q)
	if err != nil {
		return Greeks{}, err
	}
	gamma, err := Gamma(s, k, t, r, sigma, q)
	if err != nil {
		return Greeks{}, err
	}
	vega, err := Vega(s, k, t, r, sigma, q)
	if err != nil {
		return Greeks{}, err
	}
	theta, err := Theta(typ, s, k, t, r, sigma, q)
	if err != nil {
		return Greeks{}, err
	}
	rho, err := Rho(typ, s, k, t, r, sigma, q)
	if err != nil {
		return Greeks{}, err
	}
	return Greeks{Delta: delta, Gamma: gamma, Vega: vega, Theta: theta, Rho: rho}, nil
}
