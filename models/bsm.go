package models

import (
	"fmt"
	"math"
)

// d1d2 computes the shared Black-Scholes-Merton intermediates. The context
// suffix lets the pricer and the Greeks engine report their own validation
// failures from one helper.
func d1d2(s, k, t, r, sigma, q float64, context string) (float64, float64, error) {
	if s <= 0 {
		return 0, 0, fmt.Errorf("current stock price (S) must be positive%s", context)
	}
	if k <= 0 {
		return 0, 0, fmt.Errorf("strike price (K) must be positive%s", context)
	}
	if sigma <= 0 {
		return 0, 0, fmt.Errorf("volatility (sigma) must be positive%s", context)
	}
	if t <= 0 {
		return 0, 0, fmt.Errorf("time to expiration (T) must be positive%s", context)
	}

	sigmaSqrtT := sigma * math.Sqrt(t)
	d1 := (math.Log(s/k) + (r-q+0.5*sigma*sigma)*t) / sigmaSqrtT
	d2 := d1 - sigmaSqrtT
	return d1, d2, nil
}

// BSMCallPrice prices a European call under the Black-Scholes-Merton model
// with a continuous dividend yield q. S, K, T and sigma must be positive.
func BSMCallPrice(s, k, t, r, sigma, q float64) (float64, error) {
	d1, d2, err := d1d2(s, k, t, r, sigma, q, "")
	if err != nil {
		return 0, err
	}
	return s*math.Exp(-q*t)*NormCDF(d1) - k*math.Exp(-r*t)*NormCDF(d2), nil
}

// BSMPutPrice prices a European put under the Black-Scholes-Merton model
// with a continuous dividend yield q.
func BSMPutPrice(s, k, t, r, sigma, q float64) (float64, error) {
	d1, d2, err := d1d2(s, k, t, r, sigma, q, "")
	if err != nil {
		return 0, err
	}
	return k*math.Exp(-r*t)*NormCDF(-d2) - s*math.Exp(-q*t)*NormCDF(-d1), nil
}

// BSMPrice dispatches to the call or put closed form on the option type.
func BSMPrice(typ OptionType, s, k, t, r, sigma, q float64) (float64, error) {
	switch typ {
	case Call:
		return BSMCallPrice(s, k, t, r, sigma, q)
	case Put:
		return BSMPutPrice(s, k, t, r, sigma, q)
	}
	return 0, fmt.Errorf("%w, got %v", ErrInvalidOptionType, typ)
}
