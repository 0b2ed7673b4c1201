package models

import (
	"fmt"
	"math"
)

// BinomialPrice prices a call or put on a Cox-Ross-Rubinstein lattice with
// the given number of time steps. European exercise discounts the expected
// node value; American exercise takes the better of holding and immediate
// exercise at every node. The backward induction reuses a single value
// buffer, shrinking it one slot per step.
//
// The price converges to the closed-form Black-Scholes-Merton value as the
// step count grows.
func BinomialPrice(typ OptionType, style ExerciseStyle, s, k, t, r, sigma, q float64, steps int) (float64, error) {
	if s <= 0 {
		return 0, fmt.Errorf("current stock price (S) must be positive")
	}
	if k <= 0 {
		return 0, fmt.Errorf("strike price (K) must be positive")
	}
	if t <= 0 {
		return 0, fmt.Errorf("time to expiration (T) must be positive")
	}
	if sigma <= 0 {
		return 0, fmt.Errorf("volatility (sigma) must be positive")
	}
	if steps <= 0 {
		return 0, fmt.Errorf("number of steps must be a positive integer, got %d", steps)
	}
	if typ != Call && typ != Put {
		return 0, fmt.Errorf("%w, got %v", ErrInvalidOptionType, typ)
	}
	if style != European && style != American {
		return 0, fmt.Errorf("%w, got %v", ErrInvalidExerciseStyle, style)
	}

	dt := t / float64(steps)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp((r-q)*dt) - d) / (u - d)
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("risk-neutral probability %.6f is outside (0, 1); the lattice is not arbitrage-free for these parameters", p)
	}
	disc := math.Exp(-r * dt)

	// Node j at step i has seen j down moves, so its underlying price is
	// S * u^(i-j) * d^j.
	values := make([]float64, steps+1)
	for j := 0; j <= steps; j++ {
		price := s * math.Pow(u, float64(steps-j)) * math.Pow(d, float64(j))
		values[j] = intrinsicValue(typ, price, k)
	}

	for i := steps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			hold := disc * (p*values[j] + (1-p)*values[j+1])
			if style == American {
				price := s * math.Pow(u, float64(i-j)) * math.Pow(d, float64(j))
				hold = math.Max(hold, intrinsicValue(typ, price, k))
			}
			values[j] = hold
		}
		values = values[:i+1]
	}

	return values[0], nil
}

func intrinsicValue(typ OptionType, price, strike float64) float64 {
	if typ == Call {
		return math.Max(price-strike, 0)
	}
	return math.Max(strike-price, 0)
}
