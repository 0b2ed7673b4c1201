package models

import (
	"fmt"
	"math"
)

// FuturesPrice returns the theoretical futures price of an asset under
// continuous compounding, where q is a continuous dividend yield or a
// general cost of carry. r and q are unconstrained in sign.
func FuturesPrice(spot, r, q, t float64) (float64, error) {
	if spot <= 0 {
		return 0, fmt.Errorf("spot price must be positive")
	}
	if t <= 0 {
		return 0, fmt.Errorf("time to maturity must be positive")
	}
	return spot * math.Exp((r-q)*t), nil
}
