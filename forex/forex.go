package forex

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount  = errors.New("amount to convert cannot be negative")
	ErrInvalidSpotRate = errors.New("spot rate must be positive")
)

// ConvertCurrency converts a money amount with a direct spot rate quoted as
// units of the target currency per unit of the source currency. Amounts are
// decimal so the conversion is exact at quote precision.
func ConvertCurrency(amount, spotRate decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	if !spotRate.IsPositive() {
		return decimal.Zero, ErrInvalidSpotRate
	}
	return amount.Mul(spotRate), nil
}

// ForwardRate returns the interest-rate-parity forward exchange rate under
// discrete annual compounding: spot * (1+domestic)^T / (1+foreign)^T.
func ForwardRate(spot, domesticRate, foreignRate, years float64) (float64, error) {
	if spot <= 0 {
		return 0, fmt.Errorf("spot rate must be positive")
	}
	if years <= 0 {
		return 0, fmt.Errorf("time to maturity must be positive")
	}
	if domesticRate <= -1 || foreignRate <= -1 {
		return 0, fmt.Errorf("interest rates must be greater than -1 (-100%%)")
	}
	return spot * math.Pow(1+domesticRate, years) / math.Pow(1+foreignRate, years), nil
}
