package finance

import "fmt"

// GordonGrowth values a stock as next year's dividend growing at g forever,
// discounted at the required rate of return r (constant-growth dividend
// discount model).
func GordonGrowth(dividend, r, g float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("the required rate of return (r) must be positive")
	}
	if r <= g {
		return 0, fmt.Errorf("the required rate of return (r) must be strictly greater than the growth rate (g)")
	}
	return dividend / (r - g), nil
}
