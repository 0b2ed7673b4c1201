package finance

import "fmt"

// Perpetuity returns the present value of a constant payment stream
// discounted at rate forever. The payment may be negative for an outflow.
func Perpetuity(payment, rate float64) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("the discount rate for a perpetuity must be greater than 0")
	}
	return payment / rate, nil
}

// GrowingPerpetuity returns the present value of a payment stream that grows
// at a constant rate forever, given the payment expected at the end of the
// first period. The discount rate must strictly exceed the growth rate.
func GrowingPerpetuity(firstPayment, rate, growth float64) (float64, error) {
	if rate <= growth {
		return 0, fmt.Errorf("the discount rate must be strictly greater than the growth rate for a growing perpetuity")
	}
	return firstPayment / (rate - growth), nil
}
