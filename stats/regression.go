package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrInsufficientData = errors.New("at least two data points are required for linear regression")
	ErrZeroVarianceX    = errors.New("cannot perform regression: x data has no variance")
)

// Regression holds an ordinary-least-squares fit of y = Slope*x + Intercept.
type Regression struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// LinearRegression fits a simple linear model by ordinary least squares.
// RSquared is forced to zero when y has no variance, avoiding the 0/0
// indeterminate form.
func LinearRegression(x, y []float64) (Regression, error) {
	if err := checkSample(x); err != nil {
		return Regression{}, err
	}
	if err := checkSample(y); err != nil {
		return Regression{}, err
	}
	if len(x) != len(y) {
		return Regression{}, fmt.Errorf("%w, got %d and %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Regression{}, ErrInsufficientData
	}
	if stat.Variance(x, nil) == 0 {
		return Regression{}, ErrZeroVarianceX
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	fit := Regression{Slope: slope, Intercept: intercept}
	if stat.Variance(y, nil) != 0 {
		fit.RSquared = stat.RSquared(x, y, nil, intercept, slope)
	}
	return fit, nil
}
