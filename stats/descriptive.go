package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmptyInput     = errors.New("input data cannot be empty")
	ErrNonFiniteInput = errors.New("input data contains non-finite values")
	ErrLengthMismatch = errors.New("the two samples must have the same length")
)

// Descriptive holds the summary statistics of one sample. StdDev and
// Variance are sample statistics (N-1 denominator) and are NaN for a
// single-element sample.
type Descriptive struct {
	Mean     float64
	Median   float64
	Mode     float64
	StdDev   float64
	Variance float64
}

// PairedDescriptive extends Descriptive to two equal-length samples.
// Covariance and Correlation are sample statistics and are NaN when fewer
// than two observations exist.
type PairedDescriptive struct {
	Sample1     Descriptive
	Sample2     Descriptive
	Covariance  float64
	Correlation float64
}

// Describe summarizes a single sample. The mode is the most frequent value;
// ties resolve to the smallest tied value, so an all-distinct sample reports
// its minimum.
func Describe(data []float64) (Descriptive, error) {
	if err := checkSample(data); err != nil {
		return Descriptive{}, err
	}
	return describe(data), nil
}

// DescribePaired summarizes two equal-length samples and their sample
// covariance and Pearson correlation.
func DescribePaired(x, y []float64) (PairedDescriptive, error) {
	if err := checkSample(x); err != nil {
		return PairedDescriptive{}, err
	}
	if err := checkSample(y); err != nil {
		return PairedDescriptive{}, err
	}
	if len(x) != len(y) {
		return PairedDescriptive{}, fmt.Errorf("%w, got %d and %d", ErrLengthMismatch, len(x), len(y))
	}

	out := PairedDescriptive{
		Sample1:     describe(x),
		Sample2:     describe(y),
		Covariance:  math.NaN(),
		Correlation: math.NaN(),
	}
	if len(x) >= 2 {
		out.Covariance = stat.Covariance(x, y, nil)
		out.Correlation = stat.Correlation(x, y, nil)
	}
	return out, nil
}

func describe(data []float64) Descriptive {
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	d := Descriptive{
		Mean:     stat.Mean(data, nil),
		Median:   median(sorted),
		Mode:     mode(sorted),
		StdDev:   math.NaN(),
		Variance: math.NaN(),
	}
	if len(data) > 1 {
		d.Variance = stat.Variance(data, nil)
		d.StdDev = math.Sqrt(d.Variance)
	}
	return d
}

// mode returns the most frequent value, keeping the smallest when frequencies
// tie. Equal values are adjacent in the sorted input, so a run only replaces
// the current mode when it is strictly longer.
func mode(sorted []float64) float64 {
	best := sorted[0]
	bestRun := 1
	run := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > bestRun {
			best = sorted[i]
			bestRun = run
		}
	}
	return best
}

// median averages the two middle order statistics for even-length samples.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func checkSample(data []float64) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w, got %v", ErrNonFiniteInput, v)
		}
	}
	return nil
}
