package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnsupportedUnit = errors.New("unsupported time unit")

// TimeUnit is a supported calendar period.
type TimeUnit int

const (
	Days TimeUnit = iota
	Weeks
	Months
	Quarters
	Years
)

// ParseTimeUnit maps a case-insensitive unit name to a TimeUnit.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.ToLower(s) {
	case "days":
		return Days, nil
	case "weeks":
		return Weeks, nil
	case "months":
		return Months, nil
	case "quarters":
		return Quarters, nil
	case "years":
		return Years, nil
	}
	return 0, fmt.Errorf("%w: %q (supported: days, weeks, months, quarters, years)", ErrUnsupportedUnit, s)
}

func (u TimeUnit) String() string {
	switch u {
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	case Months:
		return "months"
	case Quarters:
		return "quarters"
	case Years:
		return "years"
	}
	return fmt.Sprintf("TimeUnit(%d)", int(u))
}

// days keeps 1 year = 365 days = 12 months = 4 quarters exact, which makes
// months and quarters fractional in days.
func (u TimeUnit) days() float64 {
	switch u {
	case Days:
		return 1
	case Weeks:
		return 7
	case Months:
		return 365.0 / 12.0
	case Quarters:
		return 365.0 / 4.0
	case Years:
		return 365
	}
	return math.NaN()
}

// Convert rescales a value between two parsed units via the common days base.
func Convert(value float64, from, to TimeUnit) float64 {
	return value * from.days() / to.days()
}

// ConvertTimePeriods converts a non-negative time value between named
// calendar units.
func ConvertTimePeriods(value float64, from, to string) (float64, error) {
	if value < 0 {
		return 0, fmt.Errorf("time value to convert cannot be negative")
	}
	f, err := ParseTimeUnit(from)
	if err != nil {
		return 0, err
	}
	t, err := ParseTimeUnit(to)
	if err != nil {
		return 0, err
	}
	return Convert(value, f, t), nil
}
