package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantkit/units"
)

func TestConvertTimePeriods(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		from, to string
		want     float64
	}{
		{"days to years", 365, "days", "years", 1},
		{"years to months", 1, "years", "months", 12},
		{"months to quarters", 3, "months", "quarters", 1},
		{"weeks to days", 1, "weeks", "days", 7},
		{"fractional weeks", 0.5, "weeks", "days", 3.5},
		{"quarters to years", 4, "quarters", "years", 1},
		{"identity", 42, "days", "days", 42},
		{"zero value", 0, "years", "days", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := units.ConvertTimePeriods(tc.value, tc.from, tc.to)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestConvertTimePeriodsCaseInsensitive(t *testing.T) {
	got, err := units.ConvertTimePeriods(1, "Years", "MONTHS")
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, 1e-12)
}

func TestConvertTimePeriodsErrors(t *testing.T) {
	_, err := units.ConvertTimePeriods(-1, "days", "years")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be negative")

	_, err = units.ConvertTimePeriods(1, "seconds", "days")
	require.ErrorIs(t, err, units.ErrUnsupportedUnit)

	_, err = units.ConvertTimePeriods(1, "days", "seconds")
	require.ErrorIs(t, err, units.ErrUnsupportedUnit)
}

func TestParseTimeUnit(t *testing.T) {
	u, err := units.ParseTimeUnit("quarters")
	require.NoError(t, err)
	assert.Equal(t, units.Quarters, u)
	assert.Equal(t, "quarters", u.String())

	_, err = units.ParseTimeUnit("fortnights")
	require.ErrorIs(t, err, units.ErrUnsupportedUnit)
}

func TestConvertRoundTrip(t *testing.T) {
	got := units.Convert(units.Convert(18, units.Months, units.Days), units.Days, units.Months)
	assert.InDelta(t, 18.0, got, 1e-12)
}
