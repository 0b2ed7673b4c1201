package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantkit/finance"
)

func TestGordonGrowth(t *testing.T) {
	price, err := finance.GordonGrowth(2.0, 0.08, 0.03)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, price, 1e-9)

	price, err = finance.GordonGrowth(1.5, 0.10, 0.0)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, price, 1e-12)
}

func TestGordonGrowthValidation(t *testing.T) {
	// r == g leaves the denominator at zero.
	_, err := finance.GordonGrowth(2, 0.05, 0.05)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly greater than the growth rate")

	_, err = finance.GordonGrowth(2, 0.05, 0.07)
	require.Error(t, err)

	_, err = finance.GordonGrowth(2, 0, -0.02)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}
