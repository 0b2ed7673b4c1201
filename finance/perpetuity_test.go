package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantkit/finance"
)

func TestPerpetuity(t *testing.T) {
	pv, err := finance.Perpetuity(100, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, pv, 1e-12)

	pv, err = finance.Perpetuity(50, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 2500.0, pv, 1e-12)

	// Zero and negative payments are legitimate cash flows.
	pv, err = finance.Perpetuity(0, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pv)

	pv, err = finance.Perpetuity(-100, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, -2000.0, pv, 1e-12)
}

func TestPerpetuityValidation(t *testing.T) {
	_, err := finance.Perpetuity(100, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be greater than 0")

	_, err = finance.Perpetuity(100, -0.05)
	require.Error(t, err)
}

func TestGrowingPerpetuity(t *testing.T) {
	pv, err := finance.GrowingPerpetuity(100, 0.10, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, pv, 1e-12)

	pv, err = finance.GrowingPerpetuity(50, 0.08, 0.03)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, pv, 1e-9)

	pv, err = finance.GrowingPerpetuity(10, 0.06, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, pv, 1e-9)
}

func TestGrowingPerpetuityValidation(t *testing.T) {
	_, err := finance.GrowingPerpetuity(100, 0.05, 0.05)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly greater than the growth rate")

	_, err = finance.GrowingPerpetuity(100, 0.05, 0.08)
	require.Error(t, err)
}
