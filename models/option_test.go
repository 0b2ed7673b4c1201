package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantkit/models"
)

func TestParseOptionType(t *testing.T) {
	for _, s := range []string{"call", "CALL", "Call"} {
		typ, err := models.ParseOptionType(s)
		require.NoError(t, err)
		assert.Equal(t, models.Call, typ)
	}
	for _, s := range []string{"put", "PUT", "Put"} {
		typ, err := models.ParseOptionType(s)
		require.NoError(t, err)
		assert.Equal(t, models.Put, typ)
	}

	_, err := models.ParseOptionType("straddle")
	require.ErrorIs(t, err, models.ErrInvalidOptionType)

	assert.Equal(t, "call", models.Call.String())
	assert.Equal(t, "put", models.Put.String())
}

func TestParseExerciseStyle(t *testing.T) {
	style, err := models.ParseExerciseStyle("European")
	require.NoError(t, err)
	assert.Equal(t, models.European, style)

	style, err = models.ParseExerciseStyle("AMERICAN")
	require.NoError(t, err)
	assert.Equal(t, models.American, style)

	_, err = models.ParseExerciseStyle("bermudan")
	require.ErrorIs(t, err, models.ErrInvalidExerciseStyle)

	assert.Equal(t, "european", models.European.String())
	assert.Equal(t, "american", models.American.String())
}
