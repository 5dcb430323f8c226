package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBack(t *testing.T) {
	assert.Equal(t, "America/Toronto", Location("Not/AZone").String())
	assert.Equal(t, "Europe/Paris", Location("Europe/Paris").String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Day())

	_, err = ParseDate("06/01/2024")
	assert.Error(t, err)
}
