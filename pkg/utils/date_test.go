package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate(" 2024-03-07 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("07/03/2024")
	assert.Error(t, err)
}

func TestTruncateToDate(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 3, 7, 23, 45, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), TruncateToDate(in))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}
