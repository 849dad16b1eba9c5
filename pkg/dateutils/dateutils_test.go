package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryString(t *testing.T) {
	date, err := ParseQueryString("2024-10-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.October, 12, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseQueryString("2024-10-12T10:01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.October, 12, 10, 1, 0, 0, time.UTC), date)

	_, err = ParseQueryString("12/10/2024")
	assert.ErrorIs(t, err, ErrUnsupportedDateFormat)
}

func TestStringRoundTrip(t *testing.T) {
	original := time.Date(2024, time.February, 6, 18, 29, 0, 0, time.UTC)
	parsed, err := ParseString(ToString(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}

func TestPretify(t *testing.T) {
	date := time.Date(2024, time.February, 6, 18, 29, 0, 0, time.UTC)
	assert.Equal(t, "18:29 06-02-2024", Pretify(date))
	assert.Equal(t, "2024-02-06", PretifyDate(date))
}
