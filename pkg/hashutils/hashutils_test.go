package hashutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetCacheKeyStable(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	first := GetCacheKey("articles", start, end, []string{"edm", "party"})
	second := GetCacheKey("articles", start, end, []string{"edm", "party"})
	assert.Equal(t, first, second)
}

func TestGetCacheKeyDiscriminates(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	base := GetCacheKey("articles", start, end, []string{"edm"})
	assert.NotEqual(t, base, GetCacheKey("events", start, end, []string{"edm"}))
	assert.NotEqual(t, base, GetCacheKey("articles", start, end, []string{"country"}))
	assert.NotEqual(t, base, GetCacheKey("articles", start, end.AddDate(0, 1, 0), []string{"edm"}))
}
