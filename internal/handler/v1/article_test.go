package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestArticleCountCacheKeyDistinguishesFeatured(t *testing.T) {
	base := &GetArticlesQueryParams{Category: "country"}
	featured := &GetArticlesQueryParams{Category: "country", Featured: boolPtr(true)}
	notFeatured := &GetArticlesQueryParams{Category: "country", Featured: boolPtr(false)}

	keys := map[string]struct{}{
		articleCountCacheKey(base):        {},
		articleCountCacheKey(featured):    {},
		articleCountCacheKey(notFeatured): {},
	}
	assert.Len(t, keys, 3)
}

func TestArticleCountCacheKeyStable(t *testing.T) {
	a := &GetArticlesQueryParams{Category: "edm", Featured: boolPtr(true), TextLexems: []string{"party"}}
	b := &GetArticlesQueryParams{Category: "edm", Featured: boolPtr(true), TextLexems: []string{"party"}}

	assert.Equal(t, articleCountCacheKey(a), articleCountCacheKey(b))
}

func TestArticleCountCacheKeyKeepsLexems(t *testing.T) {
	params := &GetArticlesQueryParams{TextLexems: []string{"dead", "party"}}
	withFeatured := &GetArticlesQueryParams{TextLexems: []string{"dead", "party"}, Featured: boolPtr(true)}

	assert.NotEqual(t, articleCountCacheKey(params), articleCountCacheKey(withFeatured))
	// Folding featured into the filters must not mutate the caller's lexems.
	assert.Equal(t, []string{"dead", "party"}, withFeatured.TextLexems)
}
