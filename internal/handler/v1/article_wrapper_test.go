package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgRGM/deadpartymedia/internal/service"
)

type stubArticleHandler struct {
	queryParams *GetArticlesQueryParams
	urlParams   *ArticleUrlParams
	body        *ArticleBody
	called      string
}

func (s *stubArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request, queryParams *GetArticlesQueryParams) {
	s.called = "GetArticles"
	s.queryParams = queryParams
}

func (s *stubArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams) {
	s.called = "GetArticleByID"
	s.urlParams = params
}

func (s *stubArticleHandler) GetArticleBySlug(w http.ResponseWriter, r *http.Request, params *ArticleSlugParams) {
	s.called = "GetArticleBySlug"
}

func (s *stubArticleHandler) GetFeaturedArticle(w http.ResponseWriter, r *http.Request) {
	s.called = "GetFeaturedArticle"
}

func (s *stubArticleHandler) NewArticle(w http.ResponseWriter, r *http.Request, body *ArticleBody) {
	s.called = "NewArticle"
	s.body = body
}

func (s *stubArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams, body *ArticleBody) {
	s.called = "UpdateArticle"
	s.urlParams = params
	s.body = body
}

func (s *stubArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams) {
	s.called = "DeleteArticle"
	s.urlParams = params
}

func (s *stubArticleHandler) SetFeatured(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams) {
	s.called = "SetFeatured"
	s.urlParams = params
}

func TestGetArticlesQueryParsing(t *testing.T) {
	stub := &stubArticleHandler{}
	wrapper := newArticleParamsWrapper(stub)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/articles?category=hiphop_rb&featured=true&sort=oldest&start_date=2024-10-01&end_date=2024-11-01T10:30&text=dead+party&page=3&page_size=12", nil)
	w := httptest.NewRecorder()

	wrapper.GetArticles(w, r)

	require.Equal(t, "GetArticles", stub.called)
	require.NotNil(t, stub.queryParams)

	assert.Equal(t, "hiphop_rb", stub.queryParams.Category)
	require.NotNil(t, stub.queryParams.Featured)
	assert.True(t, *stub.queryParams.Featured)
	assert.Equal(t, service.ARTICLE_SORTING_OLDEST, stub.queryParams.Sorting)
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), stub.queryParams.StartDate)
	assert.Equal(t, time.Date(2024, 11, 1, 10, 30, 0, 0, time.UTC), stub.queryParams.EndDate)
	assert.Equal(t, []string{"dead", "party"}, stub.queryParams.TextLexems)
	assert.Equal(t, 3, stub.queryParams.Page)
	assert.Equal(t, 12, stub.queryParams.PageSize)
}

func TestGetArticlesQueryDefaults(t *testing.T) {
	stub := &stubArticleHandler{}
	wrapper := newArticleParamsWrapper(stub)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	w := httptest.NewRecorder()

	wrapper.GetArticles(w, r)

	require.Equal(t, "GetArticles", stub.called)
	assert.Equal(t, service.ARTICLE_SORTING_NEWEST, stub.queryParams.Sorting)
	assert.Nil(t, stub.queryParams.Featured)
	assert.True(t, stub.queryParams.StartDate.IsZero())
	assert.Equal(t, service.DEFAULT_PAGE, stub.queryParams.Page)
	assert.Equal(t, service.DEFAULT_PAGE_SIZE, stub.queryParams.PageSize)
}

func TestGetArticlesUnsupportedSorting(t *testing.T) {
	stub := &stubArticleHandler{}
	wrapper := newArticleParamsWrapper(stub)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/articles?sort=rating", nil)
	w := httptest.NewRecorder()

	wrapper.GetArticles(w, r)

	assert.Empty(t, stub.called)
	assert.Equal(t, http.StatusNotAcceptable, w.Code)
}

func TestGetArticlesUnsupportedDate(t *testing.T) {
	stub := &stubArticleHandler{}
	wrapper := newArticleParamsWrapper(stub)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/articles?start_date=12.10.2024", nil)
	w := httptest.NewRecorder()

	wrapper.GetArticles(w, r)

	assert.Empty(t, stub.called)
	assert.Equal(t, http.StatusNotAcceptable, w.Code)
}

func TestNewArticleBodyParsing(t *testing.T) {
	stub := &stubArticleHandler{}
	wrapper := newArticleParamsWrapper(stub)

	payload := `{
		"slug": "dead-party-returns",
		"title": "Dead Party Returns",
		"category": "hardcore_rock",
		"excerpt": "The party is back",
		"content": "Full story here",
		"author_id": 4,
		"publish_date": "2024-12-24",
		"artist_ids": [1, 2]
	}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/articles", strings.NewReader(payload))
	w := httptest.NewRecorder()

	wrapper.NewArticle(w, r)

	require.Equal(t, "NewArticle", stub.called)
	require.NotNil(t, stub.body)
	assert.Equal(t, "dead-party-returns", stub.body.Slug)
	assert.Equal(t, "hardcore_rock", stub.body.Category)
	assert.Equal(t, []int64{1, 2}, stub.body.ArtistIDs)
	assert.Equal(t, time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC), stub.body.publishDate)
}

func TestNewArticleBodyMissingRequired(t *testing.T) {
	stub := &stubArticleHandler{}
	wrapper := newArticleParamsWrapper(stub)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/articles", strings.NewReader(`{"title": "No content"}`))
	w := httptest.NewRecorder()

	wrapper.NewArticle(w, r)

	assert.Empty(t, stub.called)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewArticleBodyDefaultCategory(t *testing.T) {
	stub := &stubArticleHandler{}
	wrapper := newArticleParamsWrapper(stub)

	payload := `{"title": "t", "excerpt": "e", "content": "c"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/articles", strings.NewReader(payload))
	w := httptest.NewRecorder()

	wrapper.NewArticle(w, r)

	require.Equal(t, "NewArticle", stub.called)
	assert.Equal(t, "other", stub.body.Category)
}
