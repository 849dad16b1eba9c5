package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/cgRGM/deadpartymedia/internal/service"
	"github.com/cgRGM/deadpartymedia/pkg/dateutils"
	"github.com/cgRGM/deadpartymedia/pkg/httputils"
)

const (
	SORTING_QUERY_PARAM_NAME    = "sort"
	CATEGORY_QUERY_PARAM_NAME   = "category"
	FEATURED_QUERY_PARAM_NAME   = "featured"
	START_DATE_QUERY_PARAM_NAME = "start_date"
	END_DATE_QUERY_PARAM_NAME   = "end_date"
	TEXT_QUERY_PARAM_NAME       = "text"
	PAGE_QUERY_PARAM_NAME       = "page"
	PAGE_SIZE_QUERY_PARAM_NAME  = "page_size"
)

var (
	ErrUnsupportedQueryParam = errors.New("unsupported query param")
	ErrInvalidRequestBody    = errors.New("invalid request body")
)

type GetArticlesQueryParams struct {
	Category   string
	Featured   *bool
	Sorting    service.ArticleSorting
	StartDate  time.Time
	EndDate    time.Time
	TextLexems []string
	Page       int
	PageSize   int
}

type ArticleUrlParams struct {
	ID int64
}

type ArticleSlugParams struct {
	Slug string
}

type ArticleBody struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Excerpt     string  `json:"excerpt"`
	AuthorID    int64   `json:"author_id"`
	PublishDate string  `json:"publish_date"`
	Content     string  `json:"content"`
	ArtistIDs   []int64 `json:"artist_ids"`

	publishDate time.Time
}

type ArticleHandler interface {
	GetArticles(w http.ResponseWriter, r *http.Request, queryParams *GetArticlesQueryParams)
	GetArticleByID(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams)
	GetArticleBySlug(w http.ResponseWriter, r *http.Request, params *ArticleSlugParams)
	GetFeaturedArticle(w http.ResponseWriter, r *http.Request)
	NewArticle(w http.ResponseWriter, r *http.Request, body *ArticleBody)
	UpdateArticle(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams, body *ArticleBody)
	DeleteArticle(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams)
	SetFeatured(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams)
}

type articleParamsWrapperHandler struct {
	handler ArticleHandler
}

func getUrlID(r *http.Request) (int64, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}

func getArticleSortingQuery(r *http.Request, defaultVal service.ArticleSorting) (service.ArticleSorting, error) {
	sortingParam := r.URL.Query().Get(SORTING_QUERY_PARAM_NAME)
	switch service.ArticleSorting(sortingParam) {
	case service.ARTICLE_SORTING_NEWEST:
		return service.ARTICLE_SORTING_NEWEST, nil
	case service.ARTICLE_SORTING_OLDEST:
		return service.ARTICLE_SORTING_OLDEST, nil
	case "":
		return defaultVal, nil
	default:
		return "", errors.Join(fmt.Errorf("unsupported `%s` query value %s", SORTING_QUERY_PARAM_NAME, sortingParam), ErrUnsupportedQueryParam)
	}
}

func getFeaturedQuery(r *http.Request) (*bool, error) {
	featuredParam := r.URL.Query().Get(FEATURED_QUERY_PARAM_NAME)
	if featuredParam == "" {
		return nil, nil
	}
	featured, err := strconv.ParseBool(featuredParam)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("unsupported `%s` query value %s", FEATURED_QUERY_PARAM_NAME, featuredParam), ErrUnsupportedQueryParam)
	}
	return &featured, nil
}

func getDateQuery(r *http.Request, queryName string) (time.Time, error) {
	date := r.URL.Query().Get(queryName)
	if date == "" {
		return time.Time{}, nil
	}
	t, err := dateutils.ParseQueryString(date)
	if err != nil {
		return time.Time{}, errors.Join(fmt.Errorf("unsupported `%s` query value %s. Format must be like `2024-10-12T10:01`, `2024-10-12`, `YYYY-MM-DD`", queryName, date), ErrUnsupportedQueryParam)
	}
	return t, nil
}

func getTextQuery(r *http.Request) []string {
	text := r.URL.Query().Get(TEXT_QUERY_PARAM_NAME)
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}

func getPageQuery(r *http.Request, defaultPage int) (int, error) {
	pageStr := r.URL.Query().Get(PAGE_QUERY_PARAM_NAME)
	if pageStr == "" {
		return defaultPage, nil
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return -1, errors.Join(fmt.Errorf("unsupported `%s` page value %s. Support only numbers", PAGE_QUERY_PARAM_NAME, pageStr), ErrUnsupportedQueryParam)
	}
	return page, nil
}

func getPageSizeQuery(r *http.Request, defaultPageSize int) (int, error) {
	pageSizeStr := r.URL.Query().Get(PAGE_SIZE_QUERY_PARAM_NAME)
	if pageSizeStr == "" {
		return defaultPageSize, nil
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		return -1, errors.Join(fmt.Errorf("unsupported `%s` page size value %s. Support only numbers", PAGE_SIZE_QUERY_PARAM_NAME, pageSizeStr), ErrUnsupportedQueryParam)
	}
	return pageSize, nil
}

func decodeArticleBody(r *http.Request) (*ArticleBody, error) {
	var body ArticleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.Join(err, ErrInvalidRequestBody)
	}
	if body.Title == "" || body.Excerpt == "" || body.Content == "" {
		return nil, errors.Join(errors.New("title, excerpt and content are required"), ErrInvalidRequestBody)
	}
	if body.Category == "" {
		body.Category = "other"
	}
	if body.PublishDate != "" {
		publishDate, err := dateutils.ParseQueryString(body.PublishDate)
		if err != nil {
			return nil, errors.Join(err, ErrInvalidRequestBody)
		}
		body.publishDate = publishDate
	}
	return &body, nil
}

func (h *articleParamsWrapperHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	sorting, err := getArticleSortingQuery(r, service.ARTICLE_SORTING_NEWEST)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	featured, err := getFeaturedQuery(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	startDate, err := getDateQuery(r, START_DATE_QUERY_PARAM_NAME)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	endDate, err := getDateQuery(r, END_DATE_QUERY_PARAM_NAME)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	h.handler.GetArticles(w, r, &GetArticlesQueryParams{
		Category:   r.URL.Query().Get(CATEGORY_QUERY_PARAM_NAME),
		Featured:   featured,
		Sorting:    sorting,
		StartDate:  startDate,
		EndDate:    endDate,
		TextLexems: getTextQuery(r),
		Page:       page,
		PageSize:   pageSize,
	})
}

func (h *articleParamsWrapperHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}
	h.handler.GetArticleByID(w, r, &ArticleUrlParams{ID: id})
}

func (h *articleParamsWrapperHandler) GetArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, "missing slug")
		return
	}
	h.handler.GetArticleBySlug(w, r, &ArticleSlugParams{Slug: slug})
}

func (h *articleParamsWrapperHandler) GetFeaturedArticle(w http.ResponseWriter, r *http.Request) {
	h.handler.GetFeaturedArticle(w, r)
}

func (h *articleParamsWrapperHandler) NewArticle(w http.ResponseWriter, r *http.Request) {
	body, err := decodeArticleBody(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	h.handler.NewArticle(w, r, body)
}

func (h *articleParamsWrapperHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}
	body, err := decodeArticleBody(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	h.handler.UpdateArticle(w, r, &ArticleUrlParams{ID: id}, body)
}

func (h *articleParamsWrapperHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}
	h.handler.DeleteArticle(w, r, &ArticleUrlParams{ID: id})
}

func (h *articleParamsWrapperHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}
	h.handler.SetFeatured(w, r, &ArticleUrlParams{ID: id})
}

func (h *articleParamsWrapperHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/articles", h.GetArticles)
		r.Get(baseURL+"/articles/featured", h.GetFeaturedArticle)
		r.Get(baseURL+"/articles/slug/{slug}", h.GetArticleBySlug)
		r.Get(baseURL+"/articles/{id}", h.GetArticleByID)
		r.Post(baseURL+"/articles", h.NewArticle)
		r.Put(baseURL+"/articles/{id}", h.UpdateArticle)
		r.Delete(baseURL+"/articles/{id}", h.DeleteArticle)
		r.Post(baseURL+"/articles/{id}/feature", h.SetFeatured)
	}
}

var _ httputils.Handler = (*articleParamsWrapperHandler)(nil)

func newArticleParamsWrapper(handler ArticleHandler) *articleParamsWrapperHandler {
	return &articleParamsWrapperHandler{
		handler: handler,
	}
}

func articleErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrArticlesNotFound),
		errors.Is(err, service.ErrArticleNotFound),
		errors.Is(err, service.ErrNoFeaturedArticle):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrFeaturedConflict):
		httputils.WriteErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	case errors.Is(err, ErrInvalidRequestBody):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
