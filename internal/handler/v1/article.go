package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/service"
	"github.com/cgRGM/deadpartymedia/pkg/hashutils"
	"github.com/cgRGM/deadpartymedia/pkg/httputils"
	"github.com/cgRGM/deadpartymedia/pkg/paginationutils"
)

type articleHandler struct {
	articleService *service.ArticleService
	log            *zap.SugaredLogger
}

type getArticlesResponse struct {
	Articles []model.Article                  `json:"articles"`
	Pages    []paginationutils.PaginationLink `json:"pages"`
}

// articleCountCacheKey covers every filter CountArticles applies, so two
// lists with different filters never share a cached total.
func articleCountCacheKey(queryParams *GetArticlesQueryParams) string {
	filters := queryParams.TextLexems
	if queryParams.Featured != nil {
		filters = append([]string{"featured=" + strconv.FormatBool(*queryParams.Featured)}, filters...)
	}
	return hashutils.GetCacheKey("articles."+queryParams.Category, queryParams.StartDate, queryParams.EndDate, filters)
}

func (hand *articleHandler) GetArticles(w http.ResponseWriter, r *http.Request, queryParams *GetArticlesQueryParams) {
	articles, err := hand.articleService.GetArticles(r.Context(), service.GetArticlesParams{
		Category:   queryParams.Category,
		Featured:   queryParams.Featured,
		Sorting:    queryParams.Sorting,
		StartDate:  queryParams.StartDate,
		EndDate:    queryParams.EndDate,
		TextLexems: queryParams.TextLexems,
		Page:       queryParams.Page,
		PageSize:   queryParams.PageSize,
	})
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	cacheKey := articleCountCacheKey(queryParams)

	articlesCount, err := hand.articleService.GetArticlesCount(r.Context(), cacheKey, service.GetArticlesCountParams{
		Category:   queryParams.Category,
		Featured:   queryParams.Featured,
		StartDate:  queryParams.StartDate,
		EndDate:    queryParams.EndDate,
		TextLexems: queryParams.TextLexems,
	})
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       queryParams.PageSize,
		ItemsCount:         articlesCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(queryParams.Page)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	httputils.WriteJSONResponse(w, http.StatusOK, &getArticlesResponse{
		Articles: articles,
		Pages:    pagesLinks,
	})
}

func (hand *articleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams) {
	article, err := hand.articleService.GetArticleByID(r.Context(), params.ID)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &article)
}

func (hand *articleHandler) GetArticleBySlug(w http.ResponseWriter, r *http.Request, params *ArticleSlugParams) {
	article, err := hand.articleService.GetArticleBySlug(r.Context(), params.Slug)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &article)
}

func (hand *articleHandler) GetFeaturedArticle(w http.ResponseWriter, r *http.Request) {
	article, err := hand.articleService.GetFeaturedArticle(r.Context())
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &article)
}

type newArticleResponse struct {
	ID int64 `json:"id"`
}

func (hand *articleHandler) NewArticle(w http.ResponseWriter, r *http.Request, body *ArticleBody) {
	id, err := hand.articleService.NewArticle(r.Context(), service.NewArticleParams{
		Slug:        body.Slug,
		Title:       body.Title,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
		Excerpt:     body.Excerpt,
		AuthorID:    body.AuthorID,
		PublishDate: body.publishDate,
		Content:     body.Content,
		ArtistIDs:   body.ArtistIDs,
	})
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusCreated, &newArticleResponse{ID: id})
}

func (hand *articleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams, body *ArticleBody) {
	err := hand.articleService.UpdateArticle(r.Context(), service.UpdateArticleParams{
		ID:          params.ID,
		Title:       body.Title,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
		Excerpt:     body.Excerpt,
		AuthorID:    body.AuthorID,
		PublishDate: body.publishDate,
		Content:     body.Content,
		ArtistIDs:   body.ArtistIDs,
	})
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *articleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams) {
	if err := hand.articleService.DeleteArticle(r.Context(), params.ID); err != nil {
		articleErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setFeaturedResponse struct {
	ID       int64 `json:"id"`
	Featured bool  `json:"featured"`
}

func (hand *articleHandler) SetFeatured(w http.ResponseWriter, r *http.Request, params *ArticleUrlParams) {
	if err := hand.articleService.SetFeatured(r.Context(), params.ID); err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &setFeaturedResponse{ID: params.ID, Featured: true})
}

var _ ArticleHandler = (*articleHandler)(nil)

type NewArticleHandlerParams struct {
	fx.In

	ArticleService *service.ArticleService
	Log            *zap.SugaredLogger
}

func NewArticleHandler(params NewArticleHandlerParams) *articleParamsWrapperHandler {
	return newArticleParamsWrapper(&articleHandler{
		articleService: params.ArticleService,
		log:            params.Log,
	})
}
