package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/service"
	"github.com/cgRGM/deadpartymedia/pkg/httputils"
)

type authorHandler struct {
	authorService *service.AuthorService
	log           *zap.SugaredLogger
}

func (hand *authorHandler) GetAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := hand.authorService.GetAuthors(r.Context(), service.GetAuthorsParams{
		Category:   r.URL.Query().Get(CATEGORY_QUERY_PARAM_NAME),
		TextLexems: getTextQuery(r),
	})
	if err != nil {
		authorErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, authors)
}

func (hand *authorHandler) GetAuthorByID(w http.ResponseWriter, r *http.Request) {
	id, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}

	author, err := hand.authorService.GetAuthorByID(r.Context(), id)
	if err != nil {
		authorErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, author)
}

type authorBody struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Bio       string `json:"bio"`
	CashTag   string `json:"cash_tag"`
	Instagram string `json:"instagram"`
}

func (hand *authorHandler) NewAuthor(w http.ResponseWriter, r *http.Request) {
	var body authorBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		authorErrHandler(w, errors.Join(err, ErrInvalidRequestBody))
		return
	}
	if body.Name == "" {
		authorErrHandler(w, errors.Join(errors.New("name is required"), ErrInvalidRequestBody))
		return
	}
	if body.Category == "" {
		body.Category = "other"
	}

	id, err := hand.authorService.NewAuthor(r.Context(), service.NewAuthorParams{
		Name:      body.Name,
		Category:  body.Category,
		Bio:       body.Bio,
		CashTag:   body.CashTag,
		Instagram: body.Instagram,
	})
	if err != nil {
		authorErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusCreated, map[string]int64{"id": id})
}

func (hand *authorHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/authors", hand.GetAuthors)
		r.Get(baseURL+"/authors/{id}", hand.GetAuthorByID)
		r.Post(baseURL+"/authors", hand.NewAuthor)
	}
}

var _ httputils.Handler = (*authorHandler)(nil)

func authorErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAuthorsNotFound),
		errors.Is(err, service.ErrAuthorNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRequestBody):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewAuthorHandlerParams struct {
	fx.In

	AuthorService *service.AuthorService
	Log           *zap.SugaredLogger
}

func NewAuthorHandler(params NewAuthorHandlerParams) *authorHandler {
	return &authorHandler{
		authorService: params.AuthorService,
		log:           params.Log,
	}
}
