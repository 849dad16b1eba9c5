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

type commentHandler struct {
	commentService *service.CommentService
	log            *zap.SugaredLogger
}

func (hand *commentHandler) GetArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}

	comments, err := hand.commentService.GetArticleComments(r.Context(), articleID)
	if err != nil {
		commentErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, comments)
}

type commentBody struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

func (hand *commentHandler) NewComment(w http.ResponseWriter, r *http.Request) {
	articleID, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}

	var body commentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		commentErrHandler(w, errors.Join(err, ErrInvalidRequestBody))
		return
	}
	if body.AuthorName == "" || body.Content == "" {
		commentErrHandler(w, errors.Join(errors.New("author_name and content are required"), ErrInvalidRequestBody))
		return
	}

	comment, err := hand.commentService.NewComment(r.Context(), service.NewCommentParams{
		ArticleID:  articleID,
		AuthorName: body.AuthorName,
		Content:    body.Content,
	})
	if err != nil {
		commentErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusCreated, comment)
}

func (hand *commentHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/articles/{id}/comments", hand.GetArticleComments)
		r.Post(baseURL+"/articles/{id}/comments", hand.NewComment)
	}
}

var _ httputils.Handler = (*commentHandler)(nil)

func commentErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRequestBody):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewCommentHandlerParams struct {
	fx.In

	CommentService *service.CommentService
	Log            *zap.SugaredLogger
}

func NewCommentHandler(params NewCommentHandlerParams) *commentHandler {
	return &commentHandler{
		commentService: params.CommentService,
		log:            params.Log,
	}
}
