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

type interviewRequestHandler struct {
	interviewRequestService *service.InterviewRequestService
	log                     *zap.SugaredLogger
}

type interviewRequestBody struct {
	ArtistID       int64  `json:"artist_id"`
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
	Message        string `json:"message"`
}

func (hand *interviewRequestHandler) CreateInterviewRequest(w http.ResponseWriter, r *http.Request) {
	var body interviewRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		interviewRequestErrHandler(w, errors.Join(err, ErrInvalidRequestBody))
		return
	}
	if body.ArtistID == 0 || body.RequesterName == "" || body.RequesterEmail == "" {
		interviewRequestErrHandler(w, errors.Join(errors.New("artist_id, requester_name and requester_email are required"), ErrInvalidRequestBody))
		return
	}

	request, err := hand.interviewRequestService.CreateInterviewRequest(r.Context(), service.CreateInterviewRequestParams{
		ArtistID:       body.ArtistID,
		RequesterName:  body.RequesterName,
		RequesterEmail: body.RequesterEmail,
		Message:        body.Message,
	})
	if err != nil {
		interviewRequestErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusCreated, request)
}

func (hand *interviewRequestHandler) GetInterviewRequestByID(w http.ResponseWriter, r *http.Request) {
	id, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}

	request, err := hand.interviewRequestService.GetInterviewRequestByID(r.Context(), id)
	if err != nil {
		interviewRequestErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, request)
}

func (hand *interviewRequestHandler) GetInterviewRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := hand.interviewRequestService.GetInterviewRequests(r.Context())
	if err != nil {
		interviewRequestErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, requests)
}

func (hand *interviewRequestHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/interview-requests", hand.GetInterviewRequests)
		r.Get(baseURL+"/interview-requests/{id}", hand.GetInterviewRequestByID)
		r.Post(baseURL+"/interview-requests", hand.CreateInterviewRequest)
	}
}

var _ httputils.Handler = (*interviewRequestHandler)(nil)

func interviewRequestErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInterviewRequestNotFound),
		errors.Is(err, service.ErrArtistNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRequestBody):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewInterviewRequestHandlerParams struct {
	fx.In

	InterviewRequestService *service.InterviewRequestService
	Log                     *zap.SugaredLogger
}

func NewInterviewRequestHandler(params NewInterviewRequestHandlerParams) *interviewRequestHandler {
	return &interviewRequestHandler{
		interviewRequestService: params.InterviewRequestService,
		log:                     params.Log,
	}
}
