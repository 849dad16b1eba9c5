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

const (
	GENRE_QUERY_PARAM_NAME    = "genre"
	LOCATION_QUERY_PARAM_NAME = "location"
)

type artistHandler struct {
	artistService *service.ArtistService
	log           *zap.SugaredLogger
}

func (hand *artistHandler) GetArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := hand.artistService.GetArtists(r.Context(), service.GetArtistsParams{
		Genre:      r.URL.Query().Get(GENRE_QUERY_PARAM_NAME),
		Location:   r.URL.Query().Get(LOCATION_QUERY_PARAM_NAME),
		TextLexems: getTextQuery(r),
	})
	if err != nil {
		artistErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, artists)
}

func (hand *artistHandler) GetArtistByID(w http.ResponseWriter, r *http.Request) {
	id, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}

	artist, err := hand.artistService.GetArtistByID(r.Context(), id)
	if err != nil {
		artistErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, artist)
}

type artistBody struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SpotifyID string `json:"spotify_id"`
	Location  string `json:"location"`
	Genre     string `json:"genre"`
	Bio       string `json:"bio"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Youtube   string `json:"youtube"`
	Tiktok    string `json:"tiktok"`
	Website   string `json:"website"`
}

func (hand *artistHandler) NewArtist(w http.ResponseWriter, r *http.Request) {
	var body artistBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		artistErrHandler(w, errors.Join(err, ErrInvalidRequestBody))
		return
	}
	if body.Name == "" {
		artistErrHandler(w, errors.Join(errors.New("name is required"), ErrInvalidRequestBody))
		return
	}
	if body.Genre == "" {
		body.Genre = "other"
	}

	id, err := hand.artistService.NewArtist(r.Context(), service.NewArtistParams{
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		SpotifyID: body.SpotifyID,
		Location:  body.Location,
		Genre:     body.Genre,
		Bio:       body.Bio,
		Instagram: body.Instagram,
		Twitter:   body.Twitter,
		Youtube:   body.Youtube,
		Tiktok:    body.Tiktok,
		Website:   body.Website,
	})
	if err != nil {
		artistErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusCreated, map[string]int64{"id": id})
}

func (hand *artistHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/artists", hand.GetArtists)
		r.Get(baseURL+"/artists/{id}", hand.GetArtistByID)
		r.Post(baseURL+"/artists", hand.NewArtist)
	}
}

var _ httputils.Handler = (*artistHandler)(nil)

func artistErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrArtistsNotFound),
		errors.Is(err, service.ErrArtistNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRequestBody):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewArtistHandlerParams struct {
	fx.In

	ArtistService *service.ArtistService
	Log           *zap.SugaredLogger
}

func NewArtistHandler(params NewArtistHandlerParams) *artistHandler {
	return &artistHandler{
		artistService: params.ArtistService,
		log:           params.Log,
	}
}
