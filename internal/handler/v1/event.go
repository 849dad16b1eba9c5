package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/service"
	"github.com/cgRGM/deadpartymedia/pkg/dateutils"
	"github.com/cgRGM/deadpartymedia/pkg/httputils"
)

type eventHandler struct {
	eventService *service.EventService
	log          *zap.SugaredLogger
}

func (hand *eventHandler) getEvents(window service.EventWindow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := hand.eventService.GetEvents(r.Context(), service.GetEventsParams{
			Genre:  r.URL.Query().Get(GENRE_QUERY_PARAM_NAME),
			Window: window,
		})
		if err != nil {
			eventErrHandler(w, err)
			return
		}
		httputils.WriteJSONResponse(w, http.StatusOK, events)
	}
}

func (hand *eventHandler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id, err := getUrlID(r)
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusPreconditionRequired, err.Error())
		return
	}

	event, err := hand.eventService.GetEventByID(r.Context(), id)
	if err != nil {
		eventErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, event)
}

type eventBody struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	Venue       string `json:"venue"`
	Location    string `json:"location"`
	Genre       string `json:"genre"`
	FlyerURL    string `json:"flyer_url"`
	Doors       string `json:"doors"`
	TicketURL   string `json:"ticket_url"`
	Description string `json:"description"`
}

func (hand *eventHandler) NewEvent(w http.ResponseWriter, r *http.Request) {
	var body eventBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		eventErrHandler(w, errors.Join(err, ErrInvalidRequestBody))
		return
	}
	if body.Title == "" || body.Artist == "" || body.Venue == "" {
		eventErrHandler(w, errors.Join(errors.New("title, artist and venue are required"), ErrInvalidRequestBody))
		return
	}

	date, err := dateutils.ParseQueryString(body.Date)
	if err != nil {
		eventErrHandler(w, errors.Join(err, ErrInvalidRequestBody))
		return
	}

	id, err := hand.eventService.NewEvent(r.Context(), service.NewEventParams{
		Title:       body.Title,
		Artist:      body.Artist,
		Date:        date,
		StartTime:   body.StartTime,
		Venue:       body.Venue,
		Location:    body.Location,
		Genre:       body.Genre,
		FlyerURL:    body.FlyerURL,
		Doors:       body.Doors,
		TicketURL:   body.TicketURL,
		Description: body.Description,
	})
	if err != nil {
		eventErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusCreated, map[string]int64{"id": id})
}

func (hand *eventHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/events", hand.getEvents(service.EVENT_WINDOW_ALL))
		r.Get(baseURL+"/events/upcoming", hand.getEvents(service.EVENT_WINDOW_UPCOMING))
		r.Get(baseURL+"/events/past", hand.getEvents(service.EVENT_WINDOW_PAST))
		r.Get(baseURL+"/events/{id}", hand.GetEventByID)
		r.Post(baseURL+"/events", hand.NewEvent)
	}
}

var _ httputils.Handler = (*eventHandler)(nil)

func eventErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEventsNotFound),
		errors.Is(err, service.ErrEventNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRequestBody):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewEventHandlerParams struct {
	fx.In

	EventService *service.EventService
	Log          *zap.SugaredLogger
}

func NewEventHandler(params NewEventHandlerParams) *eventHandler {
	return &eventHandler{
		eventService: params.EventService,
		log:          params.Log,
	}
}
