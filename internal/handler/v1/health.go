package handler

import (
	"database/sql"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/cgRGM/deadpartymedia/pkg/httputils"
)

type healthHandler struct {
	db *sql.DB
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (hand *healthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := hand.db.PingContext(r.Context()); err != nil {
		httputils.WriteJSONResponse(w, http.StatusServiceUnavailable, &healthResponse{
			Status:  "unhealthy",
			Service: "deadpartymedia-backend",
		})
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &healthResponse{
		Status:  "healthy",
		Service: "deadpartymedia-backend",
	})
}

func (hand *healthHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Get("/healthz", hand.Healthz)
	}
}

var _ httputils.Handler = (*healthHandler)(nil)

type NewHealthHandlerParams struct {
	fx.In

	DB *sql.DB
}

func NewHealthHandler(params NewHealthHandlerParams) *healthHandler {
	return &healthHandler{db: params.DB}
}
