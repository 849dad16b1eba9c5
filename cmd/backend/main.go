package main

import (
	"context"
	"database/sql"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/config"
	handler "github.com/cgRGM/deadpartymedia/internal/handler/v1"
	"github.com/cgRGM/deadpartymedia/internal/logger"
	"github.com/cgRGM/deadpartymedia/internal/service"
	"github.com/cgRGM/deadpartymedia/pkg/httputils"
	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

type NewDatabaseConnectionParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config *config.Config
}

func NewDatabaseConnection(params NewDatabaseConnectionParams) (*sql.DB, error) {
	conn, err := sql.Open(params.Config.DatabaseDriver, params.Config.Database().GetURI()+"?sslmode=disable")
	if err != nil {
		return nil, err
	}
	params.Lifecycle.Append(fx.StopHook(conn.Close))
	return conn, nil
}

func NewListCountKeyValue(js nats.JetStreamContext) (nats.KeyValue, error) {
	return natsinfo.CreateOrBindKeyValue(js, &natsinfo.LIST_COUNT_KEY_VALUE_CONFIG)
}

func CreateNotificationsStream(js nats.JetStreamContext) error {
	_, err := natsinfo.CreateOrUpdateStream(js, natsinfo.NOTIFICATIONS_STREAM_CONFIG)
	return err
}

type StartHTTPServerParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config   *config.Config
	Log      *zap.SugaredLogger
	Handlers []httputils.Handler `group:"routes"`
}

func StartHTTPServer(params StartHTTPServerParams) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	for _, hand := range params.Handlers {
		hand.OnRouter(router)
	}

	server := &http.Server{
		Addr:    params.Config.HTTPAddr,
		Handler: router,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				params.Log.Infow("http server listening", "addr", server.Addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					params.Log.Errorw("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			logger.New,

			natsinfo.NewNatsConfig,
			natsinfo.NewNatsConnection,
			NewListCountKeyValue,

			NewDatabaseConnection,

			service.NewJetStreamNotificationPublisher,
			service.NewArticleService,
			service.NewArtistService,
			service.NewAuthorService,
			service.NewEventService,
			service.NewCommentService,
			service.NewInterviewRequestService,

			httputils.AsHandler(`group:"routes"`, handler.NewArticleHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewArtistHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewAuthorHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewEventHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewCommentHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewInterviewRequestHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewHealthHandler),
		),
		fx.Invoke(
			CreateNotificationsStream,
			StartHTTPServer,
		),
	).Run()
}
