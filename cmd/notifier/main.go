package main

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/config"
	"github.com/cgRGM/deadpartymedia/internal/logger"
	"github.com/cgRGM/deadpartymedia/internal/notify"
	"github.com/cgRGM/deadpartymedia/internal/service"
	"github.com/cgRGM/deadpartymedia/internal/worker"
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

type NewDispatcherParams struct {
	fx.In

	Config *config.Config
	Log    *zap.SugaredLogger
}

func NewDispatcher(params NewDispatcherParams) (*notify.Dispatcher, error) {
	email := notify.NewEmailSender(notify.EmailSenderConfig{
		APIKey:      params.Config.ResendAPIKey,
		FromAddress: params.Config.EmailFrom,
	})

	sms, err := notify.NewSMSSender(context.Background(), notify.SMSSenderConfig{
		Region:          params.Config.AWSRegion,
		AccessKeyID:     params.Config.AWSAccessKeyID,
		SecretAccessKey: params.Config.AWSSecretAccessKey,
		SenderID:        params.Config.SMSSenderID,
	})
	if err != nil {
		return nil, err
	}

	return notify.NewDispatcher(params.Log, email, sms), nil
}

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			logger.New,

			natsinfo.NewNatsConfig,
			natsinfo.NewNatsConnection,

			NewDatabaseConnection,

			service.NewJetStreamNotificationPublisher,
			service.NewInterviewRequestService,

			NewDispatcher,
		),
		fx.Invoke(worker.StartNotificationConsumerWorker),
	).Run()
}
