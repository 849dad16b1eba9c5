package worker

import (
	"context"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/notify"
	"github.com/cgRGM/deadpartymedia/internal/service"
	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

type jobDispatcher interface {
	Dispatch(ctx context.Context, job natsinfo.NotificationJob) notify.Outcome
}

type notificationConsumerWorker struct {
	js         nats.JetStreamContext
	dispatcher jobDispatcher
	requests   *service.InterviewRequestService
	log        *zap.SugaredLogger
}

func (w *notificationConsumerWorker) handler(ctx context.Context) func(msg *nats.Msg) {
	return func(msg *nats.Msg) {
		var job natsinfo.NotificationJob

		if err := job.Unmarshal(msg.Data); err != nil {
			w.log.Errorw("unable deserialize the notification job", "subject", msg.Subject, "error", err)
			_ = msg.Ack()
			return
		}

		outcome := w.dispatcher.Dispatch(ctx, job)

		if err := w.requests.RecordDispatchOutcome(ctx, service.RecordDispatchOutcomeParams{
			RequestID: job.RequestID,
			Status:    outcome.Status(),
			EmailSent: outcome.EmailSent,
			SmsSent:   outcome.SmsSent,
		}); err != nil {
			w.log.Errorw("unable record the dispatch outcome", "request_id", job.RequestID, "error", err)
		}

		w.log.Infow("dispatched the notification job",
			"job_id", job.ID,
			"request_id", job.RequestID,
			"status", outcome.Status(),
			"attempted", outcome.Attempted)

		_ = msg.Ack()
	}
}

func (w *notificationConsumerWorker) start(ctx context.Context) {
	if _, err := natsinfo.CreateOrUpdateStream(w.js, natsinfo.NOTIFICATIONS_STREAM_CONFIG); err != nil {
		w.log.Panicw("unable set-up nats stream", "stream", natsinfo.NOTIFICATIONS_STREAM_CONFIG.Name, "error", err)
	}

	queueGroup := "notifier-dispatch-consumer"
	stream, subject, subOpts, config := natsinfo.NotificationsStream_NewJobConsumerConfig(queueGroup)

	if _, err := natsinfo.CreateOrUpdateConsumer(w.js, stream, config); err != nil {
		w.log.Panicw("unable set-up nats consumer", "queue_group", queueGroup, "error", err)
	}

	if _, err := w.js.QueueSubscribe(subject, queueGroup, w.handler(ctx), subOpts...); err != nil {
		w.log.Panicw("unable start nats consumer", "queue_group", queueGroup, "error", err)
	}

	<-ctx.Done()
}

type StartNotificationConsumerWorkerParams struct {
	fx.In

	JS         nats.JetStreamContext
	Dispatcher *notify.Dispatcher
	Requests   *service.InterviewRequestService
	Log        *zap.SugaredLogger
}

func StartNotificationConsumerWorker(params StartNotificationConsumerWorkerParams) {
	worker := &notificationConsumerWorker{
		js:         params.JS,
		dispatcher: params.Dispatcher,
		requests:   params.Requests,
		log:        params.Log,
	}
	go worker.start(context.Background())
}
