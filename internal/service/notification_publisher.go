package service

import (
	"context"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

// NotificationPublisher hands a job to the notifier. The publish is the
// start of the job's single dispatch attempt.
type NotificationPublisher interface {
	PublishJob(ctx context.Context, job *natsinfo.NotificationJob) error
}

type jetStreamNotificationPublisher struct {
	js nats.JetStreamContext
}

func (p *jetStreamNotificationPublisher) PublishJob(ctx context.Context, job *natsinfo.NotificationJob) error {
	data, err := job.Marshal()
	if err != nil {
		return err
	}

	msg := nats.NewMsg(natsinfo.NotificationsStream_NewJobSubject(job.Kind, job.ID))
	msg.Data = data
	// Job ID doubles as the JetStream dedupe key.
	msg.Header.Set(nats.MsgIdHdr, job.ID)

	_, err = p.js.PublishMsg(msg, nats.Context(ctx))
	return err
}

type NewJetStreamNotificationPublisherParams struct {
	fx.In

	JS nats.JetStreamContext
}

func NewJetStreamNotificationPublisher(params NewJetStreamNotificationPublisherParams) NotificationPublisher {
	return &jetStreamNotificationPublisher{js: params.JS}
}
