package natsinfo

import (
	"strings"

	nats "github.com/nats-io/nats.go"
)

const NOTIFICATIONS_STREAM_ANY_JOB_SUBJECT = "notification.*.*"

func NotificationsStream_NewJobSubject(kind string, jobID string) string {
	result := NOTIFICATIONS_STREAM_ANY_JOB_SUBJECT
	result = strings.Replace(result, "*", kind, 1)
	result = strings.Replace(result, "*", jobID, 1)
	return result
}

var NOTIFICATIONS_STREAM_CONFIG = &nats.StreamConfig{
	Name:      "NOTIFICATIONS",
	Retention: nats.WorkQueuePolicy,
	Discard:   nats.DiscardOld,
	Subjects:  []string{NOTIFICATIONS_STREAM_ANY_JOB_SUBJECT},
}

// Each job is delivered at most once per queue group. Dispatch outcomes are
// recorded on the interview request row, not redelivered.
func NotificationsStream_NewJobConsumerConfig(queueGroup string) (stream string, subject string, subOpts []nats.SubOpt, config *nats.ConsumerConfig) {
	stream = NOTIFICATIONS_STREAM_CONFIG.Name
	subject = NOTIFICATIONS_STREAM_ANY_JOB_SUBJECT

	config = &nats.ConsumerConfig{
		Durable:        queueGroup,
		DeliverSubject: queueGroup + "-deliver",
		DeliverGroup:   queueGroup,
		FilterSubject:  subject,
		AckPolicy:      nats.AckExplicitPolicy,
		MaxDeliver:     1,
	}

	subOpts = []nats.SubOpt{
		nats.Bind(stream, queueGroup),
		nats.ManualAck(),
	}

	return stream, subject, subOpts, config
}
