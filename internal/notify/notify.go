package notify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Sender delivers a notification job over a single channel. Eligible reports
// whether the job carries the contact data the channel needs.
type Sender interface {
	Channel() string
	Eligible(job natsinfo.NotificationJob) bool
	Send(ctx context.Context, job natsinfo.NotificationJob) error
}

type Outcome struct {
	EmailSent bool
	SmsSent   bool
	Attempted int
	Err       error
}

// Status maps a dispatch outcome onto the interview request status. A single
// delivered channel counts as sent; anything less is failed.
func (o Outcome) Status() string {
	if o.EmailSent || o.SmsSent {
		return storage.InterviewRequestStatusSent
	}
	return storage.InterviewRequestStatusFailed
}

type Dispatcher struct {
	senders []Sender
	log     *zap.SugaredLogger
}

func NewDispatcher(log *zap.SugaredLogger, senders ...Sender) *Dispatcher {
	cp := make([]Sender, 0, len(senders))
	for _, s := range senders {
		if s == nil {
			continue
		}
		cp = append(cp, s)
	}
	return &Dispatcher{senders: cp, log: log}
}

// Dispatch runs exactly one attempt per eligible channel. Channel failures
// are aggregated into the outcome, never returned as a dispatch error.
func (d *Dispatcher) Dispatch(ctx context.Context, job natsinfo.NotificationJob) Outcome {
	var outcome Outcome
	var errs []error

	for _, sender := range d.senders {
		if !sender.Eligible(job) {
			continue
		}
		outcome.Attempted++

		if err := sender.Send(ctx, job); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sender.Channel(), err))
			d.log.Errorw("notification channel failed",
				"channel", sender.Channel(),
				"job_id", job.ID,
				"request_id", job.RequestID,
				"error", err)
			continue
		}

		switch sender.Channel() {
		case ChannelEmail:
			outcome.EmailSent = true
		case ChannelSMS:
			outcome.SmsSent = true
		}
	}

	outcome.Err = errors.Join(errs...)
	return outcome
}
