package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

type stubSender struct {
	channel  string
	eligible bool
	err      error
	calls    int
}

func (s *stubSender) Channel() string                               { return s.channel }
func (s *stubSender) Eligible(natsinfo.NotificationJob) bool        { return s.eligible }
func (s *stubSender) Send(context.Context, natsinfo.NotificationJob) error {
	s.calls++
	return s.err
}

func testJob() natsinfo.NotificationJob {
	return natsinfo.NotificationJob{
		ID:          "job-1",
		Kind:        natsinfo.INTERVIEW_REQUEST_JOB_KIND,
		RequestID:   11,
		ArtistName:  "DJ Static",
		ArtistEmail: "static@example.com",
		ArtistPhone: "+15551230000",
		Message:     "Interview?",
	}
}

func TestDispatchAllChannelsDeliver(t *testing.T) {
	email := &stubSender{channel: ChannelEmail, eligible: true}
	sms := &stubSender{channel: ChannelSMS, eligible: true}
	dispatcher := NewDispatcher(zap.NewNop().Sugar(), email, sms)

	outcome := dispatcher.Dispatch(context.Background(), testJob())

	assert.True(t, outcome.EmailSent)
	assert.True(t, outcome.SmsSent)
	assert.Equal(t, 2, outcome.Attempted)
	assert.NoError(t, outcome.Err)
	assert.Equal(t, storage.InterviewRequestStatusSent, outcome.Status())
	assert.Equal(t, 1, email.calls)
	assert.Equal(t, 1, sms.calls)
}

func TestDispatchPartialDeliveryIsSent(t *testing.T) {
	email := &stubSender{channel: ChannelEmail, eligible: true, err: errors.New("mailbox down")}
	sms := &stubSender{channel: ChannelSMS, eligible: true}
	dispatcher := NewDispatcher(zap.NewNop().Sugar(), email, sms)

	outcome := dispatcher.Dispatch(context.Background(), testJob())

	assert.False(t, outcome.EmailSent)
	assert.True(t, outcome.SmsSent)
	assert.Error(t, outcome.Err)
	assert.Equal(t, storage.InterviewRequestStatusSent, outcome.Status())
}

func TestDispatchAllChannelsFail(t *testing.T) {
	email := &stubSender{channel: ChannelEmail, eligible: true, err: errors.New("mailbox down")}
	sms := &stubSender{channel: ChannelSMS, eligible: true, err: errors.New("carrier down")}
	dispatcher := NewDispatcher(zap.NewNop().Sugar(), email, sms)

	outcome := dispatcher.Dispatch(context.Background(), testJob())

	assert.Equal(t, 2, outcome.Attempted)
	assert.Equal(t, storage.InterviewRequestStatusFailed, outcome.Status())
}

func TestDispatchSkipsIneligibleChannels(t *testing.T) {
	email := &stubSender{channel: ChannelEmail, eligible: false}
	sms := &stubSender{channel: ChannelSMS, eligible: false}
	dispatcher := NewDispatcher(zap.NewNop().Sugar(), email, sms)

	outcome := dispatcher.Dispatch(context.Background(), testJob())

	assert.Equal(t, 0, outcome.Attempted)
	assert.Equal(t, 0, email.calls)
	assert.Equal(t, 0, sms.calls)
	assert.Equal(t, storage.InterviewRequestStatusFailed, outcome.Status())
}
