package worker

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	nats "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/notify"
	"github.com/cgRGM/deadpartymedia/internal/service"
	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

type stubDispatcher struct {
	job     *natsinfo.NotificationJob
	outcome notify.Outcome
}

func (s *stubDispatcher) Dispatch(_ context.Context, job natsinfo.NotificationJob) notify.Outcome {
	s.job = &job
	return s.outcome
}

func newWorker(t *testing.T, dispatcher jobDispatcher) (*notificationConsumerWorker, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	requests := service.NewInterviewRequestService(service.NewInterviewRequestServiceParams{
		DB:  db,
		Log: zap.NewNop().Sugar(),
	})

	return &notificationConsumerWorker{
		dispatcher: dispatcher,
		requests:   requests,
		log:        zap.NewNop().Sugar(),
	}, mock
}

func jobMsg(t *testing.T) *nats.Msg {
	t.Helper()

	job := natsinfo.NotificationJob{
		ID:          "job-1",
		Kind:        natsinfo.INTERVIEW_REQUEST_JOB_KIND,
		RequestID:   42,
		ArtistID:    7,
		ArtistName:  "DJ Static",
		ArtistEmail: "static@example.com",
		Message:     "Interview?",
		CreatedAt:   time.Date(2024, time.March, 3, 12, 30, 0, 0, time.UTC),
	}
	data, err := job.Marshal()
	require.NoError(t, err)

	return &nats.Msg{
		Subject: natsinfo.NotificationsStream_NewJobSubject(job.Kind, job.ID),
		Data:    data,
	}
}

func TestHandlerRecordsSentOutcome(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: notify.Outcome{EmailSent: true, Attempted: 1}}
	worker, mock := newWorker(t, dispatcher)

	mock.ExpectExec("UPDATE interview_requests").
		WithArgs(int64(42), storage.InterviewRequestStatusSent, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	worker.handler(context.Background())(jobMsg(t))

	require.NotNil(t, dispatcher.job)
	assert.Equal(t, int64(42), dispatcher.job.RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandlerRecordsFailedOutcome(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: notify.Outcome{Attempted: 2}}
	worker, mock := newWorker(t, dispatcher)

	mock.ExpectExec("UPDATE interview_requests").
		WithArgs(int64(42), storage.InterviewRequestStatusFailed, false, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	worker.handler(context.Background())(jobMsg(t))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandlerSkipsUndecodablePayload(t *testing.T) {
	dispatcher := &stubDispatcher{}
	worker, mock := newWorker(t, dispatcher)

	worker.handler(context.Background())(&nats.Msg{Subject: "notification.bogus", Data: []byte("{broken")})

	assert.Nil(t, dispatcher.job)
	assert.NoError(t, mock.ExpectationsWereMet())
}
