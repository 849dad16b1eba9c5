package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

type stubPublisher struct {
	job *natsinfo.NotificationJob
	err error
}

func (s *stubPublisher) PublishJob(_ context.Context, job *natsinfo.NotificationJob) error {
	s.job = job
	return s.err
}

func newInterviewRequestService(t *testing.T, publisher NotificationPublisher) (*InterviewRequestService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &InterviewRequestService{
		queries:   storage.New(db),
		publisher: publisher,
		log:       zap.NewNop().Sugar(),
	}, mock
}

func artistRows(id int64, name, email, phone string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "spotify_id", "location", "genre", "bio",
		"instagram", "twitter", "youtube", "tiktok", "website", "article_count",
		"created_at", "updated_at",
	}).AddRow(id, name, email, phone, nil, nil, "edm", nil, nil, nil, nil, nil, nil, 3, now, now)
}

func TestCreateInterviewRequestPersistsPendingAndPublishes(t *testing.T) {
	publisher := &stubPublisher{}
	service, mock := newInterviewRequestService(t, publisher)

	now := time.Now()
	mock.ExpectQuery("SELECT ar.id, ar.name").
		WithArgs(int64(7)).
		WillReturnRows(artistRows(7, "DJ Static", "static@example.com", "+15551230000"))
	mock.ExpectQuery("INSERT INTO interview_requests").
		WithArgs(int64(7), "Sam", "sam@example.com", "Interview?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(42, now, now))

	request, err := service.CreateInterviewRequest(context.Background(), CreateInterviewRequestParams{
		ArtistID:       7,
		RequesterName:  "Sam",
		RequesterEmail: "sam@example.com",
		Message:        "Interview?",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), request.ID)
	assert.Equal(t, storage.InterviewRequestStatusPending, request.Status)
	assert.Equal(t, "DJ Static", request.ArtistName)

	require.NotNil(t, publisher.job)
	assert.NotEmpty(t, publisher.job.ID)
	assert.Equal(t, natsinfo.INTERVIEW_REQUEST_JOB_KIND, publisher.job.Kind)
	assert.Equal(t, int64(42), publisher.job.RequestID)
	assert.Equal(t, "static@example.com", publisher.job.ArtistEmail)
	assert.Equal(t, "+15551230000", publisher.job.ArtistPhone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInterviewRequestSucceedsWhenEnqueueFails(t *testing.T) {
	publisher := &stubPublisher{err: errors.New("nats down")}
	service, mock := newInterviewRequestService(t, publisher)

	now := time.Now()
	mock.ExpectQuery("SELECT ar.id, ar.name").
		WithArgs(int64(7)).
		WillReturnRows(artistRows(7, "DJ Static", "static@example.com", ""))
	mock.ExpectQuery("INSERT INTO interview_requests").
		WithArgs(int64(7), "Sam", "sam@example.com", "Interview?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(42, now, now))
	mock.ExpectExec("UPDATE interview_requests").
		WithArgs(int64(42), storage.InterviewRequestStatusFailed, false, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	request, err := service.CreateInterviewRequest(context.Background(), CreateInterviewRequestParams{
		ArtistID:       7,
		RequesterName:  "Sam",
		RequesterEmail: "sam@example.com",
		Message:        "Interview?",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), request.ID)
	assert.Equal(t, storage.InterviewRequestStatusFailed, request.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInterviewRequestUnknownArtist(t *testing.T) {
	publisher := &stubPublisher{}
	service, mock := newInterviewRequestService(t, publisher)

	mock.ExpectQuery("SELECT ar.id, ar.name").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "spotify_id", "location", "genre", "bio",
			"instagram", "twitter", "youtube", "tiktok", "website", "article_count",
			"created_at", "updated_at",
		}))

	_, err := service.CreateInterviewRequest(context.Background(), CreateInterviewRequestParams{
		ArtistID: 404,
	})
	assert.ErrorIs(t, err, ErrArtistNotFound)
	assert.Nil(t, publisher.job)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDispatchOutcome(t *testing.T) {
	publisher := &stubPublisher{}
	service, mock := newInterviewRequestService(t, publisher)

	mock.ExpectExec("UPDATE interview_requests").
		WithArgs(int64(42), storage.InterviewRequestStatusSent, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, service.RecordDispatchOutcome(context.Background(), RecordDispatchOutcomeParams{
		RequestID: 42,
		Status:    storage.InterviewRequestStatusSent,
		EmailSent: true,
	}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
