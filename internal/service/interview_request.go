package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/accessor"
	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

var (
	ErrInterviewRequestNotFound     = errors.New("interview request not found")
	ErrUnableCreateInterviewRequest = errors.New("unable create the interview request")
)

type InterviewRequestService struct {
	queries   *storage.Queries
	publisher NotificationPublisher
	log       *zap.SugaredLogger
}

type CreateInterviewRequestParams struct {
	ArtistID       int64
	RequesterName  string
	RequesterEmail string
	Message        string
}

// CreateInterviewRequest persists the request and enqueues its notification
// job. The creation succeeds once the row is written; everything after that
// is fire-and-forget and only shows up in the request's status.
func (s *InterviewRequestService) CreateInterviewRequest(ctx context.Context, params CreateInterviewRequestParams) (model.InterviewRequest, error) {
	artist, err := s.queries.GetArtistByID(ctx, params.ArtistID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilInterviewRequest, ErrArtistNotFound
	}
	if err != nil {
		return model.NilInterviewRequest, err
	}

	row, err := s.queries.NewInterviewRequest(ctx, storage.NewInterviewRequestParams{
		ArtistID:       params.ArtistID,
		RequesterName:  params.RequesterName,
		RequesterEmail: params.RequesterEmail,
		Message:        params.Message,
	})
	if err != nil {
		s.log.Errorw("unable create the interview request", "artist_id", params.ArtistID, "error", err)
		return model.NilInterviewRequest, ErrUnableCreateInterviewRequest
	}
	row.ArtistName = artist.Name

	request := accessor.InterviewRequestFromRow(row)

	job := &natsinfo.NotificationJob{
		ID:             uuid.NewString(),
		Kind:           natsinfo.INTERVIEW_REQUEST_JOB_KIND,
		RequestID:      row.ID,
		ArtistID:       artist.ID,
		ArtistName:     artist.Name,
		ArtistEmail:    artist.Email.String,
		ArtistPhone:    artist.Phone.String,
		RequesterName:  params.RequesterName,
		RequesterEmail: params.RequesterEmail,
		Message:        params.Message,
		CreatedAt:      row.CreatedAt,
	}

	if err := s.publisher.PublishJob(ctx, job); err != nil {
		// The enqueue was the one dispatch attempt. Record the failure,
		// keep the created row.
		s.log.Errorw("unable enqueue the notification job", "request_id", row.ID, "error", err)
		if err := s.queries.UpdateInterviewRequestOutcome(ctx, storage.UpdateInterviewRequestOutcomeParams{
			ID:     row.ID,
			Status: storage.InterviewRequestStatusFailed,
		}); err != nil {
			s.log.Errorw("unable record the enqueue failure", "request_id", row.ID, "error", err)
		} else {
			request.Status = storage.InterviewRequestStatusFailed
		}
	}

	return request, nil
}

func (s *InterviewRequestService) GetInterviewRequestByID(ctx context.Context, id int64) (model.InterviewRequest, error) {
	row, err := s.queries.GetInterviewRequestByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilInterviewRequest, ErrInterviewRequestNotFound
	}
	if err != nil {
		return model.NilInterviewRequest, err
	}
	return accessor.InterviewRequestFromRow(row), nil
}

func (s *InterviewRequestService) GetInterviewRequests(ctx context.Context) ([]model.InterviewRequest, error) {
	rows, err := s.queries.ListInterviewRequests(ctx)
	if err != nil {
		return nil, err
	}
	return accessor.InterviewRequestsFromRows(rows), nil
}

type RecordDispatchOutcomeParams struct {
	RequestID int64
	Status    string
	EmailSent bool
	SmsSent   bool
}

func (s *InterviewRequestService) RecordDispatchOutcome(ctx context.Context, params RecordDispatchOutcomeParams) error {
	return s.queries.UpdateInterviewRequestOutcome(ctx, storage.UpdateInterviewRequestOutcomeParams{
		ID:        params.RequestID,
		Status:    params.Status,
		EmailSent: params.EmailSent,
		SmsSent:   params.SmsSent,
	})
}

type NewInterviewRequestServiceParams struct {
	fx.In

	DB        *sql.DB
	Publisher NotificationPublisher
	Log       *zap.SugaredLogger
}

func NewInterviewRequestService(params NewInterviewRequestServiceParams) *InterviewRequestService {
	return &InterviewRequestService{
		queries:   storage.New(params.DB),
		publisher: params.Publisher,
		log:       params.Log,
	}
}
