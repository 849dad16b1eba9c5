package storage

import (
	"context"
)

const (
	InterviewRequestStatusPending = "pending"
	InterviewRequestStatusSent    = "sent"
	InterviewRequestStatusFailed  = "failed"
)

const newInterviewRequest = `INSERT INTO interview_requests (artist_id, requester_name, requester_email, message)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`

type NewInterviewRequestParams struct {
	ArtistID       int64
	RequesterName  string
	RequesterEmail string
	Message        string
}

// The row always starts in the pending status; the dispatch outcome is
// written later by the notifier.
func (q *Queries) NewInterviewRequest(ctx context.Context, params NewInterviewRequestParams) (InterviewRequestRow, error) {
	row := InterviewRequestRow{
		ArtistID:       params.ArtistID,
		RequesterName:  params.RequesterName,
		RequesterEmail: params.RequesterEmail,
		Message:        params.Message,
		Status:         InterviewRequestStatusPending,
	}
	err := q.db.QueryRowContext(ctx, newInterviewRequest,
		params.ArtistID, params.RequesterName, params.RequesterEmail, params.Message,
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

const getInterviewRequestByID = `SELECT ir.id, ir.artist_id, ar.name, ir.requester_name, ir.requester_email, ir.message, ir.status, ir.email_sent, ir.sms_sent, ir.created_at, ir.updated_at
FROM interview_requests ir
JOIN artists ar ON ar.id = ir.artist_id
WHERE ir.id = $1`

func (q *Queries) GetInterviewRequestByID(ctx context.Context, id int64) (InterviewRequestRow, error) {
	var r InterviewRequestRow
	err := q.db.QueryRowContext(ctx, getInterviewRequestByID, id).Scan(
		&r.ID, &r.ArtistID, &r.ArtistName, &r.RequesterName, &r.RequesterEmail,
		&r.Message, &r.Status, &r.EmailSent, &r.SmsSent, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

const listInterviewRequests = `SELECT ir.id, ir.artist_id, ar.name, ir.requester_name, ir.requester_email, ir.message, ir.status, ir.email_sent, ir.sms_sent, ir.created_at, ir.updated_at
FROM interview_requests ir
JOIN artists ar ON ar.id = ir.artist_id
ORDER BY ir.created_at DESC`

func (q *Queries) ListInterviewRequests(ctx context.Context) ([]InterviewRequestRow, error) {
	rows, err := q.db.QueryContext(ctx, listInterviewRequests)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []InterviewRequestRow
	for rows.Next() {
		var r InterviewRequestRow
		if err := rows.Scan(
			&r.ID, &r.ArtistID, &r.ArtistName, &r.RequesterName, &r.RequesterEmail,
			&r.Message, &r.Status, &r.EmailSent, &r.SmsSent, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

const updateInterviewRequestOutcome = `UPDATE interview_requests
SET status = $2, email_sent = $3, sms_sent = $4, updated_at = now()
WHERE id = $1`

type UpdateInterviewRequestOutcomeParams struct {
	ID        int64
	Status    string
	EmailSent bool
	SmsSent   bool
}

func (q *Queries) UpdateInterviewRequestOutcome(ctx context.Context, params UpdateInterviewRequestOutcomeParams) error {
	_, err := q.db.ExecContext(ctx, updateInterviewRequestOutcome,
		params.ID, params.Status, params.EmailSent, params.SmsSent,
	)
	return err
}
