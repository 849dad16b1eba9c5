package natsinfo

import (
	"encoding/json"
	"time"

	"github.com/cgRGM/deadpartymedia/pkg/dateutils"
)

const INTERVIEW_REQUEST_JOB_KIND = "interview_request"

// NotificationJob carries everything the dispatcher needs so it never has
// to read artist contact data back from the database.
type NotificationJob struct {
	ID             string
	Kind           string
	RequestID      int64
	ArtistID       int64
	ArtistName     string
	ArtistEmail    string
	ArtistPhone    string
	RequesterName  string
	RequesterEmail string
	Message        string
	CreatedAt      time.Time
}

type notificationJobDTO struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	RequestID      int64  `json:"request_id"`
	ArtistID       int64  `json:"artist_id"`
	ArtistName     string `json:"artist_name"`
	ArtistEmail    string `json:"artist_email,omitempty"`
	ArtistPhone    string `json:"artist_phone,omitempty"`
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
	Message        string `json:"message"`
	CreatedAt      string `json:"created_at"`
}

func (j *NotificationJob) Marshal() ([]byte, error) {
	return json.Marshal(
		&notificationJobDTO{
			ID:             j.ID,
			Kind:           j.Kind,
			RequestID:      j.RequestID,
			ArtistID:       j.ArtistID,
			ArtistName:     j.ArtistName,
			ArtistEmail:    j.ArtistEmail,
			ArtistPhone:    j.ArtistPhone,
			RequesterName:  j.RequesterName,
			RequesterEmail: j.RequesterEmail,
			Message:        j.Message,
			CreatedAt:      dateutils.ToString(j.CreatedAt),
		},
	)
}

func (j *NotificationJob) Unmarshal(data []byte) error {
	var dto notificationJobDTO

	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	j.ID = dto.ID
	j.Kind = dto.Kind
	j.RequestID = dto.RequestID
	j.ArtistID = dto.ArtistID
	j.ArtistName = dto.ArtistName
	j.ArtistEmail = dto.ArtistEmail
	j.ArtistPhone = dto.ArtistPhone
	j.RequesterName = dto.RequesterName
	j.RequesterEmail = dto.RequesterEmail
	j.Message = dto.Message

	time, err := dateutils.ParseString(dto.CreatedAt)
	if err != nil {
		return err
	}
	j.CreatedAt = time

	return nil
}
