package model

type InterviewRequest struct {
	ID             int64  `json:"id"`
	ArtistID       int64  `json:"artist_id"`
	ArtistName     string `json:"artist_name"`
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
	Message        string `json:"message"`
	Status         string `json:"status"`
	EmailSent      bool   `json:"email_sent"`
	SmsSent        bool   `json:"sms_sent"`
	CreatedAt      string `json:"created_at"`
}

var NilInterviewRequest = InterviewRequest{}
