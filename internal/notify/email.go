package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

const resendEmailsURL = "https://api.resend.com/emails"

type EmailSenderConfig struct {
	APIKey      string
	FromAddress string
	// Overrides the Resend API endpoint, used by tests.
	BaseURL string
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// EmailSender delivers interview request notifications through the Resend
// HTTP API.
type EmailSender struct {
	client  *resty.Client
	fromAdr string
	baseURL string
}

func NewEmailSender(config EmailSenderConfig) *EmailSender {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = resendEmailsURL
	}

	client := resty.New()
	client.SetTimeout(time.Second * 10)
	client.SetAuthToken(config.APIKey)

	return &EmailSender{
		client:  client,
		fromAdr: config.FromAddress,
		baseURL: baseURL,
	}
}

func (s *EmailSender) Channel() string { return ChannelEmail }

func (s *EmailSender) Eligible(job natsinfo.NotificationJob) bool {
	return job.ArtistEmail != ""
}

func (s *EmailSender) Send(ctx context.Context, job natsinfo.NotificationJob) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(&emailPayload{
			From:    s.fromAdr,
			To:      []string{job.ArtistEmail},
			Subject: "Interview Request from Dead Party Media",
			Text:    EmailBody(job),
		}).
		Post(s.baseURL)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("send email: resend responded %s", resp.Status())
	}
	return nil
}

func EmailBody(job natsinfo.NotificationJob) string {
	return fmt.Sprintf(`Hello %s,

You've received a new interview request from Dead Party Media:

%s

You can respond by replying to this email or contacting us directly.

Best regards,
Dead Party Media Team`, job.ArtistName, job.Message)
}
