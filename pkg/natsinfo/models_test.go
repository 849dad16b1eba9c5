package natsinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationJobCodec(t *testing.T) {
	original := NotificationJob{
		ID:             "6c1a8f8e-0000-0000-0000-000000000000",
		Kind:           INTERVIEW_REQUEST_JOB_KIND,
		RequestID:      42,
		ArtistID:       7,
		ArtistName:     "DJ Static",
		ArtistEmail:    "static@example.com",
		ArtistPhone:    "+15551230000",
		RequesterName:  "Sam",
		RequesterEmail: "sam@example.com",
		Message:        "We would love to interview you.",
		CreatedAt:      time.Date(2024, time.March, 3, 12, 30, 0, 0, time.UTC),
	}

	data, err := original.Marshal()
	require.NoError(t, err)

	var decoded NotificationJob
	require.NoError(t, decoded.Unmarshal(data))
	assert.Equal(t, original, decoded)
}

func TestNotificationJobUnmarshalRejectsBadPayload(t *testing.T) {
	var job NotificationJob
	assert.Error(t, job.Unmarshal([]byte("{not json")))
	assert.Error(t, job.Unmarshal([]byte(`{"created_at":"yesterday"}`)))
}

func TestNotificationsStreamSubject(t *testing.T) {
	subject := NotificationsStream_NewJobSubject(INTERVIEW_REQUEST_JOB_KIND, "job-1")
	assert.Equal(t, "notification.interview_request.job-1", subject)
}

func TestNotificationsStreamConsumerConfig(t *testing.T) {
	stream, subject, subOpts, config := NotificationsStream_NewJobConsumerConfig("notifier-dispatch")

	assert.Equal(t, NOTIFICATIONS_STREAM_CONFIG.Name, stream)
	assert.Equal(t, NOTIFICATIONS_STREAM_ANY_JOB_SUBJECT, subject)
	assert.NotEmpty(t, subOpts)
	assert.Equal(t, "notifier-dispatch", config.Durable)
	assert.Equal(t, 1, config.MaxDeliver)
}
