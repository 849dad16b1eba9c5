package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailSenderSendSuccess(t *testing.T) {
	var received emailPayload
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewEmailSender(EmailSenderConfig{
		APIKey:      "re_test_key",
		FromAddress: "team@deadpartymedia.com",
		BaseURL:     server.URL,
	})

	job := testJob()
	require.NoError(t, sender.Send(context.Background(), job))

	assert.Equal(t, "Bearer re_test_key", authHeader)
	assert.Equal(t, "team@deadpartymedia.com", received.From)
	assert.Equal(t, []string{"static@example.com"}, received.To)
	assert.Equal(t, "Interview Request from Dead Party Media", received.Subject)
	assert.Contains(t, received.Text, "Hello DJ Static")
	assert.Contains(t, received.Text, job.Message)
}

func TestEmailSenderSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	sender := NewEmailSender(EmailSenderConfig{
		APIKey:      "re_test_key",
		FromAddress: "team@deadpartymedia.com",
		BaseURL:     server.URL,
	})

	assert.Error(t, sender.Send(context.Background(), testJob()))
}

func TestEmailSenderEligibility(t *testing.T) {
	sender := NewEmailSender(EmailSenderConfig{})

	job := testJob()
	assert.True(t, sender.Eligible(job))

	job.ArtistEmail = ""
	assert.False(t, sender.Eligible(job))
}
