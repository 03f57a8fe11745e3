package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkosev/design-site-backend/errs"
	"github.com/vkosev/design-site-backend/models"
)

func testMailer(t *testing.T, baseURL string) *Mailer {
	t.Helper()
	mailer, err := NewMailer(map[string]string{
		"RESEND_API_KEY":    "re_test_key",
		"RESEND_FROM_EMAIL": "Portfolio <noreply@example.com>",
		"RESEND_BASE_URL":   baseURL,
	})
	require.NoError(t, err)
	return mailer
}

func TestNewMailerRequiresCredentials(t *testing.T) {
	_, err := NewMailer(map[string]string{"RESEND_FROM_EMAIL": "a@b.co"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")

	_, err = NewMailer(map[string]string{"RESEND_API_KEY": "re_x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_FROM_EMAIL")
}

func TestSendPostsToEmailsEndpoint(t *testing.T) {
	var captured ResendEmailRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(ResendEmailResponse{ID: "email_123"})
	}))
	defer server.Close()

	mailer := testMailer(t, server.URL)
	err := mailer.Send(context.Background(), "Hi there", "<p>Hi</p>", []string{"owner@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", auth)
	assert.Equal(t, "Portfolio <noreply@example.com>", captured.From)
	assert.Equal(t, []string{"owner@example.com"}, captured.To)
	assert.Equal(t, "Hi there", captured.Subject)
	assert.Equal(t, "<p>Hi</p>", captured.Html)
}

func TestSendRequiresRecipients(t *testing.T) {
	mailer := testMailer(t, "http://unused.invalid")
	err := mailer.Send(context.Background(), "s", "b", nil)
	require.Error(t, err)
}

func TestSendClassifiesAPIErrors(t *testing.T) {
	status := http.StatusUnauthorized
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(ResendErrorResponse{Message: "API key is invalid"})
	}))
	defer server.Close()

	mailer := testMailer(t, server.URL)

	err := mailer.Send(context.Background(), "s", "b", []string{"a@b.co"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidAPIKey))

	status = http.StatusTooManyRequests
	err = mailer.Send(context.Background(), "s", "b", []string{"a@b.co"})
	require.Error(t, err)
	assert.True(t, errs.IsRateLimitExceeded(err))

	status = http.StatusBadGateway
	err = mailer.Send(context.Background(), "s", "b", []string{"a@b.co"})
	require.Error(t, err)
	assert.True(t, errs.IsDispatchUnavailable(err))
}

func TestContactEmailHTMLEscapesInput(t *testing.T) {
	html := ContactEmailHTML(models.ContactMessage{
		FirstName: "Jane",
		LastName:  "<script>",
		Email:     "jane@example.com",
		Subject:   "Logos & Branding",
		Message:   "first line\nsecond line",
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Logos &amp; Branding")
	assert.Contains(t, html, "first line<br>second line")
	assert.Contains(t, html, "jane@example.com")
}
