package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/config"
	"github.com/vkosev/design-site-backend/errs"
	"github.com/vkosev/design-site-backend/models"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends email through the Resend HTTP API. The base URL is
// configurable so tests can point it at a local server.
type Mailer struct {
	apiKey    string
	fromEmail string
	baseURL   string
	client    *http.Client
	logger    zerolog.Logger
}

// NewMailer builds a Mailer from configuration. Requires RESEND_API_KEY and
// RESEND_FROM_EMAIL; RESEND_BASE_URL overrides the API host.
func NewMailer(cfg map[string]string) (*Mailer, error) {
	apiKey, err := config.Require(cfg, "RESEND_API_KEY")
	if err != nil {
		return nil, err
	}
	fromEmail, err := config.Require(cfg, "RESEND_FROM_EMAIL")
	if err != nil {
		return nil, err
	}

	return &Mailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		baseURL:   config.GetString(cfg, "RESEND_BASE_URL", defaultResendBaseURL),
		client:    &http.Client{},
		logger:    log.With().Str("service", "mailer").Logger(),
	}, nil
}

// Send dispatches one HTML email to the given recipients.
func (m *Mailer) Send(ctx context.Context, subject, html string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := ResendEmailRequest{
		From:    m.fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    html,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create mail dispatch request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mail dispatch service: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read mail dispatch response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewDispatchError(resp.StatusCode, errorResp.Message)
		}
		return errs.NewDispatchError(resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to parse mail dispatch response, but email was sent")
	} else {
		m.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully dispatched email")
	}

	return nil
}

// ContactEmailHTML renders the relayed contact-form email body.
func ContactEmailHTML(msg models.ContactMessage) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>New Contact Form Submission</h2>`)
	b.WriteString(`<h3>Contact Details:</h3>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, htmlEscape(msg.FullName()))
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, htmlEscape(msg.Email))
	fmt.Fprintf(&b, `<p><strong>Subject:</strong> %s</p>`, htmlEscape(msg.Subject))
	b.WriteString(`<h3>Message:</h3>`)
	fmt.Fprintf(&b, `<p>%s</p>`, strings.ReplaceAll(htmlEscape(msg.Message), "\n", "<br>"))
	fmt.Fprintf(&b, `<p><strong>Reply to:</strong> %s</p>`, htmlEscape(msg.Email))
	b.WriteString(`<hr><p style="font-size: 14px;">This message was sent from the portfolio contact form.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
