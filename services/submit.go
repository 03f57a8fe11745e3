package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/models"
)

// Status is the state of one contact submission. A submission moves from
// idle through submitting to exactly one terminal state.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "idle":
		*s = StatusIdle
	case "submitting":
		*s = StatusSubmitting
	case "succeeded":
		*s = StatusSucceeded
	case "failed":
		*s = StatusFailed
	default:
		return fmt.Errorf("unknown submission status %q", name)
	}
	return nil
}

// Outcome is the single user-visible result of a submission, regardless of
// which delivery path actually ran.
type Outcome struct {
	Status     Status `json:"status"`
	Message    string `json:"message"`
	MailtoLink string `json:"mailto_link,omitempty"`
}

// dispatchResponse is the shape the email dispatch endpoint answers with.
type dispatchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

const defaultSuccessMessage = "Message sent successfully! I'll get back to you soon."
const fallbackSuccessMessage = "Your email client has been opened with the message. Please send the email from there."

// Submitter runs the contact-form delivery chain. Path A posts the message to
// the email dispatch endpoint. On any failure there, Path B builds a mail-client
// compose link and invokes the opener; that counts as success with a message
// that makes the degradation explicit. Only a failure of the opener itself
// reaches the failed state, which surfaces the operator's direct contact info.
type Submitter struct {
	endpoint     string
	apiKey       string
	contactEmail string
	contactPhone string
	client       *http.Client
	openMail     func(link string) error
	logger       zerolog.Logger
}

func NewSubmitter(endpoint, apiKey, contactEmail, contactPhone string, opts ...func(*Submitter)) *Submitter {
	s := &Submitter{
		endpoint:     endpoint,
		apiKey:       apiKey,
		contactEmail: contactEmail,
		contactPhone: contactPhone,
		client:       &http.Client{},
		logger:       log.With().Str("service", "contactSubmitter").Logger(),
	}
	// By default the compose link is handed back in the Outcome for the
	// caller to open; invoking it locally is opt-in.
	s.openMail = func(string) error { return nil }
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func WithHTTPClient(client *http.Client) func(*Submitter) {
	return func(s *Submitter) {
		s.client = client
	}
}

func WithMailOpener(open func(link string) error) func(*Submitter) {
	return func(s *Submitter) {
		s.openMail = open
	}
}

// Submit runs one delivery attempt for a fully-filled ContactMessage. A
// validation failure is returned as an error before any network call; every
// other outcome is terminal and carried in the Outcome. There are no retries;
// each call is a single pass through the chain.
func (s *Submitter) Submit(ctx context.Context, msg models.ContactMessage) (Outcome, error) {
	if err := msg.Validate(); err != nil {
		return Outcome{Status: StatusIdle}, err
	}

	if message, err := s.tryPrimary(ctx, msg); err == nil {
		return Outcome{Status: StatusSucceeded, Message: message}, nil
	} else {
		s.logger.Warn().Err(err).Msg("primary delivery path failed, falling back to mail client")
	}

	link := BuildMailto(s.contactEmail, msg)
	if err := s.openMail(link); err != nil {
		s.logger.Error().Err(err).Msg("mail client fallback failed")
		return Outcome{
			Status: StatusFailed,
			Message: fmt.Sprintf(
				"Unable to send email automatically. Please contact me directly at %s or call %s.",
				s.contactEmail, s.contactPhone),
		}, nil
	}

	return Outcome{
		Status:     StatusSucceeded,
		Message:    fallbackSuccessMessage,
		MailtoLink: link,
	}, nil
}

// tryPrimary issues the single Path A request. Any transport error, non-2xx
// status, or malformed body is reported as an error so the caller falls back.
func (s *Submitter) tryPrimary(ctx context.Context, msg models.ContactMessage) (string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("serialize message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("dispatch request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read dispatch response: %w", err)
	}

	var result dispatchResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", fmt.Errorf("parse dispatch response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Error != "" {
			return "", fmt.Errorf("dispatch endpoint: %s", result.Error)
		}
		return "", fmt.Errorf("dispatch endpoint returned status %d", resp.StatusCode)
	}

	message := result.Message
	if message == "" {
		message = defaultSuccessMessage
	}
	return message, nil
}
