package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/config"
	contentpkg "github.com/vkosev/design-site-backend/content"
	"github.com/vkosev/design-site-backend/errs"
	"github.com/vkosev/design-site-backend/models"
	"github.com/vkosev/design-site-backend/services"
)

// mailSender is the slice of the Mailer the relay endpoint uses.
type mailSender interface {
	Send(ctx context.Context, subject, html string, recipients []string) error
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	sender    mailSender
	resolver  *contentpkg.Resolver

	// newSubmitter builds the fallback chain with the resolved operator
	// contact details; swapped out in tests.
	newSubmitter func(contactEmail, contactPhone string) *services.Submitter
}

func newContactHandler(cfg map[string]string, sender mailSender, resolver *contentpkg.Resolver) (contactHandler, error) {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	port := config.GetString(cfg, "PORT", "8080")
	endpoint := config.GetString(cfg, "DISPATCH_ENDPOINT_URL",
		fmt.Sprintf("http://localhost:%s/contact/send", port))
	apiKey := config.GetString(cfg, "DISPATCH_API_KEY", "")

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sender:    sender,
		resolver:  resolver,
		newSubmitter: func(contactEmail, contactPhone string) *services.Submitter {
			return services.NewSubmitter(endpoint, apiKey, contactEmail, contactPhone)
		},
	}, nil
}

// relay response shapes are part of the endpoint contract and bypass the
// Responder's error envelope.
func (h contactHandler) writeRelayError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.logger.Error().Err(err).Msg("error writing relay response")
	}
}

// preflight answers the relay endpoint's CORS pre-flight with an empty 200.
// The relayCORS middleware sets the headers before this runs.
func (h contactHandler) preflight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// sendEmail relays a contact-form submission to the operator's inbox
// @Summary Relay contact message
// @Description Validates the five-field contact message and dispatches it as email to the operator. CORS-open.
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactMessage true "Contact message"
// @Success 200 {object} map[string]interface{} "success:true with confirmation message"
// @Failure 400 {object} map[string]string "Missing field or invalid email"
// @Failure 500 {object} map[string]string "Dispatch failure"
// @Router /contact/send [post]
func (h contactHandler) sendEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.writeRelayError(w, http.StatusBadRequest, "All fields are required")
			return
		}

		if msg.FirstName == "" || msg.LastName == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
			h.writeRelayError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		if !models.ValidEmail(msg.Email) {
			h.writeRelayError(w, http.StatusBadRequest, "Invalid email address")
			return
		}

		if h.sender == nil {
			h.logger.Error().Msg("mail dispatch not configured")
			h.writeRelayError(w, http.StatusInternalServerError, "Failed to send email")
			return
		}

		contact := h.resolver.Resolve(r.Context(), contentpkg.SectionContact)
		subject := "New Contact Form Message: " + msg.Subject
		html := services.ContactEmailHTML(msg)

		if err := h.sender.Send(r.Context(), subject, html, []string{contact["email"]}); err != nil {
			h.logger.Error().Err(err).Msg("failed to relay contact email")
			h.writeRelayError(w, http.StatusInternalServerError, "Failed to send email")
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Message sent successfully! I'll get back to you soon.",
		})
	}
}

// submit runs the full contact delivery chain for one message
// @Summary Submit contact message
// @Description Tries the primary dispatch path and degrades to a pre-filled mail-client compose link on failure. The outcome is terminal: succeeded (either path) or failed with manual contact info.
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactMessage true "Contact message"
// @Success 200 {object} services.Outcome "Terminal submission outcome"
// @Failure 400 {object} ErrorResponse "Validation failure, rejected before any delivery attempt"
// @Router /contact/submit [post]
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact message", err))
			return
		}

		contact := h.resolver.Resolve(r.Context(), contentpkg.SectionContact)
		submitter := h.newSubmitter(contact["email"], contact["phone"])

		outcome, err := submitter.Submit(r.Context(), msg)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		h.responder.WriteJSON(w, outcome)
	}
}
