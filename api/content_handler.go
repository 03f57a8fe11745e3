package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/content"
	"github.com/vkosev/design-site-backend/database"
	"github.com/vkosev/design-site-backend/errs"
	"github.com/vkosev/design-site-backend/models"
)

type contentHandler struct {
	responder       Responder
	logger          zerolog.Logger
	siteContentRepo *database.SiteContentRepo
	resolver        *content.Resolver
}

func newContentHandler(siteContentRepo *database.SiteContentRepo, resolver *content.Resolver) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		siteContentRepo: siteContentRepo,
		resolver:        resolver,
	}
}

// getSection resolves the copy for one page section
// @Summary Resolve section content
// @Description Returns the section's compiled-in defaults overlaid with any stored overrides. Never fails; store errors fall back to defaults.
// @Tags Content
// @Produce json
// @Param section path string true "Section name (hero, about, contact, footer)"
// @Success 200 {object} map[string]string "Resolved key/value mapping"
// @Router /content/{section} [get]
func (h contentHandler) getSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := chi.URLParam(r, "section")
		resolved := h.resolver.Resolve(r.Context(), section)
		h.responder.WriteJSON(w, resolved)
	}
}

// listContent returns every stored content row for the editor's content tab
// @Summary List site content
// @Description Retrieves all content rows ordered by section
// @Tags Content
// @Produce json
// @Success 200 {array} models.SiteContent "Content rows"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching content"
// @Router /admin/content [get]
func (h contentHandler) listContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.siteContentRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "site content", err))
			return
		}
		if items == nil {
			items = []*models.SiteContent{}
		}
		h.responder.WriteJSON(w, items)
	}
}

// upsertContent inserts or updates one content row on its (section, key) pair
// @Summary Upsert site content
// @Description Idempotent insert-or-update keyed on the unique (section, key) pair. Returns the upserted row so the editor can apply it locally without a full reload.
// @Tags Content
// @Accept json
// @Produce json
// @Param content body ContentForm true "Content edit"
// @Success 200 {object} models.SiteContent "Upserted row"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing section or key"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error upserting content"
// @Router /admin/content [put]
func (h contentHandler) upsertContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form ContentForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("content", err))
			return
		}

		if form.Section == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("section"))
			return
		}
		if form.Key == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("key"))
			return
		}

		item := models.SiteContent{
			Section: form.Section,
			Key:     form.Key,
			Value:   form.Value,
			Type:    form.Type,
		}
		if err := h.siteContentRepo.Upsert(&item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "site content", err))
			return
		}

		if operator, err := ctxGetOperatorEmail(r.Context()); err == nil {
			h.logger.Info().
				Str("operator", operator).
				Str("section", item.Section).
				Str("key", item.Key).
				Msg("content updated")
		}

		h.responder.WriteJSON(w, item)
	}
}
