// Package content resolves the editable copy for each page section. Compiled-in
// defaults always apply first; rows from the content table overlay them when
// the table is reachable. Resolution is best effort and never fails.
package content

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/models"
)

// Store is the slice of the content table the resolver reads.
type Store interface {
	FindBySection(section string) ([]*models.SiteContent, error)
}

type Resolver struct {
	store  Store
	logger zerolog.Logger
}

func NewResolver(store Store) *Resolver {
	logger := log.With().Str("component", "contentResolver").Logger()
	return &Resolver{store: store, logger: logger}
}

// Resolve returns the content mapping for a section: the compiled-in defaults
// overlaid with whatever rows the store holds for that section. Stored keys
// outside the default key set are still applied. Any store failure is logged
// and swallowed; the defaults come back unchanged. Resolve never returns an
// error so rendering is never blocked on the content table.
func (r *Resolver) Resolve(ctx context.Context, section string) map[string]string {
	resolved := Defaults(section)

	items, err := r.store.FindBySection(section)
	if err != nil {
		r.logger.Warn().Err(err).Str("section", section).Msg("content store unreachable, serving defaults")
		return resolved
	}

	for _, item := range items {
		resolved[item.Key] = item.Value
	}
	return resolved
}
