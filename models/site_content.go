package models

import (
	"time"

	"github.com/google/uuid"
)

// Content kinds. Informational only: the editor uses them to pick an input
// widget, storage does not care.
const (
	ContentTypeText     = "text"
	ContentTypeTextarea = "textarea"
	ContentTypeURL      = "url"
	ContentTypeBoolean  = "boolean"
	ContentTypeJSON     = "json"
)

// SiteContent represents one overridable piece of site copy, unique on
// (section, key). Writes are idempotent upserts keyed on that pair.
type SiteContent struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Section   string    `json:"section" db:"section" gorm:"type:text;not null;uniqueIndex:idx_site_content_section_key"`
	Key       string    `json:"key" db:"key" gorm:"type:text;not null;uniqueIndex:idx_site_content_section_key"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null"`
	Type      string    `json:"type" db:"type" gorm:"type:text;not null;default:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
