package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project categories shown on the portfolio page. Anything else is rejected
// by the editor.
const (
	CategoryBranding     = "branding"
	CategoryWeb          = "web"
	CategoryPrint        = "print"
	CategoryIllustration = "illustration"
)

// ValidCategory reports whether category is one of the recognized portfolio
// categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryBranding, CategoryWeb, CategoryPrint, CategoryIllustration:
		return true
	}
	return false
}

// Project represents a portfolio entry with metadata
type Project struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Category     string    `json:"category" db:"category" gorm:"type:text;not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	Client       *string   `json:"client,omitempty" db:"client" gorm:"type:text"`
	Year         *string   `json:"year,omitempty" db:"year" gorm:"type:text"`
	Services     []string  `json:"services,omitempty" db:"services" gorm:"serializer:json"`
	IsFeatured   bool      `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	DisplayOrder int       `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	// Images are joined onto the project in memory by the editor, not loaded
	// through the ORM.
	Images []ProjectImage `json:"images,omitempty" gorm:"-"`
}

// SplitServices turns the editor form's comma-delimited services string into
// the ordered sequence that gets persisted. Blank entries are dropped.
func SplitServices(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var services []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			services = append(services, trimmed)
		}
	}
	return services
}

// JoinServices renders a persisted services sequence back into the editor
// form's comma-delimited string.
func JoinServices(services []string) string {
	return strings.Join(services, ", ")
}
