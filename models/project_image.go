package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectImage represents one image belonging to a project
type ProjectImage struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID    uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_image_project_id"`
	ImageURL     string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	Caption      *string   `json:"caption,omitempty" db:"caption" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
