package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vkosev/design-site-backend/models"
)

type SiteContentRepo struct {
	db *gorm.DB
}

func NewSiteContentRepo(db *gorm.DB) *SiteContentRepo {
	return &SiteContentRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *SiteContentRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns every content row ordered by section, for the editor's
// content tab
func (r *SiteContentRepo) FindAll() ([]*models.SiteContent, error) {
	var items []*models.SiteContent
	err := r.db.Order("section asc").Find(&items).Error
	return items, err
}

// FindBySection returns the content rows for one section
func (r *SiteContentRepo) FindBySection(section string) ([]*models.SiteContent, error) {
	var items []*models.SiteContent
	err := r.db.Where("section = ?", section).Find(&items).Error
	return items, err
}

// Upsert inserts or updates one content row keyed on the unique
// (section, key) pair. The write is idempotent; repeating it with the same
// value leaves a single row.
func (r *SiteContentRepo) Upsert(item *models.SiteContent) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Type == "" {
		item.Type = models.ContentTypeText
	}
	item.UpdatedAt = time.Now().UTC()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type", "updated_at"}),
	}).Create(item).Error
}
