package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vkosev/design-site-backend/models"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectImageRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all project images ordered by display_order ascending
func (r *ProjectImageRepo) FindAll() ([]*models.ProjectImage, error) {
	var images []*models.ProjectImage
	err := r.db.Order("display_order asc").Find(&images).Error
	return images, err
}

// FindByProject returns the images belonging to one project, ordered by
// display_order ascending
func (r *ProjectImageRepo) FindByProject(projectID uuid.UUID) ([]*models.ProjectImage, error) {
	var images []*models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).Order("display_order asc").Find(&images).Error
	return images, err
}

// Add inserts a new project image into the database
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	return r.db.Create(image).Error
}

// UpdateCaption sets the caption of an existing image
func (r *ProjectImageRepo) UpdateCaption(id uuid.UUID, caption string) error {
	return r.db.Model(&models.ProjectImage{}).Where("id = ?", id).Update("caption", caption).Error
}

// Delete removes a project image from the database by id
func (r *ProjectImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectImage{}, "id = ?", id).Error
}
