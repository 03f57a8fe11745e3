package database

import (
	"gorm.io/gorm"

	"github.com/vkosev/design-site-backend/models"
)

type Database struct {
	projectRepo      *ProjectRepo
	projectImageRepo *ProjectImageRepo
	siteContentRepo  *SiteContentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:      NewProjectRepo(db),
		projectImageRepo: NewProjectImageRepo(db),
		siteContentRepo:  NewSiteContentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

func (d Database) SiteContentRepo() *SiteContentRepo {
	return d.siteContentRepo
}

// Migrate creates or updates the backing tables for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.ProjectImage{},
		&models.SiteContent{},
	)
}
