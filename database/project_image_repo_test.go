package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkosev/design-site-backend/models"
)

func TestImageFindByProjectOrdering(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db.ProjectRepo(), "gallery", 0)
	repo := db.ProjectImageRepo()

	require.NoError(t, repo.Add(&models.ProjectImage{ProjectID: project.ID, ImageURL: "https://example.com/2.jpg", DisplayOrder: 1}))
	require.NoError(t, repo.Add(&models.ProjectImage{ProjectID: project.ID, ImageURL: "https://example.com/1.jpg", DisplayOrder: 0}))

	images, err := repo.FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "https://example.com/1.jpg", images[0].ImageURL)
	assert.Equal(t, "https://example.com/2.jpg", images[1].ImageURL)
}

func TestImageUpdateCaption(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db.ProjectRepo(), "gallery", 0)
	repo := db.ProjectImageRepo()

	image := models.ProjectImage{ProjectID: project.ID, ImageURL: "https://example.com/1.jpg"}
	require.NoError(t, repo.Add(&image))

	require.NoError(t, repo.UpdateCaption(image.ID, "Final logo lockup"))

	images, err := repo.FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, images, 1)
	require.NotNil(t, images[0].Caption)
	assert.Equal(t, "Final logo lockup", *images[0].Caption)
}

func TestImageDelete(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db.ProjectRepo(), "gallery", 0)
	repo := db.ProjectImageRepo()

	image := models.ProjectImage{ProjectID: project.ID, ImageURL: "https://example.com/1.jpg"}
	require.NoError(t, repo.Add(&image))
	require.NoError(t, repo.Delete(image.ID))

	images, err := repo.FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, images)
}
