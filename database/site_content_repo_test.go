package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkosev/design-site-backend/content"
	"github.com/vkosev/design-site-backend/models"
)

func TestUpsertInsertsThenUpdates(t *testing.T) {
	repo := newTestDB(t).SiteContentRepo()

	first := models.SiteContent{Section: "hero", Key: "greeting", Value: "Hello"}
	require.NoError(t, repo.Upsert(&first))

	// Same (section, key), new value: must update in place, not add a row
	second := models.SiteContent{Section: "hero", Key: "greeting", Value: "Welcome"}
	require.NoError(t, repo.Upsert(&second))

	items, err := repo.FindBySection("hero")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Welcome", items[0].Value)
	assert.Equal(t, first.ID, items[0].ID, "row identity survives the upsert")
}

func TestUpsertIsIdempotent(t *testing.T) {
	repo := newTestDB(t).SiteContentRepo()

	for i := 0; i < 3; i++ {
		item := models.SiteContent{Section: "about", Key: "title", Value: "Behind The Scenes"}
		require.NoError(t, repo.Upsert(&item))
	}

	items, err := repo.FindBySection("about")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpsertDefaultsType(t *testing.T) {
	repo := newTestDB(t).SiteContentRepo()

	item := models.SiteContent{Section: "footer", Key: "copyright", Value: "VK"}
	require.NoError(t, repo.Upsert(&item))
	assert.Equal(t, models.ContentTypeText, item.Type)

	typed := models.SiteContent{Section: "footer", Key: "instagram_url", Value: "https://example.com", Type: models.ContentTypeURL}
	require.NoError(t, repo.Upsert(&typed))
	assert.Equal(t, models.ContentTypeURL, typed.Type)
}

func TestSameKeyInDifferentSectionsCoexists(t *testing.T) {
	repo := newTestDB(t).SiteContentRepo()

	require.NoError(t, repo.Upsert(&models.SiteContent{Section: "contact", Key: "email", Value: "a@example.com"}))
	require.NoError(t, repo.Upsert(&models.SiteContent{Section: "footer", Key: "email", Value: "b@example.com"}))

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpsertThenResolve(t *testing.T) {
	repo := newTestDB(t).SiteContentRepo()

	require.NoError(t, repo.Upsert(&models.SiteContent{
		Section: content.SectionHero, Key: "greeting", Value: "Hello",
	}))

	resolved := content.NewResolver(repo).Resolve(context.Background(), content.SectionHero)
	assert.Equal(t, "Hello", resolved["greeting"])
	// Keys the editor never touched keep their compiled-in values
	assert.Equal(t, content.Defaults(content.SectionHero)["name"], resolved["name"])
}
