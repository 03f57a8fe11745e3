package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentpkg "github.com/vkosev/design-site-backend/content"
	"github.com/vkosev/design-site-backend/models"
)

func TestGetSectionServesDefaults(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)

	recorder := doJSON(t, router, http.MethodGet, "/content/hero", nil, nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	resolved := decodeBody[map[string]string](t, recorder)
	assert.Equal(t, contentpkg.Defaults(contentpkg.SectionHero), resolved)
}

func TestUpsertThenGetSection(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)
	headers := loginOperator(t, router)

	edit := ContentForm{Section: "hero", Key: "greeting", Value: "Hello"}
	recorder := doJSON(t, router, http.MethodPut, "/admin/content", edit, headers)
	require.Equal(t, http.StatusOK, recorder.Code)
	row := decodeBody[models.SiteContent](t, recorder)
	assert.Equal(t, "Hello", row.Value)
	assert.Equal(t, models.ContentTypeText, row.Type)

	recorder = doJSON(t, router, http.MethodGet, "/content/hero", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	resolved := decodeBody[map[string]string](t, recorder)
	assert.Equal(t, "Hello", resolved["greeting"])
	// Untouched keys keep their compiled-in values
	assert.Equal(t, contentpkg.Defaults(contentpkg.SectionHero)["name"], resolved["name"])
}

func TestUpsertContentValidation(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)
	headers := loginOperator(t, router)

	recorder := doJSON(t, router, http.MethodPut, "/admin/content",
		ContentForm{Key: "greeting", Value: "x"}, headers)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(t, router, http.MethodPut, "/admin/content",
		ContentForm{Section: "hero", Value: "x"}, headers)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListContentEmptyIsJSONArray(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)
	headers := loginOperator(t, router)

	recorder := doJSON(t, router, http.MethodGet, "/admin/content", nil, headers)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]", recorder.Body.String())
}

func TestUpsertIsIdempotentThroughAPI(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)
	headers := loginOperator(t, router)

	for _, value := range []string{"first", "second"} {
		recorder := doJSON(t, router, http.MethodPut, "/admin/content",
			ContentForm{Section: "footer", Key: "copyright", Value: value}, headers)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := doJSON(t, router, http.MethodGet, "/admin/content", nil, headers)
	require.Equal(t, http.StatusOK, recorder.Code)
	rows := decodeBody[[]models.SiteContent](t, recorder)
	require.Len(t, rows, 1)
	assert.Equal(t, "second", rows[0].Value)
}
