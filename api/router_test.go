package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	contentpkg "github.com/vkosev/design-site-backend/content"
	"github.com/vkosev/design-site-backend/database"
	"github.com/vkosev/design-site-backend/services"
)

const (
	testOperatorEmail    = "operator@example.com"
	testOperatorPassword = "correct-horse-battery"
	testSessionSecret    = "test-session-secret"
)

func testConfig() map[string]string {
	return map[string]string{
		"OPERATOR_EMAIL":    testOperatorEmail,
		"OPERATOR_PASSWORD": testOperatorPassword,
		"SESSION_SECRET":    testSessionSecret,
	}
}

// testAllowedOrigin restricts the app-wide CORS policy in tests, proving the
// relay endpoint stays open regardless of that policy.
const testAllowedOrigin = "https://vkdesigns.example"

// newTestRouter wires the full route surface, with the production middleware
// stack, against an in-memory database. A nil mailer leaves the relay endpoint
// unconfigured, matching a deployment without dispatch credentials.
func newTestRouter(t *testing.T, cfg map[string]string, mailer *services.Mailer) (http.Handler, database.Database) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gdb))
	db := database.New(gdb)

	resolver := contentpkg.NewResolver(db.SiteContentRepo())
	handlers, err := initializeHandlers(db, cfg, resolver, mailer, services.NewPlaceholderStore())
	require.NoError(t, err)

	authMiddleware, err := newAuthMiddleware(cfg)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(LogInternalServerErrors)
	setupRoutes(router, handlers, authMiddleware, corsMiddleware([]string{testAllowedOrigin}))
	return router, db
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

// loginOperator logs in with the test credentials and returns the Bearer header.
func loginOperator(t *testing.T, router http.Handler) map[string]string {
	t.Helper()

	recorder := doJSON(t, router, http.MethodPost, "/login", LoginForm{
		Email:    testOperatorEmail,
		Password: testOperatorPassword,
	}, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody[map[string]string](t, recorder)
	require.NotEmpty(t, body["token"])
	return map[string]string{"Authorization": "Bearer " + body["token"]}
}
