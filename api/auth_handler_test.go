package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesToken(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)

	headers := loginOperator(t, router)
	assert.Contains(t, headers["Authorization"], "Bearer ")
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)

	cases := []LoginForm{
		{Email: testOperatorEmail, Password: "wrong"},
		{Email: "intruder@example.com", Password: testOperatorPassword},
		{},
	}
	for _, form := range cases {
		recorder := doJSON(t, router, http.MethodPost, "/login", form, nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	}
}

func TestEditorRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)

	recorder := doJSON(t, router, http.MethodGet, "/admin/content", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/admin/content", nil,
		map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestEditorRoutesRejectForeignSubject(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)

	// Correctly signed token, wrong subject
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "someone-else@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSessionSecret))
	require.NoError(t, err)

	recorder := doJSON(t, router, http.MethodGet, "/admin/content", nil,
		map[string]string{"Authorization": "Bearer " + signed})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestEditorRoutesRejectExpiredToken(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testOperatorEmail,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	signed, err := token.SignedString([]byte(testSessionSecret))
	require.NoError(t, err)

	recorder := doJSON(t, router, http.MethodGet, "/admin/content", nil,
		map[string]string{"Authorization": "Bearer " + signed})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestEditorRoutesAdmitOperator(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)
	headers := loginOperator(t, router)

	recorder := doJSON(t, router, http.MethodGet, "/admin/content", nil, headers)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLogout(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), nil)
	headers := loginOperator(t, router)

	recorder := doJSON(t, router, http.MethodPost, "/logout", nil, headers)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/logout", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
