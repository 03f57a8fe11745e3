package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/config"
	"github.com/vkosev/design-site-backend/errs"
)

// authHandler issues session tokens for the single designated operator. The
// credential check is a fixed comparison against configured values; the
// contract is simply "authenticated means editor operations permitted".
type authHandler struct {
	responder        Responder
	logger           zerolog.Logger
	operatorEmail    string
	operatorPassword string
	sessionSecret    []byte
	sessionTTL       time.Duration
}

func newAuthHandler(cfg map[string]string) (authHandler, error) {
	operatorEmail, err := config.Require(cfg, "OPERATOR_EMAIL")
	if err != nil {
		return authHandler{}, err
	}
	operatorPassword, err := config.Require(cfg, "OPERATOR_PASSWORD")
	if err != nil {
		return authHandler{}, err
	}
	sessionSecret, err := config.Require(cfg, "SESSION_SECRET")
	if err != nil {
		return authHandler{}, err
	}

	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		operatorEmail:    operatorEmail,
		operatorPassword: operatorPassword,
		sessionSecret:    []byte(sessionSecret),
		sessionTTL:       time.Duration(config.GetInt(cfg, "SESSION_TTL_HOURS", 12)) * time.Hour,
	}, nil
}

// login checks the operator credentials and returns a session token
// @Summary Operator login
// @Description Authenticates the designated operator and issues a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Session token"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Router /login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form LoginForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		emailOK := subtle.ConstantTimeCompare([]byte(form.Email), []byte(h.operatorEmail)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(form.Password), []byte(h.operatorPassword)) == 1
		if !emailOK || !passwordOK {
			h.logger.Warn().Str("email", form.Email).Msg("rejected login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid credentials. Access denied."))
			return
		}

		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   h.operatorEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.sessionTTL)),
		})

		signed, err := token.SignedString(h.sessionSecret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign session token", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"token": signed})
	}
}

// logout acknowledges the end of an operator session
// @Summary Operator logout
// @Description Sessions are stateless tokens, so logout is an acknowledgment; the client discards its token
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string "Logout confirmation"
// @Router /logout [post]
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if operator, err := ctxGetOperatorEmail(r.Context()); err == nil {
			h.logger.Info().Str("operator", operator).Msg("operator logged out")
		}
		h.responder.WriteJSON(w, map[string]string{"status": "logged out"})
	}
}
