package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/config"
	contentpkg "github.com/vkosev/design-site-backend/content"
	"github.com/vkosev/design-site-backend/database"
	"github.com/vkosev/design-site-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router, err := newRouter(db, withConfig(c), withStartupTime(startupTime))
	if err != nil {
		return Server{}, err
	}

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(db database.Database, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	// Content resolution reads through the same store the editor writes
	resolver := contentpkg.NewResolver(db.SiteContentRepo())

	// Outbound mail dispatch. A missing Resend configuration is tolerated:
	// the relay endpoint then reports dispatch failure and the contact form's
	// fallback path still works.
	mailer, err := services.NewMailer(router.config)
	if err != nil {
		log.Warn().Err(err).Msg("mail dispatch not configured, relay endpoint will fail over to the mail-client path")
		mailer = nil
	}

	imageStore, err := services.NewImageStoreFromConfig(context.Background(), router.config)
	if err != nil {
		return nil, fmt.Errorf("initialize image store: %w", err)
	}

	handlers, err := initializeHandlers(db, router.config, resolver, mailer, imageStore)
	if err != nil {
		return nil, err
	}

	authMiddleware, err := newAuthMiddleware(router.config)
	if err != nil {
		return nil, err
	}

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	setupRoutes(chiRouter, handlers, authMiddleware, corsMiddleware(acceptedOrigins))

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
