package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site surface, the email relay, and the
// operator-only editor surface. The relay lives in its own group: its contract
// is CORS-open to every origin, so the app-wide origin policy must never run
// in front of it.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, appCORS func(http.Handler) http.Handler) {
	// Public read surface and login
	r.Group(func(r chi.Router) {
		r.Use(appCORS)
		r.Use(HTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/content/{section}", handlers.contentHandler.getSection())

		r.Post("/login", handlers.authHandler.login())

		r.Post("/contact/submit", handlers.contactHandler.submit())
	})

	// Contact relay: the endpoint the submission chain's primary path targets.
	// Answers pre-flight OPTIONS itself and always allows origin "*".
	r.Group(func(r chi.Router) {
		r.Use(relayCORS)
		r.Use(HTTPLoggingMiddleware)

		r.Post("/contact/send", handlers.contactHandler.sendEmail())
		r.Options("/contact/send", handlers.contactHandler.preflight())
	})

	// Editor surface, restricted to the designated operator
	r.Group(func(r chi.Router) {
		r.Use(appCORS)
		r.Use(authMiddleware.authenticate)
		r.Use(HTTPLoggingMiddleware)

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/project/{projectID}/images", handlers.imageHandler.uploadImages())
		r.Put("/image/{imageID}/caption", handlers.imageHandler.updateCaption())
		r.Delete("/image/{imageID}", handlers.imageHandler.deleteImage())

		r.Get("/admin/content", handlers.contentHandler.listContent())
		r.Put("/admin/content", handlers.contentHandler.upsertContent())

		r.Post("/logout", handlers.authHandler.logout())
	})
}
