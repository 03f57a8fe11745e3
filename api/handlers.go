package api

import (
	"github.com/vkosev/design-site-backend/content"
	"github.com/vkosev/design-site-backend/database"
	"github.com/vkosev/design-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, cfg map[string]string, resolver *content.Resolver, mailer *services.Mailer, imageStore services.ImageStore) (*routeHandlers, error) {
	authHandler, err := newAuthHandler(cfg)
	if err != nil {
		return nil, err
	}

	// A nil *Mailer must stay a nil interface inside the handler
	var sender mailSender
	if mailer != nil {
		sender = mailer
	}
	contactHandler, err := newContactHandler(cfg, sender, resolver)
	if err != nil {
		return nil, err
	}

	return &routeHandlers{
		projectHandler: newProjectHandler(db.ProjectRepo(), db.ProjectImageRepo()),
		imageHandler:   newImageHandler(db.ProjectImageRepo(), db.ProjectRepo(), imageStore),
		contentHandler: newContentHandler(db.SiteContentRepo(), resolver),
		contactHandler: contactHandler,
		authHandler:    authHandler,
	}, nil
}
