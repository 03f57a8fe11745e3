package api

import (
	"encoding/json"

	"github.com/vkosev/design-site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	imageHandler   imageHandler
	contentHandler contentHandler
	contactHandler contactHandler
	authHandler    authHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ProjectForm is the editor's project form. Services travel as one
// comma-delimited string and are split into an ordered sequence on save.
type ProjectForm struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Client       string `json:"client"`
	Year         string `json:"year"`
	Services     string `json:"services"`
	IsFeatured   bool   `json:"is_featured"`
	DisplayOrder int    `json:"display_order"`
}

// ToModel builds a new Project from the form.
func (f ProjectForm) ToModel() models.Project {
	project := models.Project{
		Title:        f.Title,
		Category:     f.Category,
		Description:  f.Description,
		Services:     models.SplitServices(f.Services),
		IsFeatured:   f.IsFeatured,
		DisplayOrder: f.DisplayOrder,
	}
	if f.Client != "" {
		client := f.Client
		project.Client = &client
	}
	if f.Year != "" {
		year := f.Year
		project.Year = &year
	}
	return project
}

// ToFields renders the form as the column map for a partial update.
// Column-map updates bypass the model's serializer, so the services sequence
// is stored as its JSON text here.
func (f ProjectForm) ToFields() map[string]any {
	var client, year *string
	if f.Client != "" {
		client = &f.Client
	}
	if f.Year != "" {
		year = &f.Year
	}
	services, _ := json.Marshal(models.SplitServices(f.Services))
	return map[string]any{
		"title":         f.Title,
		"category":      f.Category,
		"description":   f.Description,
		"client":        client,
		"year":          year,
		"services":      string(services),
		"is_featured":   f.IsFeatured,
		"display_order": f.DisplayOrder,
	}
}

// FormFromProject loads a stored project back into the editor form,
// re-joining the services sequence into its comma-delimited string.
func FormFromProject(p models.Project) ProjectForm {
	form := ProjectForm{
		Title:        p.Title,
		Category:     p.Category,
		Description:  p.Description,
		Services:     models.JoinServices(p.Services),
		IsFeatured:   p.IsFeatured,
		DisplayOrder: p.DisplayOrder,
	}
	if p.Client != nil {
		form.Client = *p.Client
	}
	if p.Year != nil {
		form.Year = *p.Year
	}
	return form
}

// ContentForm is one editor content edit, upserted on (section, key).
type ContentForm struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Value   string `json:"value"`
	Type    string `json:"type,omitempty"`
}

// LoginForm is the operator login request.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
