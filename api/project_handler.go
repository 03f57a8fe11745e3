package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/database"
	"github.com/vkosev/design-site-backend/errs"
	"github.com/vkosev/design-site-backend/models"
)

type projectHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectRepo      *database.ProjectRepo
	projectImageRepo *database.ProjectImageRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, projectImageRepo *database.ProjectImageRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectRepo:      projectRepo,
		projectImageRepo: projectImageRepo,
	}
}

// ProjectCollection represents the portfolio listing with image counts
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total,omitempty"`
}

// joinImages attaches each project's images, both sides already ordered by
// display_order. Images whose project no longer exists are dropped here, so a
// deleted project never resurfaces through its leftover rows.
func joinImages(projects []*models.Project, images []*models.ProjectImage) []models.Project {
	byProject := make(map[uuid.UUID][]models.ProjectImage, len(projects))
	for _, img := range images {
		byProject[img.ProjectID] = append(byProject[img.ProjectID], *img)
	}

	joined := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		p := *project
		p.Images = byProject[p.ID]
		joined = append(joined, p)
	}
	return joined
}

// getAllProjects retrieves all projects with their images
// @Summary Get all projects
// @Description Retrieves all projects ordered by display_order with their images joined in memory. Store failures yield an empty list, never an error page.
// @Tags Projects
// @Accept json
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects with images"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to load projects, serving empty list")
			h.responder.WriteJSON(w, ProjectCollection{Projects: []models.Project{}})
			return
		}

		images, err := h.projectImageRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to load project images, serving empty list")
			h.responder.WriteJSON(w, ProjectCollection{Projects: []models.Project{}})
			return
		}

		joined := joinImages(projects, images)
		h.responder.WriteJSON(w, ProjectCollection{Projects: joined, Total: len(joined)})
	}
}

// getProject retrieves a specific project by ID with its images
// @Summary Get project
// @Description Retrieves detailed information about a specific project by ID with its images
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details with images"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		images, err := h.projectImageRepo.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find images for", "project", err))
			return
		}
		for _, img := range images {
			project.Images = append(project.Images, *img)
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project from the editor form
// @Summary Create project
// @Description Creates a new portfolio project. The services field arrives comma-delimited and is stored as an ordered sequence.
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body ProjectForm true "Project form"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form ProjectForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if form.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if !models.ValidCategory(form.Category) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("category", "must be one of branding, web, print, illustration"))
			return
		}

		project := form.ToModel()
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, project)
	}
}

// updateProject applies the editor form to an existing project
// @Summary Update project
// @Description Partial update keyed by project ID; a single-row write with no transactional grouping across fields
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body ProjectForm true "Project form"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var form ProjectForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if !models.ValidCategory(form.Category) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("category", "must be one of branding, web, print, illustration"))
			return
		}

		if err := h.projectRepo.Update(projectID, form.ToFields()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject removes a project and its images
// @Summary Delete project
// @Description Deletes a project by ID; its images are removed with it
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "deleted"})
	}
}
