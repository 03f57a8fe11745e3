package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/database"
	"github.com/vkosev/design-site-backend/errs"
	"github.com/vkosev/design-site-backend/models"
	"github.com/vkosev/design-site-backend/services"
)

const maxUploadSize = 32 << 20 // 32MB across the whole multipart form

type imageHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectImageRepo *database.ProjectImageRepo
	projectRepo      *database.ProjectRepo
	imageStore       services.ImageStore
}

func newImageHandler(projectImageRepo *database.ProjectImageRepo, projectRepo *database.ProjectRepo, imageStore services.ImageStore) imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()

	return imageHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectImageRepo: projectImageRepo,
		projectRepo:      projectRepo,
		imageStore:       imageStore,
	}
}

// uploadImages stores uploaded files and creates their image records
// @Summary Upload project images
// @Description Given N files, stores each through the image store and creates N ordered ProjectImage records for the project
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param images formData file true "Image files"
// @Success 201 {array} models.ProjectImage "Created image records"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID or form"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/images [post]
func (h imageHandler) uploadImages() http.HandlerFunc {
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

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("images"))
			return
		}

		created := make([]models.ProjectImage, 0, len(files))
		for i, header := range files {
			file, err := header.Open()
			if err != nil {
				h.responder.WriteError(w, errs.NewMalformedPayloadError("image file", err))
				return
			}

			url, err := h.imageStore.Store(r.Context(), header.Filename, file)
			file.Close()
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store image", err))
				return
			}

			caption := fmt.Sprintf("New image %d", i+1)
			image := models.ProjectImage{
				ProjectID:    projectID,
				ImageURL:     url,
				Caption:      &caption,
				DisplayOrder: i,
			}
			if err := h.projectImageRepo.Add(&image); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create", "project image", err))
				return
			}
			created = append(created, image)
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, created)
	}
}

// updateCaption sets the caption on one image
// @Summary Update image caption
// @Tags Images
// @Accept json
// @Produce json
// @Param imageID path string true "Image ID" format(uuid)
// @Success 200 {object} map[string]string "Update confirmation"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid imageID"
// @Router /image/{imageID}/caption [put]
func (h imageHandler) updateCaption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		var body struct {
			Caption string `json:"caption"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("caption", err))
			return
		}

		if err := h.projectImageRepo.UpdateCaption(imageID, body.Caption); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update caption of", "project image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "updated"})
	}
}

// deleteImage removes one image record
// @Summary Delete project image
// @Tags Images
// @Produce json
// @Param imageID path string true "Image ID" format(uuid)
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid imageID"
// @Router /image/{imageID} [delete]
func (h imageHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		if err := h.projectImageRepo.Delete(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "deleted"})
	}
}
