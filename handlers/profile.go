package handlers

import (
	"context"
	"errors"
	"net/http"

	"gymnexa/backend"
	"gymnexa/middleware"
	"gymnexa/models"
	"gymnexa/services/messages"
	"gymnexa/services/profile"
	"gymnexa/utils"

	"github.com/gin-gonic/gin"
)

// GetProfileHandler handles GET /api/profile. Demo sessions get an empty profile.
func (h *HandlerBundle) GetProfileHandler(c *gin.Context) {
	c.JSON(http.StatusOK, profileView(middleware.Session(c)))
}

// EditProfileHandler handles POST /api/profile/edit.
func (h *HandlerBundle) EditProfileHandler(c *gin.Context) {
	s := middleware.Session(c)
	if err := s.Editor.Edit(s.Profile); err != nil {
		utils.JSONError(c, http.StatusConflict, "Nessun profilo da modificare", err.Error())
		return
	}
	c.JSON(http.StatusOK, profileView(s))
}

// CancelEditHandler handles POST /api/profile/cancel.
func (h *HandlerBundle) CancelEditHandler(c *gin.Context) {
	s := middleware.Session(c)
	s.Editor.Cancel()
	c.JSON(http.StatusOK, profileView(s))
}

// UpdateProfileFormHandler handles PATCH /api/profile/form.
func (h *HandlerBundle) UpdateProfileFormHandler(c *gin.Context) {
	s := middleware.Session(c)
	updates, ok := bindUpdates(c)
	if !ok {
		return
	}
	for _, u := range updates {
		if err := s.Editor.Set(u); err != nil {
			if errors.Is(err, profile.ErrNotEditing) {
				utils.JSONError(c, http.StatusConflict, "Modifica non attiva", err.Error())
				return
			}
			fieldError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, profileView(s))
}

// SaveProfileHandler handles POST /api/profile/save.
func (h *HandlerBundle) SaveProfileHandler(c *gin.Context) {
	s := middleware.Session(c)
	saved, err := h.Profiles.Save(c.Request.Context(), s.UID(), s.Editor)
	if err != nil {
		if errors.Is(err, profile.ErrNotEditing) {
			utils.JSONError(c, http.StatusConflict, "Modifica non attiva", err.Error())
			return
		}
		if errors.Is(err, backend.ErrUnconfigured) {
			s.Editor.Error = messages.ServiceDisabled
		}
		c.JSON(statusFor(err), profileView(s))
		return
	}
	s.Profile = saved
	c.JSON(http.StatusOK, profileView(s))
}

// UploadPhotoHandler handles POST /api/profile/photo with the multipart field "file".
func (h *HandlerBundle) UploadPhotoHandler(c *gin.Context) {
	h.upload(c, h.Profiles.UploadPhoto)
}

// UploadDocumentHandler handles POST /api/profile/document with the multipart field "file".
func (h *HandlerBundle) UploadDocumentHandler(c *gin.Context) {
	h.upload(c, h.Profiles.UploadDocument)
}

type uploadFunc func(ctx context.Context, uid string, file backend.File) (*models.UserProfile, error)

func (h *HandlerBundle) upload(c *gin.Context, fn uploadFunc) {
	s := middleware.Session(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, utils.UploadLimit)
	file, closeFile, err := formFile(c, "file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File non valido", err.Error())
		return
	}
	defer closeFile()
	if file == nil {
		utils.JSONError(c, http.StatusBadRequest, "Nessun file selezionato", "")
		return
	}

	reloaded, err := fn(c.Request.Context(), s.UID(), *file)
	if err != nil {
		backendError(c, messages.UploadFailed, err)
		return
	}
	s.Profile = reloaded
	c.JSON(http.StatusOK, profileView(s))
}
