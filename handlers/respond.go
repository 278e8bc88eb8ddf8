package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"gymnexa/backend"
	"gymnexa/middleware"
	"gymnexa/services/forms"
	"gymnexa/services/messages"
	"gymnexa/services/session"
	"gymnexa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bindUpdates decodes a single FieldUpdate or a list of them.
func bindUpdates(c *gin.Context) ([]forms.FieldUpdate, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Richiesta non valida", err.Error())
		return nil, false
	}
	updates, err := forms.ParseUpdates(body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Campo non valido", err.Error())
		return nil, false
	}
	return updates, true
}

// formFile reads an optional multipart file. A missing field yields nil.
func formFile(c *gin.Context, field string) (*backend.File, func(), error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &backend.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}

// statusFor maps a failed external call to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, backend.ErrUnconfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// backendError logs err and renders the generic message for it.
func backendError(c *gin.Context, msg string, err error) {
	getLogger(c).Error(msg, zap.String("path", c.FullPath()), zap.Error(err))
	if errors.Is(err, backend.ErrUnconfigured) {
		msg = messages.ServiceDisabled
	}
	c.JSON(statusFor(err), utils.ErrorResponse{Message: msg})
}

// sessionContext carries the request session so auth-state changes land on it.
func sessionContext(c *gin.Context) context.Context {
	return session.WithSession(c.Request.Context(), middleware.Session(c))
}
