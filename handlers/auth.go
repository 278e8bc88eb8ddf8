package handlers

import (
	"errors"
	"net/http"

	"gymnexa/backend"
	"gymnexa/middleware"
	"gymnexa/services/auth"
	"gymnexa/services/messages"
	"gymnexa/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// authFailure renders a failed sign-in inline.
func authFailure(c *gin.Context, err error) {
	var aerr *auth.Error
	if !errors.As(err, &aerr) {
		transitionError(c, err)
		return
	}
	status := http.StatusUnauthorized
	switch {
	case errors.Is(err, backend.ErrUnconfigured):
		status = http.StatusServiceUnavailable
	case aerr.Code == "" || aerr.Code == backend.CodeInternal:
		status = http.StatusBadGateway
	}
	c.JSON(status, utils.ErrorResponse{Message: aerr.Message, Details: aerr.Code})
}

// LoginHandler handles POST /api/auth/login.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	s := middleware.Session(c)
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Richiesta non valida", err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		s.AuthError = messages.RequiredFields
		c.JSON(http.StatusUnprocessableEntity, utils.ErrorResponse{Message: messages.RequiredFields})
		return
	}
	err := h.Auth.Login(c.Request.Context(), s, req.Email, req.Password)
	h.Metrics.ObserveSignIn("password", err)
	if err != nil {
		authFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(s))
}

// GoogleLoginHandler handles POST /api/auth/google with the ID token from the client popup.
func (h *HandlerBundle) GoogleLoginHandler(c *gin.Context) {
	s := middleware.Session(c)
	var req googleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Richiesta non valida", err.Error())
		return
	}
	_, err := h.Auth.Google(c.Request.Context(), s, req.IDToken)
	h.Metrics.ObserveSignIn("google", err)
	if err != nil {
		authFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(s))
}

// LogoutHandler handles POST /api/auth/logout. The old token stops working.
func (h *HandlerBundle) LogoutHandler(c *gin.Context) {
	fresh, token, err := h.Auth.Logout(c.Request.Context(), middleware.Session(c))
	if err != nil {
		middleware.SetSession(c, nil)
		backendError(c, "Errore interno", err)
		return
	}
	middleware.SetSession(c, fresh)
	c.Header(middleware.TokenHeader, token)
	c.JSON(http.StatusOK, TokenView{Token: token, Session: sessionView(fresh)})
}
