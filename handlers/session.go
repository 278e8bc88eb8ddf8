package handlers

import (
	"errors"
	"net/http"

	"gymnexa/middleware"
	"gymnexa/services/gate"
	"gymnexa/utils"

	"github.com/gin-gonic/gin"
)

// StartSessionHandler handles POST /api/session.
func (h *HandlerBundle) StartSessionHandler(c *gin.Context) {
	s, token, err := h.Sessions.Start(c.Request.Context(), middleware.Device(c))
	if err != nil {
		backendError(c, "Errore interno", err)
		return
	}
	c.JSON(http.StatusCreated, TokenView{Token: token, Session: sessionView(s)})
}

// GetSessionHandler handles GET /api/session.
func (h *HandlerBundle) GetSessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, sessionView(middleware.Session(c)))
}

// SwitchScreenHandler handles POST /api/session/screen/:screen for login <-> signup.
func (h *HandlerBundle) SwitchScreenHandler(c *gin.Context) {
	s := middleware.Session(c)
	var err error
	switch gate.Screen(c.Param("screen")) {
	case gate.Signup:
		if err = s.Gate.SwitchToSignup(); err == nil {
			s.SignupWizard()
		}
	case gate.Login:
		err = s.Gate.SwitchToLogin()
	default:
		utils.JSONError(c, http.StatusNotFound, "Schermata sconosciuta", c.Param("screen"))
		return
	}
	if err != nil {
		transitionError(c, err)
		return
	}
	s.AuthError = ""
	c.JSON(http.StatusOK, sessionView(s))
}

// DemoHandler handles POST /api/session/demo: main without signing in.
func (h *HandlerBundle) DemoHandler(c *gin.Context) {
	s := middleware.Session(c)
	if err := s.Gate.Skip(); err != nil {
		transitionError(c, err)
		return
	}
	s.Demo = true
	s.AuthError = ""
	s.Signup = nil
	c.JSON(http.StatusOK, sessionView(s))
}

func transitionError(c *gin.Context, err error) {
	if errors.Is(err, gate.ErrInvalidTransition) {
		utils.JSONError(c, http.StatusConflict, "Operazione non disponibile in questa schermata", err.Error())
		return
	}
	backendError(c, "Errore interno", err)
}
