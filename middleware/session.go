package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"gymnexa/services/gate"
	"gymnexa/services/session"
	"gymnexa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionKey = "session"

	// TokenHeader returns a refreshed bearer token on every authenticated response.
	TokenHeader = "X-Session-Token"
)

// SessionAuthMiddleware resolves the bearer token to a stored session and
// saves the session back once the handler chain has run. Handlers that
// replace the session call SetSession.
func SessionAuthMiddleware(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Sessione mancante"})
			return
		}

		s, err := m.Resume(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, session.ErrInvalidToken) || errors.Is(err, session.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Sessione scaduta"})
				return
			}
			utils.GetLogger().Error("session load failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Errore interno"})
			return
		}

		// The device can change between requests, e.g. once the app is installed.
		s.Device = Device(c)
		if refreshed, err := m.Token(s); err == nil {
			c.Header(TokenHeader, refreshed)
		}
		c.Set(sessionKey, s)

		c.Next()

		current := Session(c)
		if current == nil {
			return
		}
		if err := m.Save(c.Request.Context(), current); err != nil {
			utils.GetLogger().Error("session save failed", zap.String("sessionID", current.ID), zap.Error(err))
		}
	}
}

// Session returns the session resolved for this request, or nil.
func Session(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

// SetSession replaces the request's session, e.g. after logout.
func SetSession(c *gin.Context, s *session.Session) {
	c.Set(sessionKey, s)
}

// RequireScreen rejects requests whose session is not on one of screens.
func RequireScreen(screens ...gate.Screen) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := Session(c)
		if s == nil || !slices.Contains(screens, s.Screen()) {
			c.AbortWithStatusJSON(http.StatusConflict, utils.ErrorResponse{Message: "Operazione non disponibile in questa schermata"})
			return
		}
		c.Next()
	}
}

// RequireSignedIn rejects anonymous and demo sessions.
func RequireSignedIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := Session(c)
		if s == nil || !s.SignedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Accesso richiesto"})
			return
		}
		c.Next()
	}
}
