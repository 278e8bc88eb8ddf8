package handlers

import (
	"fmt"
	"net/http"

	"gymnexa/middleware"
	"gymnexa/models"
	"gymnexa/services/messages"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HomeHandler handles GET /api/home: greeting plus the member's stored bookings.
func (h *HandlerBundle) HomeHandler(c *gin.Context) {
	s := middleware.Session(c)
	name := messages.GreetingDefault
	if s.Profile != nil && s.Profile.FirstName != "" {
		name = s.Profile.FirstName
	}
	view := HomeView{Greeting: fmt.Sprintf(messages.Greeting, name), Bookings: []models.Booking{}}

	if s.SignedIn() {
		list, err := h.Bookings.List(c.Request.Context(), s.UID(), "")
		if err != nil {
			getLogger(c).Warn("home: bookings unavailable", zap.String("uid", s.UID()), zap.Error(err))
		} else if list != nil {
			view.Bookings = list
		}
	}
	c.JSON(http.StatusOK, view)
}

// WodHandler handles GET /api/wod.
func (h *HandlerBundle) WodHandler(c *gin.Context) {
	c.JSON(http.StatusOK, WodView{Title: messages.WodTitle, Body: messages.WodBody})
}

// SlotsHandler handles GET /api/slots.
func (h *HandlerBundle) SlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.TimeSlots)
}

// HealthHandler handles GET /health with the latest probe snapshot.
func (h *HandlerBundle) HealthHandler(c *gin.Context) {
	if h.Health == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	status := h.Health.Status()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
