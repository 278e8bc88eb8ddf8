package handlers

import (
	"errors"
	"net/http"

	"gymnexa/middleware"
	"gymnexa/models"
	"gymnexa/services/booking"
	"gymnexa/utils"

	"github.com/gin-gonic/gin"
)

type selectRequest struct {
	SlotID string             `json:"slotId" binding:"required"`
	Type   models.BookingType `json:"type" binding:"required"`
}

// GetGridHandler handles GET /api/bookings/grid.
func (h *HandlerBundle) GetGridHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gridView(middleware.Session(c).Grid, h.Sessions.Now()))
}

// SelectSlotHandler handles POST /api/bookings/grid/select.
func (h *HandlerBundle) SelectSlotHandler(c *gin.Context) {
	g := middleware.Session(c).Grid
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Richiesta non valida", err.Error())
		return
	}
	if err := g.Select(req.SlotID, req.Type); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Selezione non valida", err.Error())
		return
	}
	c.JSON(http.StatusOK, gridView(g, h.Sessions.Now()))
}

func (h *HandlerBundle) PrevDayHandler(c *gin.Context) {
	g := middleware.Session(c).Grid
	g.PrevDay()
	c.JSON(http.StatusOK, gridView(g, h.Sessions.Now()))
}

func (h *HandlerBundle) NextDayHandler(c *gin.Context) {
	g := middleware.Session(c).Grid
	g.NextDay()
	c.JSON(http.StatusOK, gridView(g, h.Sessions.Now()))
}

// ConfirmGridHandler handles POST /api/bookings/grid/confirm. Selections are
// only traced; nothing is stored and the grid keeps its cells.
func (h *HandlerBundle) ConfirmGridHandler(c *gin.Context) {
	g := middleware.Session(c).Grid
	g.Confirm(getLogger(c))
	c.JSON(http.StatusOK, gridView(g, h.Sessions.Now()))
}

func bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidDate), errors.Is(err, booking.ErrUnknownSlot), errors.Is(err, booking.ErrInvalidType):
		utils.JSONError(c, http.StatusBadRequest, "Prenotazione non valida", err.Error())
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Prenotazione non trovata", err.Error())
	case errors.Is(err, booking.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, "Prenotazione non trovata", err.Error())
	default:
		backendError(c, "Errore durante il caricamento delle prenotazioni", err)
	}
}

// ListBookingsHandler handles GET /api/bookings?date=YYYY-MM-DD.
func (h *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	s := middleware.Session(c)
	list, err := h.Bookings.List(c.Request.Context(), s.UID(), c.Query("date"))
	if err != nil {
		bookingError(c, err)
		return
	}
	if list == nil {
		list = []models.Booking{}
	}
	c.JSON(http.StatusOK, list)
}

// CreateBookingHandler handles POST /api/bookings.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	s := middleware.Session(c)
	var req booking.NewBooking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Richiesta non valida", err.Error())
		return
	}
	b, err := h.Bookings.Create(c.Request.Context(), s.UID(), req)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *HandlerBundle) DeleteBookingHandler(c *gin.Context) {
	s := middleware.Session(c)
	if err := h.Bookings.Delete(c.Request.Context(), s.UID(), c.Param("id")); err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prenotazione eliminata"})
}
