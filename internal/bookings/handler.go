package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Handler handles HTTP requests for bookings
type Handler struct {
	service *Service
}

// NewHandler creates a new bookings handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the booking endpoints
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/users/:id/bookings", h.ListBookings)
	router.POST("/users/:id/bookings", h.CreateBooking)
	router.GET("/bookings/:id", h.GetBooking)
	router.PATCH("/bookings/:id/status", h.UpdateStatus)
	router.PATCH("/bookings/:id/cancel", h.Cancel)
}

// ListBookings returns a user's bookings, optionally narrowed by ?status=
func (h *Handler) ListBookings(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	var status *models.BookingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseBookingStatus(raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		status = &parsed
	}

	bookings, err := h.service.GetBookings(c.Request.Context(), userID, status)
	if common.HandleServiceError(c, err, "failed to list bookings") {
		return
	}

	common.SuccessResponse(c, bookings)
}

// CreateBooking creates a new booking
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if !common.BindJSON(c, &req) {
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if common.HandleServiceError(c, err, "failed to create booking") {
		return
	}

	common.CreatedResponse(c, booking)
}

// GetBooking returns a single booking
func (h *Handler) GetBooking(c *gin.Context) {
	bookingID, ok := common.ParseUUIDParam(c, "id", "booking ID")
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), bookingID)
	if errors.Is(err, common.ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "booking not found")
		return
	}
	if common.HandleServiceError(c, err, "failed to get booking") {
		return
	}

	common.SuccessResponse(c, booking)
}

// UpdateStatus moves a booking to a new lifecycle state
func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, ok := common.ParseUUIDParam(c, "id", "booking ID")
	if !ok {
		return
	}

	var req models.UpdateBookingStatusRequest
	if !common.BindJSON(c, &req) {
		return
	}

	status, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.service.UpdateStatus(c.Request.Context(), bookingID, status)
	switch {
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "booking not found")
		return
	case errors.Is(err, ErrInvalidTransition):
		common.ErrorResponse(c, http.StatusConflict, err.Error())
		return
	}
	if common.HandleServiceError(c, err, "failed to update booking status") {
		return
	}

	common.SuccessResponse(c, booking)
}

// Cancel cancels a booking
func (h *Handler) Cancel(c *gin.Context) {
	bookingID, ok := common.ParseUUIDParam(c, "id", "booking ID")
	if !ok {
		return
	}

	booking, err := h.service.Cancel(c.Request.Context(), bookingID)
	switch {
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "booking not found")
		return
	case errors.Is(err, ErrInvalidTransition):
		common.ErrorResponse(c, http.StatusConflict, err.Error())
		return
	}
	if common.HandleServiceError(c, err, "failed to cancel booking") {
		return
	}

	common.SuccessResponse(c, booking)
}
