package reminders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Handler handles reminder HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new reminder handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reminder routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/users/:id/reminders", h.ListReminders)
	router.POST("/users/:id/reminders", h.CreateReminder)
	router.GET("/reminders/:id", h.GetReminder)
	router.PUT("/reminders/:id", h.UpdateReminder)
	router.PATCH("/reminders/:id/complete", h.CompleteReminder)
	router.DELETE("/reminders/:id", h.DeleteReminder)
}

// ListReminders lists a user's reminders
func (h *Handler) ListReminders(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	reminders, err := h.service.ListReminders(c.Request.Context(), userID)
	if err != nil {
		common.HandleServiceError(c, err, "failed to list reminders")
		return
	}
	common.SuccessResponse(c, reminders)
}

// CreateReminder records a new reminder for a user
func (h *Handler) CreateReminder(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	var req models.CreateReminderRequest
	if !common.BindJSON(c, &req) {
		return
	}

	reminder, err := h.service.CreateReminder(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidReminderType) || errors.Is(err, models.ErrInvalidReminderPriority) {
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		common.HandleServiceError(c, err, "failed to create reminder")
		return
	}
	common.CreatedResponse(c, reminder)
}

// GetReminder fetches a single reminder
func (h *Handler) GetReminder(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "reminder ID")
	if !ok {
		return
	}

	reminder, err := h.service.GetReminder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "reminder not found")
			return
		}
		common.HandleServiceError(c, err, "failed to get reminder")
		return
	}
	common.SuccessResponse(c, reminder)
}

// UpdateReminder applies a partial update to a reminder
func (h *Handler) UpdateReminder(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "reminder ID")
	if !ok {
		return
	}

	var req models.UpdateReminderRequest
	if !common.BindJSON(c, &req) {
		return
	}

	reminder, err := h.service.UpdateReminder(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidReminderPriority) {
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "reminder not found")
			return
		}
		common.HandleServiceError(c, err, "failed to update reminder")
		return
	}
	common.SuccessResponse(c, reminder)
}

// CompleteReminder marks a reminder completed
func (h *Handler) CompleteReminder(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "reminder ID")
	if !ok {
		return
	}

	var req models.CompleteReminderRequest
	if c.Request.ContentLength > 0 && !common.BindJSON(c, &req) {
		return
	}

	reminder, err := h.service.CompleteReminder(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "reminder not found")
			return
		}
		common.HandleServiceError(c, err, "failed to complete reminder")
		return
	}
	common.SuccessResponse(c, reminder)
}

// DeleteReminder removes a reminder
func (h *Handler) DeleteReminder(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "reminder ID")
	if !ok {
		return
	}

	if err := h.service.DeleteReminder(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "reminder not found")
			return
		}
		common.HandleServiceError(c, err, "failed to delete reminder")
		return
	}
	common.MessageResponse(c, "reminder deleted")
}
