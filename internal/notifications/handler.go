package notifications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhub/carcare/pkg/common"
)

// Handler handles notification HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new notification handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the notification routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/users/:id/notifications", h.ListNotifications)
	router.PATCH("/users/:id/notifications/read-all", h.MarkAllAsRead)
	router.PATCH("/notifications/:id/read", h.MarkAsRead)
}

// ListNotifications lists a user's notifications
func (h *Handler) ListNotifications(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	unreadOnly := c.Query("unreadOnly") == "true"

	notifications, err := h.service.ListNotifications(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		common.HandleServiceError(c, err, "failed to list notifications")
		return
	}
	common.SuccessResponse(c, notifications)
}

// MarkAsRead flags a notification as read
func (h *Handler) MarkAsRead(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "notification ID")
	if !ok {
		return
	}

	notification, err := h.service.MarkAsRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "notification not found")
			return
		}
		common.HandleServiceError(c, err, "failed to mark notification read")
		return
	}
	common.SuccessResponse(c, notification)
}

// MarkAllAsRead flags all of a user's notifications as read
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	if err := h.service.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		common.HandleServiceError(c, err, "failed to mark notifications read")
		return
	}
	common.MessageResponse(c, "notifications marked read")
}
