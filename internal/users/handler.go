package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Handler handles user HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new user handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/users/:id", h.GetUser)
	router.PUT("/users/:id", h.UpdateUser)
	router.GET("/users/:id/dashboard", h.GetDashboard)
}

// GetUser fetches a user profile
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "user not found")
			return
		}
		common.HandleServiceError(c, err, "failed to get user")
		return
	}
	common.SuccessResponse(c, user)
}

// UpdateUser applies a partial profile update
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !common.BindJSON(c, &req) {
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "user not found")
			return
		}
		common.HandleServiceError(c, err, "failed to update user")
		return
	}
	common.SuccessResponse(c, user)
}

// GetDashboard assembles the home screen aggregate for a user
func (h *Handler) GetDashboard(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	dashboard, err := h.service.GetDashboard(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "user not found")
			return
		}
		common.HandleServiceError(c, err, "failed to build dashboard")
		return
	}
	common.SuccessResponse(c, dashboard)
}
