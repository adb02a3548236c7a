package vehicles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Handler handles HTTP requests for vehicles
type Handler struct {
	service *Service
}

// NewHandler creates a new vehicles handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the vehicle endpoints
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/users/:id/vehicles", h.ListVehicles)
	router.POST("/users/:id/vehicles", h.CreateVehicle)
	router.GET("/vehicles/:id", h.GetVehicle)
	router.PUT("/vehicles/:id", h.UpdateVehicle)
	router.DELETE("/vehicles/:id", h.DeleteVehicle)
}

// ListVehicles returns all vehicles owned by a user
func (h *Handler) ListVehicles(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	vehicles, err := h.service.GetVehicles(c.Request.Context(), userID)
	if common.HandleServiceError(c, err, "failed to list vehicles") {
		return
	}

	common.SuccessResponse(c, vehicles)
}

// CreateVehicle creates a new vehicle for a user
func (h *Handler) CreateVehicle(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	var req models.CreateVehicleRequest
	if !common.BindJSON(c, &req) {
		return
	}

	vehicle, err := h.service.CreateVehicle(c.Request.Context(), userID, req)
	if errors.Is(err, ErrInvalidYear) {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if common.HandleServiceError(c, err, "failed to create vehicle") {
		return
	}

	common.CreatedResponse(c, vehicle)
}

// GetVehicle returns a single vehicle
func (h *Handler) GetVehicle(c *gin.Context) {
	vehicleID, ok := common.ParseUUIDParam(c, "id", "vehicle ID")
	if !ok {
		return
	}

	vehicle, err := h.service.GetVehicle(c.Request.Context(), vehicleID)
	if errors.Is(err, common.ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
		return
	}
	if common.HandleServiceError(c, err, "failed to get vehicle") {
		return
	}

	common.SuccessResponse(c, vehicle)
}

// UpdateVehicle applies a partial update to a vehicle
func (h *Handler) UpdateVehicle(c *gin.Context) {
	vehicleID, ok := common.ParseUUIDParam(c, "id", "vehicle ID")
	if !ok {
		return
	}

	var req models.UpdateVehicleRequest
	if !common.BindJSON(c, &req) {
		return
	}

	vehicle, err := h.service.UpdateVehicle(c.Request.Context(), vehicleID, req)
	switch {
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
		return
	case errors.Is(err, ErrMileageDecrease), errors.Is(err, ErrInvalidYear):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if common.HandleServiceError(c, err, "failed to update vehicle") {
		return
	}

	common.SuccessResponse(c, vehicle)
}

// DeleteVehicle removes a vehicle
func (h *Handler) DeleteVehicle(c *gin.Context) {
	vehicleID, ok := common.ParseUUIDParam(c, "id", "vehicle ID")
	if !ok {
		return
	}

	err := h.service.DeleteVehicle(c.Request.Context(), vehicleID)
	if errors.Is(err, common.ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
		return
	}
	if common.HandleServiceError(c, err, "failed to delete vehicle") {
		return
	}

	common.MessageResponse(c, "vehicle deleted")
}
