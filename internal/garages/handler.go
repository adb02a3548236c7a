package garages

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Handler handles HTTP requests for garages and service types
type Handler struct {
	service *Service
}

// NewHandler creates a new garages handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the garage and service-type endpoints
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/garages", h.ListGarages)
	router.GET("/garages/:id", h.GetGarage)
	router.POST("/garages/search", h.SearchGarages)
	router.GET("/service-types", h.ListServiceTypes)
	router.GET("/service-types/:id", h.GetServiceType)
}

// ListGarages returns all active garages. The lat/lng/radius query params
// scope the listing geographically upstream; no distance computation happens
// here — the distance label is precomputed reference data.
func (h *Handler) ListGarages(c *gin.Context) {
	garages, err := h.service.ListGarages(c.Request.Context())
	if common.HandleServiceError(c, err, "failed to list garages") {
		return
	}

	common.SuccessResponse(c, garages)
}

// GetGarage returns a single garage
func (h *Handler) GetGarage(c *gin.Context) {
	garageID, ok := common.ParseUUIDParam(c, "id", "garage ID")
	if !ok {
		return
	}

	garage, err := h.service.GetGarage(c.Request.Context(), garageID)
	if errors.Is(err, common.ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "garage not found")
		return
	}
	if common.HandleServiceError(c, err, "failed to get garage") {
		return
	}

	common.SuccessResponse(c, garage)
}

// SearchGarages narrows garages by query and service filters
func (h *Handler) SearchGarages(c *gin.Context) {
	var req models.SearchGaragesRequest
	if !common.BindJSON(c, &req) {
		return
	}

	garages, err := h.service.SearchGarages(c.Request.Context(), req.Query, req.Filters)
	if common.HandleServiceError(c, err, "failed to search garages") {
		return
	}

	common.SuccessResponse(c, garages)
}

// ListServiceTypes returns all service types
func (h *Handler) ListServiceTypes(c *gin.Context) {
	serviceTypes, err := h.service.ListServiceTypes(c.Request.Context())
	if common.HandleServiceError(c, err, "failed to list service types") {
		return
	}

	common.SuccessResponse(c, serviceTypes)
}

// GetServiceType returns a single service type
func (h *Handler) GetServiceType(c *gin.Context) {
	serviceTypeID, ok := common.ParseUUIDParam(c, "id", "service type ID")
	if !ok {
		return
	}

	serviceType, err := h.service.GetServiceType(c.Request.Context(), serviceTypeID)
	if errors.Is(err, common.ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "service type not found")
		return
	}
	if common.HandleServiceError(c, err, "failed to get service type") {
		return
	}

	common.SuccessResponse(c, serviceType)
}
