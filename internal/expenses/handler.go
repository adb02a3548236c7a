package expenses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Handler handles expense HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the expense routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/users/:id/expenses", h.CreateExpense)
	router.POST("/users/:id/expenses/search", h.SearchExpenses)
	router.GET("/users/:id/expenses/summary", h.GetSummary)
	router.GET("/expenses/:id", h.GetExpense)
	router.PUT("/expenses/:id", h.UpdateExpense)
	router.DELETE("/expenses/:id", h.DeleteExpense)
}

func validationStatus(c *gin.Context, err error) bool {
	if errors.Is(err, models.ErrInvalidAmount) ||
		errors.Is(err, models.ErrInvalidExpenseCategory) ||
		errors.Is(err, models.ErrInvalidSummaryPeriod) {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return true
	}
	return false
}

// CreateExpense records a new expense for a user
func (h *Handler) CreateExpense(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	var req models.CreateExpenseRequest
	if !common.BindJSON(c, &req) {
		return
	}

	expense, err := h.service.CreateExpense(c.Request.Context(), userID, req)
	if err != nil {
		if validationStatus(c, err) {
			return
		}
		common.HandleServiceError(c, err, "failed to create expense")
		return
	}
	common.CreatedResponse(c, expense)
}

// SearchExpenses lists a user's expenses matching the posted filters
func (h *Handler) SearchExpenses(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	var filters models.ExpenseFilters
	if !common.BindJSON(c, &filters) {
		return
	}

	expenses, err := h.service.SearchExpenses(c.Request.Context(), userID, filters)
	if err != nil {
		if validationStatus(c, err) {
			return
		}
		common.HandleServiceError(c, err, "failed to search expenses")
		return
	}
	common.SuccessResponse(c, expenses)
}

// GetSummary aggregates a user's spend for the requested period
func (h *Handler) GetSummary(c *gin.Context) {
	userID, ok := common.ParseUUIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), userID, c.DefaultQuery("period", string(models.PeriodMonth)))
	if err != nil {
		if validationStatus(c, err) {
			return
		}
		common.HandleServiceError(c, err, "failed to summarize expenses")
		return
	}
	common.SuccessResponse(c, summary)
}

// GetExpense fetches a single expense
func (h *Handler) GetExpense(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "expense ID")
	if !ok {
		return
	}

	expense, err := h.service.GetExpense(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "expense not found")
			return
		}
		common.HandleServiceError(c, err, "failed to get expense")
		return
	}
	common.SuccessResponse(c, expense)
}

// UpdateExpense applies a partial update to an expense
func (h *Handler) UpdateExpense(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "expense ID")
	if !ok {
		return
	}

	var req models.UpdateExpenseRequest
	if !common.BindJSON(c, &req) {
		return
	}

	expense, err := h.service.UpdateExpense(c.Request.Context(), id, req)
	if err != nil {
		if validationStatus(c, err) {
			return
		}
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "expense not found")
			return
		}
		common.HandleServiceError(c, err, "failed to update expense")
		return
	}
	common.SuccessResponse(c, expense)
}

// DeleteExpense removes an expense
func (h *Handler) DeleteExpense(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id", "expense ID")
	if !ok {
		return
	}

	if err := h.service.DeleteExpense(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "expense not found")
			return
		}
		common.HandleServiceError(c, err, "failed to delete expense")
		return
	}
	common.MessageResponse(c, "expense deleted")
}
