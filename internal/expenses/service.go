package expenses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// Service contains the expense business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new expense service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// CreateExpense validates and records a new expense
func (s *Service) CreateExpense(ctx context.Context, userID uuid.UUID, req models.CreateExpenseRequest) (*models.Expense, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ID:               uuid.New(),
		UserID:           userID,
		VehicleID:        req.VehicleID,
		Category:         models.ExpenseCategory(req.Category),
		Amount:           req.Amount,
		Description:      req.Description,
		ExpenseDate:      req.ExpenseDate,
		MileageAtExpense: req.MileageAtExpense,
	}

	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense fetches a single expense by ID
func (s *Service) GetExpense(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	return s.repo.GetExpenseByID(ctx, id)
}

// SearchExpenses lists a user's expenses narrowed by the given filters
func (s *Service) SearchExpenses(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]*models.Expense, error) {
	if filters.Category != nil {
		if _, err := models.ParseExpenseCategory(*filters.Category); err != nil {
			return nil, err
		}
	}
	return s.repo.GetExpensesByUser(ctx, userID, filters)
}

// UpdateExpense applies a partial update to an expense
func (s *Service) UpdateExpense(ctx context.Context, id uuid.UUID, req models.UpdateExpenseRequest) (*models.Expense, error) {
	if req.Category != nil {
		if _, err := models.ParseExpenseCategory(*req.Category); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}
	return s.repo.UpdateExpense(ctx, id, req)
}

// DeleteExpense removes an expense
func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

// periodStart returns the beginning of the summary window ending now
func periodStart(period models.SummaryPeriod, now time.Time) time.Time {
	switch period {
	case models.PeriodWeek:
		return now.AddDate(0, 0, -7)
	case models.PeriodMonth:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}

// Summarize aggregates a user's spend for the requested period
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID, rawPeriod string) (*models.ExpensesSummary, error) {
	period, err := models.ParseSummaryPeriod(rawPeriod)
	if err != nil {
		return nil, err
	}

	byCategory, count, err := s.repo.SummarizeExpenses(ctx, userID, periodStart(period, time.Now()))
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, amount := range byCategory {
		total += amount
	}

	return &models.ExpensesSummary{
		Period:     period,
		Total:      total,
		ByCategory: byCategory,
		Count:      count,
	}, nil
}
