package expenses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// RepositoryInterface defines expense persistence operations.
type RepositoryInterface interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpenseByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	GetExpensesByUser(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]*models.Expense, error)
	UpdateExpense(ctx context.Context, id uuid.UUID, req models.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	SummarizeExpenses(ctx context.Context, userID uuid.UUID, since time.Time) (map[models.ExpenseCategory]float64, int, error)
}
