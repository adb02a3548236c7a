package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateExpense(ctx context.Context, expense *models.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *mockRepo) GetExpenseByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *mockRepo) GetExpensesByUser(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]*models.Expense, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Expense), args.Error(1)
}

func (m *mockRepo) UpdateExpense(ctx context.Context, id uuid.UUID, req models.UpdateExpenseRequest) (*models.Expense, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *mockRepo) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepo) SummarizeExpenses(ctx context.Context, userID uuid.UUID, since time.Time) (map[models.ExpenseCategory]float64, int, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(map[models.ExpenseCategory]float64), args.Int(1), args.Error(2)
}

func TestCreateExpense(t *testing.T) {
	tests := []struct {
		name     string
		req      models.CreateExpenseRequest
		wantErr  error
		persists bool
	}{
		{
			name: "valid fuel expense",
			req: models.CreateExpenseRequest{
				VehicleID:   uuid.New(),
				Category:    "fuel",
				Amount:      54.20,
				ExpenseDate: "2025-07-01",
			},
			persists: true,
		},
		{
			name: "zero amount rejected",
			req: models.CreateExpenseRequest{
				VehicleID:   uuid.New(),
				Category:    "fuel",
				Amount:      0,
				ExpenseDate: "2025-07-01",
			},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name: "negative amount rejected",
			req: models.CreateExpenseRequest{
				VehicleID:   uuid.New(),
				Category:    "fuel",
				Amount:      -10,
				ExpenseDate: "2025-07-01",
			},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name: "unknown category rejected",
			req: models.CreateExpenseRequest{
				VehicleID:   uuid.New(),
				Category:    "snacks",
				Amount:      5,
				ExpenseDate: "2025-07-01",
			},
			wantErr: models.ErrInvalidExpenseCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			service := NewService(repo)
			userID := uuid.New()

			if tt.persists {
				repo.On("CreateExpense", mock.Anything, mock.MatchedBy(func(e *models.Expense) bool {
					return e.UserID == userID && e.Category == models.ExpenseCategory(tt.req.Category)
				})).Return(nil)
			}

			expense, err := service.CreateExpense(context.Background(), userID, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, expense)
				repo.AssertNotCalled(t, "CreateExpense", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.req.Amount, expense.Amount)
				repo.AssertExpectations(t)
			}
		})
	}
}

func TestSearchExpensesRejectsUnknownCategory(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	category := "snacks"
	_, err := service.SearchExpenses(context.Background(), uuid.New(), models.ExpenseFilters{Category: &category})

	require.ErrorIs(t, err, models.ErrInvalidExpenseCategory)
	repo.AssertNotCalled(t, "GetExpensesByUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateExpenseRejectsNonPositiveAmount(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	amount := -3.0
	_, err := service.UpdateExpense(context.Background(), uuid.New(), models.UpdateExpenseRequest{Amount: &amount})

	require.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestSummarize(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)
	userID := uuid.New()

	repo.On("SummarizeExpenses", mock.Anything, userID, mock.AnythingOfType("time.Time")).
		Return(map[models.ExpenseCategory]float64{
			models.ExpenseFuel:        120.50,
			models.ExpenseMaintenance: 79.50,
		}, 5, nil)

	summary, err := service.Summarize(context.Background(), userID, "month")

	require.NoError(t, err)
	assert.Equal(t, models.PeriodMonth, summary.Period)
	assert.InDelta(t, 200.0, summary.Total, 0.001)
	assert.Equal(t, 5, summary.Count)
}

func TestSummarizeRejectsUnknownPeriod(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	_, err := service.Summarize(context.Background(), uuid.New(), "decade")

	require.ErrorIs(t, err, models.ErrInvalidSummaryPeriod)
	repo.AssertNotCalled(t, "SummarizeExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 7, 8, 12, 0, 0, 0, time.UTC), periodStart(models.PeriodWeek, now))
	assert.Equal(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), periodStart(models.PeriodMonth, now))
	assert.Equal(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC), periodStart(models.PeriodYear, now))
}
