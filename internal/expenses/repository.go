package expenses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

const expenseColumns = `id, user_id, vehicle_id, category, amount, description,
	to_char(expense_date, 'YYYY-MM-DD'), receipt_url, mileage_at_expense, created_at, updated_at`

// Repository handles expense persistence
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new expense repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(
		&e.ID, &e.UserID, &e.VehicleID, &e.Category, &e.Amount, &e.Description,
		&e.ExpenseDate, &e.ReceiptURL, &e.MileageAtExpense, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan expense: %w", err)
	}
	return &e, nil
}

// CreateExpense inserts a new expense record
func (r *Repository) CreateExpense(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, vehicle_id, category, amount, description, expense_date, receipt_url, mileage_at_expense)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		expense.ID, expense.UserID, expense.VehicleID, expense.Category, expense.Amount,
		expense.Description, expense.ExpenseDate, expense.ReceiptURL, expense.MileageAtExpense,
	).Scan(&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetExpenseByID fetches a single expense
func (r *Repository) GetExpenseByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE id = $1`, expenseColumns)
	return scanExpense(r.db.QueryRow(ctx, query, id))
}

// GetExpensesByUser lists a user's expenses, newest first, narrowed by the
// optional category and date-range filters.
func (r *Repository) GetExpensesByUser(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]*models.Expense, error) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if filters.Category != nil {
		args = append(args, *filters.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filters.StartDate != nil {
		args = append(args, *filters.StartDate)
		conditions = append(conditions, fmt.Sprintf("expense_date >= $%d::date", len(args)))
	}
	if filters.EndDate != nil {
		args = append(args, *filters.EndDate)
		conditions = append(conditions, fmt.Sprintf("expense_date <= $%d::date", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE %s ORDER BY expense_date DESC, created_at DESC`,
		expenseColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]*models.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// UpdateExpense applies a partial update and returns the updated record
func (r *Repository) UpdateExpense(ctx context.Context, id uuid.UUID, req models.UpdateExpenseRequest) (*models.Expense, error) {
	query := fmt.Sprintf(`
		UPDATE expenses SET
			category = COALESCE($2, category),
			amount = COALESCE($3, amount),
			description = COALESCE($4, description),
			expense_date = COALESCE($5::date, expense_date),
			mileage_at_expense = COALESCE($6, mileage_at_expense),
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, expenseColumns)

	return scanExpense(r.db.QueryRow(ctx, query,
		id, req.Category, req.Amount, req.Description, req.ExpenseDate, req.MileageAtExpense,
	))
}

// DeleteExpense removes an expense record
func (r *Repository) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

// SummarizeExpenses totals a user's spend per category since the given time
func (r *Repository) SummarizeExpenses(ctx context.Context, userID uuid.UUID, since time.Time) (map[models.ExpenseCategory]float64, int, error) {
	query := `
		SELECT category, SUM(amount), COUNT(*)
		FROM expenses
		WHERE user_id = $1 AND expense_date >= $2::date
		GROUP BY category`

	rows, err := r.db.Query(ctx, query, userID, since.Format("2006-01-02"))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[models.ExpenseCategory]float64)
	count := 0
	for rows.Next() {
		var category models.ExpenseCategory
		var total float64
		var categoryCount int
		if err := rows.Scan(&category, &total, &categoryCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense summary: %w", err)
		}
		byCategory[category] = total
		count += categoryCount
	}
	return byCategory, count, rows.Err()
}
