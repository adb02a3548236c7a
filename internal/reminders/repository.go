package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Overdue status is never stored. An active reminder whose due date has
// passed reads back as overdue so every consumer sees the same derivation.
const reminderColumns = `id, user_id, vehicle_id, title, description, reminder_type,
	to_char(due_date, 'YYYY-MM-DD'), due_mileage, priority,
	CASE WHEN status = 'active' AND due_date < CURRENT_DATE THEN 'overdue' ELSE status END,
	to_char(completed_date, 'YYYY-MM-DD'), completed_mileage, created_at, updated_at`

// Repository handles reminder persistence
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new reminder repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanReminder(row pgx.Row) (*models.ServiceReminder, error) {
	var r models.ServiceReminder
	err := row.Scan(
		&r.ID, &r.UserID, &r.VehicleID, &r.Title, &r.Description, &r.ReminderType,
		&r.DueDate, &r.DueMileage, &r.Priority, &r.Status,
		&r.CompletedDate, &r.CompletedMileage, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan reminder: %w", err)
	}
	return &r, nil
}

// CreateReminder inserts a new reminder in active status
func (r *Repository) CreateReminder(ctx context.Context, reminder *models.ServiceReminder) error {
	query := `
		INSERT INTO service_reminders (id, user_id, vehicle_id, title, description, reminder_type, due_date, due_mileage, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		reminder.ID, reminder.UserID, reminder.VehicleID, reminder.Title, reminder.Description,
		reminder.ReminderType, reminder.DueDate, reminder.DueMileage, reminder.Priority, reminder.Status,
	).Scan(&reminder.CreatedAt, &reminder.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// GetReminderByID fetches a single reminder
func (r *Repository) GetReminderByID(ctx context.Context, id uuid.UUID) (*models.ServiceReminder, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_reminders WHERE id = $1`, reminderColumns)
	return scanReminder(r.db.QueryRow(ctx, query, id))
}

// GetRemindersByUser lists a user's reminders, most urgent first
func (r *Repository) GetRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*models.ServiceReminder, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM service_reminders
		WHERE user_id = $1
		ORDER BY due_date ASC NULLS LAST, created_at DESC`, reminderColumns)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]*models.ServiceReminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

// UpdateReminder applies a partial update and returns the updated record
func (r *Repository) UpdateReminder(ctx context.Context, id uuid.UUID, req models.UpdateReminderRequest) (*models.ServiceReminder, error) {
	query := fmt.Sprintf(`
		UPDATE service_reminders SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			due_date = COALESCE($4::date, due_date),
			due_mileage = COALESCE($5, due_mileage),
			priority = COALESCE($6, priority),
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, reminderColumns)

	return scanReminder(r.db.QueryRow(ctx, query,
		id, req.Title, req.Description, req.DueDate, req.DueMileage, req.Priority,
	))
}

// CompleteReminder marks a reminder completed, recording today's date and
// the odometer reading when one was supplied.
func (r *Repository) CompleteReminder(ctx context.Context, id uuid.UUID, completedMileage *int) (*models.ServiceReminder, error) {
	query := fmt.Sprintf(`
		UPDATE service_reminders SET
			status = 'completed',
			completed_date = CURRENT_DATE,
			completed_mileage = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, reminderColumns)

	return scanReminder(r.db.QueryRow(ctx, query, id, completedMileage))
}

// DeleteReminder removes a reminder record
func (r *Repository) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM service_reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
