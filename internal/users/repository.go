package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

const userColumns = `id, name, email, phone, avatar_url, created_at, updated_at`

// Repository handles user persistence and dashboard reads
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

// GetUserByID fetches a user profile
func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// UpdateUser applies a partial profile update and returns the updated record
func (r *Repository) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	query := fmt.Sprintf(`
		UPDATE users SET
			name = COALESCE($2, name),
			phone = COALESCE($3, phone),
			avatar_url = COALESCE($4, avatar_url),
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, userColumns)

	return scanUser(r.db.QueryRow(ctx, query, id, req.Name, req.Phone, req.AvatarURL))
}

// GetVehiclesByUser lists a user's vehicles, newest first
func (r *Repository) GetVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error) {
	query := `
		SELECT id, user_id, make, model, year, vin, license_plate, color, mileage,
			fuel_efficiency, health_score, image_url, created_at, updated_at
		FROM vehicles
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*models.Vehicle, 0)
	for rows.Next() {
		var v models.Vehicle
		err := rows.Scan(
			&v.ID, &v.UserID, &v.Make, &v.Model, &v.Year, &v.VIN, &v.LicensePlate, &v.Color,
			&v.Mileage, &v.FuelEfficiency, &v.HealthScore, &v.ImageURL, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}

// GetUpcomingBookings lists a user's pending and confirmed bookings from
// today onward, soonest first.
func (r *Repository) GetUpcomingBookings(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error) {
	query := `
		SELECT id, user_id, vehicle_id, garage_id, service_type_id,
			to_char(booking_date, 'YYYY-MM-DD'), to_char(booking_time, 'HH24:MI'),
			status, price, notes, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
			AND status IN ('pending', 'confirmed')
			AND booking_date >= CURRENT_DATE
		ORDER BY booking_date ASC, booking_time ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(
			&b.ID, &b.UserID, &b.VehicleID, &b.GarageID, &b.ServiceTypeID,
			&b.BookingDate, &b.BookingTime, &b.Status, &b.Price, &b.Notes,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

// GetActiveReminders lists a user's active and overdue reminders, most
// urgent first.
func (r *Repository) GetActiveReminders(ctx context.Context, userID uuid.UUID) ([]*models.ServiceReminder, error) {
	query := `
		SELECT id, user_id, vehicle_id, title, description, reminder_type,
			to_char(due_date, 'YYYY-MM-DD'), due_mileage, priority,
			CASE WHEN due_date < CURRENT_DATE THEN 'overdue' ELSE status END,
			to_char(completed_date, 'YYYY-MM-DD'), completed_mileage, created_at, updated_at
		FROM service_reminders
		WHERE user_id = $1 AND status = 'active'
		ORDER BY due_date ASC NULLS LAST`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]*models.ServiceReminder, 0)
	for rows.Next() {
		var rem models.ServiceReminder
		err := rows.Scan(
			&rem.ID, &rem.UserID, &rem.VehicleID, &rem.Title, &rem.Description, &rem.ReminderType,
			&rem.DueDate, &rem.DueMileage, &rem.Priority, &rem.Status,
			&rem.CompletedDate, &rem.CompletedMileage, &rem.CreatedAt, &rem.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, &rem)
	}
	return reminders, rows.Err()
}

// CountUnreadNotifications counts a user's unread notifications
func (r *Repository) CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// SumExpensesSince totals a user's spend from the given date onward
func (r *Repository) SumExpensesSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1 AND expense_date >= $2::date`,
		userID, since.Format("2006-01-02"),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}
