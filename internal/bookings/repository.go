package bookings

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

// Repository handles database operations for bookings
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new bookings repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `
	id, user_id, vehicle_id, garage_id, service_type_id, to_char(booking_date, 'YYYY-MM-DD'),
	to_char(booking_time, 'HH24:MI'), status, price, notes, created_at, updated_at
`

func scanBooking(row pgx.Row) (*models.Booking, error) {
	booking := &models.Booking{}
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.VehicleID,
		&booking.GarageID,
		&booking.ServiceTypeID,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.Status,
		&booking.Price,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// CreateBooking inserts a new booking in pending state
func (r *Repository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, vehicle_id, garage_id, service_type_id,
			booking_date, booking_time, status, price, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7::time, $8, $9, $10, $11, $12)
	`

	booking.ID = uuid.New()
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.VehicleID,
		booking.GarageID,
		booking.ServiceTypeID,
		booking.BookingDate,
		booking.BookingTime,
		booking.Status,
		booking.Price,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetBookingByID retrieves a booking by ID
func (r *Repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// GetBookingsByUser retrieves a user's bookings, optionally narrowed by status
func (r *Repository) GetBookingsByUser(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY booking_date DESC, booking_time DESC
	`

	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// UpdateBookingStatus persists a status change and returns the updated row
func (r *Repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + bookingColumns + `
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, status, time.Now(), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return booking, nil
}
