package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// RepositoryInterface defines the data access contract for bookings
type RepositoryInterface interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetBookingsByUser(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) ([]*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
}
