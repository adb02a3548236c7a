package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// RepositoryInterface defines user persistence plus the cross-aggregate
// reads backing the dashboard.
type RepositoryInterface interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error)
	GetVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error)
	GetUpcomingBookings(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error)
	GetActiveReminders(ctx context.Context, userID uuid.UUID) ([]*models.ServiceReminder, error)
	CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int, error)
	SumExpensesSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error)
}
