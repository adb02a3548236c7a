package reminders

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// RepositoryInterface defines reminder persistence operations.
type RepositoryInterface interface {
	CreateReminder(ctx context.Context, reminder *models.ServiceReminder) error
	GetReminderByID(ctx context.Context, id uuid.UUID) (*models.ServiceReminder, error)
	GetRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*models.ServiceReminder, error)
	UpdateReminder(ctx context.Context, id uuid.UUID, req models.UpdateReminderRequest) (*models.ServiceReminder, error)
	CompleteReminder(ctx context.Context, id uuid.UUID, completedMileage *int) (*models.ServiceReminder, error)
	DeleteReminder(ctx context.Context, id uuid.UUID) error
}
