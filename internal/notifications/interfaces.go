package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// RepositoryInterface defines notification persistence operations.
type RepositoryInterface interface {
	GetNotificationsByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
}
