package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// Service contains the notification business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new notification service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ListNotifications lists a user's notifications, optionally unread only
func (s *Service) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.Notification, error) {
	return s.repo.GetNotificationsByUser(ctx, userID, unreadOnly)
}

// MarkAsRead flags a notification as read
func (s *Service) MarkAsRead(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead flags all of a user's notifications as read
func (s *Service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
