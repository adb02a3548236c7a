package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// Service contains the user business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new user service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// GetUser fetches a user profile
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// UpdateUser applies a partial profile update
func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	return s.repo.UpdateUser(ctx, id, req)
}

// GetDashboard assembles the aggregate read backing the home screen
func (s *Service) GetDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardData, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	vehicles, err := s.repo.GetVehiclesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.GetUpcomingBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	reminders, err := s.repo.GetActiveReminders(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}
	monthTotal, err := s.repo.SumExpensesSince(ctx, userID, time.Now().AddDate(0, -1, 0))
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		Vehicles:            vehicles,
		UpcomingBookings:    bookings,
		ActiveReminders:     reminders,
		UnreadNotifications: unread,
		MonthExpenseTotal:   monthTotal,
	}, nil
}
