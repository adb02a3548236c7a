package reminders

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// Service contains the reminder business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new reminder service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// CreateReminder validates and records a new reminder in active status
func (s *Service) CreateReminder(ctx context.Context, userID uuid.UUID, req models.CreateReminderRequest) (*models.ServiceReminder, error) {
	reminderType, err := models.ParseReminderType(req.ReminderType)
	if err != nil {
		return nil, err
	}
	priority, err := models.ParseReminderPriority(req.Priority)
	if err != nil {
		return nil, err
	}

	reminder := &models.ServiceReminder{
		ID:           uuid.New(),
		UserID:       userID,
		VehicleID:    req.VehicleID,
		Title:        req.Title,
		Description:  req.Description,
		ReminderType: reminderType,
		DueDate:      req.DueDate,
		DueMileage:   req.DueMileage,
		Priority:     priority,
		Status:       models.ReminderActive,
	}

	if err := s.repo.CreateReminder(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// GetReminder fetches a single reminder by ID
func (s *Service) GetReminder(ctx context.Context, id uuid.UUID) (*models.ServiceReminder, error) {
	return s.repo.GetReminderByID(ctx, id)
}

// ListReminders lists a user's reminders
func (s *Service) ListReminders(ctx context.Context, userID uuid.UUID) ([]*models.ServiceReminder, error) {
	return s.repo.GetRemindersByUser(ctx, userID)
}

// UpdateReminder applies a partial update to a reminder
func (s *Service) UpdateReminder(ctx context.Context, id uuid.UUID, req models.UpdateReminderRequest) (*models.ServiceReminder, error) {
	if req.Priority != nil {
		if _, err := models.ParseReminderPriority(*req.Priority); err != nil {
			return nil, err
		}
	}
	return s.repo.UpdateReminder(ctx, id, req)
}

// CompleteReminder marks a reminder completed. Completing an already
// completed reminder just restamps the completion fields.
func (s *Service) CompleteReminder(ctx context.Context, id uuid.UUID, req models.CompleteReminderRequest) (*models.ServiceReminder, error) {
	return s.repo.CompleteReminder(ctx, id, req.CompletedMileage)
}

// DeleteReminder removes a reminder
func (s *Service) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteReminder(ctx, id)
}
