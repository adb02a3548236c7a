package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// ErrInvalidTransition is returned when a status change violates the
// one-directional booking lifecycle
var ErrInvalidTransition = errors.New("invalid booking status transition")

// Service handles business logic for bookings
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new bookings service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// CreateBooking creates a booking in pending state. Referential integrity of
// vehicle/garage/service-type IDs is enforced by the database constraints,
// not re-checked here.
func (s *Service) CreateBooking(ctx context.Context, userID uuid.UUID, req models.CreateBookingRequest) (*models.Booking, error) {
	booking := &models.Booking{
		UserID:        userID,
		VehicleID:     req.VehicleID,
		GarageID:      req.GarageID,
		ServiceTypeID: req.ServiceTypeID,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
		Status:        models.BookingPending,
		Notes:         req.Notes,
	}

	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBooking retrieves one booking
func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

// GetBookings retrieves a user's bookings, optionally narrowed by status
func (s *Service) GetBookings(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) ([]*models.Booking, error) {
	return s.repo.GetBookingsByUser(ctx, userID, status)
}

// UpdateStatus moves a booking along its lifecycle. Transitions are
// one-directional; cancellation is allowed from any non-terminal state.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, target models.BookingStatus) (*models.Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
	}

	return s.repo.UpdateBookingStatus(ctx, id, target)
}

// Cancel cancels a booking from any non-terminal state
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.UpdateStatus(ctx, id, models.BookingCancelled)
}
