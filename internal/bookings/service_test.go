package bookings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockRepo) GetBookingsByUser(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) ([]*models.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *mockRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func bookingInStatus(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		VehicleID:   uuid.New(),
		GarageID:    uuid.New(),
		Status:      status,
		BookingDate: "2025-07-10",
		BookingTime: "10:30",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	userID := uuid.New()
	req := models.CreateBookingRequest{
		VehicleID:     uuid.New(),
		GarageID:      uuid.New(),
		ServiceTypeID: uuid.New(),
		BookingDate:   "2025-07-10",
		BookingTime:   "10:30",
	}

	repo.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.UserID == userID && b.Status == models.BookingPending
	})).Return(nil)

	booking, err := service.CreateBooking(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	repo.AssertExpectations(t)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{name: "pending to confirmed", from: models.BookingPending, to: models.BookingConfirmed, allowed: true},
		{name: "confirmed to in_progress", from: models.BookingConfirmed, to: models.BookingInProgress, allowed: true},
		{name: "in_progress to completed", from: models.BookingInProgress, to: models.BookingCompleted, allowed: true},
		{name: "pending to cancelled", from: models.BookingPending, to: models.BookingCancelled, allowed: true},
		{name: "in_progress to cancelled", from: models.BookingInProgress, to: models.BookingCancelled, allowed: true},
		{name: "pending straight to completed", from: models.BookingPending, to: models.BookingCompleted, allowed: false},
		{name: "confirmed back to pending", from: models.BookingConfirmed, to: models.BookingPending, allowed: false},
		{name: "completed cannot be cancelled", from: models.BookingCompleted, to: models.BookingCancelled, allowed: false},
		{name: "cancelled is terminal", from: models.BookingCancelled, to: models.BookingConfirmed, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			service := NewService(repo)

			existing := bookingInStatus(tt.from)
			repo.On("GetBookingByID", mock.Anything, existing.ID).Return(existing, nil)

			if tt.allowed {
				updated := bookingInStatus(tt.to)
				repo.On("UpdateBookingStatus", mock.Anything, existing.ID, tt.to).Return(updated, nil)
			}

			booking, err := service.UpdateStatus(context.Background(), existing.ID, tt.to)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, booking.Status)
			} else {
				require.ErrorIs(t, err, ErrInvalidTransition)
				assert.Nil(t, booking)
				repo.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	existing := bookingInStatus(models.BookingConfirmed)
	cancelled := bookingInStatus(models.BookingCancelled)

	repo.On("GetBookingByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("UpdateBookingStatus", mock.Anything, existing.ID, models.BookingCancelled).Return(cancelled, nil)

	booking, err := service.Cancel(context.Background(), existing.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, booking.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	id := uuid.New()
	repo.On("GetBookingByID", mock.Anything, id).Return(nil, common.ErrNotFound)

	booking, err := service.UpdateStatus(context.Background(), id, models.BookingConfirmed)

	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Nil(t, booking)
}
