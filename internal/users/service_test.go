package users

import (
	"context"
	"testing"
	"time"

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

func (m *mockRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) GetVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *mockRepo) GetUpcomingBookings(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *mockRepo) GetActiveReminders(ctx context.Context, userID uuid.UUID) ([]*models.ServiceReminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ServiceReminder), args.Error(1)
}

func (m *mockRepo) CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) SumExpensesSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(float64), args.Error(1)
}

func TestGetDashboard(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)
	userID := uuid.New()

	repo.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Name: "Alex"}, nil)
	repo.On("GetVehiclesByUser", mock.Anything, userID).Return([]*models.Vehicle{{ID: uuid.New(), UserID: userID}}, nil)
	repo.On("GetUpcomingBookings", mock.Anything, userID).Return([]*models.Booking{}, nil)
	repo.On("GetActiveReminders", mock.Anything, userID).Return([]*models.ServiceReminder{
		{ID: uuid.New(), UserID: userID, Status: models.ReminderActive},
	}, nil)
	repo.On("CountUnreadNotifications", mock.Anything, userID).Return(3, nil)
	repo.On("SumExpensesSince", mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(412.75, nil)

	dashboard, err := service.GetDashboard(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, dashboard.Vehicles, 1)
	assert.Empty(t, dashboard.UpcomingBookings)
	assert.Len(t, dashboard.ActiveReminders, 1)
	assert.Equal(t, 3, dashboard.UnreadNotifications)
	assert.InDelta(t, 412.75, dashboard.MonthExpenseTotal, 0.001)
	repo.AssertExpectations(t)
}

func TestGetDashboardUnknownUser(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)
	userID := uuid.New()

	repo.On("GetUserByID", mock.Anything, userID).Return(nil, common.ErrNotFound)

	dashboard, err := service.GetDashboard(context.Background(), userID)

	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Nil(t, dashboard)
	repo.AssertNotCalled(t, "GetVehiclesByUser", mock.Anything, mock.Anything)
}
