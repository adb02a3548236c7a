package reminders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateReminder(ctx context.Context, reminder *models.ServiceReminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *mockRepo) GetReminderByID(ctx context.Context, id uuid.UUID) (*models.ServiceReminder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceReminder), args.Error(1)
}

func (m *mockRepo) GetRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*models.ServiceReminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ServiceReminder), args.Error(1)
}

func (m *mockRepo) UpdateReminder(ctx context.Context, id uuid.UUID, req models.UpdateReminderRequest) (*models.ServiceReminder, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceReminder), args.Error(1)
}

func (m *mockRepo) CompleteReminder(ctx context.Context, id uuid.UUID, completedMileage *int) (*models.ServiceReminder, error) {
	args := m.Called(ctx, id, completedMileage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceReminder), args.Error(1)
}

func (m *mockRepo) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateReminder(t *testing.T) {
	tests := []struct {
		name     string
		req      models.CreateReminderRequest
		wantErr  error
		persists bool
	}{
		{
			name: "valid oil change reminder",
			req: models.CreateReminderRequest{
				VehicleID:    uuid.New(),
				Title:        "Oil change due",
				ReminderType: "oil_change",
				Priority:     "high",
			},
			persists: true,
		},
		{
			name: "unknown type rejected",
			req: models.CreateReminderRequest{
				VehicleID:    uuid.New(),
				Title:        "Wax",
				ReminderType: "waxing",
				Priority:     "low",
			},
			wantErr: models.ErrInvalidReminderType,
		},
		{
			name: "unknown priority rejected",
			req: models.CreateReminderRequest{
				VehicleID:    uuid.New(),
				Title:        "Inspection",
				ReminderType: "inspection",
				Priority:     "critical",
			},
			wantErr: models.ErrInvalidReminderPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			service := NewService(repo)
			userID := uuid.New()

			if tt.persists {
				repo.On("CreateReminder", mock.Anything, mock.MatchedBy(func(r *models.ServiceReminder) bool {
					return r.UserID == userID && r.Status == models.ReminderActive
				})).Return(nil)
			}

			reminder, err := service.CreateReminder(context.Background(), userID, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, reminder)
				repo.AssertNotCalled(t, "CreateReminder", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.ReminderActive, reminder.Status)
				repo.AssertExpectations(t)
			}
		})
	}
}

func TestUpdateReminderRejectsUnknownPriority(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	priority := "critical"
	_, err := service.UpdateReminder(context.Background(), uuid.New(), models.UpdateReminderRequest{Priority: &priority})

	require.ErrorIs(t, err, models.ErrInvalidReminderPriority)
	repo.AssertNotCalled(t, "UpdateReminder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteReminderPassesMileage(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	id := uuid.New()
	mileage := 45200
	completed := &models.ServiceReminder{ID: id, Status: models.ReminderCompleted, CompletedMileage: &mileage}

	repo.On("CompleteReminder", mock.Anything, id, &mileage).Return(completed, nil)

	reminder, err := service.CompleteReminder(context.Background(), id, models.CompleteReminderRequest{CompletedMileage: &mileage})

	require.NoError(t, err)
	assert.Equal(t, models.ReminderCompleted, reminder.Status)
	repo.AssertExpectations(t)
}
