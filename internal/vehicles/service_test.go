package vehicles

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

func (m *mockRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *mockRepo) GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *mockRepo) GetVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *mockRepo) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *mockRepo) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateVehicle(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)
	userID := uuid.New()

	repo.On("CreateVehicle", mock.Anything, mock.MatchedBy(func(v *models.Vehicle) bool {
		return v.UserID == userID && v.HealthScore == initialHealthScore
	})).Return(nil)

	vehicle, err := service.CreateVehicle(context.Background(), userID, models.CreateVehicleRequest{
		Make:    "Toyota",
		Model:   "Camry",
		Year:    2021,
		Mileage: 32000,
	})

	require.NoError(t, err)
	assert.Equal(t, initialHealthScore, vehicle.HealthScore)
	repo.AssertExpectations(t)
}

func TestCreateVehicleRejectsOldYear(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo)

	_, err := service.CreateVehicle(context.Background(), uuid.New(), models.CreateVehicleRequest{
		Make:  "Ford",
		Model: "Model T",
		Year:  1899,
	})

	require.ErrorIs(t, err, ErrInvalidYear)
	repo.AssertNotCalled(t, "CreateVehicle", mock.Anything, mock.Anything)
}

func TestUpdateVehicleMileage(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		requested int
		wantErr   error
	}{
		{name: "mileage increase accepted", stored: 32000, requested: 33500},
		{name: "unchanged mileage accepted", stored: 32000, requested: 32000},
		{name: "mileage decrease rejected", stored: 32000, requested: 31000, wantErr: ErrMileageDecrease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			service := NewService(repo)

			id := uuid.New()
			repo.On("GetVehicleByID", mock.Anything, id).Return(&models.Vehicle{
				ID: id, Make: "Toyota", Model: "Camry", Year: 2021, Mileage: tt.stored,
			}, nil)

			if tt.wantErr == nil {
				repo.On("UpdateVehicle", mock.Anything, mock.MatchedBy(func(v *models.Vehicle) bool {
					return v.Mileage == tt.requested
				})).Return(nil)
			}

			vehicle, err := service.UpdateVehicle(context.Background(), id, models.UpdateVehicleRequest{
				Mileage: &tt.requested,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, vehicle)
				repo.AssertNotCalled(t, "UpdateVehicle", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.requested, vehicle.Mileage)
			}
		})
	}
}
