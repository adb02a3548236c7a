package vehicles

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// Validation errors surfaced to callers as recoverable domain failures
var (
	ErrMileageDecrease = errors.New("mileage cannot decrease")
	ErrInvalidYear     = errors.New("invalid vehicle year")
)

const initialHealthScore = 100

// Service handles business logic for vehicles
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new vehicles service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// CreateVehicle creates a vehicle for a user. New vehicles start at full
// health score; the score is recomputed server-side by maintenance events.
func (s *Service) CreateVehicle(ctx context.Context, userID uuid.UUID, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	if req.Year < 1900 {
		return nil, ErrInvalidYear
	}

	vehicle := &models.Vehicle{
		UserID:       userID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		VIN:          req.VIN,
		LicensePlate: req.LicensePlate,
		Color:        req.Color,
		Mileage:      req.Mileage,
		HealthScore:  initialHealthScore,
		ImageURL:     req.ImageURL,
	}

	if err := s.repo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetVehicle retrieves one vehicle
func (s *Service) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return s.repo.GetVehicleByID(ctx, id)
}

// GetVehicles retrieves all vehicles for a user
func (s *Service) GetVehicles(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error) {
	return s.repo.GetVehiclesByUser(ctx, userID)
}

// UpdateVehicle applies a partial update. Mileage is monotonically
// non-decreasing: a lower value than the stored one is rejected.
func (s *Service) UpdateVehicle(ctx context.Context, id uuid.UUID, req models.UpdateVehicleRequest) (*models.Vehicle, error) {
	existing, err := s.repo.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Mileage != nil && *req.Mileage < existing.Mileage {
		return nil, ErrMileageDecrease
	}

	if req.Make != nil {
		existing.Make = *req.Make
	}
	if req.Model != nil {
		existing.Model = *req.Model
	}
	if req.Year != nil {
		if *req.Year < 1900 {
			return nil, ErrInvalidYear
		}
		existing.Year = *req.Year
	}
	if req.LicensePlate != nil {
		existing.LicensePlate = req.LicensePlate
	}
	if req.Color != nil {
		existing.Color = req.Color
	}
	if req.Mileage != nil {
		existing.Mileage = *req.Mileage
	}
	if req.ImageURL != nil {
		existing.ImageURL = req.ImageURL
	}

	if err := s.repo.UpdateVehicle(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteVehicle removes a vehicle
func (s *Service) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVehicle(ctx, id)
}
