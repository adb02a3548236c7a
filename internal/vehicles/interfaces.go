package vehicles

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// RepositoryInterface defines the data access contract for vehicles
type RepositoryInterface interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
}
