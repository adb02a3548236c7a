package garages

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// RepositoryInterface defines the data access contract for garages and
// service types, enabling mocking in tests
type RepositoryInterface interface {
	ListGarages(ctx context.Context) ([]*models.Garage, error)
	GetGarageByID(ctx context.Context, id uuid.UUID) (*models.Garage, error)
	SearchGarages(ctx context.Context, query string, services []string) ([]*models.Garage, error)
	ListServiceTypes(ctx context.Context) ([]*models.ServiceType, error)
	GetServiceTypeByID(ctx context.Context, id uuid.UUID) (*models.ServiceType, error)
}

// Cache is the reference-data cache contract, satisfied by pkg/redis.Client
type Cache interface {
	GetString(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}
