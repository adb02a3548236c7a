package garages

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/logger"
	"github.com/motorhub/carcare/pkg/models"
	"go.uber.org/zap"
)

const (
	garagesCacheKey      = "garages:active"
	serviceTypesCacheKey = "service-types:all"
	referenceCacheTTL    = 5 * time.Minute
)

// Service handles business logic for garage and service-type reads. Garage
// data is read-mostly reference data, so full listings go through a cache.
type Service struct {
	repo  RepositoryInterface
	cache Cache
}

// NewService creates a new garages service. Cache may be nil, in which case
// every read hits the repository.
func NewService(repo RepositoryInterface, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// ListGarages returns all active garages, serving from the reference cache
// when possible
func (s *Service) ListGarages(ctx context.Context) ([]*models.Garage, error) {
	if garages, ok := cacheGet[[]*models.Garage](ctx, s.cache, garagesCacheKey); ok {
		return garages, nil
	}

	garages, err := s.repo.ListGarages(ctx)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.cache, garagesCacheKey, garages)
	return garages, nil
}

// GetGarage returns one garage by ID
func (s *Service) GetGarage(ctx context.Context, id uuid.UUID) (*models.Garage, error) {
	return s.repo.GetGarageByID(ctx, id)
}

// SearchGarages narrows the garage set by free-text query and service tags.
// Searches are not cached: the keyspace is unbounded.
func (s *Service) SearchGarages(ctx context.Context, query string, filters *models.GarageSearchFilters) ([]*models.Garage, error) {
	var services []string
	if filters != nil {
		services = filters.Services
	}
	return s.repo.SearchGarages(ctx, query, services)
}

// ListServiceTypes returns all service types, cached like garages
func (s *Service) ListServiceTypes(ctx context.Context) ([]*models.ServiceType, error) {
	if serviceTypes, ok := cacheGet[[]*models.ServiceType](ctx, s.cache, serviceTypesCacheKey); ok {
		return serviceTypes, nil
	}

	serviceTypes, err := s.repo.ListServiceTypes(ctx)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.cache, serviceTypesCacheKey, serviceTypes)
	return serviceTypes, nil
}

// GetServiceType returns one service type by ID
func (s *Service) GetServiceType(ctx context.Context, id uuid.UUID) (*models.ServiceType, error) {
	return s.repo.GetServiceTypeByID(ctx, id)
}

// cacheGet reads and decodes a cached value. A miss or decode failure falls
// back to the repository silently.
func cacheGet[T any](ctx context.Context, cache Cache, key string) (T, bool) {
	var zero T
	if cache == nil {
		return zero, false
	}

	raw, err := cache.GetString(ctx, key)
	if err != nil || raw == "" {
		return zero, false
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Warn("failed to decode cached reference data", zap.String("key", key), zap.Error(err))
		return zero, false
	}

	return value, true
}

// cacheSet stores a value best-effort; cache failures never fail the read
func cacheSet(ctx context.Context, cache Cache, key string, value interface{}) {
	if cache == nil {
		return
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := cache.SetWithExpiration(ctx, key, string(encoded), referenceCacheTTL); err != nil {
		logger.Warn("failed to cache reference data", zap.String("key", key), zap.Error(err))
	}
}
