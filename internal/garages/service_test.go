package garages

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ListGarages(ctx context.Context) ([]*models.Garage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Garage), args.Error(1)
}

func (m *mockRepo) GetGarageByID(ctx context.Context, id uuid.UUID) (*models.Garage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Garage), args.Error(1)
}

func (m *mockRepo) SearchGarages(ctx context.Context, query string, services []string) ([]*models.Garage, error) {
	args := m.Called(ctx, query, services)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Garage), args.Error(1)
}

func (m *mockRepo) ListServiceTypes(ctx context.Context) ([]*models.ServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ServiceType), args.Error(1)
}

func (m *mockRepo) GetServiceTypeByID(ctx context.Context, id uuid.UUID) (*models.ServiceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceType), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func sampleGarages() []*models.Garage {
	return []*models.Garage{
		{ID: uuid.New(), Name: "AutoShine Center", Services: []string{"car_wash", "detailing"}, IsActive: true},
		{ID: uuid.New(), Name: "Premium Auto Care", Services: []string{"oil_change", "maintenance", "repairs"}, IsActive: true},
	}
}

func TestListGaragesCacheMiss(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewService(repo, cache)
	garages := sampleGarages()

	cache.On("GetString", mock.Anything, garagesCacheKey).Return("", errors.New("redis: nil"))
	repo.On("ListGarages", mock.Anything).Return(garages, nil)
	cache.On("SetWithExpiration", mock.Anything, garagesCacheKey, mock.Anything, referenceCacheTTL).Return(nil)

	got, err := service.ListGarages(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestListGaragesCacheHit(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewService(repo, cache)
	garages := sampleGarages()

	encoded, err := json.Marshal(garages)
	require.NoError(t, err)
	cache.On("GetString", mock.Anything, garagesCacheKey).Return(string(encoded), nil)

	got, err := service.ListGarages(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "AutoShine Center", got[0].Name)
	repo.AssertNotCalled(t, "ListGarages", mock.Anything)
}

func TestListGaragesCorruptCacheFallsBack(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewService(repo, cache)

	cache.On("GetString", mock.Anything, garagesCacheKey).Return("{not json", nil)
	repo.On("ListGarages", mock.Anything).Return(sampleGarages(), nil)
	cache.On("SetWithExpiration", mock.Anything, garagesCacheKey, mock.Anything, referenceCacheTTL).Return(nil)

	got, err := service.ListGarages(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}

func TestListGaragesNilCache(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo, nil)

	repo.On("ListGarages", mock.Anything).Return(sampleGarages(), nil)

	got, err := service.ListGarages(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchGaragesBypassesCache(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewService(repo, cache)

	repo.On("SearchGarages", mock.Anything, "auto", []string{"oil_change"}).Return(sampleGarages()[1:], nil)

	got, err := service.SearchGarages(context.Background(), "auto", &models.GarageSearchFilters{Services: []string{"oil_change"}})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	cache.AssertNotCalled(t, "GetString", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSearchGaragesNilFilters(t *testing.T) {
	repo := new(mockRepo)
	service := NewService(repo, nil)

	repo.On("SearchGarages", mock.Anything, "shine", []string(nil)).Return(sampleGarages()[:1], nil)

	got, err := service.SearchGarages(context.Background(), "shine", nil)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}
