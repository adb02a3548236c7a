package garages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Repository handles database operations for garages and service types
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new garages repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const garageColumns = `
	id, name, address, latitude, longitude, phone, email, rating,
	total_reviews, image_url, services, is_active, distance, created_at, updated_at
`

func scanGarage(row pgx.Row) (*models.Garage, error) {
	garage := &models.Garage{}
	err := row.Scan(
		&garage.ID,
		&garage.Name,
		&garage.Address,
		&garage.Latitude,
		&garage.Longitude,
		&garage.Phone,
		&garage.Email,
		&garage.Rating,
		&garage.TotalReviews,
		&garage.ImageURL,
		&garage.Services,
		&garage.IsActive,
		&garage.Distance,
		&garage.CreatedAt,
		&garage.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return garage, nil
}

// ListGarages retrieves all active garages in stored order
func (r *Repository) ListGarages(ctx context.Context) ([]*models.Garage, error) {
	query := `
		SELECT ` + garageColumns + `
		FROM garages
		WHERE is_active = true
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list garages: %w", err)
	}
	defer rows.Close()

	var garages []*models.Garage
	for rows.Next() {
		garage, err := scanGarage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan garage: %w", err)
		}
		garages = append(garages, garage)
	}

	return garages, nil
}

// GetGarageByID retrieves a garage by ID
func (r *Repository) GetGarageByID(ctx context.Context, id uuid.UUID) (*models.Garage, error) {
	query := `
		SELECT ` + garageColumns + `
		FROM garages
		WHERE id = $1
	`

	garage, err := scanGarage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get garage: %w", err)
	}

	return garage, nil
}

// SearchGarages applies the same narrowing semantics the mobile discovery
// module uses: the query matches the name or any service tag
// case-insensitively, and each requested service key must be contained in
// some tag (case-sensitive, tags are lower-case tokens).
func (r *Repository) SearchGarages(ctx context.Context, query string, services []string) ([]*models.Garage, error) {
	sql := `
		SELECT ` + garageColumns + `
		FROM garages
		WHERE is_active = true
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%'
		       OR EXISTS (SELECT 1 FROM unnest(services) AS tag WHERE tag ILIKE '%' || $1 || '%'))
		  AND ($2::text[] IS NULL OR EXISTS (
		       SELECT 1 FROM unnest(services) AS tag, unnest($2::text[]) AS wanted
		       WHERE tag LIKE '%' || wanted || '%'))
		ORDER BY created_at ASC
	`

	var serviceFilters []string
	if len(services) > 0 {
		serviceFilters = services
	}

	rows, err := r.db.Query(ctx, sql, query, serviceFilters)
	if err != nil {
		return nil, fmt.Errorf("failed to search garages: %w", err)
	}
	defer rows.Close()

	var garages []*models.Garage
	for rows.Next() {
		garage, err := scanGarage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan garage: %w", err)
		}
		garages = append(garages, garage)
	}

	return garages, nil
}

// ListServiceTypes retrieves all service types
func (r *Repository) ListServiceTypes(ctx context.Context) ([]*models.ServiceType, error) {
	query := `
		SELECT id, name, description, base_price, duration_minutes, category, created_at
		FROM service_types
		ORDER BY category, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}
	defer rows.Close()

	var serviceTypes []*models.ServiceType
	for rows.Next() {
		st := &models.ServiceType{}
		err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.Description,
			&st.BasePrice,
			&st.DurationMinutes,
			&st.Category,
			&st.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service type: %w", err)
		}
		serviceTypes = append(serviceTypes, st)
	}

	return serviceTypes, nil
}

// GetServiceTypeByID retrieves a service type by ID
func (r *Repository) GetServiceTypeByID(ctx context.Context, id uuid.UUID) (*models.ServiceType, error) {
	query := `
		SELECT id, name, description, base_price, duration_minutes, category, created_at
		FROM service_types
		WHERE id = $1
	`

	st := &models.ServiceType{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&st.ID,
		&st.Name,
		&st.Description,
		&st.BasePrice,
		&st.DurationMinutes,
		&st.Category,
		&st.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}

	return st, nil
}
