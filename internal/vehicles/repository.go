package vehicles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/models"
)

// Repository handles database operations for vehicles
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new vehicles repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const vehicleColumns = `
	id, user_id, make, model, year, vin, license_plate, color, mileage,
	fuel_efficiency, health_score, image_url, created_at, updated_at
`

func scanVehicle(row pgx.Row) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{}
	err := row.Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.VIN,
		&vehicle.LicensePlate,
		&vehicle.Color,
		&vehicle.Mileage,
		&vehicle.FuelEfficiency,
		&vehicle.HealthScore,
		&vehicle.ImageURL,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

// CreateVehicle inserts a new vehicle
func (r *Repository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, user_id, make, model, year, vin, license_plate, color,
			mileage, fuel_efficiency, health_score, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	vehicle.ID = uuid.New()
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.UserID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.VIN,
		vehicle.LicensePlate,
		vehicle.Color,
		vehicle.Mileage,
		vehicle.FuelEfficiency,
		vehicle.HealthScore,
		vehicle.ImageURL,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

// GetVehicleByID retrieves a vehicle by ID
func (r *Repository) GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1
	`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return vehicle, nil
}

// GetVehiclesByUser retrieves all vehicles owned by a user
func (r *Repository) GetVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*models.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}

// UpdateVehicle persists changed vehicle fields
func (r *Repository) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		UPDATE vehicles
		SET make = $1, model = $2, year = $3, license_plate = $4, color = $5,
			mileage = $6, image_url = $7, updated_at = $8
		WHERE id = $9
	`

	vehicle.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.LicensePlate,
		vehicle.Color,
		vehicle.Mileage,
		vehicle.ImageURL,
		vehicle.UpdatedAt,
		vehicle.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	if result.RowsAffected() == 0 {
		return common.ErrNotFound
	}

	return nil
}

// DeleteVehicle removes a vehicle
func (r *Repository) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	if result.RowsAffected() == 0 {
		return common.ErrNotFound
	}

	return nil
}
