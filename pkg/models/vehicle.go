package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a car owned by a user
type Vehicle struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"userId" db:"user_id"`
	Make          string    `json:"make" db:"make"`
	Model         string    `json:"model" db:"model"`
	Year          int       `json:"year" db:"year"`
	VIN           *string   `json:"vin,omitempty" db:"vin"`
	LicensePlate  *string   `json:"licensePlate,omitempty" db:"license_plate"`
	Color         *string   `json:"color,omitempty" db:"color"`
	Mileage       int       `json:"mileage" db:"mileage"`
	FuelEfficiency *float64 `json:"fuelEfficiency,omitempty" db:"fuel_efficiency"`
	HealthScore   int       `json:"healthScore" db:"health_score"` // 0-100
	ImageURL      *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateVehicleRequest represents a new vehicle payload
type CreateVehicleRequest struct {
	Make         string   `json:"make" binding:"required"`
	Model        string   `json:"model" binding:"required"`
	Year         int      `json:"year" binding:"required,min=1900"`
	VIN          *string  `json:"vin,omitempty"`
	LicensePlate *string  `json:"licensePlate,omitempty"`
	Color        *string  `json:"color,omitempty"`
	Mileage      int      `json:"mileage" binding:"min=0"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
}

// UpdateVehicleRequest represents a partial vehicle update.
// Mileage is monotonically non-decreasing; updates lowering it are rejected.
type UpdateVehicleRequest struct {
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`
	Color        *string `json:"color,omitempty"`
	Mileage      *int    `json:"mileage,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
}
