package models

import (
	"time"

	"github.com/google/uuid"
)

// Garage represents a service location. Read-mostly reference data.
type Garage struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Address      string    `json:"address" db:"address"`
	Latitude     float64   `json:"latitude" db:"latitude"`
	Longitude    float64   `json:"longitude" db:"longitude"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	Email        *string   `json:"email,omitempty" db:"email"`
	Rating       float64   `json:"rating" db:"rating"` // 0.0-5.0
	TotalReviews int       `json:"totalReviews" db:"total_reviews"`
	ImageURL     *string   `json:"imageUrl,omitempty" db:"image_url"`
	Services     []string  `json:"services" db:"services"` // lower-case tags, e.g. "oil_change"
	IsActive     bool      `json:"isActive" db:"is_active"`
	Distance     *string   `json:"distance,omitempty" db:"distance"` // precomputed display label
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ServiceType represents an offered service. Reference data.
type ServiceType struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     *string   `json:"description,omitempty" db:"description"`
	BasePrice       *float64  `json:"basePrice,omitempty" db:"base_price"`
	DurationMinutes *int      `json:"durationMinutes,omitempty" db:"duration_minutes"`
	Category        string    `json:"category" db:"category"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// SearchGaragesRequest is the body of POST /garages/search
type SearchGaragesRequest struct {
	Query   string               `json:"query"`
	Filters *GarageSearchFilters `json:"filters,omitempty"`
}

// GarageSearchFilters narrows a search to garages offering any of the listed services
type GarageSearchFilters struct {
	Services []string `json:"services,omitempty"`
}
