package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// ErrInvalidBookingStatus is returned when an unknown status string is parsed
var ErrInvalidBookingStatus = errors.New("invalid booking status")

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch status := BookingStatus(s); status {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBookingStatus, s)
	}
}

// IsTerminal reports whether no further transitions are allowed
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether the one-directional lifecycle permits moving
// to target. Cancellation is reachable from any non-terminal state.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == BookingCancelled {
		return true
	}
	switch s {
	case BookingPending:
		return target == BookingConfirmed
	case BookingConfirmed:
		return target == BookingInProgress
	case BookingInProgress:
		return target == BookingCompleted
	}
	return false
}

// Booking represents a scheduled service appointment
type Booking struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	UserID        uuid.UUID     `json:"userId" db:"user_id"`
	VehicleID     uuid.UUID     `json:"vehicleId" db:"vehicle_id"`
	GarageID      uuid.UUID     `json:"garageId" db:"garage_id"`
	ServiceTypeID uuid.UUID     `json:"serviceTypeId" db:"service_type_id"`
	BookingDate   string        `json:"bookingDate" db:"booking_date"` // YYYY-MM-DD
	BookingTime   string        `json:"bookingTime" db:"booking_time"` // HH:MM
	Status        BookingStatus `json:"status" db:"status"`
	Price         *float64      `json:"price,omitempty" db:"price"`
	Notes         *string       `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}

// CreateBookingRequest represents a new booking payload
type CreateBookingRequest struct {
	VehicleID     uuid.UUID `json:"vehicleId" binding:"required"`
	GarageID      uuid.UUID `json:"garageId" binding:"required"`
	ServiceTypeID uuid.UUID `json:"serviceTypeId" binding:"required"`
	BookingDate   string    `json:"bookingDate" binding:"required"`
	BookingTime   string    `json:"bookingTime" binding:"required"`
	Notes         *string   `json:"notes,omitempty"`
}

// UpdateBookingStatusRequest is the body of PATCH /bookings/:id/status
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
