package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReminderType is the closed set of reminder kinds
type ReminderType string

const (
	ReminderOilChange           ReminderType = "oil_change"
	ReminderTireRotation        ReminderType = "tire_rotation"
	ReminderBrakeCheck          ReminderType = "brake_check"
	ReminderInsuranceRenewal    ReminderType = "insurance_renewal"
	ReminderRegistrationRenewal ReminderType = "registration_renewal"
	ReminderInspection          ReminderType = "inspection"
	ReminderGeneralMaintenance  ReminderType = "general_maintenance"
)

// ReminderPriority ranks reminder urgency
type ReminderPriority string

const (
	PriorityLow    ReminderPriority = "low"
	PriorityMedium ReminderPriority = "medium"
	PriorityHigh   ReminderPriority = "high"
	PriorityUrgent ReminderPriority = "urgent"
)

// ReminderStatus is the lifecycle state of a reminder. Overdue is derived
// server-side; the client never computes it.
type ReminderStatus string

const (
	ReminderActive    ReminderStatus = "active"
	ReminderCompleted ReminderStatus = "completed"
	ReminderDismissed ReminderStatus = "dismissed"
	ReminderOverdue   ReminderStatus = "overdue"
)

var (
	// ErrInvalidReminderType is returned when an unknown type is parsed
	ErrInvalidReminderType = errors.New("invalid reminder type")
	// ErrInvalidReminderPriority is returned when an unknown priority is parsed
	ErrInvalidReminderPriority = errors.New("invalid reminder priority")
)

// ParseReminderType validates a raw reminder type string
func ParseReminderType(s string) (ReminderType, error) {
	switch t := ReminderType(s); t {
	case ReminderOilChange, ReminderTireRotation, ReminderBrakeCheck,
		ReminderInsuranceRenewal, ReminderRegistrationRenewal,
		ReminderInspection, ReminderGeneralMaintenance:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidReminderType, s)
	}
}

// ParseReminderPriority validates a raw priority string
func ParseReminderPriority(s string) (ReminderPriority, error) {
	switch p := ReminderPriority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidReminderPriority, s)
	}
}

// ServiceReminder represents an upcoming maintenance obligation
type ServiceReminder struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	UserID           uuid.UUID        `json:"userId" db:"user_id"`
	VehicleID        uuid.UUID        `json:"vehicleId" db:"vehicle_id"`
	Title            string           `json:"title" db:"title"`
	Description      *string          `json:"description,omitempty" db:"description"`
	ReminderType     ReminderType     `json:"reminderType" db:"reminder_type"`
	DueDate          *string          `json:"dueDate,omitempty" db:"due_date"`
	DueMileage       *int             `json:"dueMileage,omitempty" db:"due_mileage"`
	Priority         ReminderPriority `json:"priority" db:"priority"`
	Status           ReminderStatus   `json:"status" db:"status"`
	CompletedDate    *string          `json:"completedDate,omitempty" db:"completed_date"`
	CompletedMileage *int             `json:"completedMileage,omitempty" db:"completed_mileage"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`
}

// CreateReminderRequest represents a new reminder payload
type CreateReminderRequest struct {
	VehicleID    uuid.UUID `json:"vehicleId" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Description  *string   `json:"description,omitempty"`
	ReminderType string    `json:"reminderType" binding:"required"`
	DueDate      *string   `json:"dueDate,omitempty"`
	DueMileage   *int      `json:"dueMileage,omitempty"`
	Priority     string    `json:"priority" binding:"required"`
}

// UpdateReminderRequest represents a partial reminder update
type UpdateReminderRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	DueMileage  *int    `json:"dueMileage,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

// CompleteReminderRequest is the body of PATCH /reminders/:id/complete
type CompleteReminderRequest struct {
	CompletedMileage *int `json:"completedMileage,omitempty"`
}
