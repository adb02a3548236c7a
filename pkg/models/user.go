package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application account
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// DashboardData is the aggregate read backing the home screen
type DashboardData struct {
	Vehicles            []*Vehicle         `json:"vehicles"`
	UpcomingBookings    []*Booking         `json:"upcomingBookings"`
	ActiveReminders     []*ServiceReminder `json:"activeReminders"`
	UnreadNotifications int                `json:"unreadNotifications"`
	MonthExpenseTotal   float64            `json:"monthExpenseTotal"`
}
