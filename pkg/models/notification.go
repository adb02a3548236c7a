package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes a notification
type NotificationType string

const (
	NotificationReminder  NotificationType = "reminder"
	NotificationBooking   NotificationType = "booking"
	NotificationExpense   NotificationType = "expense"
	NotificationSystem    NotificationType = "system"
	NotificationPromotion NotificationType = "promotion"
)

// Notification represents a message delivered to a user. Created externally;
// mutated only by mark-read operations.
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"userId" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"isRead" db:"is_read"`
	ActionURL *string          `json:"actionUrl,omitempty" db:"action_url"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
