package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExpenseCategory is the closed set of expense categories
type ExpenseCategory string

const (
	ExpenseFuel        ExpenseCategory = "fuel"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseInsurance   ExpenseCategory = "insurance"
	ExpenseRepairs     ExpenseCategory = "repairs"
	ExpenseAccessories ExpenseCategory = "accessories"
	ExpenseCarWash     ExpenseCategory = "car_wash"
	ExpenseParking     ExpenseCategory = "parking"
	ExpenseTolls       ExpenseCategory = "tolls"
	ExpenseOther       ExpenseCategory = "other"
)

var (
	// ErrInvalidExpenseCategory is returned when an unknown category is parsed
	ErrInvalidExpenseCategory = errors.New("invalid expense category")
	// ErrInvalidAmount is returned when an expense amount is not strictly positive
	ErrInvalidAmount = errors.New("expense amount must be positive")
	// ErrInvalidSummaryPeriod is returned for periods outside week/month/year
	ErrInvalidSummaryPeriod = errors.New("invalid summary period")
)

// ParseExpenseCategory validates a raw category string
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch category := ExpenseCategory(s); category {
	case ExpenseFuel, ExpenseMaintenance, ExpenseInsurance, ExpenseRepairs,
		ExpenseAccessories, ExpenseCarWash, ExpenseParking, ExpenseTolls, ExpenseOther:
		return category, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExpenseCategory, s)
	}
}

// SummaryPeriod is the window of an expenses summary
type SummaryPeriod string

const (
	PeriodWeek  SummaryPeriod = "week"
	PeriodMonth SummaryPeriod = "month"
	PeriodYear  SummaryPeriod = "year"
)

// ParseSummaryPeriod validates a raw period string
func ParseSummaryPeriod(s string) (SummaryPeriod, error) {
	switch period := SummaryPeriod(s); period {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return period, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSummaryPeriod, s)
	}
}

// Expense represents a single spend record against a vehicle
type Expense struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	UserID           uuid.UUID       `json:"userId" db:"user_id"`
	VehicleID        uuid.UUID       `json:"vehicleId" db:"vehicle_id"`
	Category         ExpenseCategory `json:"category" db:"category"`
	Amount           float64         `json:"amount" db:"amount"`
	Description      *string         `json:"description,omitempty" db:"description"`
	ExpenseDate      string          `json:"expenseDate" db:"expense_date"` // YYYY-MM-DD
	ReceiptURL       *string         `json:"receiptUrl,omitempty" db:"receipt_url"`
	MileageAtExpense *int            `json:"mileageAtExpense,omitempty" db:"mileage_at_expense"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}

// CreateExpenseRequest represents a new expense payload
type CreateExpenseRequest struct {
	VehicleID        uuid.UUID `json:"vehicleId" binding:"required"`
	Category         string    `json:"category" binding:"required"`
	Amount           float64   `json:"amount" binding:"required"`
	Description      *string   `json:"description,omitempty"`
	ExpenseDate      string    `json:"expenseDate" binding:"required"`
	MileageAtExpense *int      `json:"mileageAtExpense,omitempty"`
}

// Validate applies the business rules checked before any network call
func (r *CreateExpenseRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if _, err := ParseExpenseCategory(r.Category); err != nil {
		return err
	}
	return nil
}

// UpdateExpenseRequest represents a partial expense update
type UpdateExpenseRequest struct {
	Category         *string  `json:"category,omitempty"`
	Amount           *float64 `json:"amount,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ExpenseDate      *string  `json:"expenseDate,omitempty"`
	MileageAtExpense *int     `json:"mileageAtExpense,omitempty"`
}

// ExpenseFilters narrows an expense search
type ExpenseFilters struct {
	Category  *string `json:"category,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// ExpensesSummary aggregates spend for a period
type ExpensesSummary struct {
	Period     SummaryPeriod              `json:"period"`
	Total      float64                    `json:"total"`
	ByCategory map[ExpenseCategory]float64 `json:"byCategory"`
	Count      int                        `json:"count"`
}
