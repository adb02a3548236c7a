package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// User APIs

func (c *Client) GetUser(ctx context.Context, userID uuid.UUID) (*Response[models.User], error) {
	return do[models.User](ctx, c, http.MethodGet, fmt.Sprintf("/users/%s", userID), nil)
}

func (c *Client) UpdateUser(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (*Response[models.User], error) {
	return do[models.User](ctx, c, http.MethodPut, fmt.Sprintf("/users/%s", userID), req)
}

// Vehicle APIs

func (c *Client) GetVehicles(ctx context.Context, userID uuid.UUID) (*Response[[]models.Vehicle], error) {
	return do[[]models.Vehicle](ctx, c, http.MethodGet, fmt.Sprintf("/users/%s/vehicles", userID), nil)
}

func (c *Client) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*Response[models.Vehicle], error) {
	return do[models.Vehicle](ctx, c, http.MethodGet, fmt.Sprintf("/vehicles/%s", vehicleID), nil)
}

func (c *Client) CreateVehicle(ctx context.Context, userID uuid.UUID, req models.CreateVehicleRequest) (*Response[models.Vehicle], error) {
	return do[models.Vehicle](ctx, c, http.MethodPost, fmt.Sprintf("/users/%s/vehicles", userID), req)
}

func (c *Client) UpdateVehicle(ctx context.Context, vehicleID uuid.UUID, req models.UpdateVehicleRequest) (*Response[models.Vehicle], error) {
	return do[models.Vehicle](ctx, c, http.MethodPut, fmt.Sprintf("/vehicles/%s", vehicleID), req)
}

func (c *Client) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) (*VoidResponse, error) {
	return do[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/vehicles/%s", vehicleID), nil)
}

// Garage APIs

// GaragesQuery scopes a garage listing geographically. Nil fields are omitted.
type GaragesQuery struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

func (c *Client) GetGarages(ctx context.Context, query GaragesQuery) (*Response[[]models.Garage], error) {
	params := url.Values{}
	if query.Latitude != nil {
		params.Set("lat", strconv.FormatFloat(*query.Latitude, 'f', -1, 64))
	}
	if query.Longitude != nil {
		params.Set("lng", strconv.FormatFloat(*query.Longitude, 'f', -1, 64))
	}
	if query.RadiusKm != nil {
		params.Set("radius", strconv.FormatFloat(*query.RadiusKm, 'f', -1, 64))
	}

	path := "/garages"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return do[[]models.Garage](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) GetGarage(ctx context.Context, garageID uuid.UUID) (*Response[models.Garage], error) {
	return do[models.Garage](ctx, c, http.MethodGet, fmt.Sprintf("/garages/%s", garageID), nil)
}

func (c *Client) SearchGarages(ctx context.Context, query string, filters *models.GarageSearchFilters) (*Response[[]models.Garage], error) {
	req := models.SearchGaragesRequest{Query: query, Filters: filters}
	return do[[]models.Garage](ctx, c, http.MethodPost, "/garages/search", req)
}

// Service Type APIs

func (c *Client) GetServiceTypes(ctx context.Context) (*Response[[]models.ServiceType], error) {
	return do[[]models.ServiceType](ctx, c, http.MethodGet, "/service-types", nil)
}

func (c *Client) GetServiceType(ctx context.Context, serviceTypeID uuid.UUID) (*Response[models.ServiceType], error) {
	return do[models.ServiceType](ctx, c, http.MethodGet, fmt.Sprintf("/service-types/%s", serviceTypeID), nil)
}

// Booking APIs

func (c *Client) GetBookings(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) (*Response[[]models.Booking], error) {
	path := fmt.Sprintf("/users/%s/bookings", userID)
	if status != nil {
		path += "?status=" + url.QueryEscape(string(*status))
	}
	return do[[]models.Booking](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) GetBooking(ctx context.Context, bookingID uuid.UUID) (*Response[models.Booking], error) {
	return do[models.Booking](ctx, c, http.MethodGet, fmt.Sprintf("/bookings/%s", bookingID), nil)
}

func (c *Client) CreateBooking(ctx context.Context, userID uuid.UUID, req models.CreateBookingRequest) (*Response[models.Booking], error) {
	return do[models.Booking](ctx, c, http.MethodPost, fmt.Sprintf("/users/%s/bookings", userID), req)
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) (*Response[models.Booking], error) {
	body := models.UpdateBookingStatusRequest{Status: string(status)}
	return do[models.Booking](ctx, c, http.MethodPatch, fmt.Sprintf("/bookings/%s/status", bookingID), body)
}

func (c *Client) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*Response[models.Booking], error) {
	return do[models.Booking](ctx, c, http.MethodPatch, fmt.Sprintf("/bookings/%s/cancel", bookingID), nil)
}

// Expense APIs

func (c *Client) GetExpenses(ctx context.Context, userID uuid.UUID, filters *models.ExpenseFilters) (*Response[[]models.Expense], error) {
	body := filters
	if body == nil {
		body = &models.ExpenseFilters{}
	}
	return do[[]models.Expense](ctx, c, http.MethodPost, fmt.Sprintf("/users/%s/expenses/search", userID), body)
}

func (c *Client) GetExpense(ctx context.Context, expenseID uuid.UUID) (*Response[models.Expense], error) {
	return do[models.Expense](ctx, c, http.MethodGet, fmt.Sprintf("/expenses/%s", expenseID), nil)
}

// CreateExpense validates the payload before any network call: the amount
// must be strictly positive and the category must be a known one.
func (c *Client) CreateExpense(ctx context.Context, userID uuid.UUID, req models.CreateExpenseRequest) (*Response[models.Expense], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return do[models.Expense](ctx, c, http.MethodPost, fmt.Sprintf("/users/%s/expenses", userID), req)
}

func (c *Client) UpdateExpense(ctx context.Context, expenseID uuid.UUID, req models.UpdateExpenseRequest) (*Response[models.Expense], error) {
	return do[models.Expense](ctx, c, http.MethodPut, fmt.Sprintf("/expenses/%s", expenseID), req)
}

func (c *Client) DeleteExpense(ctx context.Context, expenseID uuid.UUID) (*VoidResponse, error) {
	return do[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/expenses/%s", expenseID), nil)
}

func (c *Client) GetExpensesSummary(ctx context.Context, userID uuid.UUID, period models.SummaryPeriod) (*Response[models.ExpensesSummary], error) {
	if _, err := models.ParseSummaryPeriod(string(period)); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/users/%s/expenses/summary?period=%s", userID, period)
	return do[models.ExpensesSummary](ctx, c, http.MethodGet, path, nil)
}

// Service Reminder APIs

func (c *Client) GetReminders(ctx context.Context, userID uuid.UUID) (*Response[[]models.ServiceReminder], error) {
	return do[[]models.ServiceReminder](ctx, c, http.MethodGet, fmt.Sprintf("/users/%s/reminders", userID), nil)
}

func (c *Client) GetReminder(ctx context.Context, reminderID uuid.UUID) (*Response[models.ServiceReminder], error) {
	return do[models.ServiceReminder](ctx, c, http.MethodGet, fmt.Sprintf("/reminders/%s", reminderID), nil)
}

func (c *Client) CreateReminder(ctx context.Context, userID uuid.UUID, req models.CreateReminderRequest) (*Response[models.ServiceReminder], error) {
	return do[models.ServiceReminder](ctx, c, http.MethodPost, fmt.Sprintf("/users/%s/reminders", userID), req)
}

func (c *Client) UpdateReminder(ctx context.Context, reminderID uuid.UUID, req models.UpdateReminderRequest) (*Response[models.ServiceReminder], error) {
	return do[models.ServiceReminder](ctx, c, http.MethodPut, fmt.Sprintf("/reminders/%s", reminderID), req)
}

func (c *Client) CompleteReminder(ctx context.Context, reminderID uuid.UUID, completedMileage *int) (*Response[models.ServiceReminder], error) {
	body := models.CompleteReminderRequest{CompletedMileage: completedMileage}
	return do[models.ServiceReminder](ctx, c, http.MethodPatch, fmt.Sprintf("/reminders/%s/complete", reminderID), body)
}

func (c *Client) DeleteReminder(ctx context.Context, reminderID uuid.UUID) (*VoidResponse, error) {
	return do[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/reminders/%s", reminderID), nil)
}

// Notification APIs

func (c *Client) GetNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) (*Response[[]models.Notification], error) {
	path := fmt.Sprintf("/users/%s/notifications", userID)
	if unreadOnly {
		path += "?unreadOnly=true"
	}
	return do[[]models.Notification](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) MarkNotificationAsRead(ctx context.Context, notificationID uuid.UUID) (*VoidResponse, error) {
	return do[struct{}](ctx, c, http.MethodPatch, fmt.Sprintf("/notifications/%s/read", notificationID), nil)
}

func (c *Client) MarkAllNotificationsAsRead(ctx context.Context, userID uuid.UUID) (*VoidResponse, error) {
	return do[struct{}](ctx, c, http.MethodPatch, fmt.Sprintf("/users/%s/notifications/read-all", userID), nil)
}

// Dashboard API

func (c *Client) GetDashboard(ctx context.Context, userID uuid.UUID) (*Response[models.DashboardData], error) {
	return do[models.DashboardData](ctx, c, http.MethodGet, fmt.Sprintf("/users/%s/dashboard", userID), nil)
}
