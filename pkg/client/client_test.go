package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(data interface{}) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"success": true,
		"data":    data,
	})
	return body
}

func TestGetUser(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/"+userID.String(), r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelope(models.User{ID: userID, Name: "Jordan", Email: "jordan@example.com"}))
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.GetUser(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Jordan", resp.Data.Name)
}

func TestEnvelopeFailureIsDataNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 2xx with success:false is a domain failure, not a transport one
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"vehicle not found","error":"not_found"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.GetVehicle(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, "vehicle not found", resp.Message)
}

func TestTransportErrorOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.GetServiceTypes(context.Background())

	require.Error(t, err)
	assert.Nil(t, resp)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestNonVoidOperationsCarryData(t *testing.T) {
	// Every non-void operation must populate data on success; the stub
	// asserts the contract by returning data and checking decode.
	garages := []models.Garage{{ID: uuid.New(), Name: "AutoShine Center", Services: []string{"car_wash"}}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelope(garages))
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.SearchGarages(context.Background(), "auto", nil)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data, "non-void operation must not succeed without data")
	assert.Len(t, *resp.Data, 1)
}

func TestVoidOperationsSucceedWithoutData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"notification marked as read"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.MarkNotificationAsRead(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestMarkNotificationAsReadIdempotent(t *testing.T) {
	notificationID := uuid.New()
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/notifications/"+notificationID.String()+"/read", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := New(server.URL)

	// Marking a notification read twice stays successful
	for i := 0; i < 2; i++ {
		resp, err := c.MarkNotificationAsRead(context.Background(), notificationID)
		require.NoError(t, err)
		assert.True(t, resp.Success)
	}
	assert.Equal(t, 2, calls)
}

func TestCreateExpenseValidatesBeforeNetwork(t *testing.T) {
	requestSeen := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestSeen = true
	}))
	defer server.Close()

	c := New(server.URL)

	tests := []struct {
		name    string
		req     models.CreateExpenseRequest
		wantErr error
	}{
		{
			name: "zero amount rejected",
			req: models.CreateExpenseRequest{
				VehicleID:   uuid.New(),
				Category:    "fuel",
				Amount:      0,
				ExpenseDate: "2025-06-01",
			},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name: "negative amount rejected",
			req: models.CreateExpenseRequest{
				VehicleID:   uuid.New(),
				Category:    "fuel",
				Amount:      -12.50,
				ExpenseDate: "2025-06-01",
			},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name: "unknown category rejected",
			req: models.CreateExpenseRequest{
				VehicleID:   uuid.New(),
				Category:    "lottery",
				Amount:      20,
				ExpenseDate: "2025-06-01",
			},
			wantErr: models.ErrInvalidExpenseCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.CreateExpense(context.Background(), uuid.New(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			assert.False(t, requestSeen, "validation failure must not issue a network call")
		})
	}
}

func TestAuthTokenInjection(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := New(server.URL)

	// No token set: header stays empty
	_, err := c.MarkAllNotificationsAsRead(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	c.SetAuthToken("token-123")
	_, err = c.MarkAllNotificationsAsRead(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestCustomInterceptors(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-App-Version")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	responseSeen := false
	c := New(server.URL,
		WithRequestInterceptor(func(req *http.Request) *http.Request {
			req.Header.Set("X-App-Version", "1.0.0")
			return req
		}),
		WithResponseInterceptor(func(resp *http.Response, err error) (*http.Response, error) {
			responseSeen = true
			return resp, err
		}),
	)

	_, err := c.MarkNotificationAsRead(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", gotHeader)
	assert.True(t, responseSeen)
}

func TestResponseInterceptorSeesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var observed error
	c := New(server.URL,
		WithResponseInterceptor(func(resp *http.Response, err error) (*http.Response, error) {
			observed = err
			// The chain must reject with the original error unchanged
			return resp, err
		}),
	)

	_, err := c.GetServiceTypes(context.Background())
	require.Error(t, err)
	assert.Equal(t, observed, err)
}

func TestGetExpensesSummaryRejectsUnknownPeriod(t *testing.T) {
	c := New("http://localhost:0")

	resp, err := c.GetExpensesSummary(context.Background(), uuid.New(), models.SummaryPeriod("decade"))
	require.ErrorIs(t, err, models.ErrInvalidSummaryPeriod)
	assert.Nil(t, resp)
}

func TestGetGaragesQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelope([]models.Garage{}))
	}))
	defer server.Close()

	c := New(server.URL)

	lat, lng, radius := 40.7128, -74.006, 5.0
	_, err := c.GetGarages(context.Background(), GaragesQuery{
		Latitude:  &lat,
		Longitude: &lng,
		RadiusKm:  &radius,
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "lat=40.7128")
	assert.Contains(t, gotQuery, "lng=-74.006")
	assert.Contains(t, gotQuery, "radius=5")
}

func TestDefaultTimeout(t *testing.T) {
	c := New("http://localhost:0")
	assert.Equal(t, 10*time.Second, c.httpClient.Timeout)
}
