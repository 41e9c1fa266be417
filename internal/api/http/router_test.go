package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository/memory"
	"rentit-backend/internal/security"
	"rentit-backend/internal/service"
)

const demoPassword = "demo1234"

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, memory.Seed(context.Background(), store, demoPassword))

	tokens := security.NewTokenManager("test-secret-test-secret-test-secret", time.Hour)
	emailSvc := service.NewNoopEmailService()

	bookingSvc := service.NewBookingService(store.Bookings(), store.Vehicles(), store.Drivers(), store.Users(), emailSvc)
	handlers := Handlers{
		Auth:      NewAuthHandler(service.NewAuthService(store.Users(), tokens)),
		Vehicle:   NewVehicleHandler(service.NewVehicleService(store.Vehicles())),
		Driver:    NewDriverHandler(service.NewDriverService(store.Drivers())),
		Booking:   NewBookingHandler(bookingSvc, service.NewDriverService(store.Drivers())),
		Review:    NewReviewHandler(service.NewReviewService(store.Reviews(), store.Bookings())),
		Complaint: NewComplaintHandler(service.NewComplaintService(store.Complaints(), store.Bookings(), store.Users())),
		Admin: NewAdminHandler(
			service.NewAdminService(store.Vehicles(), store.Drivers(), store.Bookings(), store.Complaints(), store.Users(), emailSvc),
			service.NewComplaintService(store.Complaints(), store.Bookings(), store.Users()),
		),
	}
	return NewRouter(handlers, tokens)
}

func doRequest(t *testing.T, router *mux.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func login(t *testing.T, router *mux.Router, email string) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": demoPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[struct {
		Token string `json:"token"`
	}](t, rec)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func findVehicle(t *testing.T, router *mux.Router, model string) domain.Vehicle {
	t.Helper()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/vehicles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, v := range decodeBody[[]domain.Vehicle](t, rec) {
		if v.Model == model {
			return v
		}
	}
	t.Fatalf("vehicle %q not in inventory", model)
	return domain.Vehicle{}
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Success", func(t *testing.T) {
		login(t, router, "person@gmail.com")
	})

	t.Run("Wrong password", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email":    "person@gmail.com",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPublicInventoryOnlyListsRentable(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/vehicles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	vehicles := decodeBody[[]domain.Vehicle](t, rec)
	require.NotEmpty(t, vehicles)
	for _, v := range vehicles {
		assert.Equal(t, domain.VehicleStatusAvailable, v.Status)
		assert.Equal(t, domain.VerificationVerified, v.Verification)
	}
}

func TestBookingRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/bookings", "", map[string]any{"vehicle_id": 1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVehicleBookingFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "person@gmail.com")

	dzire := findVehicle(t, router, "Swift Dzire")

	// Estimate first: 2 days at 1800/day, plain Car, no extras.
	estimate := map[string]any{
		"vehicle_id": dzire.ID,
		"start_date": "2026-03-01", "start_time": "10:00",
		"end_date": "2026-03-03", "end_time": "10:00",
	}
	rec := doRequest(t, router, http.MethodPost, "/api/v1/bookings/estimate", token, estimate)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	fare := decodeBody[struct {
		Total float64 `json:"total"`
	}](t, rec)
	assert.Equal(t, 3600.0, fare.Total)

	// Book it.
	create := estimate
	create["pickup_location"] = "Adyar, Chennai"
	create["dropoff_location"] = "Velachery, Chennai"
	rec = doRequest(t, router, http.MethodPost, "/api/v1/bookings", token, create)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	booking := decodeBody[domain.Booking](t, rec)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, int64(3600), booking.TotalCostInr)

	// The vehicle is now Booked and gone from inventory.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/vehicles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, v := range decodeBody[[]domain.Vehicle](t, rec) {
		assert.NotEqual(t, dzire.ID, v.ID)
	}

	// Booking it again conflicts.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/bookings", token, create)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Complete, which releases the vehicle.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/bookings/"+itoa(booking.ID)+"/complete", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	released := findVehicle(t, router, "Swift Dzire")
	assert.Equal(t, domain.VehicleStatusAvailable, released.Status)
}

func TestDriverHireFlow(t *testing.T) {
	router := newTestRouter(t)
	renterToken := login(t, router, "person@gmail.com")
	driverToken := login(t, router, "ravi@gmail.com")

	// Find Ravi in the available driver pool.
	rec := doRequest(t, router, http.MethodGet, "/api/v1/drivers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ravi domain.Driver
	for _, d := range decodeBody[[]domain.Driver](t, rec) {
		if d.Name == "Ravi Kumar" {
			ravi = d
		}
	}
	require.NotZero(t, ravi.ID)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/bookings", renterToken, map[string]any{
		"driver_id":  ravi.ID,
		"start_date": "2026-03-01", "start_time": "10:00",
		"end_date": "2026-03-02", "end_time": "10:00",
		"distance_km": 40,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	hire := decodeBody[domain.Booking](t, rec)
	assert.Equal(t, domain.BookingStatusPending, hire.Status)
	// 800/day + 40 km * 10/km
	assert.Equal(t, int64(1200), hire.TotalCostInr)

	// The renter cannot respond to the hire.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/bookings/"+itoa(hire.ID)+"/respond", renterToken,
		map[string]string{"decision": "Accept"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The driver accepts and drops out of the available pool.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/bookings/"+itoa(hire.ID)+"/respond", driverToken,
		map[string]string{"decision": "Accept"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	accepted := decodeBody[domain.Booking](t, rec)
	assert.Equal(t, domain.BookingStatusConfirmed, accepted.Status)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/drivers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, d := range decodeBody[[]domain.Driver](t, rec) {
		assert.NotEqual(t, ravi.ID, d.ID)
	}

	// Hires show up in the driver's list.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/my/hires?status=Confirmed", driverToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hires := decodeBody[[]domain.Booking](t, rec)
	require.NotEmpty(t, hires)
}

func TestOwnerRoleEnforced(t *testing.T) {
	router := newTestRouter(t)
	renterToken := login(t, router, "person@gmail.com")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/vehicles", renterToken, map[string]any{
		"make": "Tata", "model": "Nexon", "registration": "TN-01-ZZ-0001",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminVerificationFlow(t *testing.T) {
	router := newTestRouter(t)
	adminToken := login(t, router, "admin@rentit.com")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/admin/verifications", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pending := decodeBody[struct {
		Vehicles []domain.Vehicle `json:"vehicles"`
		Drivers  []domain.Driver  `json:"drivers"`
	}](t, rec)
	require.NotEmpty(t, pending.Vehicles)
	require.NotEmpty(t, pending.Drivers)

	creta := pending.Vehicles[0]
	rec = doRequest(t, router, http.MethodPost, "/api/v1/admin/verifications/vehicle/"+itoa(creta.ID), adminToken,
		map[string]string{"decision": "Verified"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// A decided verification is final.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/admin/verifications/vehicle/"+itoa(creta.ID), adminToken,
		map[string]string{"decision": "Rejected"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Non-admins never reach the admin surface.
	renterToken := login(t, router, "person@gmail.com")
	rec = doRequest(t, router, http.MethodGet, "/api/v1/admin/verifications", renterToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReviewAndComplaint(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "person@gmail.com")

	// Find the seeded completed booking.
	rec := doRequest(t, router, http.MethodGet, "/api/v1/my/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var completed domain.Booking
	for _, b := range decodeBody[[]domain.Booking](t, rec) {
		if b.Status == domain.BookingStatusCompleted {
			completed = b
		}
	}
	require.NotZero(t, completed.ID)

	// Ram already reviewed it in the seed data.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"booking_id": completed.ID, "rating": 4, "comment": "Again",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/complaints", token, map[string]any{
		"booking_id": completed.ID, "subject": "Late pickup", "description": "Arrived 40 minutes late.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	complaint := decodeBody[domain.Complaint](t, rec)
	assert.Equal(t, domain.ComplaintStatusOpen, complaint.Status)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/my/complaints", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody[[]domain.Complaint](t, rec))
}
