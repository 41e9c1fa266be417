package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/security"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth      *AuthHandler
	Vehicle   *VehicleHandler
	Driver    *DriverHandler
	Booking   *BookingHandler
	Review    *ReviewHandler
	Complaint *ComplaintHandler
	Admin     *AdminHandler
}

// NewRouter builds the HTTP API. Everything lives under /api/v1; browsing
// inventory and authenticating are public, the rest requires a token.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", h.Vehicle.ListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Get).Methods(http.MethodGet)
	api.HandleFunc("/drivers", h.Driver.ListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{id:[0-9]+}", h.Driver.Get).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id:[0-9]+}/reviews", h.Review.ListForBooking).Methods(http.MethodGet)

	// Authenticated
	auth := api.NewRoute().Subrouter()
	auth.Use(Authenticate(tokens))

	auth.HandleFunc("/me", h.Auth.Profile).Methods(http.MethodGet)

	// Owner surface
	auth.HandleFunc("/vehicles", RequireRole(h.Vehicle.Register, domain.RoleOwner)).Methods(http.MethodPost)
	auth.HandleFunc("/vehicles/{id:[0-9]+}", RequireRole(h.Vehicle.Update, domain.RoleOwner)).Methods(http.MethodPut)
	auth.HandleFunc("/my/vehicles", RequireRole(h.Vehicle.ListMine, domain.RoleOwner)).Methods(http.MethodGet)
	auth.HandleFunc("/my/lendings", RequireRole(h.Booking.ListLendings, domain.RoleOwner)).Methods(http.MethodGet)
	auth.HandleFunc("/my/reviews", RequireRole(h.Review.ListMine, domain.RoleOwner)).Methods(http.MethodGet)

	// Driver surface
	auth.HandleFunc("/drivers", RequireRole(h.Driver.Register, domain.RoleDriver)).Methods(http.MethodPost)
	auth.HandleFunc("/my/driver", RequireRole(h.Driver.GetMine, domain.RoleDriver)).Methods(http.MethodGet)
	auth.HandleFunc("/my/driver/availability", RequireRole(h.Driver.SetAvailability, domain.RoleDriver)).Methods(http.MethodPut)
	auth.HandleFunc("/my/hires", RequireRole(h.Booking.ListHires, domain.RoleDriver)).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{id:[0-9]+}/respond", RequireRole(h.Booking.Respond, domain.RoleDriver)).Methods(http.MethodPost)

	// Renter surface
	auth.HandleFunc("/bookings/estimate", h.Booking.Estimate).Methods(http.MethodPost)
	auth.HandleFunc("/bookings", h.Booking.Create).Methods(http.MethodPost)
	auth.HandleFunc("/bookings/{id:[0-9]+}", h.Booking.Get).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{id:[0-9]+}/complete", h.Booking.Complete).Methods(http.MethodPost)
	auth.HandleFunc("/bookings/{id:[0-9]+}/cancel", h.Booking.Cancel).Methods(http.MethodPost)
	auth.HandleFunc("/my/bookings", h.Booking.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/reviews", h.Review.Submit).Methods(http.MethodPost)
	auth.HandleFunc("/complaints", h.Complaint.Submit).Methods(http.MethodPost)
	auth.HandleFunc("/my/complaints", h.Complaint.ListMine).Methods(http.MethodGet)

	// Admin surface
	admin := auth.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/verifications", RequireRole(h.Admin.ListPendingVerifications, domain.RoleAdmin)).Methods(http.MethodGet)
	admin.HandleFunc("/verifications/{kind}/{id:[0-9]+}", RequireRole(h.Admin.DecideVerification, domain.RoleAdmin)).Methods(http.MethodPost)
	admin.HandleFunc("/complaints", RequireRole(h.Admin.ListComplaints, domain.RoleAdmin)).Methods(http.MethodGet)
	admin.HandleFunc("/complaints/{id:[0-9]+}/status", RequireRole(h.Admin.UpdateComplaintStatus, domain.RoleAdmin)).Methods(http.MethodPut)
	admin.HandleFunc("/bookings", RequireRole(h.Admin.ListBookings, domain.RoleAdmin)).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles", RequireRole(h.Admin.ListVehicles, domain.RoleAdmin)).Methods(http.MethodGet)
	admin.HandleFunc("/drivers", RequireRole(h.Admin.ListDrivers, domain.RoleAdmin)).Methods(http.MethodGet)

	return r
}
