package http

import (
	"net/http"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
	driverSvc  service.DriverService
}

func NewBookingHandler(bookingSvc service.BookingService, driverSvc service.DriverService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, driverSvc: driverSvc}
}

type estimateRequest struct {
	VehicleID  int64   `json:"vehicle_id,omitempty"`
	StartDate  string  `json:"start_date"`
	StartTime  string  `json:"start_time"`
	EndDate    string  `json:"end_date"`
	EndTime    string  `json:"end_time"`
	DistanceKm float64 `json:"distance_km"`
	WithDriver bool    `json:"with_driver"`
}

func (r estimateRequest) fare() service.FareRequest {
	return service.FareRequest{
		StartDate:  r.StartDate,
		StartTime:  r.StartTime,
		EndDate:    r.EndDate,
		EndTime:    r.EndTime,
		DistanceKm: r.DistanceKm,
		WithDriver: r.WithDriver,
	}
}

// Estimate prices a vehicle rental, or a driver-only hire when no vehicle
// is given, without creating anything.
func (h *BookingHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if req.VehicleID == 0 {
		fare, err := h.bookingSvc.EstimateDriverHireFare(r.Context(), req.fare())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, fare)
		return
	}

	fare, err := h.bookingSvc.EstimateFare(r.Context(), req.VehicleID, req.fare())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fare)
}

type createBookingRequest struct {
	VehicleID       int64   `json:"vehicle_id,omitempty"`
	DriverID        int64   `json:"driver_id,omitempty"`
	StartDate       string  `json:"start_date"`
	StartTime       string  `json:"start_time"`
	EndDate         string  `json:"end_date"`
	EndTime         string  `json:"end_time"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	DistanceKm      float64 `json:"distance_km"`
	WithDriver      bool    `json:"with_driver"`
}

// Create books a vehicle, or sends a hire request to a driver when only a
// driver is given.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	booking := service.BookingRequest{
		UserID:          claims.UserID,
		VehicleID:       req.VehicleID,
		DriverID:        req.DriverID,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Fare: service.FareRequest{
			StartDate:  req.StartDate,
			StartTime:  req.StartTime,
			EndDate:    req.EndDate,
			EndTime:    req.EndTime,
			DistanceKm: req.DistanceKm,
			WithDriver: req.WithDriver,
		},
	}

	var (
		created *domain.Booking
		err     error
	)
	switch {
	case req.VehicleID != 0:
		created, err = h.bookingSvc.CreateVehicleBooking(r.Context(), booking)
	case req.DriverID != 0:
		created, err = h.bookingSvc.CreateDriverHire(r.Context(), booking)
	default:
		writeError(w, domain.ErrInvalidInput)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type hireDecisionRequest struct {
	Decision domain.BookingDecision `json:"decision"`
}

// Respond lets the assigned driver accept or decline a pending hire.
func (h *BookingHandler) Respond(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req hireDecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	driver, err := h.driverSvc.GetDriverByUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookingSvc.RespondToHire(r.Context(), driver.ID, id, req.Decision)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookingSvc.CompleteBooking(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookingSvc.CancelBooking(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	bookings, err := h.bookingSvc.ListUserBookings(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// ListHires returns the authenticated driver's hire requests, optionally
// narrowed by status.
func (h *BookingHandler) ListHires(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	driver, err := h.driverSvc.GetDriverByUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	status := domain.BookingStatus(r.URL.Query().Get("status"))
	bookings, err := h.bookingSvc.ListDriverHires(r.Context(), driver.ID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// ListLendings returns bookings on the authenticated owner's vehicles.
func (h *BookingHandler) ListLendings(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	bookings, err := h.bookingSvc.ListOwnerBookings(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
