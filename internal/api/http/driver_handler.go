package http

import (
	"net/http"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/service"
)

type DriverHandler struct {
	driverSvc service.DriverService
}

func NewDriverHandler(driverSvc service.DriverService) *DriverHandler {
	return &DriverHandler{driverSvc: driverSvc}
}

// ListAvailable returns verified drivers currently accepting hires.
func (h *DriverHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.driverSvc.ListAvailableDrivers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}

func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	driver, err := h.driverSvc.GetDriver(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

// Register creates the driver profile for the authenticated driver account.
func (h *DriverHandler) Register(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var driver domain.Driver
	if err := decodeJSON(r, &driver); err != nil {
		writeError(w, err)
		return
	}
	driver.UserID = claims.UserID

	if err := h.driverSvc.RegisterDriver(r.Context(), &driver); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, driver)
}

func (h *DriverHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	driver, err := h.driverSvc.GetDriverByUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability toggles the authenticated driver's availability.
func (h *DriverHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req availabilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	driver, err := h.driverSvc.GetDriverByUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	driver, err = h.driverSvc.SetAvailability(r.Context(), driver.ID, req.Available)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}
