package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
	"rentit-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// ListAvailable is the renter-facing inventory: verified, available
// vehicles only, optionally filtered by type and location.
func (h *VehicleHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	filter := repository.VehicleFilter{
		Type:     domain.VehicleType(r.URL.Query().Get("type")),
		Location: r.URL.Query().Get("location"),
	}

	vehicles, err := h.vehicleSvc.ListAvailableVehicles(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Register(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		writeError(w, err)
		return
	}

	if err := h.vehicleSvc.RegisterVehicle(r.Context(), claims.UserID, &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		writeError(w, err)
		return
	}
	vehicle.ID = id

	if err := h.vehicleSvc.UpdateVehicle(r.Context(), claims.UserID, &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	vehicles, err := h.vehicleSvc.ListOwnerVehicles(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}
