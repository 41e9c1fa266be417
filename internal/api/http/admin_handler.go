package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/service"
)

type AdminHandler struct {
	adminSvc     service.AdminService
	complaintSvc service.ComplaintService
}

func NewAdminHandler(adminSvc service.AdminService, complaintSvc service.ComplaintService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, complaintSvc: complaintSvc}
}

type pendingVerificationsResponse struct {
	Vehicles []domain.Vehicle `json:"vehicles"`
	Drivers  []domain.Driver  `json:"drivers"`
}

func (h *AdminHandler) ListPendingVerifications(w http.ResponseWriter, r *http.Request) {
	vehicles, drivers, err := h.adminSvc.ListPendingVerifications(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pendingVerificationsResponse{Vehicles: vehicles, Drivers: drivers})
}

type verificationDecisionRequest struct {
	Decision domain.VerificationStatus `json:"decision"`
}

// DecideVerification approves or rejects a pending vehicle or driver. The
// kind path segment is "vehicle" or "driver".
func (h *AdminHandler) DecideVerification(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	kind := domain.EntityKind(mux.Vars(r)["kind"])
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req verificationDecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.adminSvc.SetVerification(r.Context(), claims.UserID, kind, id, req.Decision); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type complaintStatusRequest struct {
	Status domain.ComplaintStatus `json:"status"`
}

func (h *AdminHandler) UpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req complaintStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	complaint, err := h.adminSvc.UpdateComplaintStatus(r.Context(), claims.UserID, id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaint)
}

func (h *AdminHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.complaintSvc.ListComplaints(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaints)
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.adminSvc.ListAllBookings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *AdminHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.adminSvc.ListAllVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *AdminHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.adminSvc.ListAllDrivers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}
