package http

import (
	"net/http"

	"rentit-backend/internal/service"
)

type ComplaintHandler struct {
	complaintSvc service.ComplaintService
}

func NewComplaintHandler(complaintSvc service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintSvc: complaintSvc}
}

type submitComplaintRequest struct {
	BookingID   int64  `json:"booking_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

func (h *ComplaintHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req submitComplaintRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	complaint, err := h.complaintSvc.SubmitComplaint(r.Context(), claims.UserID, req.BookingID, req.Subject, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}

func (h *ComplaintHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	complaints, err := h.complaintSvc.ListReporterComplaints(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaints)
}
