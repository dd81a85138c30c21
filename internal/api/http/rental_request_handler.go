package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/service"
)

// RentalRequestHandler serves the public lead form and the staff inbox.
type RentalRequestHandler struct {
	requests service.RentalRequestService
}

func NewRentalRequestHandler(requests service.RentalRequestService) *RentalRequestHandler {
	return &RentalRequestHandler{requests: requests}
}

func (h *RentalRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.RentalRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.requests.CreateRentalRequest(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *RentalRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requests.ListRentalRequests(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *RentalRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.requests.GetRentalRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RentalRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.RentalRequestStatus `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	req, err := h.requests.UpdateRentalRequestStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RentalRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.requests.DeleteRentalRequest(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
