package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeBody(r, &customer); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.customers.CreateCustomer(r.Context(), &customer)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// CreateFromRentalRequest converts a lead into a customer record. The rental
// request is read, not consumed.
func (h *CustomerHandler) CreateFromRentalRequest(w http.ResponseWriter, r *http.Request) {
	created, err := h.customers.CreateCustomerFromRentalRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeBody(r, &customer); err != nil {
		respondError(w, err)
		return
	}
	customer.ID = mux.Vars(r)["id"]

	updated, err := h.customers.UpdateCustomer(r.Context(), &customer)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.DeleteCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
