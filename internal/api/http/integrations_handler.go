package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/integrations/esign"
	"samedayramps-backend/internal/integrations/payments"
)

// PaymentsGateway is the slice of the payment processor client the staff
// passthrough endpoints need.
type PaymentsGateway interface {
	CreateLink(ctx context.Context, amount float64, customerEmail string) (*payments.PaymentLink, error)
	CheckStatus(ctx context.Context, linkID string) (*payments.LinkStatusResult, error)
}

// EsignGateway is the slice of the e-signature client the staff passthrough
// endpoints need.
type EsignGateway interface {
	Send(ctx context.Context, documentID, recipientEmail string) error
	CheckStatus(ctx context.Context, documentID string) (*esign.DocumentStatus, error)
}

// IntegrationsHandler exposes the payment and e-signature collaborators
// directly to staff, for manual retries when the automatic flows fail.
type IntegrationsHandler struct {
	payments PaymentsGateway
	esign    EsignGateway
}

func NewIntegrationsHandler(payments PaymentsGateway, esign EsignGateway) *IntegrationsHandler {
	return &IntegrationsHandler{payments: payments, esign: esign}
}

func (h *IntegrationsHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount        float64 `json:"amount"`
		CustomerEmail string  `json:"customerEmail"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if body.Amount <= 0 {
		respondError(w, domain.NewValidationError("amount", "must be positive"))
		return
	}
	if body.CustomerEmail == "" {
		respondError(w, domain.NewValidationError("customerEmail", "is required"))
		return
	}

	link, err := h.payments.CreateLink(r.Context(), body.Amount, body.CustomerEmail)
	if err != nil {
		respondError(w, &domain.CollaboratorError{Service: "payments", Err: err})
		return
	}
	respondJSON(w, http.StatusCreated, link)
}

func (h *IntegrationsHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.payments.CheckStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, payments.ErrLinkNotFound) {
			respondError(w, domain.ErrNotFound)
			return
		}
		respondError(w, &domain.CollaboratorError{Service: "payments", Err: err})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *IntegrationsHandler) SendAgreement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DocumentID     string `json:"documentId"`
		RecipientEmail string `json:"recipientEmail"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if body.DocumentID == "" {
		respondError(w, domain.NewValidationError("documentId", "is required"))
		return
	}
	if body.RecipientEmail == "" {
		respondError(w, domain.NewValidationError("recipientEmail", "is required"))
		return
	}

	if err := h.esign.Send(r.Context(), body.DocumentID, body.RecipientEmail); err != nil {
		respondError(w, &domain.CollaboratorError{Service: "esign", Err: err})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (h *IntegrationsHandler) AgreementStatus(w http.ResponseWriter, r *http.Request) {
	doc, err := h.esign.CheckStatus(r.Context(), mux.Vars(r)["documentId"])
	if err != nil {
		if errors.Is(err, esign.ErrDocumentNotFound) {
			respondError(w, domain.ErrNotFound)
			return
		}
		respondError(w, &domain.CollaboratorError{Service: "esign", Err: err})
		return
	}
	respondJSON(w, http.StatusOK, doc)
}
