package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/service"
)

type QuoteHandler struct {
	quotes service.QuoteService
}

func NewQuoteHandler(quotes service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var quote domain.Quote
	if err := decodeBody(r, &quote); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.quotes.CreateQuote(r.Context(), &quote)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quotes.ListQuotes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quotes.GetQuote(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var quote domain.Quote
	if err := decodeBody(r, &quote); err != nil {
		respondError(w, err)
		return
	}
	quote.ID = mux.Vars(r)["id"]

	updated, err := h.quotes.UpdateQuote(r.Context(), &quote)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.quotes.DeleteQuote(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// SendEmail emails the quote to its customer with a tokenized acceptance link.
func (h *QuoteHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quotes.SendQuoteEmail(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// acceptQuoteResponse is the customer-facing acceptance payload. The caller
// is unauthenticated, so it carries only the next-step links, never the quote
// entity itself.
type acceptQuoteResponse struct {
	Message       string `json:"message"`
	PaymentLink   string `json:"paymentLink,omitempty"`
	SignatureLink string `json:"signatureLink,omitempty"`
}

// Accept is the customer-facing acceptance endpoint reached from the emailed
// link. It is mounted publicly; the token in the query string is the
// credential.
func (h *QuoteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, domain.ErrInvalidToken)
		return
	}

	quote, err := h.quotes.AcceptQuote(r.Context(), mux.Vars(r)["id"], token)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, acceptQuoteResponse{
		Message:       "Quote accepted. Use the links below to complete payment and sign the rental agreement.",
		PaymentLink:   quote.PaymentLinkURL,
		SignatureLink: quote.AgreementSigningURL,
	})
}

// MarkPaid records an out-of-band payment, such as a check.
func (h *QuoteHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quotes.MarkQuotePaid(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}
