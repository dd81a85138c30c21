package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"samedayramps-backend/internal/config"
	"samedayramps-backend/internal/metrics"
	"samedayramps-backend/internal/service"
)

// Services bundles everything the router mounts.
type Services struct {
	RentalRequests service.RentalRequestService
	Customers      service.CustomerService
	Quotes         service.QuoteService
	Jobs           service.JobService
	Settings       service.SettingsService
	Payments       PaymentsGateway
	Esign          EsignGateway
}

// NewRouter mounts the API. The lead form submission and the quote acceptance
// link are public; everything else sits behind the staff key middleware.
func NewRouter(svcs Services, cfg *config.Config, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()

	if m != nil {
		r.Use(m.Middleware)
	}
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	requests := NewRentalRequestHandler(svcs.RentalRequests)
	customers := NewCustomerHandler(svcs.Customers)
	quotes := NewQuoteHandler(svcs.Quotes)
	jobs := NewJobHandler(svcs.Jobs)
	pricing := NewPricingHandler(svcs.Settings)
	integrations := NewIntegrationsHandler(svcs.Payments, svcs.Esign)

	// Public endpoints.
	r.HandleFunc("/rental-requests", requests.Create).Methods(http.MethodPost)
	r.HandleFunc("/quotes/{id}/accept", quotes.Accept).Methods(http.MethodPost)

	staff := r.NewRoute().Subrouter()
	staff.Use(StaffAuth(cfg.Server.StaffKey))

	staff.HandleFunc("/rental-requests", requests.List).Methods(http.MethodGet)
	staff.HandleFunc("/rental-requests/{id}", requests.Get).Methods(http.MethodGet)
	staff.HandleFunc("/rental-requests/{id}/status", requests.UpdateStatus).Methods(http.MethodPut)
	staff.HandleFunc("/rental-requests/{id}", requests.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	staff.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	staff.HandleFunc("/customers/from-rental-request/{id}", customers.CreateFromRentalRequest).Methods(http.MethodPost)
	staff.HandleFunc("/customers/{id}", customers.Get).Methods(http.MethodGet)
	staff.HandleFunc("/customers/{id}", customers.Update).Methods(http.MethodPut)
	staff.HandleFunc("/customers/{id}", customers.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/quotes", quotes.Create).Methods(http.MethodPost)
	staff.HandleFunc("/quotes", quotes.List).Methods(http.MethodGet)
	staff.HandleFunc("/quotes/{id}", quotes.Get).Methods(http.MethodGet)
	staff.HandleFunc("/quotes/{id}", quotes.Update).Methods(http.MethodPut)
	staff.HandleFunc("/quotes/{id}", quotes.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/quotes/{id}/send-email", quotes.SendEmail).Methods(http.MethodPost)
	staff.HandleFunc("/quotes/{id}/mark-paid", quotes.MarkPaid).Methods(http.MethodPost)

	staff.HandleFunc("/jobs", jobs.Create).Methods(http.MethodPost)
	staff.HandleFunc("/jobs", jobs.List).Methods(http.MethodGet)
	staff.HandleFunc("/jobs/{id}", jobs.Get).Methods(http.MethodGet)
	staff.HandleFunc("/jobs/{id}", jobs.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/jobs/{id}/schedule", jobs.Reschedule).Methods(http.MethodPut)
	staff.HandleFunc("/jobs/{id}/complete", jobs.Complete).Methods(http.MethodPost)
	staff.HandleFunc("/jobs/{id}/cancel", jobs.Cancel).Methods(http.MethodPost)

	staff.HandleFunc("/pricing-variables", pricing.GetVariables).Methods(http.MethodGet)
	staff.HandleFunc("/pricing-variables", pricing.SaveVariables).Methods(http.MethodPut)
	staff.HandleFunc("/calculate-pricing", pricing.Calculate).Methods(http.MethodPost)

	staff.HandleFunc("/payments/create-link", integrations.CreatePaymentLink).Methods(http.MethodPost)
	staff.HandleFunc("/payments/status/{id}", integrations.PaymentStatus).Methods(http.MethodGet)
	staff.HandleFunc("/esignatures/send", integrations.SendAgreement).Methods(http.MethodPost)
	staff.HandleFunc("/esignatures/status/{documentId}", integrations.AgreementStatus).Methods(http.MethodGet)

	return r
}
