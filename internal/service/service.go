package service

import (
	"context"
	"time"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/integrations/payments"
)

type RentalRequestService interface {
	CreateRentalRequest(ctx context.Context, req *domain.RentalRequest) (*domain.RentalRequest, error)
	GetRentalRequest(ctx context.Context, id string) (*domain.RentalRequest, error)
	ListRentalRequests(ctx context.Context) ([]domain.RentalRequest, error)
	UpdateRentalRequestStatus(ctx context.Context, id string, status domain.RentalRequestStatus) (*domain.RentalRequest, error)
	DeleteRentalRequest(ctx context.Context, id string) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	CreateCustomerFromRentalRequest(ctx context.Context, rentalRequestID string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type QuoteService interface {
	CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
	UpdateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	SendQuoteEmail(ctx context.Context, id string) (*domain.Quote, error)
	AcceptQuote(ctx context.Context, id, token string) (*domain.Quote, error)
	MarkQuotePaid(ctx context.Context, id string) (*domain.Quote, error)
	// ApplyPricing stores a completed pricing calculation on a quote. It is
	// invoked by the repricer once a debounced calculation lands.
	ApplyPricing(ctx context.Context, id string, calcs *domain.PricingCalculations) error
}

type JobService interface {
	CreateJobFromQuote(ctx context.Context, quoteID string, scheduledDate time.Time) (*domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]domain.Job, error)
	RescheduleJob(ctx context.Context, id string, scheduledDate time.Time) (*domain.Job, error)
	CompleteJob(ctx context.Context, id string, actualDate *time.Time) (*domain.Job, error)
	CancelJob(ctx context.Context, id string) (*domain.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

type SettingsService interface {
	GetPricingVariables(ctx context.Context) (*domain.PricingVariables, error)
	SavePricingVariables(ctx context.Context, vars *domain.PricingVariables) (*domain.PricingVariables, error)
	// WarehouseAddress returns the configured warehouse address, cached
	// between saves so quote edits do not hit the database per keystroke.
	WarehouseAddress(ctx context.Context) (string, error)
	CalculatePricing(ctx context.Context, cfg domain.RampConfiguration, installAddress string) (*domain.PricingCalculations, error)
}

type EmailService interface {
	SendEmail(to, toName, subject, plainText, htmlContent string) error
}

// Collaborator interfaces consumed by the services. Satisfied by the clients
// under internal/integrations; narrowed here so tests can substitute them.

type PaymentClient interface {
	CreateLink(ctx context.Context, amount float64, customerEmail string) (*payments.PaymentLink, error)
}

type EsignClient interface {
	Send(ctx context.Context, documentID, recipientEmail string) error
}

type CalendarClient interface {
	CreateEvent(ctx context.Context, jobID, title, installAddress string, date time.Time) (string, error)
	UpdateEvent(ctx context.Context, eventID string, date time.Time) error
	DeleteEvent(ctx context.Context, eventID string) error
}

type PricingEngine interface {
	Calculate(ctx context.Context, cfg domain.RampConfiguration, installAddress, warehouseAddress string) (*domain.PricingCalculations, error)
}

// Repricer schedules debounced pricing recalculation for a quote.
type Repricer interface {
	Update(quoteID string, cfg domain.RampConfiguration, installAddress, warehouseAddress string)
}
