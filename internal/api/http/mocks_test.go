package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/integrations/esign"
	"samedayramps-backend/internal/integrations/payments"
)

// MockRentalRequestService
type MockRentalRequestService struct {
	mock.Mock
}

func (m *MockRentalRequestService) CreateRentalRequest(ctx context.Context, req *domain.RentalRequest) (*domain.RentalRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestService) GetRentalRequest(ctx context.Context, id string) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestService) ListRentalRequests(ctx context.Context) ([]domain.RentalRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestService) UpdateRentalRequestStatus(ctx context.Context, id string, status domain.RentalRequestStatus) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestService) DeleteRentalRequest(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CreateCustomerFromRentalRequest(ctx context.Context, rentalRequestID string) (*domain.Customer, error) {
	args := m.Called(ctx, rentalRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteService) UpdateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) DeleteQuote(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockQuoteService) SendQuoteEmail(ctx context.Context, id string) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) AcceptQuote(ctx context.Context, id, token string) (*domain.Quote, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) MarkQuotePaid(ctx context.Context, id string) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ApplyPricing(ctx context.Context, id string, calcs *domain.PricingCalculations) error {
	args := m.Called(ctx, id, calcs)
	return args.Error(0)
}

// MockJobService
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJobFromQuote(ctx context.Context, quoteID string, scheduledDate time.Time) (*domain.Job, error) {
	args := m.Called(ctx, quoteID, scheduledDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobService) RescheduleJob(ctx context.Context, id string, scheduledDate time.Time) (*domain.Job, error) {
	args := m.Called(ctx, id, scheduledDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) CompleteJob(ctx context.Context, id string, actualDate *time.Time) (*domain.Job, error) {
	args := m.Called(ctx, id, actualDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) CancelJob(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) DeleteJob(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetPricingVariables(ctx context.Context) (*domain.PricingVariables, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingVariables), args.Error(1)
}
func (m *MockSettingsService) SavePricingVariables(ctx context.Context, vars *domain.PricingVariables) (*domain.PricingVariables, error) {
	args := m.Called(ctx, vars)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingVariables), args.Error(1)
}
func (m *MockSettingsService) WarehouseAddress(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockSettingsService) CalculatePricing(ctx context.Context, cfg domain.RampConfiguration, installAddress string) (*domain.PricingCalculations, error) {
	args := m.Called(ctx, cfg, installAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingCalculations), args.Error(1)
}

// MockPaymentsGateway
type MockPaymentsGateway struct {
	mock.Mock
}

func (m *MockPaymentsGateway) CreateLink(ctx context.Context, amount float64, customerEmail string) (*payments.PaymentLink, error) {
	args := m.Called(ctx, amount, customerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.PaymentLink), args.Error(1)
}
func (m *MockPaymentsGateway) CheckStatus(ctx context.Context, linkID string) (*payments.LinkStatusResult, error) {
	args := m.Called(ctx, linkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.LinkStatusResult), args.Error(1)
}

// MockEsignGateway
type MockEsignGateway struct {
	mock.Mock
}

func (m *MockEsignGateway) Send(ctx context.Context, documentID, recipientEmail string) error {
	args := m.Called(ctx, documentID, recipientEmail)
	return args.Error(0)
}
func (m *MockEsignGateway) CheckStatus(ctx context.Context, documentID string) (*esign.DocumentStatus, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*esign.DocumentStatus), args.Error(1)
}
