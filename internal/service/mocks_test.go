package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/integrations/payments"
)

// MockRentalRequestRepo
type MockRentalRequestRepo struct {
	mock.Mock
}

func (m *MockRentalRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRentalRequestRepo) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestRepo) List(ctx context.Context) ([]domain.RentalRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestRepo) Update(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRentalRequestRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuoteRepo
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}
func (m *MockQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) List(ctx context.Context) ([]domain.Quote, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) Update(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}
func (m *MockQuoteRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockQuoteRepo) ListWithOpenPayments(ctx context.Context) ([]domain.Quote, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) ListWithOpenAgreements(ctx context.Context) ([]domain.Quote, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Quote), args.Error(1)
}

// MockJobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) List(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPricingVariablesRepo
type MockPricingVariablesRepo struct {
	mock.Mock
}

func (m *MockPricingVariablesRepo) Get(ctx context.Context) (*domain.PricingVariables, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingVariables), args.Error(1)
}
func (m *MockPricingVariablesRepo) Save(ctx context.Context, vars *domain.PricingVariables) error {
	args := m.Called(ctx, vars)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEmail(to, toName, subject, plainText, htmlContent string) error {
	args := m.Called(to, toName, subject, plainText, htmlContent)
	return args.Error(0)
}

// MockPaymentClient
type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) CreateLink(ctx context.Context, amount float64, customerEmail string) (*payments.PaymentLink, error) {
	args := m.Called(ctx, amount, customerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.PaymentLink), args.Error(1)
}

// MockEsignClient
type MockEsignClient struct {
	mock.Mock
}

func (m *MockEsignClient) Send(ctx context.Context, documentID, recipientEmail string) error {
	args := m.Called(ctx, documentID, recipientEmail)
	return args.Error(0)
}

// MockCalendarClient
type MockCalendarClient struct {
	mock.Mock
}

func (m *MockCalendarClient) CreateEvent(ctx context.Context, jobID, title, installAddress string, date time.Time) (string, error) {
	args := m.Called(ctx, jobID, title, installAddress, date)
	return args.String(0), args.Error(1)
}
func (m *MockCalendarClient) UpdateEvent(ctx context.Context, eventID string, date time.Time) error {
	args := m.Called(ctx, eventID, date)
	return args.Error(0)
}
func (m *MockCalendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// MockPricingEngine
type MockPricingEngine struct {
	mock.Mock
}

func (m *MockPricingEngine) Calculate(ctx context.Context, cfg domain.RampConfiguration, installAddress, warehouseAddress string) (*domain.PricingCalculations, error) {
	args := m.Called(ctx, cfg, installAddress, warehouseAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingCalculations), args.Error(1)
}

// MockRepricer
type MockRepricer struct {
	mock.Mock
}

func (m *MockRepricer) Update(quoteID string, cfg domain.RampConfiguration, installAddress, warehouseAddress string) {
	m.Called(quoteID, cfg, installAddress, warehouseAddress)
}
