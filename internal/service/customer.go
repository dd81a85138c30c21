package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/logger"
	"samedayramps-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	requestRepo  repository.RentalRequestRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, requestRepo repository.RentalRequestRepository) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		requestRepo:  requestRepo,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer.ID = uuid.NewString()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	logger.Info("customer created", "customer_id", customer.ID)
	return customer, nil
}

// CreateCustomerFromRentalRequest copies the contact and address fields from a
// rental request into a new customer record. The request itself is left
// untouched; its status does not change and it is not deleted.
func (s *customerService) CreateCustomerFromRentalRequest(ctx context.Context, rentalRequestID string) (*domain.Customer, error) {
	req, err := s.requestRepo.GetByID(ctx, rentalRequestID)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		FirstName:      req.CustomerInfo.FirstName,
		LastName:       req.CustomerInfo.LastName,
		Email:          req.CustomerInfo.Email,
		Phone:          req.CustomerInfo.Phone,
		InstallAddress: req.InstallAddress,
		MobilityAids:   append([]domain.MobilityAid(nil), req.RampDetails.MobilityAids...),
	}
	return s.CreateCustomer(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.GetByID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = time.Now().UTC()

	// Quotes snapshot the customer name and address at quote time, so this
	// update deliberately does not fan out to existing quotes or jobs.
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}
