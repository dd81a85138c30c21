package repository

import (
	"context"

	"samedayramps-backend/internal/domain"
)

type RentalRequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id string) (*domain.RentalRequest, error)
	List(ctx context.Context) ([]domain.RentalRequest, error)
	Update(ctx context.Context, req *domain.RentalRequest) error
	Delete(ctx context.Context, id string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	List(ctx context.Context) ([]domain.Quote, error)
	Update(ctx context.Context, quote *domain.Quote) error
	Delete(ctx context.Context, id string) error
	// ListWithOpenPayments returns quotes holding a payment link whose
	// payment status has not reached a terminal value yet.
	ListWithOpenPayments(ctx context.Context) ([]domain.Quote, error)
	// ListWithOpenAgreements returns quotes with an agreement out for
	// signature that is neither signed nor declined.
	ListWithOpenAgreements(ctx context.Context) ([]domain.Quote, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id string) error
}

type PricingVariablesRepository interface {
	Get(ctx context.Context) (*domain.PricingVariables, error)
	Save(ctx context.Context, vars *domain.PricingVariables) error
}
