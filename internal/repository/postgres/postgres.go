package postgres

import (
	"database/sql"

	"samedayramps-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalRequestRepository
	repository.CustomerRepository
	repository.QuoteRepository
	repository.JobRepository
	repository.PricingVariablesRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                         db,
		RentalRequestRepository:    NewRentalRequestRepository(db),
		CustomerRepository:         NewCustomerRepository(db),
		QuoteRepository:            NewQuoteRepository(db),
		JobRepository:              NewJobRepository(db),
		PricingVariablesRepository: NewPricingVariablesRepository(db),
	}
}
