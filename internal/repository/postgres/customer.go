package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (id, first_name, last_name, email, phone, install_address, mobility_aids, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
		c.InstallAddress, pq.Array(aidsToStrings(c.MobilityAids)), c.Notes, now, now)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT id, first_name, last_name, email, phone, install_address, mobility_aids, notes, created_at, updated_at
	          FROM customers WHERE id = $1`
	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, first_name, last_name, email, phone, install_address, mobility_aids, notes, created_at, updated_at
	          FROM customers ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, email=$3, phone=$4, install_address=$5, mobility_aids=$6, notes=$7, updated_at=$8
	          WHERE id=$9`
	now := time.Now()
	res, err := r.db.ExecContext(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone,
		c.InstallAddress, pq.Array(aidsToStrings(c.MobilityAids)), c.Notes, now, c.ID)
	if err != nil {
		return err
	}
	c.UpdatedAt = now
	return requireRowAffected(res)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	var aids pq.StringArray
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.InstallAddress, &aids, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.MobilityAids = stringsToAids(aids)
	return c, nil
}
