package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/repository"
)

type quoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

const quoteColumns = `id, customer_id, customer_name, ramp_configuration, pricing_calculations, install_address, status, payment_status, agreement_status, payment_link_id, payment_link_url, agreement_document_id, created_at, updated_at`

func (r *quoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	rampConfig, pricing, err := marshalQuoteBlobs(q)
	if err != nil {
		return err
	}
	query := `INSERT INTO quotes (` + quoteColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	_, err = r.db.ExecContext(ctx, query,
		q.ID, q.CustomerID, q.CustomerName, rampConfig, pricing,
		q.InstallAddress, q.Status, q.PaymentStatus, q.AgreementStatus,
		q.PaymentLinkID, q.PaymentLinkURL, q.AgreementDocumentID, now, now)
	return err
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	q, err := scanQuote(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return q, err
}

func (r *quoteRepository) List(ctx context.Context) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC`
	return r.queryQuotes(ctx, query)
}

func (r *quoteRepository) Update(ctx context.Context, q *domain.Quote) error {
	rampConfig, pricing, err := marshalQuoteBlobs(q)
	if err != nil {
		return err
	}
	query := `UPDATE quotes SET
	          customer_id=$1, customer_name=$2, ramp_configuration=$3, pricing_calculations=$4,
	          install_address=$5, status=$6, payment_status=$7, agreement_status=$8,
	          payment_link_id=$9, payment_link_url=$10, agreement_document_id=$11, updated_at=$12
	          WHERE id=$13`
	now := time.Now()
	res, err := r.db.ExecContext(ctx, query,
		q.CustomerID, q.CustomerName, rampConfig, pricing,
		q.InstallAddress, q.Status, q.PaymentStatus, q.AgreementStatus,
		q.PaymentLinkID, q.PaymentLinkURL, q.AgreementDocumentID, now, q.ID)
	if err != nil {
		return err
	}
	q.UpdatedAt = now
	return requireRowAffected(res)
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *quoteRepository) ListWithOpenPayments(ctx context.Context) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes
	          WHERE payment_link_id <> '' AND payment_status NOT IN ('paid', 'failed')`
	return r.queryQuotes(ctx, query)
}

func (r *quoteRepository) ListWithOpenAgreements(ctx context.Context) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes
	          WHERE agreement_document_id <> '' AND agreement_status NOT IN ('signed', 'declined')`
	return r.queryQuotes(ctx, query)
}

func (r *quoteRepository) queryQuotes(ctx context.Context, query string, args ...any) ([]domain.Quote, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, rows.Err()
}

func marshalQuoteBlobs(q *domain.Quote) ([]byte, []byte, error) {
	rampConfig, err := json.Marshal(q.RampConfiguration)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal ramp configuration: %w", err)
	}
	pricing, err := json.Marshal(q.PricingCalculations)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal pricing calculations: %w", err)
	}
	return rampConfig, pricing, nil
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	q := &domain.Quote{}
	var rampConfig, pricing []byte
	err := row.Scan(&q.ID, &q.CustomerID, &q.CustomerName, &rampConfig, &pricing,
		&q.InstallAddress, &q.Status, &q.PaymentStatus, &q.AgreementStatus,
		&q.PaymentLinkID, &q.PaymentLinkURL, &q.AgreementDocumentID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rampConfig, &q.RampConfiguration); err != nil {
		return nil, fmt.Errorf("unmarshal ramp configuration: %w", err)
	}
	if err := json.Unmarshal(pricing, &q.PricingCalculations); err != nil {
		return nil, fmt.Errorf("unmarshal pricing calculations: %w", err)
	}
	return q, nil
}
