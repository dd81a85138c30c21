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

type rentalRequestRepository struct {
	db *sql.DB
}

func NewRentalRequestRepository(db *sql.DB) repository.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

func (r *rentalRequestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	query := `INSERT INTO rental_requests
	          (id, first_name, last_name, email, phone, know_ramp_length, ramp_length, know_rental_duration, rental_duration, install_timeframe, mobility_aids, install_address, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.CustomerInfo.FirstName, req.CustomerInfo.LastName, req.CustomerInfo.Email, req.CustomerInfo.Phone,
		req.RampDetails.KnowRampLength, req.RampDetails.RampLength,
		req.RampDetails.KnowRentalDuration, req.RampDetails.RentalDuration,
		req.RampDetails.InstallTimeframe, pq.Array(aidsToStrings(req.RampDetails.MobilityAids)),
		req.InstallAddress, req.Status, now, now)
	return err
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	query := `SELECT id, first_name, last_name, email, phone, know_ramp_length, ramp_length, know_rental_duration, rental_duration, install_timeframe, mobility_aids, install_address, status, created_at, updated_at
	          FROM rental_requests WHERE id = $1`
	req, err := scanRentalRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *rentalRequestRepository) List(ctx context.Context) ([]domain.RentalRequest, error) {
	query := `SELECT id, first_name, last_name, email, phone, know_ramp_length, ramp_length, know_rental_duration, rental_duration, install_timeframe, mobility_aids, install_address, status, created_at, updated_at
	          FROM rental_requests ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.RentalRequest
	for rows.Next() {
		req, err := scanRentalRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *rentalRequestRepository) Update(ctx context.Context, req *domain.RentalRequest) error {
	query := `UPDATE rental_requests SET
	          first_name=$1, last_name=$2, email=$3, phone=$4,
	          know_ramp_length=$5, ramp_length=$6, know_rental_duration=$7, rental_duration=$8,
	          install_timeframe=$9, mobility_aids=$10, install_address=$11, status=$12, updated_at=$13
	          WHERE id=$14`
	now := time.Now()
	res, err := r.db.ExecContext(ctx, query,
		req.CustomerInfo.FirstName, req.CustomerInfo.LastName, req.CustomerInfo.Email, req.CustomerInfo.Phone,
		req.RampDetails.KnowRampLength, req.RampDetails.RampLength,
		req.RampDetails.KnowRentalDuration, req.RampDetails.RentalDuration,
		req.RampDetails.InstallTimeframe, pq.Array(aidsToStrings(req.RampDetails.MobilityAids)),
		req.InstallAddress, req.Status, now, req.ID)
	if err != nil {
		return err
	}
	req.UpdatedAt = now
	return requireRowAffected(res)
}

func (r *rentalRequestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rental_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRentalRequest(row rowScanner) (*domain.RentalRequest, error) {
	req := &domain.RentalRequest{}
	var aids pq.StringArray
	err := row.Scan(
		&req.ID,
		&req.CustomerInfo.FirstName, &req.CustomerInfo.LastName, &req.CustomerInfo.Email, &req.CustomerInfo.Phone,
		&req.RampDetails.KnowRampLength, &req.RampDetails.RampLength,
		&req.RampDetails.KnowRentalDuration, &req.RampDetails.RentalDuration,
		&req.RampDetails.InstallTimeframe, &aids,
		&req.InstallAddress, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	req.RampDetails.MobilityAids = stringsToAids(aids)
	// Flag-gated fields are authoritative only while their flag is set.
	req.RampDetails.Normalize()
	return req, nil
}

func aidsToStrings(aids []domain.MobilityAid) []string {
	out := make([]string, len(aids))
	for i, a := range aids {
		out[i] = string(a)
	}
	return out
}

func stringsToAids(values []string) []domain.MobilityAid {
	out := make([]domain.MobilityAid, len(values))
	for i, v := range values {
		out[i] = domain.MobilityAid(v)
	}
	return out
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
