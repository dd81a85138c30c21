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

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, job_id, quote_id, customer_id, install_address, ramp_configuration, status, scheduled_installation_date, actual_installation_date, calendar_event_id, created_at, updated_at`

func (r *jobRepository) Create(ctx context.Context, j *domain.Job) error {
	rampConfig, err := json.Marshal(j.RampConfiguration)
	if err != nil {
		return fmt.Errorf("marshal ramp configuration: %w", err)
	}
	query := `INSERT INTO jobs (` + jobColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err = r.db.ExecContext(ctx, query,
		j.ID, j.JobID, j.QuoteID, j.CustomerID.ID, j.InstallAddress, rampConfig,
		j.Status, j.ScheduledInstallationDate, j.ActualInstallationDate,
		j.CalendarEventID, now, now)
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	j, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return j, err
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY scheduled_installation_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) Update(ctx context.Context, j *domain.Job) error {
	rampConfig, err := json.Marshal(j.RampConfiguration)
	if err != nil {
		return fmt.Errorf("marshal ramp configuration: %w", err)
	}
	query := `UPDATE jobs SET
	          install_address=$1, ramp_configuration=$2, status=$3,
	          scheduled_installation_date=$4, actual_installation_date=$5,
	          calendar_event_id=$6, updated_at=$7
	          WHERE id=$8`
	now := time.Now()
	res, err := r.db.ExecContext(ctx, query,
		j.InstallAddress, rampConfig, j.Status,
		j.ScheduledInstallationDate, j.ActualInstallationDate,
		j.CalendarEventID, now, j.ID)
	if err != nil {
		return err
	}
	j.UpdatedAt = now
	return requireRowAffected(res)
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanJob(row rowScanner) (*domain.Job, error) {
	j := &domain.Job{}
	var rampConfig []byte
	err := row.Scan(&j.ID, &j.JobID, &j.QuoteID, &j.CustomerID.ID, &j.InstallAddress, &rampConfig,
		&j.Status, &j.ScheduledInstallationDate, &j.ActualInstallationDate,
		&j.CalendarEventID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rampConfig, &j.RampConfiguration); err != nil {
		return nil, fmt.Errorf("unmarshal ramp configuration: %w", err)
	}
	return j, nil
}
