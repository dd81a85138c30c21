package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/logger"
	"samedayramps-backend/internal/repository"
)

type jobService struct {
	jobRepo   repository.JobRepository
	quoteRepo repository.QuoteRepository
	calendar  CalendarClient
}

func NewJobService(jobRepo repository.JobRepository, quoteRepo repository.QuoteRepository, calendar CalendarClient) JobService {
	return &jobService{
		jobRepo:   jobRepo,
		quoteRepo: quoteRepo,
		calendar:  calendar,
	}
}

// CreateJobFromQuote schedules an installation for an accepted quote.
// The install address and ramp configuration are copied onto the job; from
// here on the quote and the job evolve independently. The calendar event is
// created before the job is persisted, so a calendar outage means no job and a
// clean retry.
func (s *jobService) CreateJobFromQuote(ctx context.Context, quoteID string, scheduledDate time.Time) (*domain.Job, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if !domain.CanCreateJob(quote.Status) {
		return nil, &domain.PreconditionError{Entity: "quote", Action: string(domain.QuoteActionCreateJob), Status: string(quote.Status)}
	}
	if scheduledDate.IsZero() {
		return nil, domain.NewValidationError("scheduledInstallationDate", "is required")
	}

	now := time.Now().UTC()
	job := &domain.Job{
		ID:                        uuid.NewString(),
		QuoteID:                   quote.ID,
		CustomerID:                domain.CustomerRef{ID: quote.CustomerID},
		InstallAddress:            quote.InstallAddress,
		RampConfiguration:         quote.RampConfiguration,
		Status:                    domain.JobStatusScheduled,
		ScheduledInstallationDate: scheduledDate,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	job.JobID = "JOB-" + strings.ToUpper(job.ID[:8])

	title := fmt.Sprintf("Ramp installation %s - %s", job.JobID, quote.CustomerName)
	eventID, err := s.calendar.CreateEvent(ctx, job.JobID, title, job.InstallAddress, scheduledDate)
	if err != nil {
		return nil, &domain.CollaboratorError{Service: "calendar", Err: err}
	}
	job.CalendarEventID = eventID

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	logger.Info("job created", "job_id", job.JobID, "quote_id", quote.ID)
	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.jobRepo.List(ctx)
}

// RescheduleJob moves a scheduled installation to a new date. The calendar is
// updated first; if it cannot be, the stored date stays as it was.
func (s *jobService) RescheduleJob(ctx context.Context, id string, scheduledDate time.Time) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextJobStatus(job.Status, domain.JobActionSchedule)
	if err != nil {
		return nil, err
	}
	if scheduledDate.IsZero() {
		return nil, domain.NewValidationError("scheduledInstallationDate", "is required")
	}

	if job.CalendarEventID != "" {
		if err := s.calendar.UpdateEvent(ctx, job.CalendarEventID, scheduledDate); err != nil {
			return nil, &domain.CollaboratorError{Service: "calendar", Err: err}
		}
	}

	job.Status = next
	job.ScheduledInstallationDate = scheduledDate
	job.UpdatedAt = time.Now().UTC()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	logger.Info("job rescheduled", "job_id", job.JobID, "scheduled_date", scheduledDate)
	return job, nil
}

// CompleteJob records the installation as done. When no actual date is given
// the current time is used. Completion also closes out the quote lifecycle if
// the quote has been paid.
func (s *jobService) CompleteJob(ctx context.Context, id string, actualDate *time.Time) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextJobStatus(job.Status, domain.JobActionComplete)
	if err != nil {
		return nil, err
	}

	when := time.Now().UTC()
	if actualDate != nil && !actualDate.IsZero() {
		when = actualDate.UTC()
	}

	job.Status = next
	job.ActualInstallationDate = &when
	job.UpdatedAt = time.Now().UTC()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	logger.Info("job completed", "job_id", job.JobID, "actual_date", when)

	s.completeQuote(ctx, job.QuoteID)
	return job, nil
}

// completeQuote advances the originating quote from paid to completed. Best
// effort: a quote that is not paid yet, or already gone, is left alone.
func (s *jobService) completeQuote(ctx context.Context, quoteID string) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to load quote after job completion", "quote_id", quoteID, "error", err)
		}
		return
	}
	next, err := domain.NextQuoteStatus(quote.Status, domain.QuoteActionComplete)
	if err != nil {
		logger.Debug("quote not completed with job", "quote_id", quoteID, "status", quote.Status)
		return
	}
	quote.Status = next
	quote.UpdatedAt = time.Now().UTC()
	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		logger.Error("failed to complete quote after job completion", "quote_id", quoteID, "error", err)
	}
}

// CancelJob calls off a scheduled installation. The calendar event removal is
// best effort; the cancellation is recorded regardless.
func (s *jobService) CancelJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextJobStatus(job.Status, domain.JobActionCancel)
	if err != nil {
		return nil, err
	}

	job.Status = next
	job.UpdatedAt = time.Now().UTC()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	if job.CalendarEventID != "" {
		if err := s.calendar.DeleteEvent(ctx, job.CalendarEventID); err != nil {
			logger.Error("failed to remove calendar event", "job_id", job.JobID, "error", err)
		}
	}
	logger.Info("job cancelled", "job_id", job.JobID)
	return job, nil
}

// DeleteJob removes a job record entirely. The calendar event removal is best
// effort, like cancellation; the deletion is recorded regardless.
func (s *jobService) DeleteJob(ctx context.Context, id string) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}

	if job.CalendarEventID != "" {
		if err := s.calendar.DeleteEvent(ctx, job.CalendarEventID); err != nil {
			logger.Error("failed to remove calendar event", "job_id", job.JobID, "error", err)
		}
	}
	logger.Info("job deleted", "job_id", job.JobID)
	return nil
}
