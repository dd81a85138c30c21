package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"samedayramps-backend/internal/domain"
)

func acceptedQuote() *domain.Quote {
	return &domain.Quote{
		ID:                "q1",
		CustomerID:        "cust-1",
		CustomerName:      "Ada Lovelace",
		Status:            domain.QuoteStatusAccepted,
		InstallAddress:    "12 Main St, Dallas TX",
		RampConfiguration: testRampConfig(),
	}
}

func TestJobService_CreateJobFromQuote(t *testing.T) {
	ctx := context.Background()
	installDate := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	t.Run("SnapshotsQuote", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		quoteRepo.On("GetByID", ctx, "q1").Return(acceptedQuote(), nil).Once()
		cal.On("CreateEvent", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), "12 Main St, Dallas TX", installDate).
			Return("evt-1", nil).Once()
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once()

		job, err := svc.CreateJobFromQuote(ctx, "q1", installDate)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(job.JobID, "JOB-"))
		assert.Equal(t, "q1", job.QuoteID)
		assert.Equal(t, "cust-1", job.CustomerID.ID)
		assert.Equal(t, domain.JobStatusScheduled, job.Status)
		assert.Equal(t, "evt-1", job.CalendarEventID)
		assert.Equal(t, 8.0, job.RampConfiguration.TotalLength, "configuration is a frozen copy")
		jobRepo.AssertExpectations(t)
	})

	t.Run("PaidQuoteRejected", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		quote := acceptedQuote()
		quote.Status = domain.QuoteStatusPaid
		quoteRepo.On("GetByID", ctx, "q1").Return(quote, nil).Once()

		_, err := svc.CreateJobFromQuote(ctx, "q1", installDate)
		var pErr *domain.PreconditionError
		require.ErrorAs(t, err, &pErr, "only an accepted quote can produce a job")
		cal.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("SentQuoteRejected", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		quote := acceptedQuote()
		quote.Status = domain.QuoteStatusSent
		quoteRepo.On("GetByID", ctx, "q1").Return(quote, nil).Once()

		_, err := svc.CreateJobFromQuote(ctx, "q1", installDate)
		var pErr *domain.PreconditionError
		require.ErrorAs(t, err, &pErr)
		cal.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CalendarOutageCreatesNothing", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		quoteRepo.On("GetByID", ctx, "q1").Return(acceptedQuote(), nil).Once()
		cal.On("CreateEvent", ctx, mock.Anything, mock.Anything, mock.Anything, installDate).
			Return("", assert.AnError).Once()

		_, err := svc.CreateJobFromQuote(ctx, "q1", installDate)
		var cErr *domain.CollaboratorError
		require.ErrorAs(t, err, &cErr)
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestJobService_RescheduleJob(t *testing.T) {
	ctx := context.Background()
	newDate := time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC)

	t.Run("ScheduledJobMoves", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", JobID: "JOB-AAAA", Status: domain.JobStatusScheduled, CalendarEventID: "evt-1"}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()
		cal.On("UpdateEvent", ctx, "evt-1", newDate).Return(nil).Once()
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once()

		moved, err := svc.RescheduleJob(ctx, "j1", newDate)
		require.NoError(t, err)
		assert.Equal(t, newDate, moved.ScheduledInstallationDate)
		assert.Equal(t, domain.JobStatusScheduled, moved.Status)
	})

	t.Run("CancelledJobIsTerminal", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", Status: domain.JobStatusCancelled}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()

		_, err := svc.RescheduleJob(ctx, "j1", newDate)
		var pErr *domain.PreconditionError
		require.ErrorAs(t, err, &pErr)
	})
}

func TestJobService_CompleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsActualDateAndClosesQuote", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", JobID: "JOB-AAAA", QuoteID: "q1", Status: domain.JobStatusScheduled}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once()
		quote := &domain.Quote{ID: "q1", Status: domain.QuoteStatusPaid}
		quoteRepo.On("GetByID", ctx, "q1").Return(quote, nil).Once()
		quoteRepo.On("Update", ctx, mock.MatchedBy(func(q *domain.Quote) bool {
			return q.Status == domain.QuoteStatusCompleted
		})).Return(nil).Once()

		done, err := svc.CompleteJob(ctx, "j1", nil)
		require.NoError(t, err)

		assert.Equal(t, domain.JobStatusCompleted, done.Status)
		require.NotNil(t, done.ActualInstallationDate)
		assert.WithinDuration(t, time.Now().UTC(), *done.ActualInstallationDate, 5*time.Second)
		quoteRepo.AssertExpectations(t)
	})

	t.Run("UnpaidQuoteStaysPut", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", QuoteID: "q1", Status: domain.JobStatusScheduled}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once()
		quote := &domain.Quote{ID: "q1", Status: domain.QuoteStatusAccepted}
		quoteRepo.On("GetByID", ctx, "q1").Return(quote, nil).Once()

		_, err := svc.CompleteJob(ctx, "j1", nil)
		require.NoError(t, err)
		quoteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ExplicitActualDateUsed", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", QuoteID: "q1", Status: domain.JobStatusScheduled}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once()
		quoteRepo.On("GetByID", ctx, "q1").Return(nil, domain.ErrNotFound).Once()

		when := time.Date(2026, 9, 14, 16, 0, 0, 0, time.UTC)
		done, err := svc.CompleteJob(ctx, "j1", &when)
		require.NoError(t, err)
		assert.Equal(t, when, *done.ActualInstallationDate)
	})

	t.Run("CompletedIsTerminal", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", Status: domain.JobStatusCompleted}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()

		_, err := svc.CompleteJob(ctx, "j1", nil)
		var pErr *domain.PreconditionError
		require.ErrorAs(t, err, &pErr)
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestJobService_CancelJob(t *testing.T) {
	ctx := context.Background()

	t.Run("ScheduledJobCancelled", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", JobID: "JOB-AAAA", Status: domain.JobStatusScheduled, CalendarEventID: "evt-1"}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once()
		cal.On("DeleteEvent", ctx, "evt-1").Return(nil).Once()

		cancelled, err := svc.CancelJob(ctx, "j1")
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusCancelled, cancelled.Status)
		cal.AssertExpectations(t)
	})

	t.Run("CalendarFailureDoesNotBlockCancellation", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", Status: domain.JobStatusScheduled, CalendarEventID: "evt-1"}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once()
		cal.On("DeleteEvent", ctx, "evt-1").Return(assert.AnError).Once()

		cancelled, err := svc.CancelJob(ctx, "j1")
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusCancelled, cancelled.Status)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesJobAndCalendarEvent", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", JobID: "JOB-AAAA", Status: domain.JobStatusScheduled, CalendarEventID: "evt-1"}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()
		jobRepo.On("Delete", ctx, "j1").Return(nil).Once()
		cal.On("DeleteEvent", ctx, "evt-1").Return(nil).Once()

		require.NoError(t, svc.DeleteJob(ctx, "j1"))
		jobRepo.AssertExpectations(t)
		cal.AssertExpectations(t)
	})

	t.Run("CalendarFailureDoesNotBlockDeletion", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		job := &domain.Job{ID: "j1", Status: domain.JobStatusScheduled, CalendarEventID: "evt-1"}
		jobRepo.On("GetByID", ctx, "j1").Return(job, nil).Once()
		jobRepo.On("Delete", ctx, "j1").Return(nil).Once()
		cal.On("DeleteEvent", ctx, "evt-1").Return(assert.AnError).Once()

		require.NoError(t, svc.DeleteJob(ctx, "j1"))
	})

	t.Run("MissingJob", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		quoteRepo := new(MockQuoteRepo)
		cal := new(MockCalendarClient)
		svc := NewJobService(jobRepo, quoteRepo, cal)

		jobRepo.On("GetByID", ctx, "nope").Return(nil, domain.ErrNotFound).Once()

		err := svc.DeleteJob(ctx, "nope")
		require.ErrorIs(t, err, domain.ErrNotFound)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
