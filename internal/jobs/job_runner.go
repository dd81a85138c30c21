package jobs

import (
	"context"

	"samedayramps-backend/internal/config"
	"samedayramps-backend/internal/integrations/esign"
	"samedayramps-backend/internal/integrations/payments"
	"samedayramps-backend/internal/logger"
	"samedayramps-backend/internal/repository/postgres"
)

// PaymentStatusClient reads payment link state from the payment processor.
type PaymentStatusClient interface {
	CheckStatus(ctx context.Context, linkID string) (*payments.LinkStatusResult, error)
}

// EsignStatusClient reads document state from the e-signature provider.
type EsignStatusClient interface {
	CheckStatus(ctx context.Context, documentID string) (*esign.DocumentStatus, error)
}

// JobRunner coordinates the scheduled sync jobs.
type JobRunner struct {
	store    *postgres.Store
	payments PaymentStatusClient
	esign    EsignStatusClient
	config   *config.Config
}

func NewJobRunner(store *postgres.Store, payments PaymentStatusClient, esign EsignStatusClient, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		payments: payments,
		esign:    esign,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler for cron specs.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllSyncJobs runs every sync job once (for manual execution).
func (jr *JobRunner) RunAllSyncJobs() {
	jr.SyncPaymentStatuses()
	jr.SyncAgreementStatuses()
}
