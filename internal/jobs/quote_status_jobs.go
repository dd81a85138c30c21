package jobs

import (
	"context"
	"errors"
	"time"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/integrations/esign"
	"samedayramps-backend/internal/integrations/payments"
	"samedayramps-backend/internal/logger"
)

// SyncPaymentStatuses polls the payment processor for every quote holding an
// open payment link and mirrors the processor's state onto the quote. The
// processor's "completed" maps to the quote payment status "paid"; a paid
// payment also advances an accepted quote to paid.
func (jr *JobRunner) SyncPaymentStatuses() {
	jr.runWithRecovery("SyncPaymentStatuses", func() {
		ctx := context.Background()

		quotes, err := jr.store.QuoteRepository.ListWithOpenPayments(ctx)
		if err != nil {
			logger.Error("Failed to list quotes with open payments", "error", err)
			return
		}

		synced := 0
		for i := range quotes {
			quote := &quotes[i]
			result, err := jr.payments.CheckStatus(ctx, quote.PaymentLinkID)
			if err != nil {
				if errors.Is(err, payments.ErrLinkNotFound) {
					logger.Warn("Payment link no longer known to processor",
						"quote_id", quote.ID, "payment_link_id", quote.PaymentLinkID)
				} else {
					logger.Error("Failed to check payment status",
						"quote_id", quote.ID, "error", err)
				}
				continue
			}

			var status domain.PaymentStatus
			switch result.Status {
			case payments.LinkStatusCompleted:
				status = domain.PaymentStatusPaid
			case payments.LinkStatusFailed:
				status = domain.PaymentStatusFailed
			case payments.LinkStatusPending:
				status = domain.PaymentStatusProcessing
			default:
				logger.Warn("Unknown payment status from processor",
					"quote_id", quote.ID, "status", result.Status)
				continue
			}

			changed := false
			if quote.PaymentStatus != status {
				quote.PaymentStatus = status
				changed = true
			}
			if status == domain.PaymentStatusPaid {
				if next, err := domain.NextQuoteStatus(quote.Status, domain.QuoteActionMarkPaid); err == nil {
					quote.Status = next
					changed = true
				}
			}
			if !changed {
				continue
			}

			quote.UpdatedAt = time.Now().UTC()
			if err := jr.store.QuoteRepository.Update(ctx, quote); err != nil {
				logger.Error("Failed to store synced payment status",
					"quote_id", quote.ID, "error", err)
				continue
			}
			synced++
			logger.Debug("Synced payment status",
				"quote_id", quote.ID, "payment_status", status, "quote_status", quote.Status)
		}

		logger.Info("Payment statuses synced", "checked", len(quotes), "updated", synced)
	})
}

// SyncAgreementStatuses polls the e-signature provider for every quote with an
// agreement out for signature and mirrors the document state onto the quote.
func (jr *JobRunner) SyncAgreementStatuses() {
	jr.runWithRecovery("SyncAgreementStatuses", func() {
		ctx := context.Background()

		quotes, err := jr.store.QuoteRepository.ListWithOpenAgreements(ctx)
		if err != nil {
			logger.Error("Failed to list quotes with open agreements", "error", err)
			return
		}

		synced := 0
		for i := range quotes {
			quote := &quotes[i]
			doc, err := jr.esign.CheckStatus(ctx, quote.AgreementDocumentID)
			if err != nil {
				if errors.Is(err, esign.ErrDocumentNotFound) {
					logger.Warn("Agreement document no longer known to provider",
						"quote_id", quote.ID, "document_id", quote.AgreementDocumentID)
				} else {
					logger.Error("Failed to check agreement status",
						"quote_id", quote.ID, "error", err)
				}
				continue
			}

			var status domain.AgreementStatus
			switch doc.Status {
			case esign.StatusSent:
				status = domain.AgreementStatusSent
			case esign.StatusViewed:
				status = domain.AgreementStatusViewed
			case esign.StatusSigned:
				status = domain.AgreementStatusSigned
			case esign.StatusDeclined:
				status = domain.AgreementStatusDeclined
			default:
				logger.Warn("Unknown agreement status from provider",
					"quote_id", quote.ID, "status", doc.Status)
				continue
			}

			if quote.AgreementStatus == status {
				continue
			}
			quote.AgreementStatus = status
			quote.UpdatedAt = time.Now().UTC()
			if err := jr.store.QuoteRepository.Update(ctx, quote); err != nil {
				logger.Error("Failed to store synced agreement status",
					"quote_id", quote.ID, "error", err)
				continue
			}
			synced++
			logger.Debug("Synced agreement status",
				"quote_id", quote.ID, "agreement_status", status)
		}

		logger.Info("Agreement statuses synced", "checked", len(quotes), "updated", synced)
	})
}
