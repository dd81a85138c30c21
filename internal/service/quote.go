package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/logger"
	"samedayramps-backend/internal/repository"
	"samedayramps-backend/internal/security"
)

type quoteService struct {
	quoteRepo    repository.QuoteRepository
	customerRepo repository.CustomerRepository
	settings     SettingsService
	repricer     Repricer
	tokens       security.TokenManager
	emailSvc     EmailService
	payments     PaymentClient
	esign        EsignClient
	// publicBaseURL is where the customer-facing acceptance links point.
	publicBaseURL string
	// signingBaseURL is the e-signature provider's hosted signing page; the
	// document ID is appended to it.
	signingBaseURL string
}

func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	customerRepo repository.CustomerRepository,
	settings SettingsService,
	repricer Repricer,
	tokens security.TokenManager,
	emailSvc EmailService,
	payments PaymentClient,
	esign EsignClient,
	publicBaseURL string,
	signingBaseURL string,
) QuoteService {
	return &quoteService{
		quoteRepo:      quoteRepo,
		customerRepo:   customerRepo,
		settings:       settings,
		repricer:       repricer,
		tokens:         tokens,
		emailSvc:       emailSvc,
		payments:       payments,
		esign:          esign,
		publicBaseURL:  publicBaseURL,
		signingBaseURL: signingBaseURL,
	}
}

func (s *quoteService) CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	customer, err := s.customerRepo.GetByID(ctx, quote.CustomerID)
	if err != nil {
		return nil, err
	}

	// The customer name and install address are snapshots: later edits to
	// the customer record do not touch this quote.
	quote.CustomerName = customer.FullName()
	if quote.InstallAddress == "" {
		quote.InstallAddress = customer.InstallAddress
	}
	if err := quote.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	quote.ID = uuid.NewString()
	quote.Status = domain.QuoteStatusDraft
	quote.PaymentStatus = domain.PaymentStatusPending
	quote.AgreementStatus = domain.AgreementStatusPending
	quote.PaymentLinkID = ""
	quote.PaymentLinkURL = ""
	quote.AgreementDocumentID = ""
	quote.CreatedAt = now
	quote.UpdatedAt = now

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}
	logger.Info("quote created", "quote_id", quote.ID, "customer_id", quote.CustomerID)

	s.scheduleReprice(ctx, quote)
	return quote, nil
}

func (s *quoteService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	return s.quoteRepo.GetByID(ctx, id)
}

func (s *quoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	return s.quoteRepo.List(ctx)
}

// UpdateQuote applies staff edits to the ramp configuration and install
// address. Quotes that have been accepted are frozen: the priced configuration
// is what the customer agreed to.
func (s *quoteService) UpdateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	existing, err := s.quoteRepo.GetByID(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	switch existing.Status {
	case domain.QuoteStatusDraft, domain.QuoteStatusSent:
	default:
		return nil, &domain.PreconditionError{Entity: "quote", Action: "edit", Status: string(existing.Status)}
	}

	if err := quote.Validate(); err != nil {
		return nil, err
	}

	// Only the editable fields are taken from the request; lifecycle state,
	// external handles and pricing stay server-owned.
	existing.RampConfiguration = quote.RampConfiguration
	existing.InstallAddress = quote.InstallAddress
	existing.UpdatedAt = time.Now().UTC()

	if err := s.quoteRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.scheduleReprice(ctx, existing)
	return existing, nil
}

// DeleteQuote removes a quote in any status. Jobs already created from it keep
// their frozen copies and are unaffected.
func (s *quoteService) DeleteQuote(ctx context.Context, id string) error {
	return s.quoteRepo.Delete(ctx, id)
}

// SendQuoteEmail emails the customer their quote with a tokenized acceptance
// link and moves the quote from draft to sent. A delivery failure leaves the
// quote in draft so the send can be retried.
func (s *quoteService) SendQuoteEmail(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextQuoteStatus(quote.Status, domain.QuoteActionSend)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, quote.CustomerID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateAcceptanceToken(quote.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate acceptance token: %w", err)
	}
	acceptURL := fmt.Sprintf("%s/quotes/%s/accept?token=%s", s.publicBaseURL, quote.ID, token)

	subject := "Your ramp rental quote from Same Day Ramps"
	plain := fmt.Sprintf(
		"Hi %s,\n\nYour quote is ready. Upfront total: $%.2f, monthly rental: $%.2f.\n\nReview and accept it here: %s\n",
		customer.FirstName, quote.PricingCalculations.TotalUpfront, quote.PricingCalculations.MonthlyRentalRate, acceptURL,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your quote is ready. Upfront total: <strong>$%.2f</strong>, monthly rental: <strong>$%.2f</strong>.</p><p><a href=%q>Review and accept your quote</a></p>",
		customer.FirstName, quote.PricingCalculations.TotalUpfront, quote.PricingCalculations.MonthlyRentalRate, acceptURL,
	)

	if err := s.emailSvc.SendEmail(customer.Email, customer.FullName(), subject, plain, html); err != nil {
		return nil, &domain.CollaboratorError{Service: "email", Err: err}
	}

	quote.Status = next
	quote.UpdatedAt = time.Now().UTC()
	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}
	logger.Info("quote sent", "quote_id", quote.ID, "email", customer.Email)
	return quote, nil
}

// AcceptQuote handles the customer-facing acceptance link. The token must be
// valid and issued for this exact quote. Acceptance is recorded first; the
// payment link and signature request are then provisioned, and a revisit of an
// already accepted quote returns the stored links instead of creating new
// ones.
func (s *quoteService) AcceptQuote(ctx context.Context, id, token string) (*domain.Quote, error) {
	quoteID, err := s.tokens.ValidateAcceptanceToken(token)
	if err != nil {
		return nil, err
	}
	if quoteID != id {
		return nil, domain.ErrInvalidToken
	}

	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch quote.Status {
	case domain.QuoteStatusSent:
		next, err := domain.NextQuoteStatus(quote.Status, domain.QuoteActionAccept)
		if err != nil {
			return nil, err
		}
		quote.Status = next
		quote.UpdatedAt = time.Now().UTC()
		if err := s.quoteRepo.Update(ctx, quote); err != nil {
			return nil, err
		}
		logger.Info("quote accepted", "quote_id", quote.ID)
	case domain.QuoteStatusAccepted, domain.QuoteStatusPaid, domain.QuoteStatusCompleted:
		// Revisiting the link is fine; fall through to return the stored
		// payment and signature handles.
	default:
		return nil, &domain.PreconditionError{Entity: "quote", Action: string(domain.QuoteActionAccept), Status: string(quote.Status)}
	}

	s.provisionAcceptance(ctx, quote)
	if quote.AgreementDocumentID != "" {
		quote.AgreementSigningURL = s.signingBaseURL + "/" + quote.AgreementDocumentID
	}
	return quote, nil
}

// provisionAcceptance creates the payment link and signature request for an
// accepted quote if they do not exist yet. Failures are logged and left for
// the next visit of the acceptance link; the recorded acceptance stands.
func (s *quoteService) provisionAcceptance(ctx context.Context, quote *domain.Quote) {
	customer, err := s.customerRepo.GetByID(ctx, quote.CustomerID)
	if err != nil {
		logger.Error("failed to load customer for acceptance provisioning", "quote_id", quote.ID, "error", err)
		return
	}

	changed := false

	if quote.PaymentLinkID == "" {
		link, err := s.payments.CreateLink(ctx, quote.PricingCalculations.TotalUpfront, customer.Email)
		if err != nil {
			logger.Error("failed to create payment link", "quote_id", quote.ID, "error", err)
		} else {
			quote.PaymentLinkID = link.ID
			quote.PaymentLinkURL = link.URL
			quote.PaymentStatus = domain.PaymentStatusProcessing
			changed = true
		}
	}

	if quote.AgreementDocumentID == "" {
		if err := s.esign.Send(ctx, quote.ID, customer.Email); err != nil {
			logger.Error("failed to send rental agreement", "quote_id", quote.ID, "error", err)
		} else {
			quote.AgreementDocumentID = quote.ID
			quote.AgreementStatus = domain.AgreementStatusSent
			changed = true
		}
	}

	if changed {
		quote.UpdatedAt = time.Now().UTC()
		if err := s.quoteRepo.Update(ctx, quote); err != nil {
			logger.Error("failed to store acceptance handles", "quote_id", quote.ID, "error", err)
		}
	}
}

// MarkQuotePaid is the staff override for payments that arrive outside the
// payment processor, such as a check.
func (s *quoteService) MarkQuotePaid(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextQuoteStatus(quote.Status, domain.QuoteActionMarkPaid)
	if err != nil {
		return nil, err
	}

	quote.Status = next
	quote.PaymentStatus = domain.PaymentStatusPaid
	quote.UpdatedAt = time.Now().UTC()
	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}
	logger.Info("quote marked paid", "quote_id", quote.ID)
	return quote, nil
}

func (s *quoteService) ApplyPricing(ctx context.Context, id string, calcs *domain.PricingCalculations) error {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Quote deleted while its calculation was in flight.
			return nil
		}
		return err
	}

	quote.PricingCalculations = *calcs
	quote.UpdatedAt = time.Now().UTC()
	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return err
	}
	logger.Debug("pricing applied", "quote_id", id, "total_upfront", calcs.TotalUpfront)
	return nil
}

func (s *quoteService) scheduleReprice(ctx context.Context, quote *domain.Quote) {
	warehouse, err := s.settings.WarehouseAddress(ctx)
	if err != nil {
		logger.Error("failed to resolve warehouse address", "quote_id", quote.ID, "error", err)
		warehouse = ""
	}
	s.repricer.Update(quote.ID, quote.RampConfiguration, quote.InstallAddress, warehouse)
}
