package domain

import "time"

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSent      QuoteStatus = "sent"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusPaid      QuoteStatus = "paid"
	QuoteStatusCompleted QuoteStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
)

type AgreementStatus string

const (
	AgreementStatusPending  AgreementStatus = "pending"
	AgreementStatusSent     AgreementStatus = "sent"
	AgreementStatusViewed   AgreementStatus = "viewed"
	AgreementStatusSigned   AgreementStatus = "signed"
	AgreementStatusDeclined AgreementStatus = "declined"
)

// Quote is a priced proposal for a customer. CustomerName and InstallAddress
// are snapshots taken when the quote is created or edited; later customer
// edits do not flow back into existing quotes. Status, PaymentStatus and
// AgreementStatus are independent axes: payment and agreement progress are
// owned by their external providers and synced in, while Status follows the
// transition table in transitions.go.
type Quote struct {
	ID                  string              `json:"id"`
	CustomerID          string              `json:"customerId"`
	CustomerName        string              `json:"customerName"`
	RampConfiguration   RampConfiguration   `json:"rampConfiguration"`
	PricingCalculations PricingCalculations `json:"pricingCalculations"`
	InstallAddress      string              `json:"installAddress"`
	Status              QuoteStatus         `json:"status"`
	PaymentStatus       PaymentStatus       `json:"paymentStatus"`
	AgreementStatus     AgreementStatus     `json:"agreementStatus"`
	PaymentLinkID       string              `json:"paymentLinkId,omitempty"`
	PaymentLinkURL      string              `json:"paymentLinkUrl,omitempty"`
	AgreementDocumentID string              `json:"agreementDocumentId,omitempty"`
	// AgreementSigningURL is derived from AgreementDocumentID when the quote
	// is served to the customer; it is not stored.
	AgreementSigningURL string    `json:"agreementSigningUrl,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
