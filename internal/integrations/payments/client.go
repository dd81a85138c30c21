package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"samedayramps-backend/internal/logger"
)

var (
	ErrUnavailable  = errors.New("payment processor unavailable")
	ErrLinkNotFound = errors.New("payment link not found")
)

// LinkStatus values reported by the payment processor. Note the processor's
// "completed" corresponds to the quote payment status "paid".
const (
	LinkStatusPending   = "pending"
	LinkStatusCompleted = "completed"
	LinkStatusFailed    = "failed"
)

// PaymentLink is the processor's handle for a hosted checkout page.
type PaymentLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// LinkStatusResult is the processor's view of one payment link.
type LinkStatusResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Client talks to the external payment processor.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type createLinkRequest struct {
	Amount        float64 `json:"amount"`
	CustomerEmail string  `json:"customerEmail"`
}

// CreateLink asks the processor for a hosted payment page for the given
// amount.
func (c *Client) CreateLink(ctx context.Context, amount float64, customerEmail string) (*PaymentLink, error) {
	logger.ExternalServiceCall("payments", "CreateLink", "amount", amount)

	payload, err := json.Marshal(createLinkRequest{Amount: amount, CustomerEmail: customerEmail})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrUnavailable, err)
	}

	url := c.baseURL + "/payments/create-link"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("payments", "CreateLink", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		logger.ExternalServiceResult("payments", "CreateLink", err)
		return nil, err
	}

	var link PaymentLink
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	logger.ExternalServiceResult("payments", "CreateLink", nil, "link_id", link.ID)
	return &link, nil
}

// CheckStatus fetches the current status of a payment link.
func (c *Client) CheckStatus(ctx context.Context, linkID string) (*LinkStatusResult, error) {
	logger.ExternalServiceCall("payments", "CheckStatus", "link_id", linkID)

	url := fmt.Sprintf("%s/payments/status/%s", c.baseURL, linkID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("payments", "CheckStatus", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below.
	case http.StatusNotFound:
		return nil, ErrLinkNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		logger.ExternalServiceResult("payments", "CheckStatus", err)
		return nil, err
	}

	var status LinkStatusResult
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	logger.ExternalServiceResult("payments", "CheckStatus", nil, "status", status.Status)
	return &status, nil
}
