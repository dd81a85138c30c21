package esign

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
	ErrUnavailable      = errors.New("e-signature provider unavailable")
	ErrDocumentNotFound = errors.New("signature document not found")
)

// Document statuses reported by the e-signature provider.
const (
	StatusSent     = "sent"
	StatusViewed   = "viewed"
	StatusSigned   = "signed"
	StatusDeclined = "declined"
)

// DocumentStatus is the provider's view of one agreement document.
type DocumentStatus struct {
	DocumentID string `json:"documentId"`
	Status     string `json:"status"`
}

// Client talks to the external e-signature provider.
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

type sendRequest struct {
	DocumentID     string `json:"documentId"`
	RecipientEmail string `json:"recipientEmail"`
}

// Send asks the provider to deliver the agreement document for signature.
func (c *Client) Send(ctx context.Context, documentID, recipientEmail string) error {
	logger.ExternalServiceCall("esign", "Send", "document_id", documentID)

	payload, err := json.Marshal(sendRequest{DocumentID: documentID, RecipientEmail: recipientEmail})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrUnavailable, err)
	}

	url := c.baseURL + "/esignatures/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("esign", "Send", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		logger.ExternalServiceResult("esign", "Send", err)
		return err
	}

	logger.ExternalServiceResult("esign", "Send", nil)
	return nil
}

// CheckStatus fetches the current status of an agreement document.
func (c *Client) CheckStatus(ctx context.Context, documentID string) (*DocumentStatus, error) {
	logger.ExternalServiceCall("esign", "CheckStatus", "document_id", documentID)

	url := fmt.Sprintf("%s/esignatures/status/%s", c.baseURL, documentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("esign", "CheckStatus", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below.
	case http.StatusNotFound:
		return nil, ErrDocumentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		logger.ExternalServiceResult("esign", "CheckStatus", err)
		return nil, err
	}

	var status DocumentStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	logger.ExternalServiceResult("esign", "CheckStatus", nil, "status", status.Status)
	return &status, nil
}
