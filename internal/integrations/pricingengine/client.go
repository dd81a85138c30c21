package pricingengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/logger"
)

// Client talks to the external pricing engine. Prices are never computed
// locally; this client is the only source of PricingCalculations.
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

type calculateRequest struct {
	RampConfiguration domain.RampConfiguration `json:"rampConfiguration"`
	InstallAddress    string                   `json:"installAddress"`
	WarehouseAddress  string                   `json:"warehouseAddress"`
}

// Calculate prices a ramp configuration between two addresses.
func (c *Client) Calculate(ctx context.Context, cfg domain.RampConfiguration, installAddress, warehouseAddress string) (*domain.PricingCalculations, error) {
	logger.ExternalServiceCall("pricing-engine", "Calculate", "install_address", installAddress)

	payload, err := json.Marshal(calculateRequest{
		RampConfiguration: cfg,
		InstallAddress:    installAddress,
		WarehouseAddress:  warehouseAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrUnavailable, err)
	}

	url := c.baseURL + "/calculate-pricing"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("pricing-engine", "Calculate", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below.
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid pricing input", ErrBadRequest)
	default:
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		logger.ExternalServiceResult("pricing-engine", "Calculate", err)
		return nil, err
	}

	var calc domain.PricingCalculations
	if err := json.NewDecoder(resp.Body).Decode(&calc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}
	// Some engine deployments omit the echoed warehouse address.
	if calc.WarehouseAddress == "" {
		calc.WarehouseAddress = warehouseAddress
	}

	logger.ExternalServiceResult("pricing-engine", "Calculate", nil, "total_upfront", calc.TotalUpfront)
	return &calc, nil
}
