package calendar

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
	ErrUnavailable   = errors.New("calendar backend unavailable")
	ErrEventNotFound = errors.New("calendar event not found")
)

// Event is the calendar backend's record of an installation appointment.
type Event struct {
	ID string `json:"id"`
}

// Client talks to the external calendar/scheduling backend that mirrors job
// installation dates.
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

type eventRequest struct {
	JobID          string    `json:"jobId"`
	Title          string    `json:"title"`
	InstallAddress string    `json:"installAddress"`
	Date           time.Time `json:"date"`
}

// CreateEvent creates an installation appointment and returns its event ID.
func (c *Client) CreateEvent(ctx context.Context, jobID, title, installAddress string, date time.Time) (string, error) {
	logger.ExternalServiceCall("calendar", "CreateEvent", "job_id", jobID)

	payload, err := json.Marshal(eventRequest{JobID: jobID, Title: title, InstallAddress: installAddress, Date: date})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/events", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("calendar", "CreateEvent", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		logger.ExternalServiceResult("calendar", "CreateEvent", err)
		return "", err
	}

	var event Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	logger.ExternalServiceResult("calendar", "CreateEvent", nil, "event_id", event.ID)
	return event.ID, nil
}

// UpdateEvent moves an existing appointment to a new date.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, date time.Time) error {
	logger.ExternalServiceCall("calendar", "UpdateEvent", "event_id", eventID)

	payload, err := json.Marshal(map[string]any{"date": date})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrUnavailable, err)
	}

	url := fmt.Sprintf("%s/events/%s", c.baseURL, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("calendar", "UpdateEvent", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		logger.ExternalServiceResult("calendar", "UpdateEvent", nil)
		return nil
	case http.StatusNotFound:
		return ErrEventNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		logger.ExternalServiceResult("calendar", "UpdateEvent", err)
		return err
	}
}

// DeleteEvent removes an appointment, e.g. when a job is cancelled.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	logger.ExternalServiceCall("calendar", "DeleteEvent", "event_id", eventID)

	url := fmt.Sprintf("%s/events/%s", c.baseURL, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("calendar", "DeleteEvent", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		logger.ExternalServiceResult("calendar", "DeleteEvent", nil)
		return nil
	case http.StatusNotFound:
		// Already gone; treat as deleted.
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		logger.ExternalServiceResult("calendar", "DeleteEvent", err)
		return err
	}
}
