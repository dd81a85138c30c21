package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

type JobStatus string

const (
	JobStatusScheduled JobStatus = "scheduled"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
)

// CustomerRef is a customer reference that tolerates both representations the
// backend may hand back: a bare id string or an embedded customer object.
type CustomerRef struct {
	ID       string
	Customer *Customer
}

func (r CustomerRef) MarshalJSON() ([]byte, error) {
	if r.Customer != nil {
		return json.Marshal(r.Customer)
	}
	return json.Marshal(r.ID)
}

func (r *CustomerRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var c Customer
		if err := json.Unmarshal(trimmed, &c); err != nil {
			return err
		}
		r.Customer = &c
		r.ID = c.ID
		return nil
	}
	r.Customer = nil
	return json.Unmarshal(trimmed, &r.ID)
}

// Job is a scheduled installation created from an accepted quote. The install
// address and ramp configuration are frozen copies made at creation time;
// editing the originating quote afterwards does not alter the job.
type Job struct {
	ID                        string            `json:"id"`
	JobID                     string            `json:"jobId"`
	QuoteID                   string            `json:"quoteId"`
	CustomerID                CustomerRef       `json:"customerId"`
	InstallAddress            string            `json:"installAddress"`
	RampConfiguration         RampConfiguration `json:"rampConfiguration"`
	Status                    JobStatus         `json:"status"`
	ScheduledInstallationDate time.Time         `json:"scheduledInstallationDate"`
	ActualInstallationDate    *time.Time        `json:"actualInstallationDate,omitempty"`
	CalendarEventID           string            `json:"calendarEventId,omitempty"`
	CreatedAt                 time.Time         `json:"createdAt"`
	UpdatedAt                 time.Time         `json:"updatedAt"`
}
