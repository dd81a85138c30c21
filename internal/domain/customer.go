package domain

import "time"

// Customer is a staff-managed contact. It may be created directly or derived
// from a RentalRequest; the derivation copies fields and leaves the request
// untouched.
type Customer struct {
	ID             string        `json:"id"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	InstallAddress string        `json:"installAddress"`
	MobilityAids   []MobilityAid `json:"mobilityAids"`
	Notes          string        `json:"notes"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// FullName returns the display name snapshotted onto quotes.
func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
