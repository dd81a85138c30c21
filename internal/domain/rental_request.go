package domain

import "time"

type RentalRequestStatus string

const (
	RentalRequestStatusPending  RentalRequestStatus = "pending"
	RentalRequestStatusApproved RentalRequestStatus = "approved"
	RentalRequestStatusRejected RentalRequestStatus = "rejected"
)

// RentalRequestStatuses lists the valid classifications. There is no guarded
// transition function for rental requests: staff may set any of these
// directly.
var RentalRequestStatuses = []RentalRequestStatus{
	RentalRequestStatusPending,
	RentalRequestStatusApproved,
	RentalRequestStatusRejected,
}

type InstallTimeframe string

const (
	TimeframeWithin24Hours InstallTimeframe = "Within 24 hours"
	TimeframeWithin2Days   InstallTimeframe = "Within 2 days"
	TimeframeWithin3Days   InstallTimeframe = "Within 3 days"
	TimeframeWithin1Week   InstallTimeframe = "Within 1 week"
	TimeframeOver1Week     InstallTimeframe = "Over 1 week"
)

var InstallTimeframes = []InstallTimeframe{
	TimeframeWithin24Hours,
	TimeframeWithin2Days,
	TimeframeWithin3Days,
	TimeframeWithin1Week,
	TimeframeOver1Week,
}

type MobilityAid string

const (
	MobilityAidWheelchair       MobilityAid = "wheelchair"
	MobilityAidMotorizedScooter MobilityAid = "motorized_scooter"
	MobilityAidWalkerCane       MobilityAid = "walker_cane"
	MobilityAidNone             MobilityAid = "none"
)

var MobilityAids = []MobilityAid{
	MobilityAidWheelchair,
	MobilityAidMotorizedScooter,
	MobilityAidWalkerCane,
	MobilityAidNone,
}

// CustomerInfo is the contact block captured on a lead submission.
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// RampDetails captures what the lead knows about their ramp needs. RampLength
// and RentalDuration are meaningful only while their corresponding flag is
// true; Normalize clears them otherwise.
type RampDetails struct {
	KnowRampLength     bool             `json:"knowRampLength"`
	RampLength         *float64         `json:"rampLength,omitempty"`
	KnowRentalDuration bool             `json:"knowRentalDuration"`
	RentalDuration     *int             `json:"rentalDuration,omitempty"`
	InstallTimeframe   InstallTimeframe `json:"installTimeframe"`
	MobilityAids       []MobilityAid    `json:"mobilityAids"`
}

// Normalize drops flag-gated values whose flag is false, regardless of what
// was stored or submitted.
func (d *RampDetails) Normalize() {
	if !d.KnowRampLength {
		d.RampLength = nil
	}
	if !d.KnowRentalDuration {
		d.RentalDuration = nil
	}
}

// RentalRequest is the initial unauthenticated lead submission. It never
// transitions on its own and is removed only by explicit staff deletion.
type RentalRequest struct {
	ID             string              `json:"id"`
	CustomerInfo   CustomerInfo        `json:"customerInfo"`
	RampDetails    RampDetails         `json:"rampDetails"`
	InstallAddress string              `json:"installAddress"`
	Status         RentalRequestStatus `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
