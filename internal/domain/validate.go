package domain

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validation here is pure: each function checks a whole value and returns the
// first ValidationError found. Nothing network-facing runs until the value
// passes.

func (ci *CustomerInfo) Validate() error {
	if ci.FirstName == "" {
		return NewValidationError("firstName", "is required")
	}
	if ci.LastName == "" {
		return NewValidationError("lastName", "is required")
	}
	if !emailPattern.MatchString(ci.Email) {
		return NewValidationError("email", "is not a valid email address")
	}
	if ci.Phone == "" {
		return NewValidationError("phone", "is required")
	}
	return nil
}

func validMobilityAids(aids []MobilityAid) error {
	for _, aid := range aids {
		known := false
		for _, v := range MobilityAids {
			if aid == v {
				known = true
				break
			}
		}
		if !known {
			return NewValidationError("mobilityAids", "unknown mobility aid "+string(aid))
		}
	}
	return nil
}

func (d *RampDetails) Validate() error {
	if d.KnowRampLength {
		if d.RampLength == nil || *d.RampLength <= 0 {
			return NewValidationError("rampLength", "must be positive when ramp length is known")
		}
	}
	if d.KnowRentalDuration {
		if d.RentalDuration == nil || *d.RentalDuration <= 0 {
			return NewValidationError("rentalDuration", "must be positive when rental duration is known")
		}
	}
	valid := false
	for _, tf := range InstallTimeframes {
		if d.InstallTimeframe == tf {
			valid = true
			break
		}
	}
	if !valid {
		return NewValidationError("installTimeframe", "unknown timeframe "+string(d.InstallTimeframe))
	}
	return validMobilityAids(d.MobilityAids)
}

func (r *RentalRequest) Validate() error {
	if err := r.CustomerInfo.Validate(); err != nil {
		return err
	}
	if err := r.RampDetails.Validate(); err != nil {
		return err
	}
	if r.InstallAddress == "" {
		return NewValidationError("installAddress", "is required")
	}
	return nil
}

func (c *Customer) Validate() error {
	if c.FirstName == "" {
		return NewValidationError("firstName", "is required")
	}
	if c.LastName == "" {
		return NewValidationError("lastName", "is required")
	}
	if !emailPattern.MatchString(c.Email) {
		return NewValidationError("email", "is not a valid email address")
	}
	return validMobilityAids(c.MobilityAids)
}

func (q *Quote) Validate() error {
	if q.CustomerID == "" {
		return NewValidationError("customerId", "is required")
	}
	if q.InstallAddress == "" {
		return NewValidationError("installAddress", "is required")
	}
	return q.RampConfiguration.Validate()
}
