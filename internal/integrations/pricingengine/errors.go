package pricingengine

import "errors"

var (
	// ErrUnavailable covers transport failures and unexpected responses
	// from the pricing engine.
	ErrUnavailable = errors.New("pricing engine unavailable")
	// ErrBadRequest is returned when the engine rejects the input.
	ErrBadRequest = errors.New("pricing engine rejected the request")
)
