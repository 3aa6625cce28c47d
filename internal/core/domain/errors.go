package domain

import "errors"

var (
	// ErrNotFound covers missing vehicles and maintenance events.
	ErrNotFound = errors.New("not found")

	// ErrUnknownServiceType is returned when a service type is not in
	// the interval policy table.
	ErrUnknownServiceType = errors.New("unknown service type")

	// ErrInvalidPolicy marks a bad policy table or warning window. It
	// is fatal at startup, never produced per-request.
	ErrInvalidPolicy = errors.New("invalid interval policy")

	// ErrValidation marks a malformed entity: negative mileage,
	// missing required field, non-monotonic odometer reading.
	ErrValidation = errors.New("validation error")
)
