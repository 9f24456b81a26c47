package leads

import "errors"

var (
	// ErrMissingPhone is returned when a lead has no phone number
	ErrMissingPhone = errors.New("phone is required")

	// ErrInvalidName is returned when the name is invalid
	ErrInvalidName = errors.New("name is required")

	// ErrMissingLocation is returned when the location is missing
	ErrMissingLocation = errors.New("location is required")

	// ErrLeadNotFound is returned when a lead is not found
	ErrLeadNotFound = errors.New("lead not found")

	// ErrInvalidStatus is returned for an unknown pipeline status
	ErrInvalidStatus = errors.New("invalid lead status")
)
