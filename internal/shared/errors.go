package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Gateway error taxonomy. Every request through the API client fails
	// with exactly one of these classes so callers can distinguish a stale
	// token from a flaky network from a contract drift.
	ErrInvalidRequest = fmt.Errorf("invalid request")
	ErrUnauthorized   = fmt.Errorf("authentication required")
	ErrServer         = fmt.Errorf("server error")
	ErrDecoding       = fmt.Errorf("failed to decode response")
	ErrNetwork        = fmt.Errorf("network error")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")

	// Session errors
	ErrTooFewSelections = fmt.Errorf("too few taste profile selections")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
