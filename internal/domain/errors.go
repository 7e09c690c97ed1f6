package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is the sentinel for validation failures. It is surfaced
// synchronously to the caller before any asynchronous work starts and is
// never retried.
var ErrInvalidRequest = errors.New("invalid request")

// TransportError indicates a remote lookup failed at the transport level:
// network error, non-2xx status, or timeout. The gateway recovers from it by
// falling back to local or synthetic data, so it never reaches the end user
// for flight searches.
type TransportError struct {
	// Op names the failed operation (e.g., "searchAirport")
	Op string

	// StatusCode is the HTTP status when the server responded, 0 otherwise
	StatusCode int

	// Err is the underlying cause, when any
	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + ": transport failure"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SchemaError indicates the remote responded but the payload was structurally
// invalid. It is treated identically to TransportError: the fallback path is
// taken and the condition is logged.
type SchemaError struct {
	// Op names the operation whose response failed validation
	Op string

	// Reason describes what was missing or malformed
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Op, e.Reason)
}

// IsRecoverable reports whether the gateway should degrade to local or
// synthetic data instead of surfacing err.
func IsRecoverable(err error) bool {
	var transportErr *TransportError
	var schemaErr *SchemaError
	return errors.As(err, &transportErr) || errors.As(err, &schemaErr)
}
