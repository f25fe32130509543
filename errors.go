package cachet

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the library. These can be used with errors.Is()
// to check for specific error conditions.
//
// Example:
//
//	_, err := client.Components.Create(ctx, req)
//	if errors.Is(err, cachet.ErrAuthRequired) {
//	    // configure an API token first
//	}
var (
	// ErrMissingEndpoint is returned when a client is constructed without
	// a base endpoint URL.
	ErrMissingEndpoint = errors.New("cachet: endpoint is required")

	// ErrAuthRequired is returned when a token-gated operation is invoked
	// without a configured API token. The check happens before any
	// network call is made.
	ErrAuthRequired = errors.New("cachet: api token is required")
)

// MissingArgumentError is returned when a required field is absent from an
// operation's arguments. Required fields are checked in declaration order
// and the first absent one is reported.
//
// Example:
//
//	_, err := client.Incidents.Create(ctx, cachet.IncidentCreate{Name: "Outage"})
//	var missing *cachet.MissingArgumentError
//	if errors.As(err, &missing) {
//	    log.Printf("missing field: %s", missing.Field)
//	}
type MissingArgumentError struct {
	// Field is the JSON name of the absent field
	Field string
}

// Error implements the error interface
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("cachet: required argument: %s", e.Field)
}

// UnsupportedOperationError is returned by dynamic dispatch helpers when a
// resource does not implement an operation. Resources in this library only
// expose the operations the remote API supports, so static callers get a
// compile-time signal instead; the error exists for callers that dispatch
// by resource and operation name at runtime.
type UnsupportedOperationError struct {
	// Resource is the resource path prefix, e.g. "metrics"
	Resource string
	// Operation is the operation name, e.g. "put"
	Operation string
}

// Error implements the error interface
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("cachet: %s does not support %s", e.Resource, e.Operation)
}

// APIError represents a non-success HTTP status answered by the remote
// status page service. It carries the status code and the raw response body
// and is not interpreted further by the library.
//
// Example:
//
//	var apiErr *cachet.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.IsNotFound() {
//	        // resource does not exist
//	    }
//	    log.Printf("status %d: %s", apiErr.StatusCode, apiErr.Body)
//	}
type APIError struct {
	// StatusCode is the HTTP status code from the response
	StatusCode int
	// Body is the raw response body
	Body []byte
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("cachet: API error (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("cachet: API error (status %d)", e.StatusCode)
}

// IsNotFound returns true if the error is a not found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsClientError returns true if the error is a 4xx client error
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError returns true if the error is a 5xx server error
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsAuthRequired checks if the error reports a token-gated operation called
// without a configured API token.
func IsAuthRequired(err error) bool {
	return errors.Is(err, ErrAuthRequired)
}

// IsMissingArgument checks if the error reports a required field absent from
// the call arguments.
func IsMissingArgument(err error) bool {
	var missing *MissingArgumentError
	return errors.As(err, &missing)
}

// IsUnsupported checks if the error reports an operation the resource does
// not implement.
func IsUnsupported(err error) bool {
	var unsupported *UnsupportedOperationError
	return errors.As(err, &unsupported)
}

// IsHTTPError checks if the error is a non-success HTTP status from the
// remote service.
//
// Example:
//
//	ok, err := client.Components.Delete(ctx, 42)
//	if cachet.IsHTTPError(err) {
//	    // the service rejected the call; ok is false
//	}
func IsHTTPError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
