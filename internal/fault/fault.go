// Package fault defines the typed failure outcome that flows from the
// service layer to the HTTP transport. A Fault pairs a caller-safe message
// with the HTTP status code it should be rendered with; the response
// envelope in the transport layer is the only consumer.
//
// Errors that are not Faults are treated as unclassified internal failures
// by the transport layer: they are logged in full and rendered as a generic
// 500 response so internal detail never reaches the caller.
package fault

import (
	"errors"
	"fmt"
	"net/http"
)

// Fault is an error carrying the HTTP status code it maps to. The message is
// always safe to expose to the caller.
type Fault struct {
	// Code is the HTTP status code of the rendered response.
	Code int

	// Message is the caller-visible error text.
	Message string
}

// Error implements the error interface.
func (f *Fault) Error() string {
	return f.Message
}

// New constructs a Fault with an explicit status code.
func New(code int, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validation constructs a 400 Bad Request fault for handler-level input
// problems (missing required field, bad type).
func Validation(format string, args ...any) *Fault {
	return New(http.StatusBadRequest, format, args...)
}

// NotFound constructs a 404 Not Found fault.
func NotFound(format string, args ...any) *Fault {
	return New(http.StatusNotFound, format, args...)
}

// Unauthorized constructs a 401 Unauthorized fault.
func Unauthorized(message string) *Fault {
	return &Fault{Code: http.StatusUnauthorized, Message: message}
}

// Upstream constructs a fault for a failure reported by an external
// collaborator (the provider API or object storage). The collaborator's
// status code is forwarded when it is an error code; anything else defaults
// to 502 Bad Gateway.
func Upstream(code int, format string, args ...any) *Fault {
	if code < http.StatusBadRequest {
		code = http.StatusBadGateway
	}
	return New(code, format, args...)
}

// From extracts a *Fault from err's chain. It returns nil and false when err
// carries no fault, which the transport layer treats as an unclassified
// internal failure.
func From(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
