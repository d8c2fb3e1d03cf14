package http

import "errors"

// Sentinel errors returned by [Router] registration. Callers can match
// against them with [errors.Is].
var (
	// ErrRouterSealed is returned by Register and RegisterRaw once Seal has
	// been called: the route table is immutable while serving.
	ErrRouterSealed = errors.New("router is sealed")

	// ErrDuplicateRoute is returned when a (method, pattern) pair is
	// registered twice.
	ErrDuplicateRoute = errors.New("duplicate route")

	// ErrRouterNotSealed is returned by Run-time entry points when the
	// router is asked to serve before Seal.
	ErrRouterNotSealed = errors.New("router is not sealed")
)
