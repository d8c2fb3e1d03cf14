package http

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/internal/utils"
)

// Router composes the gateway's route table and serves it once sealed.
//
// A Router starts in the building phase: routes are added with [Router.Register]
// (or [Router.RegisterRaw] for the single pre-envelope endpoint) and duplicate
// (method, pattern) pairs are rejected. [Router.Seal] materialises the chi mux —
// auth gate in front of protected routes, envelope codec around every composed
// handler — and flips the Router to serving. After Seal the route table is
// immutable; further registrations fail with [ErrRouterSealed].
type Router struct {
	auth   func(http.Handler) http.Handler
	logger *logger.Logger

	routes []route
	seen   map[string]struct{}

	sealed atomic.Bool
	mux    *chi.Mux
}

type route struct {
	method    string
	pattern   string
	protected bool

	// Exactly one of fn and raw is set.
	fn  HandlerFunc
	raw http.HandlerFunc
}

// NewRouter returns a Router in the building phase. The secret is the shared
// bearer token enforced on protected routes.
func NewRouter(secret string, logger *logger.Logger) *Router {
	return &Router{
		auth:   bearerAuth(secret),
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

// Register adds a composed route: fn runs behind the auth gate (when
// protected) and its outcome is rendered as the response envelope.
func (rt *Router) Register(method, pattern string, protected bool, fn HandlerFunc) error {
	return rt.add(route{method: method, pattern: pattern, protected: protected, fn: fn})
}

// RegisterRaw adds a route whose handler writes the response body itself,
// bypassing the envelope codec. It exists solely for the health endpoint,
// whose body shape predates the envelope; everything else goes through
// Register.
func (rt *Router) RegisterRaw(method, pattern string, protected bool, h http.HandlerFunc) error {
	return rt.add(route{method: method, pattern: pattern, protected: protected, raw: h})
}

func (rt *Router) add(r route) error {
	if rt.sealed.Load() {
		return fmt.Errorf("%w: cannot register %s %s", ErrRouterSealed, r.method, r.pattern)
	}

	key := r.method + " " + r.pattern
	if _, exists := rt.seen[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
	}
	rt.seen[key] = struct{}{}

	rt.routes = append(rt.routes, r)
	return nil
}

// Seal flips the Router from building to serving and materialises the mux.
// Calling Seal twice returns [ErrRouterSealed].
func (rt *Router) Seal() error {
	if !rt.sealed.CompareAndSwap(false, true) {
		return ErrRouterSealed
	}

	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)
	mux.Use(withTraceID(rt.logger))
	mux.Use(withLogging)
	mux.Use(withGzip)

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, r, fault.NotFound("Not found"))
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, r, fault.New(http.StatusMethodNotAllowed, "Method not allowed"))
	})

	for _, r := range rt.routes {
		var h http.Handler
		if r.raw != nil {
			h = r.raw
		} else {
			h = wrap(r.fn)
		}
		if r.protected {
			h = rt.auth(h)
		}
		mux.Method(r.method, r.pattern, h)
	}

	rt.mux = mux
	rt.logger.Info().Int("routes", len(rt.routes)).Msg("router sealed")
	return nil
}

// ServeHTTP dispatches to the sealed route table. A Router that has not been
// sealed yet refuses to serve.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !rt.sealed.Load() {
		utils.WriteJSON(w, errorEnvelope{Status: statusError, Message: "Service is unavailable"}, http.StatusServiceUnavailable)
		return
	}
	rt.mux.ServeHTTP(w, r)
}
