// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the gateway. The wrapper adds convenience constructors and
// context-aware helpers so that handlers and services can obtain a
// request-scoped logger without threading it through every call.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error, Fatal, ...) is available directly on *Logger.
package logger

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the full
// zerolog API while leaving room for gateway-specific helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the process-wide *Logger for the given role label
// (e.g. "do-genai-api").
//
// The logger emits JSON to os.Stdout with:
//   - global level set to Debug;
//   - a "role" field for filtering logs from different components;
//   - a timestamp on every entry.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with extra context fields (such as a
// trace id) without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger attached to the request's context
// and returns it as a *Logger. Middleware attaches a request-scoped logger
// via zerolog's WithContext before the handler runs.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx. If no logger has
// been attached, zerolog falls back to its global logger, so the result is
// never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
