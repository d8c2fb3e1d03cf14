package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/internal/utils"
)

// Result is the success outcome of a composed handler. Value is rendered
// under the envelope's "data" field exactly as given, nil included. A zero
// Code means 200 OK; creation handlers set 201.
type Result struct {
	Value any
	Code  int
}

// HandlerFunc is the contract every composed route implements: consume the
// request, return either a Result or an error. Errors carrying a
// [fault.Fault] render with the fault's status and message; anything else is
// logged in full and rendered as a generic 500.
type HandlerFunc func(r *http.Request) (*Result, error)

type successEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// internalErrorMessage is the only text an unclassified failure ever shows
// the caller. The underlying error goes to the log.
const internalErrorMessage = "An unexpected error occurred"

// wrap adapts a HandlerFunc to net/http, encoding the outcome as the
// response envelope.
func wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := fn(r)
		if err != nil {
			writeErrorEnvelope(w, r, err)
			return
		}

		code := http.StatusOK
		var value any
		if result != nil {
			value = result.Value
			if result.Code != 0 {
				code = result.Code
			}
		}

		utils.WriteJSON(w, successEnvelope{Status: statusSuccess, Data: value}, code)
	}
}

func writeErrorEnvelope(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	f, ok := fault.From(err)
	if !ok {
		log.Error().Err(err).Msg("unclassified handler failure")
		f = fault.New(http.StatusInternalServerError, internalErrorMessage)
	} else {
		log.Debug().Int("code", f.Code).Str("message", f.Message).Msg("request failed")
	}

	utils.WriteJSON(w, errorEnvelope{Status: statusError, Message: f.Message}, f.Code)
}

// decodeJSON parses the request body into dst. A missing or malformed body
// is the caller's problem and maps to a 400 fault.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return fault.Validation("Request body must be provided")
	default:
		return fault.Validation("Request body must be valid JSON")
	}
}
