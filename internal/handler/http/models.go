package http

import (
	"net/http"
	"strings"
)

// listModels serves GET /api/models.
//
// Query parameters:
//
//	usecases    comma-separated use-case filters; empty entries are dropped
//	public_only "true", "1" or "yes" (case-insensitive) excludes private models
func (h *Handler) listModels(r *http.Request) (*Result, error) {
	query := r.URL.Query()

	var usecases []string
	for _, uc := range strings.Split(query.Get("usecases"), ",") {
		if uc = strings.TrimSpace(uc); uc != "" {
			usecases = append(usecases, uc)
		}
	}

	result, err := h.services.Models.List(r.Context(), usecases, boolQueryParam(query.Get("public_only")))
	if err != nil {
		return nil, err
	}
	return &Result{Value: result}, nil
}

// boolQueryParam reports whether a query value spells an affirmative.
func boolQueryParam(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	}
	return false
}
