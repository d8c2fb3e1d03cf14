package http

import "net/http"

func (h *Handler) listOpenSearchDatabases(r *http.Request) (*Result, error) {
	listing, err := h.services.Databases.ListOpenSearch(r.Context())
	if err != nil {
		return nil, err
	}
	return &Result{Value: listing}, nil
}
