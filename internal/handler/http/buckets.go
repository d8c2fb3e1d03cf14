package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvallejo3/do-genai-api/models"
)

func (h *Handler) listBuckets(r *http.Request) (*Result, error) {
	listing, err := h.services.Buckets.List(r.Context())
	if err != nil {
		return nil, err
	}
	return &Result{Value: listing}, nil
}

func (h *Handler) createBucket(r *http.Request) (*Result, error) {
	var req models.CreateBucketRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	result, err := h.services.Buckets.Create(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &Result{Value: result, Code: http.StatusCreated}, nil
}

func (h *Handler) getBucket(r *http.Request) (*Result, error) {
	info, err := h.services.Buckets.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: info}, nil
}

func (h *Handler) deleteBucket(r *http.Request) (*Result, error) {
	result, err := h.services.Buckets.Delete(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: result}, nil
}
