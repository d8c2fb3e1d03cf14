package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvallejo3/do-genai-api/models"
)

func (h *Handler) listKnowledgeBases(r *http.Request) (*Result, error) {
	kbs, err := h.services.KnowledgeBases.List(r.Context())
	if err != nil {
		return nil, err
	}
	return &Result{Value: kbs}, nil
}

func (h *Handler) createKnowledgeBase(r *http.Request) (*Result, error) {
	var req models.CreateKnowledgeBaseRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	kb, err := h.services.KnowledgeBases.Create(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &Result{Value: kb, Code: http.StatusCreated}, nil
}

func (h *Handler) getKnowledgeBase(r *http.Request) (*Result, error) {
	kb, err := h.services.KnowledgeBases.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: kb}, nil
}

func (h *Handler) deleteKnowledgeBase(r *http.Request) (*Result, error) {
	result, err := h.services.KnowledgeBases.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: result}, nil
}

func (h *Handler) listKnowledgeBaseDataSources(r *http.Request) (*Result, error) {
	sources, err := h.services.KnowledgeBases.ListDataSources(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: sources}, nil
}

func (h *Handler) reindexKnowledgeBase(r *http.Request) (*Result, error) {
	var req models.ReindexRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	result, err := h.services.KnowledgeBases.Reindex(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &Result{Value: result, Code: http.StatusCreated}, nil
}
