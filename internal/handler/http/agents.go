package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvallejo3/do-genai-api/models"
)

func (h *Handler) listAgents(r *http.Request) (*Result, error) {
	agents, err := h.services.Agents.List(r.Context())
	if err != nil {
		return nil, err
	}
	return &Result{Value: agents}, nil
}

func (h *Handler) createAgent(r *http.Request) (*Result, error) {
	var req models.CreateAgentRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	agent, err := h.services.Agents.Create(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &Result{Value: agent, Code: http.StatusCreated}, nil
}

func (h *Handler) getAgent(r *http.Request) (*Result, error) {
	agent, err := h.services.Agents.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: agent}, nil
}

func (h *Handler) deleteAgent(r *http.Request) (*Result, error) {
	result, err := h.services.Agents.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: result}, nil
}

func (h *Handler) listAgentAPIKeys(r *http.Request) (*Result, error) {
	keys, err := h.services.Agents.ListAPIKeys(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: keys}, nil
}

func (h *Handler) createAgentAPIKey(r *http.Request) (*Result, error) {
	var req models.CreateAgentAPIKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	key, err := h.services.Agents.CreateAPIKey(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		return nil, err
	}
	return &Result{Value: key, Code: http.StatusCreated}, nil
}

func (h *Handler) attachKnowledgeBase(r *http.Request) (*Result, error) {
	var req models.AttachKnowledgeBaseRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	result, err := h.services.Agents.AttachKnowledgeBase(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		return nil, err
	}
	return &Result{Value: result}, nil
}
