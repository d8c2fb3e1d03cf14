package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAgent_Returns201WithProviderPayload(t *testing.T) {
	services := fullStubServices()
	services.Agents = &stubAgents{
		create: func(_ context.Context, req models.CreateAgentRequest) (models.JSON, error) {
			return models.JSON{"agent": map[string]any{"uuid": "a-1", "name": req.Name}}, nil
		},
	}
	router := initRouter(t, services)

	req := authedRequest(http.MethodPost, "/api/agents", strings.NewReader(`{"name":"bot","instructions":"help"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, map[string]any{"agent": map[string]any{"uuid": "a-1", "name": "bot"}}, body["data"])
}

func TestCreateAgent_EmptyBodyIs400(t *testing.T) {
	router := initRouter(t, fullStubServices())

	req := authedRequest(http.MethodPost, "/api/agents", strings.NewReader(""))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request body must be provided", decodeEnvelope(t, rec)["message"])
}

func TestCreateAgent_ValidationFaultRendered(t *testing.T) {
	services := fullStubServices()
	services.Agents = &stubAgents{
		create: func(context.Context, models.CreateAgentRequest) (models.JSON, error) {
			return nil, fault.Validation("Agent name is required and cannot be empty")
		},
	}
	router := initRouter(t, services)

	req := authedRequest(http.MethodPost, "/api/agents", strings.NewReader(`{"instructions":"help"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Agent name is required and cannot be empty"}`, rec.Body.String())
}

func TestGetAgent_PathParamForwarded(t *testing.T) {
	var gotID string
	services := fullStubServices()
	services.Agents = &stubAgents{
		get: func(_ context.Context, id string) (models.JSON, error) {
			gotID = id
			return models.JSON{}, nil
		},
	}
	router := initRouter(t, services)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/agents/agent-42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "agent-42", gotID)
}

func TestGetAgent_NotFoundRendered(t *testing.T) {
	services := fullStubServices()
	services.Agents = &stubAgents{
		get: func(context.Context, string) (models.JSON, error) {
			return nil, fault.NotFound("Agent with ID 'missing' not found")
		},
	}
	router := initRouter(t, services)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/agents/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Agent with ID 'missing' not found", decodeEnvelope(t, rec)["message"])
}

func TestReindex_Returns201(t *testing.T) {
	services := fullStubServices()
	services.KnowledgeBases = &stubKnowledgeBases{
		reindex: func(_ context.Context, req models.ReindexRequest) (models.ReindexResult, error) {
			return models.ReindexResult{Message: "Re-indexing job created successfully", Job: models.JSON{}}, nil
		},
	}
	router := initRouter(t, services)

	req := authedRequest(http.MethodPost, "/api/knowledgebase/reindex",
		strings.NewReader(`{"knowledge_base_uuid":"kb-1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// Static segments win over the {id} wildcard: reindex is not treated as a
// knowledge-base id.
func TestReindex_NotShadowedByWildcard(t *testing.T) {
	var calledGet bool
	services := fullStubServices()
	services.KnowledgeBases = &stubKnowledgeBases{
		get: func(context.Context, string) (models.JSON, error) {
			calledGet = true
			return models.JSON{}, nil
		},
		reindex: func(context.Context, models.ReindexRequest) (models.ReindexResult, error) {
			return models.ReindexResult{}, nil
		},
	}
	router := initRouter(t, services)

	req := authedRequest(http.MethodPost, "/api/knowledgebase/reindex",
		strings.NewReader(`{"knowledge_base_uuid":"kb-1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.False(t, calledGet)
}
