package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvallejo3/do-genai-api/internal/config"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/internal/service"
	"github.com/mvallejo3/do-genai-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// fullStubServices returns a Services aggregate whose every method succeeds
// with an empty payload, so that route-registration tests can hit any route.
func fullStubServices() *service.Services {
	emptyJSON := func(context.Context) (models.JSON, error) { return models.JSON{}, nil }
	emptyByID := func(context.Context, string) (models.JSON, error) { return models.JSON{}, nil }

	return &service.Services{
		Agents: &stubAgents{
			list: emptyJSON,
			create: func(context.Context, models.CreateAgentRequest) (models.JSON, error) {
				return models.JSON{}, nil
			},
			get:      emptyByID,
			delete:   emptyByID,
			listKeys: emptyByID,
			createKey: func(context.Context, string, models.CreateAgentAPIKeyRequest) (models.JSON, error) {
				return models.JSON{}, nil
			},
			attachKB: func(context.Context, string, models.AttachKnowledgeBaseRequest) (models.AttachKnowledgeBaseResult, error) {
				return models.AttachKnowledgeBaseResult{}, nil
			},
		},
		KnowledgeBases: &stubKnowledgeBases{
			list: emptyJSON,
			create: func(context.Context, models.CreateKnowledgeBaseRequest) (models.JSON, error) {
				return models.JSON{}, nil
			},
			get:             emptyByID,
			delete:          emptyByID,
			listDataSources: emptyByID,
			reindex: func(context.Context, models.ReindexRequest) (models.ReindexResult, error) {
				return models.ReindexResult{}, nil
			},
		},
		Models: &stubModels{
			list: func(context.Context, []string, bool) (models.JSON, error) { return models.JSON{}, nil },
		},
		Databases: &stubDatabases{
			listOpenSearch: func(context.Context) (models.DatabaseListing, error) {
				return models.DatabaseListing{}, nil
			},
		},
		Files: &stubFiles{
			list: func(context.Context, string, int) (models.FileListing, error) {
				return models.FileListing{}, nil
			},
			upload: func(context.Context, string, []service.UploadFile) (models.UploadSummary, error) {
				return models.UploadSummary{}, nil
			},
			delete: func(context.Context, string) (models.DeleteFileResult, error) {
				return models.DeleteFileResult{}, nil
			},
		},
		Buckets: &stubBuckets{
			list: func(context.Context) (models.BucketListing, error) { return models.BucketListing{}, nil },
			create: func(context.Context, models.CreateBucketRequest) (models.CreateBucketResult, error) {
				return models.CreateBucketResult{}, nil
			},
			get: func(context.Context, string) (models.BucketInfo, error) { return models.BucketInfo{}, nil },
			delete: func(context.Context, string) (models.DeleteBucketResult, error) {
				return models.DeleteBucketResult{}, nil
			},
		},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	return NewHandler(services, config.Auth{BearerToken: testSecret}, logger.Nop())
}

func initRouter(t *testing.T, services *service.Services) *Router {
	t.Helper()

	router, err := newTestHandler(t, services).Init()
	require.NoError(t, err)
	return router
}

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Auth{BearerToken: testSecret}, logger.Nop())

	require.NotNil(t, h)
}

func TestInit_ReturnsSealedRouter(t *testing.T) {
	router := initRouter(t, fullStubServices())

	require.NotNil(t, router)
	assert.ErrorIs(t, router.Register(http.MethodGet, "/late", false, okHandler), ErrRouterSealed)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/"},
	// agents
	{http.MethodGet, "/api/agents"},
	{http.MethodPost, "/api/agents"},
	{http.MethodGet, "/api/agents/a-1"},
	{http.MethodDelete, "/api/agents/a-1"},
	{http.MethodGet, "/api/agents/a-1/api-keys"},
	{http.MethodPost, "/api/agents/a-1/api-keys"},
	{http.MethodPost, "/api/agents/a-1/attach-knowledgebase"},
	// knowledge bases
	{http.MethodGet, "/api/knowledgebase"},
	{http.MethodPost, "/api/knowledgebase"},
	{http.MethodPost, "/api/knowledgebase/reindex"},
	{http.MethodGet, "/api/knowledgebase/kb-1"},
	{http.MethodDelete, "/api/knowledgebase/kb-1"},
	{http.MethodGet, "/api/knowledgebase/kb-1/datasources"},
	// models and databases
	{http.MethodGet, "/api/models"},
	{http.MethodGet, "/api/opensearch-databases"},
	// object storage
	{http.MethodGet, "/api/buckets"},
	{http.MethodPost, "/api/buckets"},
	{http.MethodGet, "/api/buckets/b-1"},
	{http.MethodDelete, "/api/buckets/b-1"},
	{http.MethodGet, "/api/files"},
	{http.MethodPost, "/api/files"},
	{http.MethodDelete, "/api/files"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := initRouter(t, fullStubServices())

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Protected routes return 401 without
			// a token — that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_APIRoutesAreProtected(t *testing.T) {
	router := initRouter(t, fullStubServices())

	for _, tc := range expectedRoutes {
		if tc.path == "/" {
			continue
		}
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := initRouter(t, fullStubServices())

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	router := initRouter(t, fullStubServices())

	req := httptest.NewRequest(http.MethodPut, "/api/agents", nil)
	req.Header.Set("Authorization", "Bearer "+testSecret)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
