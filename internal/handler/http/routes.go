package http

import "net/http"

// Init composes the gateway's full route table and seals it. The returned
// Router is ready to be mounted as the server's handler; registration errors
// (duplicates, registration after seal) surface here instead of at request
// time.
func (h *Handler) Init() (*Router, error) {
	router := NewRouter(h.auth.BearerToken, h.logger)

	// Health is the single unprotected, pre-envelope route.
	if err := router.RegisterRaw(http.MethodGet, "/", false, h.health); err != nil {
		return nil, err
	}

	protected := []struct {
		method  string
		pattern string
		fn      HandlerFunc
	}{
		// agents
		{http.MethodGet, "/api/agents", h.listAgents},
		{http.MethodPost, "/api/agents", h.createAgent},
		{http.MethodGet, "/api/agents/{id}", h.getAgent},
		{http.MethodDelete, "/api/agents/{id}", h.deleteAgent},
		{http.MethodGet, "/api/agents/{id}/api-keys", h.listAgentAPIKeys},
		{http.MethodPost, "/api/agents/{id}/api-keys", h.createAgentAPIKey},
		{http.MethodPost, "/api/agents/{id}/attach-knowledgebase", h.attachKnowledgeBase},

		// knowledge bases
		{http.MethodGet, "/api/knowledgebase", h.listKnowledgeBases},
		{http.MethodPost, "/api/knowledgebase", h.createKnowledgeBase},
		{http.MethodPost, "/api/knowledgebase/reindex", h.reindexKnowledgeBase},
		{http.MethodGet, "/api/knowledgebase/{id}", h.getKnowledgeBase},
		{http.MethodDelete, "/api/knowledgebase/{id}", h.deleteKnowledgeBase},
		{http.MethodGet, "/api/knowledgebase/{id}/datasources", h.listKnowledgeBaseDataSources},

		// models and databases
		{http.MethodGet, "/api/models", h.listModels},
		{http.MethodGet, "/api/opensearch-databases", h.listOpenSearchDatabases},

		// object storage
		{http.MethodGet, "/api/buckets", h.listBuckets},
		{http.MethodPost, "/api/buckets", h.createBucket},
		{http.MethodGet, "/api/buckets/{name}", h.getBucket},
		{http.MethodDelete, "/api/buckets/{name}", h.deleteBucket},
		{http.MethodGet, "/api/files", h.listFiles},
		{http.MethodPost, "/api/files", h.uploadFiles},
		{http.MethodDelete, "/api/files", h.deleteFile},
	}

	for _, route := range protected {
		if err := router.Register(route.method, route.pattern, true, route.fn); err != nil {
			return nil, err
		}
	}

	if err := router.Seal(); err != nil {
		return nil, err
	}

	return router, nil
}
