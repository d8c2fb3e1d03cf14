package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mvallejo3/do-genai-api/internal/config"
	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/internal/utils"
	"github.com/mvallejo3/do-genai-api/models"
)

type genAIAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewGenAIAdapter constructs the resty-backed [GenAIAdapter] for the
// DigitalOcean API. The provider token is attached to every request; the
// base URL and token come from the startup configuration and are never
// mutated afterwards.
func NewGenAIAdapter(cfg config.GenAI, logger *logger.Logger) (GenAIAdapter, error) {
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("genai adapter: api token is required")
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIToken).
		SetHeader("Accept", "application/json")

	return &genAIAdapter{client: client, logger: logger}, nil
}

// do executes one provider call and decodes the response body into a raw
// payload. Transport failures and non-2xx provider responses come back as
// upstream faults; the full provider detail is logged before the sanitized
// fault is returned.
func (g *genAIAdapter) do(ctx context.Context, method, path string, body any, query map[string]string) (models.JSON, error) {
	req := g.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		g.logger.Err(err).Str("method", method).Str("path", path).Msg("provider request failed")
		return nil, fault.Upstream(http.StatusBadGateway, "DigitalOcean API is unreachable")
	}

	if mapped := mapProviderError(resp); mapped != nil {
		g.logger.Error().
			Int("status", resp.StatusCode()).
			Str("method", method).
			Str("path", path).
			Str("body", string(resp.Body())).
			Msg("provider returned an error")
		return nil, mapped
	}

	if len(resp.Body()) == 0 {
		return models.JSON{}, nil
	}

	var out models.JSON
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}

	return out, nil
}

// providerError is the error body shape of the DigitalOcean API.
type providerError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// mapProviderError converts a non-2xx provider response into an upstream
// fault carrying the provider's status code and its message. The provider
// message is already caller-safe (it never contains gateway credentials),
// so it is forwarded as-is; an unparsable body falls back to a generic text.
func mapProviderError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var pe providerError
	if err := json.Unmarshal(resp.Body(), &pe); err == nil && pe.Message != "" {
		return fault.Upstream(resp.StatusCode(), "%s", pe.Message)
	}

	return fault.Upstream(resp.StatusCode(), "DigitalOcean API error (status %d)", resp.StatusCode())
}

func (g *genAIAdapter) ListAgents(ctx context.Context) (models.JSON, error) {
	return g.do(ctx, http.MethodGet, "/v2/gen-ai/agents", nil, nil)
}

func (g *genAIAdapter) CreateAgent(ctx context.Context, body models.JSON) (models.JSON, error) {
	return g.do(ctx, http.MethodPost, "/v2/gen-ai/agents", body, nil)
}

func (g *genAIAdapter) GetAgent(ctx context.Context, agentUUID string) (models.JSON, error) {
	return g.do(ctx, http.MethodGet, "/v2/gen-ai/agents/"+agentUUID, nil, nil)
}

func (g *genAIAdapter) DeleteAgent(ctx context.Context, agentUUID string) (models.JSON, error) {
	return g.do(ctx, http.MethodDelete, "/v2/gen-ai/agents/"+agentUUID, nil, nil)
}

func (g *genAIAdapter) ListAgentAPIKeys(ctx context.Context, agentUUID string) (models.JSON, error) {
	return g.do(ctx, http.MethodGet, "/v2/gen-ai/agents/"+agentUUID+"/api_keys", nil, nil)
}

func (g *genAIAdapter) CreateAgentAPIKey(ctx context.Context, agentUUID, name string) (models.JSON, error) {
	body := models.JSON{
		"agent_uuid": agentUUID,
		"name":       name,
	}
	return g.do(ctx, http.MethodPost, "/v2/gen-ai/agents/"+agentUUID+"/api_keys", body, nil)
}

func (g *genAIAdapter) AttachKnowledgeBase(ctx context.Context, agentUUID, knowledgeBaseUUID string) (models.JSON, error) {
	path := "/v2/gen-ai/agents/" + agentUUID + "/knowledge_bases/" + knowledgeBaseUUID
	return g.do(ctx, http.MethodPost, path, nil, nil)
}

func (g *genAIAdapter) ListKnowledgeBases(ctx context.Context) (models.JSON, error) {
	return g.do(ctx, http.MethodGet, "/v2/gen-ai/knowledge_bases", nil, nil)
}

func (g *genAIAdapter) CreateKnowledgeBase(ctx context.Context, body models.JSON) (models.JSON, error) {
	return g.do(ctx, http.MethodPost, "/v2/gen-ai/knowledge_bases", body, nil)
}

func (g *genAIAdapter) GetKnowledgeBase(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error) {
	return g.do(ctx, http.MethodGet, "/v2/gen-ai/knowledge_bases/"+knowledgeBaseUUID, nil, nil)
}

func (g *genAIAdapter) DeleteKnowledgeBase(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error) {
	return g.do(ctx, http.MethodDelete, "/v2/gen-ai/knowledge_bases/"+knowledgeBaseUUID, nil, nil)
}

func (g *genAIAdapter) ListKnowledgeBaseDataSources(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error) {
	path := "/v2/gen-ai/knowledge_bases/" + knowledgeBaseUUID + "/data_sources"
	return g.do(ctx, http.MethodGet, path, nil, nil)
}

func (g *genAIAdapter) CreateIndexingJob(ctx context.Context, knowledgeBaseUUID string, dataSourceUUIDs []string) (models.JSON, error) {
	body := models.JSON{
		"knowledge_base_uuid": knowledgeBaseUUID,
	}
	if dataSourceUUIDs != nil {
		body["data_source_uuids"] = dataSourceUUIDs
	}
	return g.do(ctx, http.MethodPost, "/v2/gen-ai/indexing_jobs", body, nil)
}

func (g *genAIAdapter) ListModels(ctx context.Context, usecases []string, publicOnly bool) (models.JSON, error) {
	query := map[string]string{
		"public_only": strconv.FormatBool(publicOnly),
	}
	if len(usecases) > 0 {
		query["usecases"] = strings.Join(usecases, ",")
	}
	return g.do(ctx, http.MethodGet, "/v2/gen-ai/models", nil, query)
}

func (g *genAIAdapter) ListDatabases(ctx context.Context) (models.JSON, error) {
	return g.do(ctx, http.MethodGet, "/v2/databases", nil, nil)
}
