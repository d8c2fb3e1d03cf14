package service

import (
	"context"
	"strings"

	"github.com/mvallejo3/do-genai-api/internal/adapter"
	"github.com/mvallejo3/do-genai-api/internal/config"
	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/models"
)

type agentsService struct {
	genAI    adapter.GenAIAdapter
	defaults config.GenAI

	logger *logger.Logger
}

// NewAgentsService constructs the [AgentsService]. The config defaults are
// substituted into creation requests when the caller omits model, workspace,
// region, or project.
func NewAgentsService(genAI adapter.GenAIAdapter, defaults config.GenAI, logger *logger.Logger) AgentsService {
	return &agentsService{genAI: genAI, defaults: defaults, logger: logger}
}

func (s *agentsService) List(ctx context.Context) (models.JSON, error) {
	return s.genAI.ListAgents(ctx)
}

func (s *agentsService) Create(ctx context.Context, req models.CreateAgentRequest) (models.JSON, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fault.Validation("Agent name is required and cannot be empty")
	}
	if strings.TrimSpace(req.Instructions) == "" {
		return nil, fault.Validation("Agent instructions are required and cannot be empty")
	}

	body := models.JSON{
		"name":           req.Name,
		"instruction":    req.Instructions,
		"model_uuid":     valueOrDefault(req.Model, s.defaults.DefaultModelUUID),
		"workspace_uuid": valueOrDefault(req.Workspace, s.defaults.DefaultWorkspaceUUID),
		"region":         valueOrDefault(req.Region, s.defaults.DefaultRegion),
		"project_id":     valueOrDefault(req.ProjectID, s.defaults.DefaultProjectUUID),
	}
	if req.Description != "" {
		body["description"] = req.Description
	}

	return s.genAI.CreateAgent(ctx, body)
}

func (s *agentsService) Get(ctx context.Context, id string) (models.JSON, error) {
	if err := validateAgentID(id); err != nil {
		return nil, err
	}

	agent, err := s.genAI.GetAgent(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Agent with ID '%s' not found", id)
	}

	return agent, nil
}

func (s *agentsService) Delete(ctx context.Context, id string) (models.JSON, error) {
	if err := validateAgentID(id); err != nil {
		return nil, err
	}

	// Resolve the agent first so deletion targets the provider's uuid and a
	// missing agent yields 404 instead of a provider error.
	agent, err := s.genAI.GetAgent(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Agent with ID '%s' not found", id)
	}

	uuid := nestedString(agent, "agent", "uuid")
	if uuid == "" {
		uuid = id
	}

	s.logger.Debug().Str("agent_uuid", uuid).Msg("deleting agent")
	return s.genAI.DeleteAgent(ctx, uuid)
}

func (s *agentsService) ListAPIKeys(ctx context.Context, id string) (models.JSON, error) {
	if err := validateAgentID(id); err != nil {
		return nil, err
	}

	keys, err := s.genAI.ListAgentAPIKeys(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Agent with ID '%s' not found", id)
	}

	return keys, nil
}

func (s *agentsService) CreateAPIKey(ctx context.Context, id string, req models.CreateAgentAPIKeyRequest) (models.JSON, error) {
	if err := validateAgentID(id); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fault.Validation("API key name is required and cannot be empty")
	}

	key, err := s.genAI.CreateAgentAPIKey(ctx, id, req.Name)
	if err != nil {
		return nil, notFoundAs(err, "Agent with ID '%s' not found", id)
	}

	return key, nil
}

func (s *agentsService) AttachKnowledgeBase(ctx context.Context, id string, req models.AttachKnowledgeBaseRequest) (models.AttachKnowledgeBaseResult, error) {
	if err := validateAgentID(id); err != nil {
		return models.AttachKnowledgeBaseResult{}, err
	}
	if strings.TrimSpace(req.KnowledgeBaseUUID) == "" {
		return models.AttachKnowledgeBaseResult{}, fault.Validation("knowledge_base_uuid is required and cannot be empty")
	}

	// Both sides are verified before attaching so the caller learns which
	// of the two identifiers is wrong.
	if _, err := s.genAI.GetAgent(ctx, id); err != nil {
		return models.AttachKnowledgeBaseResult{}, notFoundAs(err, "Agent with ID '%s' not found", id)
	}
	if _, err := s.genAI.GetKnowledgeBase(ctx, req.KnowledgeBaseUUID); err != nil {
		return models.AttachKnowledgeBaseResult{}, notFoundAs(err, "Knowledge base with ID '%s' not found", req.KnowledgeBaseUUID)
	}

	result, err := s.genAI.AttachKnowledgeBase(ctx, id, req.KnowledgeBaseUUID)
	if err != nil {
		return models.AttachKnowledgeBaseResult{}, err
	}

	return models.AttachKnowledgeBaseResult{
		Message:           "Knowledge base attached to agent successfully",
		AgentID:           id,
		KnowledgeBaseUUID: req.KnowledgeBaseUUID,
		Result:            result,
	}, nil
}

func validateAgentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fault.Validation("Agent ID cannot be empty")
	}
	return nil
}

// valueOrDefault returns v unless it is empty.
func valueOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// nestedString walks a raw provider payload along keys and returns the
// string at the end of the path, or "" when any step is missing or of the
// wrong type.
func nestedString(payload models.JSON, keys ...string) string {
	var current any = payload
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current = m[key]
	}

	s, ok := current.(string)
	if !ok {
		return ""
	}
	return s
}
