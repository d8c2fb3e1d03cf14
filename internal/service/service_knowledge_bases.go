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

type knowledgeBasesService struct {
	genAI adapter.GenAIAdapter
	cfg   *config.Config

	logger *logger.Logger
}

// NewKnowledgeBasesService constructs the [KnowledgeBasesService]. Created
// knowledge bases are wired to the configured embedding model, database
// cluster, and Spaces bucket.
func NewKnowledgeBasesService(genAI adapter.GenAIAdapter, cfg *config.Config, logger *logger.Logger) KnowledgeBasesService {
	return &knowledgeBasesService{genAI: genAI, cfg: cfg, logger: logger}
}

func (s *knowledgeBasesService) List(ctx context.Context) (models.JSON, error) {
	return s.genAI.ListKnowledgeBases(ctx)
}

func (s *knowledgeBasesService) Create(ctx context.Context, req models.CreateKnowledgeBaseRequest) (models.JSON, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fault.Validation("Knowledge base name is required and cannot be empty")
	}

	body := models.JSON{
		"name":                 req.Name,
		"project_id":           s.cfg.GenAI.DefaultProjectUUID,
		"embedding_model_uuid": s.cfg.GenAI.EmbeddingModelUUID,
		"database_id":          s.cfg.GenAI.DatabaseID,
		"datasources": []models.JSON{
			{
				"spaces_data_source": models.JSON{
					"bucket_name": s.cfg.Spaces.Bucket,
					"region":      s.cfg.GenAI.DefaultRegion,
				},
			},
		},
	}
	if req.Description != "" {
		body["description"] = req.Description
	}

	return s.genAI.CreateKnowledgeBase(ctx, body)
}

// Get returns a knowledge base together with its data sources, merged into
// the provider payload under "data_sources".
func (s *knowledgeBasesService) Get(ctx context.Context, id string) (models.JSON, error) {
	if err := validateKnowledgeBaseID(id); err != nil {
		return nil, err
	}

	kb, err := s.genAI.GetKnowledgeBase(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Knowledge base with ID '%s' not found", id)
	}

	dataSources, err := s.genAI.ListKnowledgeBaseDataSources(ctx, id)
	if err != nil {
		return nil, err
	}

	if sources, ok := dataSources["knowledge_base_data_sources"]; ok {
		kb["data_sources"] = sources
	} else {
		kb["data_sources"] = []any{}
	}

	return kb, nil
}

func (s *knowledgeBasesService) Delete(ctx context.Context, id string) (models.JSON, error) {
	if err := validateKnowledgeBaseID(id); err != nil {
		return nil, err
	}

	if _, err := s.genAI.GetKnowledgeBase(ctx, id); err != nil {
		return nil, notFoundAs(err, "Knowledge base with ID '%s' not found", id)
	}

	return s.genAI.DeleteKnowledgeBase(ctx, id)
}

func (s *knowledgeBasesService) ListDataSources(ctx context.Context, id string) (models.JSON, error) {
	if err := validateKnowledgeBaseID(id); err != nil {
		return nil, err
	}

	sources, err := s.genAI.ListKnowledgeBaseDataSources(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Knowledge base with ID '%s' not found", id)
	}

	return sources, nil
}

func (s *knowledgeBasesService) Reindex(ctx context.Context, req models.ReindexRequest) (models.ReindexResult, error) {
	if strings.TrimSpace(req.KnowledgeBaseUUID) == "" {
		return models.ReindexResult{}, fault.Validation("Request body must include a 'knowledge_base_uuid' field")
	}
	for _, uuid := range req.DataSourceUUIDs {
		if strings.TrimSpace(uuid) == "" {
			return models.ReindexResult{}, fault.Validation("All items in data_source_uuids must be non-empty strings")
		}
	}

	job, err := s.genAI.CreateIndexingJob(ctx, req.KnowledgeBaseUUID, req.DataSourceUUIDs)
	if err != nil {
		return models.ReindexResult{}, notFoundAs(err, "Knowledge base with ID '%s' not found", req.KnowledgeBaseUUID)
	}

	return models.ReindexResult{
		Message: "Re-indexing job created successfully",
		Job:     job,
	}, nil
}

func validateKnowledgeBaseID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fault.Validation("Knowledge base ID cannot be empty")
	}
	return nil
}
