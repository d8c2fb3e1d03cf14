package service

import (
	"context"
	"strings"

	"github.com/mvallejo3/do-genai-api/internal/adapter"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/models"
)

type databasesService struct {
	genAI adapter.GenAIAdapter

	logger *logger.Logger
}

// NewDatabasesService constructs the [DatabasesService].
func NewDatabasesService(genAI adapter.GenAIAdapter, logger *logger.Logger) DatabasesService {
	return &databasesService{genAI: genAI, logger: logger}
}

// ListOpenSearch lists the account's database clusters and keeps only the
// ones running the OpenSearch engine. Cluster payloads are forwarded as-is.
func (s *databasesService) ListOpenSearch(ctx context.Context) (models.DatabaseListing, error) {
	payload, err := s.genAI.ListDatabases(ctx)
	if err != nil {
		return models.DatabaseListing{}, err
	}

	opensearch := []models.JSON{}
	if clusters, ok := payload["databases"].([]any); ok {
		for _, raw := range clusters {
			cluster, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if engine, _ := cluster["engine"].(string); strings.EqualFold(engine, "opensearch") {
				opensearch = append(opensearch, cluster)
			}
		}
	}

	return models.DatabaseListing{
		Databases: opensearch,
		Count:     len(opensearch),
	}, nil
}
