package service

import (
	"net/http"

	"github.com/mvallejo3/do-genai-api/internal/adapter"
	"github.com/mvallejo3/do-genai-api/internal/config"
	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/logger"
)

// Services aggregates all resource services composed by the HTTP layer.
type Services struct {
	Agents         AgentsService
	KnowledgeBases KnowledgeBasesService
	Models         ModelsService
	Databases      DatabasesService
	Files          FilesService
	Buckets        BucketsService
}

// NewServices wires every resource service to the outbound adapters.
func NewServices(genAI adapter.GenAIAdapter, spaces adapter.SpacesAdapter, cfg *config.Config, logger *logger.Logger) *Services {
	logger.Info().Msg("services created")

	return &Services{
		Agents:         NewAgentsService(genAI, cfg.GenAI, logger),
		KnowledgeBases: NewKnowledgeBasesService(genAI, cfg, logger),
		Models:         NewModelsService(genAI, logger),
		Databases:      NewDatabasesService(genAI, logger),
		Files:          NewFilesService(spaces, logger),
		Buckets:        NewBucketsService(spaces, logger),
	}
}

// notFoundAs rewrites an upstream 404 into a caller-facing not-found fault
// with a resource-specific message. Other errors pass through unchanged.
func notFoundAs(err error, format string, args ...any) error {
	if f, ok := fault.From(err); ok && f.Code == http.StatusNotFound {
		return fault.NotFound(format, args...)
	}
	return err
}
