package service

import (
	"context"

	"github.com/mvallejo3/do-genai-api/internal/adapter"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/models"
)

// DefaultModelUsecase is the use-case filter applied when the caller does
// not ask for specific ones: only models usable by agents.
const DefaultModelUsecase = "MODEL_USECASE_AGENT"

type modelsService struct {
	genAI adapter.GenAIAdapter

	logger *logger.Logger
}

// NewModelsService constructs the [ModelsService].
func NewModelsService(genAI adapter.GenAIAdapter, logger *logger.Logger) ModelsService {
	return &modelsService{genAI: genAI, logger: logger}
}

func (s *modelsService) List(ctx context.Context, usecases []string, publicOnly bool) (models.JSON, error) {
	if len(usecases) == 0 {
		usecases = []string{DefaultModelUsecase}
	}
	return s.genAI.ListModels(ctx, usecases, publicOnly)
}
