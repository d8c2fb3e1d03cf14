// Package handler aggregates the gateway's transport handlers. The service
// is HTTP-only, so the aggregate is thin; it exists so the composition in
// main does not depend on the transport package directly.
package handler

import (
	"github.com/mvallejo3/do-genai-api/internal/config"
	"github.com/mvallejo3/do-genai-api/internal/handler/http"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.Config, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Auth, logger),
	}, nil
}
