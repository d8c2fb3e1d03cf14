package http

import (
	"github.com/mvallejo3/do-genai-api/internal/config"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/internal/service"
)

type Handler struct {
	services *service.Services
	auth     config.Auth

	logger *logger.Logger
}

// NewHandler constructs the transport handler. The auth config carries the
// shared secret enforced on every protected route; it is captured here once
// and never read from the environment at request time.
func NewHandler(services *service.Services, auth config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		auth:     auth,
		logger:   logger,
	}
}
