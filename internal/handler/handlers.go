package handler

import (
	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/handler/http"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
