package http

import (
	"strings"
	"time"

	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/service"
)

type Handler struct {
	services *service.Services

	// moduleExtension is stripped from module names in legacy URLs such as
	// /{app}/{module}.config.
	moduleExtension string
	requestTimeout  time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		moduleExtension: cfg.Storage.Extension,
		requestTimeout:  cfg.Server.RequestTimeout,
		logger:          logger,
	}
}

func (h *Handler) moduleName(raw string) string {
	ext := h.moduleExtension
	if ext != "" && len(raw) > len(ext) && strings.EqualFold(raw[len(raw)-len(ext):], ext) {
		return raw[:len(raw)-len(ext)]
	}
	return raw
}
