package service

import (
	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/store"
	"github.com/amitvgi12/jarvis-configuration-service/internal/templating"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

type Services struct {
	ConfigService  ConfigService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	var opts []templating.Option
	if cfg.Templating.MissingParameterToken != "" {
		opts = append(opts, templating.WithMissingToken(cfg.Templating.MissingParameterToken))
	}
	engine := templating.NewEngine(opts...)

	configService := NewConfigService(storages.ConfigRepository, engine, appInfo, logger)

	return &Services{
		ConfigService:  NewConfigValidationService().Wrap(configService),
		AppInfoService: appInfo,
	}, nil
}
