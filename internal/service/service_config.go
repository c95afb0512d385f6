// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/store"
	"github.com/amitvgi12/jarvis-configuration-service/internal/templating"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

// configService is the default implementation of [ConfigService].
//
// Each call resolves its own copy of the module and parameter documents, so
// concurrent requests never share a tree that is being templated.
type configService struct {
	repository store.ConfigRepository
	engine     *templating.Engine
	appInfo    AppInfoService

	logger *logger.Logger
}

// NewConfigService constructs a [ConfigService] reading documents from
// repository and templating them with engine.
func NewConfigService(repository store.ConfigRepository, engine *templating.Engine, appInfo AppInfoService, logger *logger.Logger) ConfigService {
	return &configService{
		repository: repository,
		engine:     engine,
		appInfo:    appInfo,
		logger:     logger,
	}
}

func (s *configService) Status(ctx context.Context) (models.ServerStatus, error) {
	apps, err := s.repository.ListApplications(ctx)
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("error listing applications: %w", err)
	}

	return models.ServerStatus{
		BaseFolder:   s.repository.BaseDirectory(),
		Applications: apps,
		Version:      s.appInfo.GetAppVersion(ctx),
	}, nil
}

func (s *configService) ListModules(ctx context.Context, appName, hostName string) ([]string, error) {
	return s.repository.ListModules(ctx, appName, hostName)
}

// GetModuleConfig resolves the module layers, templates them with the
// application's parameters and serializes the result.
//
// Without a missing-parameter token, any unresolved parameter fails the call
// with a [*templating.MissingParametersError] listing every missing path.
func (s *configService) GetModuleConfig(ctx context.Context, req models.ConfigRequest) (models.ConfigDocument, error) {
	log := logger.FromContext(ctx)

	module, err := s.repository.LoadModule(ctx, req)
	if err != nil {
		return models.ConfigDocument{}, err
	}

	params, err := s.repository.LoadParameters(ctx, req.AppName, req.HostName)
	if err != nil {
		return models.ConfigDocument{}, fmt.Errorf("error loading parameters: %w", err)
	}

	result, err := s.engine.Render(module.Document, params.Document)
	if err != nil {
		log.Warn().
			Str("app", req.AppName).
			Str("module", req.ModuleName).
			Str("host", req.HostName).
			Strs("missing", result.MissingParameters()).
			Msg("configuration has missing parameters")
		return models.ConfigDocument{}, err
	}
	if len(result.Missing) > 0 {
		log.Warn().
			Str("app", req.AppName).
			Str("module", req.ModuleName).
			Strs("missing", result.MissingParameters()).
			Msg("missing parameters replaced by the missing token")
	}

	content, err := document.Encode(module.Document, module.Format)
	if err != nil {
		return models.ConfigDocument{}, err
	}

	log.Debug().
		Str("app", req.AppName).
		Str("module", req.ModuleName).
		Str("host", req.HostName).
		Bool("replaced", result.Replaced).
		Msg("configuration rendered")

	return models.ConfigDocument{
		Content:     content,
		ContentType: module.Format.ContentType(),
	}, nil
}

func (s *configService) GetResource(ctx context.Context, appName, fileName string) ([]byte, error) {
	return s.repository.ReadResource(ctx, appName, fileName)
}
