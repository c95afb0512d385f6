// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amitvgi12/jarvis-configuration-service/internal/adapter"
	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/templating"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

// ConfigFetcher resolves the configuration of one module, preferring the
// server and falling back to local default files.
type ConfigFetcher struct {
	server adapter.ServerAdapter
	engine *templating.Engine

	request               models.ConfigRequest
	defaultConfigPath     string
	defaultParametersPath string

	logger *logger.Logger
}

// NewConfigFetcher builds a fetcher for the module named by cfg. server may
// be nil, in which case only the default files are used.
func NewConfigFetcher(server adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ConfigFetcher {
	return &ConfigFetcher{
		server: server,
		engine: templating.NewEngine(),
		request: models.ConfigRequest{
			AppName:    cfg.AppName,
			ModuleName: cfg.ModuleName,
			HostName:   cfg.HostName,
		},
		defaultConfigPath:     cfg.DefaultConfigPath,
		defaultParametersPath: cfg.DefaultParametersPath,
		logger:                logger,
	}
}

// Fetch returns the rendered configuration. Server answers other than
// "unavailable" (for example 404) are returned as errors without fallback.
func (f *ConfigFetcher) Fetch(ctx context.Context) (*Configuration, error) {
	if f.server == nil {
		return f.fromDefaults()
	}

	cfg, err := f.fromServer(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, adapter.ErrServerUnavailable) || f.defaultConfigPath == "" {
		return nil, err
	}

	f.logger.Warn().
		Err(err).
		Str("default_config", f.defaultConfigPath).
		Msg("configuration server unavailable, using default configuration")
	return f.fromDefaults()
}

func (f *ConfigFetcher) fromServer(ctx context.Context) (*Configuration, error) {
	doc, err := f.server.GetModuleConfig(ctx, f.request)
	if err != nil {
		return nil, err
	}

	format := formatForContentType(doc.ContentType)
	tree, err := document.Decode(doc.Content, format)
	if err != nil {
		return nil, fmt.Errorf("error decoding server response: %w", err)
	}

	return &Configuration{Document: tree, Format: format, Source: SourceServer}, nil
}

// fromDefaults renders the default document with the default parameters.
// A missing parameters file means an empty parameter document.
func (f *ConfigFetcher) fromDefaults() (*Configuration, error) {
	if f.defaultConfigPath == "" {
		return nil, ErrNoSource
	}

	tree, format, err := readDocument(f.defaultConfigPath)
	if err != nil {
		return nil, err
	}

	params := document.Mapping()
	if f.defaultParametersPath != "" {
		params, _, err = readDocument(f.defaultParametersPath)
		if err != nil {
			return nil, err
		}
	}

	if _, err = f.engine.Render(tree, params); err != nil {
		return nil, err
	}

	return &Configuration{Document: tree, Format: format, Source: SourceDefault}, nil
}

// readDocument decodes a local file. Extensions without a registered codec
// are read as JSON.
func readDocument(path string) (*document.Node, document.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading %s: %w", path, err)
	}

	format, err := document.FormatForExtension(filepath.Ext(path))
	if err != nil {
		format = document.FormatJSON
	}

	tree, err := document.Decode(data, format)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return tree, format, nil
}
