// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.BaseDirectory == "" {
		return fmt.Errorf("%w: base directory is not set", ErrInvalidStorageConfigs)
	}

	if !strings.HasPrefix(cfg.Storage.Extension, ".") {
		return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidStorageConfigs, cfg.Storage.Extension)
	}
	if _, err := document.FormatForExtension(cfg.Storage.Extension); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if cfg.Storage.ParametersName == "" || strings.ContainsAny(cfg.Storage.ParametersName, `./\`) {
		return fmt.Errorf("%w: invalid parameters name %q", ErrInvalidStorageConfigs, cfg.Storage.ParametersName)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is not set", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Cache.Enabled && cfg.Workers.CachePurgeInterval <= 0 {
		return fmt.Errorf("%w: cache purge interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" && cfg.DefaultConfigPath == "" {
		return fmt.Errorf("%w: neither server url nor default config is set", ErrInvalidClientConfigs)
	}

	if cfg.AppName == "" || cfg.ModuleName == "" {
		return fmt.Errorf("%w: application and module are required", ErrInvalidClientConfigs)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
