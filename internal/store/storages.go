package store

import (
	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
)

// Storages groups the storage components handed to the service layer.
type Storages struct {
	ConfigRepository ConfigRepository

	// Cache is nil when caching is disabled.
	Cache CachePurger
}

// NewStorages builds the repository for cfg, wrapping it in the document
// cache when cfg.Cache.Enabled is set.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Debug().Str("base_dir", cfg.BaseDirectory).Bool("cache", cfg.Cache.Enabled).Msg("creating storages")

	repository, err := NewFileConfigRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	storages := &Storages{ConfigRepository: repository}
	if cfg.Cache.Enabled {
		cached := NewCachedConfigRepository(repository, cfg.Cache.MaxIdle, log)
		storages.ConfigRepository = cached
		storages.Cache = cached
	}

	return storages, nil
}
