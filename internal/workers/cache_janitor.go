// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/store"
)

// CacheJanitor periodically evicts idle or outdated document cache entries.
type CacheJanitor struct {
	purger   store.CachePurger
	interval time.Duration

	logger *logger.Logger
}

func NewCacheJanitor(purger store.CachePurger, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	return &CacheJanitor{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (j *CacheJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Warn().Str("func", "*CacheJanitor.Run").Msg("cache janitor disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("cache janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("cache janitor stopped")
			return
		case <-ticker.C:
			if evicted := j.purger.PurgeStale(ctx); evicted > 0 {
				j.logger.Debug().Int("evicted", evicted).Msg("stale cache entries evicted")
			}
		}
	}
}
