package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

const parametersKeyPrefix = "parameters\x00"

type cacheEntry struct {
	doc      *ResolvedDocument
	lastUsed time.Time
}

// cachedConfigRepository decorates a [ConfigRepository] with an in-memory
// cache of resolved documents keyed by (root, app, module, host).
//
// An entry is served only while its [Fingerprint] is fresh, so edits on disk
// are picked up on the next request. Concurrent misses for the same key share
// one read. Listing and resources are passed through uncached.
type cachedConfigRepository struct {
	ConfigRepository

	maxIdle time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*cacheEntry
	group   singleflight.Group

	logger *logger.Logger
}

// NewCachedConfigRepository wraps inner with a modification-invalidated
// cache. Entries unused for longer than maxIdle are dropped by PurgeStale;
// a non-positive maxIdle keeps fresh entries forever.
func NewCachedConfigRepository(inner ConfigRepository, maxIdle time.Duration, log *logger.Logger) *cachedConfigRepository {
	return &cachedConfigRepository{
		ConfigRepository: inner,
		maxIdle:          maxIdle,
		now:              time.Now,
		entries:          make(map[string]*cacheEntry),
		logger:           log,
	}
}

func (c *cachedConfigRepository) LoadModule(ctx context.Context, req models.ConfigRequest) (*ResolvedDocument, error) {
	return c.load(c.key(req.CacheKey()), func() (*ResolvedDocument, error) {
		return c.ConfigRepository.LoadModule(ctx, req)
	})
}

func (c *cachedConfigRepository) LoadParameters(ctx context.Context, appName, hostName string) (*ResolvedDocument, error) {
	req := models.ConfigRequest{AppName: appName, HostName: hostName}
	return c.load(c.key(parametersKeyPrefix+req.CacheKey()), func() (*ResolvedDocument, error) {
		return c.ConfigRepository.LoadParameters(ctx, appName, hostName)
	})
}

func (c *cachedConfigRepository) key(k string) string {
	return c.BaseDirectory() + "\x00" + k
}

func (c *cachedConfigRepository) load(key string, read func() (*ResolvedDocument, error)) (*ResolvedDocument, error) {
	if doc, ok := c.lookup(key); ok {
		return doc.Clone(), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		doc, err := read()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cacheEntry{doc: doc, lastUsed: c.now()}
		c.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ResolvedDocument).Clone(), nil
}

func (c *cachedConfigRepository) lookup(key string) (*ResolvedDocument, bool) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return nil, false
	}

	if !entry.doc.Fingerprint.Fresh() {
		c.logger.Debug().Str("func", "cachedConfigRepository.lookup").Strs("sources", entry.doc.Sources).Msg("cache entry is stale")
		c.evict(key, entry)
		return nil, false
	}

	c.mu.Lock()
	entry.lastUsed = c.now()
	c.mu.Unlock()
	return entry.doc, true
}

// evict removes key only if it still maps to entry.
func (c *cachedConfigRepository) evict(key string, entry *cacheEntry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[key] != entry {
		return false
	}
	delete(c.entries, key)
	return true
}

// PurgeStale drops entries whose files changed and entries idle for longer
// than maxIdle.
func (c *cachedConfigRepository) PurgeStale(ctx context.Context) int {
	c.mu.Lock()
	snapshot := make(map[string]*cacheEntry, len(c.entries))
	for k, e := range c.entries {
		snapshot[k] = e
	}
	c.mu.Unlock()

	now := c.now()
	purged := 0
	for key, entry := range snapshot {
		if ctx.Err() != nil {
			break
		}

		c.mu.Lock()
		idle := c.maxIdle > 0 && now.Sub(entry.lastUsed) > c.maxIdle
		c.mu.Unlock()

		if idle || !entry.doc.Fingerprint.Fresh() {
			if c.evict(key, entry) {
				purged++
			}
		}
	}
	return purged
}

// Len returns the number of cached documents.
func (c *cachedConfigRepository) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
