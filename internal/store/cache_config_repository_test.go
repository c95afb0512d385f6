package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

// countingRepository counts the reads that reach the wrapped repository.
type countingRepository struct {
	ConfigRepository
	modules    atomic.Int32
	parameters atomic.Int32
	release    chan struct{}
}

func (c *countingRepository) LoadModule(ctx context.Context, req models.ConfigRequest) (*ResolvedDocument, error) {
	c.modules.Add(1)
	if c.release != nil {
		<-c.release
	}
	return c.ConfigRepository.LoadModule(ctx, req)
}

func (c *countingRepository) LoadParameters(ctx context.Context, appName, hostName string) (*ResolvedDocument, error) {
	c.parameters.Add(1)
	return c.ConfigRepository.LoadParameters(ctx, appName, hostName)
}

func newCachedTestRepository(t *testing.T, root string, maxIdle time.Duration) (*cachedConfigRepository, *countingRepository) {
	t.Helper()
	counting := &countingRepository{ConfigRepository: newTestRepository(t, root)}
	return NewCachedConfigRepository(counting, maxIdle, logger.Nop()), counting
}

// touch rewrites a file and moves its modification time forward so the change
// is visible even on filesystems with coarse timestamps.
func touch(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))
}

func testStorageConfig(root string, cache bool) config.Storage {
	return config.Storage{
		BaseDirectory:  root,
		Extension:      ".config",
		ParametersName: "parameters",
		Cache:          config.Cache{Enabled: cache, MaxIdle: time.Minute},
	}
}

var defaultSetting = models.ConfigRequest{AppName: "MyApp1", ModuleName: "default-setting"}

func TestCache_HitServesIndependentCopies(t *testing.T) {
	cache, counting := newCachedTestRepository(t, sampleTree(t), 0)
	ctx := context.Background()

	first, err := cache.LoadModule(ctx, defaultSetting)
	require.NoError(t, err)
	first.Document.Set("setting", document.String("mutated by caller"))

	second, err := cache.LoadModule(ctx, defaultSetting)
	require.NoError(t, err)

	assert.Equal(t, int32(1), counting.modules.Load())
	assert.Equal(t, "def-value", textAt(t, second.Document, "setting"))
	assert.Equal(t, 1, cache.Len())
}

func TestCache_KeyIncludesHost(t *testing.T) {
	cache, counting := newCachedTestRepository(t, sampleTree(t), 0)
	ctx := context.Background()

	plain, err := cache.LoadModule(ctx, defaultSetting)
	require.NoError(t, err)

	withHost := defaultSetting
	withHost.HostName = "host1"
	hosted, err := cache.LoadModule(ctx, withHost)
	require.NoError(t, err)

	_, err = cache.LoadModule(ctx, models.ConfigRequest{AppName: "myapp1", ModuleName: "DEFAULT-SETTING", HostName: "HOST1"})
	require.NoError(t, err)

	assert.Equal(t, "def-value", textAt(t, plain.Document, "setting"))
	assert.Equal(t, "def-value:default-param", textAt(t, hosted.Document, "setting"))
	assert.Equal(t, int32(2), counting.modules.Load())
}

func TestCache_ParametersCachedSeparately(t *testing.T) {
	cache, counting := newCachedTestRepository(t, sampleTree(t), 0)
	ctx := context.Background()

	for range 3 {
		params, err := cache.LoadParameters(ctx, "MyApp1", "")
		require.NoError(t, err)
		assert.Equal(t, "dev", textAt(t, params.Document, "env"))
	}
	_, err := cache.LoadModule(ctx, defaultSetting)
	require.NoError(t, err)

	assert.Equal(t, int32(1), counting.parameters.Load())
	assert.Equal(t, int32(1), counting.modules.Load())
	assert.Equal(t, 2, cache.Len())
}

func TestCache_InvalidatedByModification(t *testing.T) {
	root := sampleTree(t)
	cache, counting := newCachedTestRepository(t, root, 0)
	ctx := context.Background()

	_, err := cache.LoadModule(ctx, defaultSetting)
	require.NoError(t, err)

	touch(t, filepath.Join(root, "MyApp1", "Default", "default-setting.config"), `{"setting": "new-value"}`)

	doc, err := cache.LoadModule(ctx, defaultSetting)
	require.NoError(t, err)
	assert.Equal(t, "new-value", textAt(t, doc.Document, "setting"))
	assert.Equal(t, int32(2), counting.modules.Load())
}

func TestCache_InvalidatedByNewLayer(t *testing.T) {
	root := sampleTree(t)
	cache, _ := newCachedTestRepository(t, root, 0)
	ctx := context.Background()

	req := models.ConfigRequest{AppName: "MyApp1", ModuleName: "default-setting", HostName: "host9"}
	doc, err := cache.LoadModule(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "def-value", textAt(t, doc.Document, "setting"))

	defaultDir := filepath.Join(root, "MyApp1", "Default")
	require.NoError(t, os.WriteFile(filepath.Join(defaultDir, "default-setting.host9.config"), []byte(`{"setting": "host9"}`), 0o644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(defaultDir, future, future))

	doc, err = cache.LoadModule(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "host9", textAt(t, doc.Document, "setting"))
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	root := sampleTree(t)
	cache, counting := newCachedTestRepository(t, root, 0)
	ctx := context.Background()
	req := models.ConfigRequest{AppName: "Later", ModuleName: "m"}

	_, err := cache.LoadModule(ctx, req)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	writeTree(t, root, map[string]string{"Later/Default/m.config": `{"ok": true}`})

	doc, err := cache.LoadModule(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "true", textAt(t, doc.Document, "ok"))
	assert.Equal(t, int32(2), counting.modules.Load())
}

func TestCache_ConcurrentMissesShareOneRead(t *testing.T) {
	cache, counting := newCachedTestRepository(t, sampleTree(t), 0)
	counting.release = make(chan struct{})
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*ResolvedDocument, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := cache.LoadModule(ctx, defaultSetting)
			assert.NoError(t, err)
			results[i] = doc
		}()
	}

	require.Eventually(t, func() bool { return counting.modules.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(counting.release)
	wg.Wait()

	assert.Equal(t, int32(1), counting.modules.Load())
	for i := 1; i < callers; i++ {
		require.NotNil(t, results[i])
		assert.NotSame(t, results[0].Document, results[i].Document)
	}
}

func TestCache_PurgeStale(t *testing.T) {
	root := sampleTree(t)
	cache, _ := newCachedTestRepository(t, root, time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := cache.LoadModule(ctx, defaultSetting)
	require.NoError(t, err)
	_, err = cache.LoadParameters(ctx, "MyApp1", "")
	require.NoError(t, err)
	require.Equal(t, 2, cache.Len())

	assert.Equal(t, 0, cache.PurgeStale(ctx))

	touch(t, filepath.Join(root, "MyApp1", "Default", "parameters.config"), `{"env": "qa"}`)
	assert.Equal(t, 1, cache.PurgeStale(ctx))
	assert.Equal(t, 1, cache.Len())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, cache.PurgeStale(ctx))
	assert.Zero(t, cache.Len())
}

func TestCache_PassesThroughUncachedCalls(t *testing.T) {
	root := sampleTree(t)
	cache, _ := newCachedTestRepository(t, root, 0)
	ctx := context.Background()

	apps, err := cache.ListApplications(ctx)
	require.NoError(t, err)
	assert.Contains(t, apps, "MyApp1")

	data, err := cache.ReadResource(ctx, "MyApp1", "logo.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	assert.Equal(t, newTestRepository(t, root).BaseDirectory(), cache.BaseDirectory())
}

func TestNewStorages(t *testing.T) {
	root := sampleTree(t)

	storages, err := NewStorages(testStorageConfig(root, false), logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, storages.Cache)
	assert.IsType(t, &fileConfigRepository{}, storages.ConfigRepository)

	storages, err = NewStorages(testStorageConfig(root, true), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, storages.Cache)
	assert.IsType(t, &cachedConfigRepository{}, storages.ConfigRepository)

	_, err = NewStorages(testStorageConfig(filepath.Join(root, "absent"), false), logger.Nop())
	assert.ErrorIs(t, err, ErrReadingFile)
}

func TestCachedRepository_NamesDifferingInCase(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"App/Default/m.config": `{"v": "upper"}`})
	if _, err := os.Stat(filepath.Join(root, "app")); err == nil {
		t.Skip("filesystem is case-insensitive")
	}
	writeTree(t, root, map[string]string{"app/Default/m.config": `{"v": "lower"}`})

	direct := newTestRepository(t, root)
	cached, _ := newCachedTestRepository(t, root, 0)
	ctx := context.Background()

	for _, name := range []string{"app", "App", "APP", "app"} {
		want, err := direct.LoadModule(ctx, models.ConfigRequest{AppName: name, ModuleName: "m"})
		require.NoError(t, err)
		got, err := cached.LoadModule(ctx, models.ConfigRequest{AppName: name, ModuleName: "m"})
		require.NoError(t, err)

		assert.Equal(t, "upper", textAt(t, want.Document, "v"), name)
		assert.Equal(t, textAt(t, want.Document, "v"), textAt(t, got.Document, "v"), name)
	}
}
