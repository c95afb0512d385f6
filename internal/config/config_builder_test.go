package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.BaseDirectory = "/srv/configs"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of a later
// source replace earlier values while zero fields leave them untouched.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{BaseDirectory: "/env/dir"}},
		&StructuredConfig{
			Storage: Storage{BaseDirectory: "/flag/dir"},
			Server:  Server{HTTPAddress: ":8080"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/flag/dir", cfg.Storage.BaseDirectory)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultExtension, cfg.Storage.Extension)
	assert.Equal(t, DefaultParametersName, cfg.Storage.ParametersName)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid defaults with base dir",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing base dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.BaseDirectory = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "extension without dot",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Extension = "config" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported extension",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Extension = ".toml" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:   "yaml extension",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.Extension = ".yaml" },
		},
		{
			name:    "parameters name with separator",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.ParametersName = "../params" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "cache without purge interval",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Cache.Enabled = true
				cfg.Workers.CachePurgeInterval = 0
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_BASE_DIR", "/env/configs")
	t.Setenv("TEMPLATING_MISSING_PARAMETER_TOKEN", "???")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env/configs", b.configs[0].Storage.BaseDirectory)
	assert.Equal(t, "???", b.configs[0].Templating.MissingParameterToken)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable variable is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("STORAGE_CACHE_ENABLED", "maybe")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsErrorOnBadFlag verifies that a parse failure is kept.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"--no-such-flag"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.BaseDirectory = "/json/configs"
	payload.Server.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json/configs", b.configs[1].Storage.BaseDirectory)
	assert.Equal(t, 5*time.Second, b.configs[1].Server.RequestTimeout)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Templating.MissingParameterToken = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/first/config.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].Templating.MissingParameterToken)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_BASE_DIR", "/env/configs")
	t.Setenv("SERVER_ADDRESS", "localhost:7000")

	cfg, err := GetStructuredConfig([]string{"-b", "/flag/configs"})

	require.NoError(t, err)
	assert.Equal(t, "/flag/configs", cfg.Storage.BaseDirectory)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultExtension, cfg.Storage.Extension)
}

func TestGetStructuredConfig_JSONOverFlags(t *testing.T) {
	clearEnvVars(t)
	payload := StructuredJSONConfig{}
	payload.Storage.Extension = ".yaml"
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetStructuredConfig([]string{"-b", "/flag/configs", "-e", ".json", "-c", path})

	require.NoError(t, err)
	assert.Equal(t, ".yaml", cfg.Storage.Extension)
	assert.Equal(t, "/flag/configs", cfg.Storage.BaseDirectory)
}

func TestGetStructuredConfig_MissingBaseDir(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
