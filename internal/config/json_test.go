package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"storage": {
			"base_dir": "/srv/configs",
			"extension": ".json",
			"parameters_name": "params",
			"cache": { "enabled": true, "max_idle": "2m" }
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"templating": {
			"missing_parameter_token": "N/A"
		},
		"workers": {
			"cache_purge_interval": "45s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/srv/configs", cfg.Storage.BaseDirectory)
	assert.Equal(t, ".json", cfg.Storage.Extension)
	assert.Equal(t, "params", cfg.Storage.ParametersName)
	assert.True(t, cfg.Storage.Cache.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.Storage.Cache.MaxIdle)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "N/A", cfg.Templating.MissingParameterToken)
	assert.Equal(t, 45*time.Second, cfg.Workers.CachePurgeInterval)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"storage": `), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "soon"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": 1000000000}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"templating": {"missing_parameter_token": "-"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.Templating.MissingParameterToken)
	assert.Empty(t, cfg.Storage.BaseDirectory)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestGetClientConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		want    *ClientConfig
		wantErr error
	}{
		{
			name: "flags only",
			args: []string{"-s", "http://localhost:55555", "--app", "MyApp1", "--module", "default-setting"},
			want: &ClientConfig{
				ServerURL:      "http://localhost:55555",
				AppName:        "MyApp1",
				ModuleName:     "default-setting",
				RequestTimeout: DefaultClientTimeout,
			},
		},
		{
			name: "flags override env",
			env: map[string]string{
				"JARVIS_SERVER_URL": "http://env:1",
				"JARVIS_APP":        "EnvApp",
				"JARVIS_MODULE":     "env-module",
				"JARVIS_HOST":       "env-host",
			},
			args: []string{"--app", "FlagApp", "--timeout", "3s"},
			want: &ClientConfig{
				ServerURL:      "http://env:1",
				AppName:        "FlagApp",
				ModuleName:     "env-module",
				HostName:       "env-host",
				RequestTimeout: 3 * time.Second,
			},
		},
		{
			name: "default config without server",
			args: []string{"--app", "a", "--module", "m", "--default-config", "/tmp/m.config"},
			want: &ClientConfig{
				AppName:           "a",
				ModuleName:        "m",
				RequestTimeout:    DefaultClientTimeout,
				DefaultConfigPath: "/tmp/m.config",
			},
		},
		{
			name:    "no source",
			args:    []string{"--app", "a", "--module", "m"},
			wantErr: ErrInvalidClientConfigs,
		},
		{
			name:    "no module",
			args:    []string{"-s", "http://localhost:1", "--app", "a"},
			wantErr: ErrInvalidClientConfigs,
		},
		{
			name:    "zero timeout",
			args:    []string{"-s", "http://localhost:1", "--app", "a", "--module", "m", "--timeout", "0s"},
			wantErr: ErrInvalidClientConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)

			got, err := GetClientConfig(tt.args)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
