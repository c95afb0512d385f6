package config

import (
	"time"

	"github.com/spf13/pflag"
)

// DefaultClientTimeout bounds a single request of the command-line client.
const DefaultClientTimeout = 15 * time.Second

const clientEnvPrefix = "JARVIS_"

// ClientConfig configures the command-line client. Flags override
// environment variables prefixed with JARVIS_.
type ClientConfig struct {
	// ServerURL is the base URL of the configuration service.
	ServerURL string `env:"SERVER_URL"`

	// AppName, ModuleName and HostName select the document to fetch.
	AppName    string `env:"APP"`
	ModuleName string `env:"MODULE"`
	HostName   string `env:"HOST"`

	// Setting, when set, prints only the value at this dotted path.
	Setting string `env:"SETTING"`

	// RequestTimeout bounds each request sent to the server.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DefaultConfigPath and DefaultParametersPath name local files used
	// when the server cannot be reached.
	DefaultConfigPath     string `env:"DEFAULT_CONFIG"`
	DefaultParametersPath string `env:"DEFAULT_PARAMETERS"`
}

// GetClientConfig builds and validates the client configuration from
// JARVIS_* environment variables and the given command line.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{RequestTimeout: DefaultClientTimeout}
	if err := parseEnv(cfg, clientEnvPrefix); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("config-client", pflag.ContinueOnError)
	fs.StringVarP(&cfg.ServerURL, "server", "s", cfg.ServerURL, "Configuration service base URL")
	fs.StringVar(&cfg.AppName, "app", cfg.AppName, "Application name")
	fs.StringVar(&cfg.ModuleName, "module", cfg.ModuleName, "Module name")
	fs.StringVar(&cfg.HostName, "host", cfg.HostName, "Host name")
	fs.StringVar(&cfg.Setting, "setting", cfg.Setting, "Print only this dotted setting")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.DefaultConfigPath, "default-config", cfg.DefaultConfigPath, "Local fallback config file")
	fs.StringVar(&cfg.DefaultParametersPath, "default-parameters", cfg.DefaultParametersPath, "Local fallback parameters file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
