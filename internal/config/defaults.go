package config

import "time"

// Built-in defaults applied before any other source.
const (
	DefaultExtension          = ".config"
	DefaultParametersName     = "parameters"
	DefaultHTTPAddress        = "localhost:55555"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultCacheMaxIdle       = 10 * time.Minute
	DefaultCachePurgeInterval = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Extension:      DefaultExtension,
			ParametersName: DefaultParametersName,
			Cache: Cache{
				MaxIdle: DefaultCacheMaxIdle,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			CachePurgeInterval: DefaultCachePurgeInterval,
		},
	}
}
