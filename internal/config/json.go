package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and durations written as strings ("30s").
type StructuredJSONConfig struct {
	Storage struct {
		BaseDirectory  string `json:"base_dir"`
		Extension      string `json:"extension"`
		ParametersName string `json:"parameters_name"`
		Cache          struct {
			Enabled bool     `json:"enabled"`
			MaxIdle Duration `json:"max_idle"`
		} `json:"cache"`
	} `json:"storage,omitempty"`
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
	Templating struct {
		MissingParameterToken string `json:"missing_parameter_token"`
	} `json:"templating,omitempty"`
	Workers struct {
		CachePurgeInterval Duration `json:"cache_purge_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			BaseDirectory:  jsonCfg.Storage.BaseDirectory,
			Extension:      jsonCfg.Storage.Extension,
			ParametersName: jsonCfg.Storage.ParametersName,
			Cache: Cache{
				Enabled: jsonCfg.Storage.Cache.Enabled,
				MaxIdle: time.Duration(jsonCfg.Storage.Cache.MaxIdle),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Templating: Templating{
			MissingParameterToken: jsonCfg.Templating.MissingParameterToken,
		},
		Workers: Workers{
			CachePurgeInterval: time.Duration(jsonCfg.Workers.CachePurgeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
