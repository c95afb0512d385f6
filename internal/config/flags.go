package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command line.
//
// Flags:
//
//	-a, --address           server address in format [host]:[port]
//	-b, --base-dir          root directory of the configuration tree
//	-e, --extension         module file extension (e.g. ".config", ".yaml")
//	    --parameters-name   parameter document name without extension
//	    --cache             enable the document cache
//	    --cache-max-idle    evict cache entries unused for this long
//	    --missing-token     text written in place of missing parameters
//	    --request-timeout   request timeout (e.g., "30s", "1m")
//	    --purge-interval    cache janitor interval (e.g., "1m")
//	-c, --config            json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var baseDir, extension, parametersName string
	var cacheEnabled bool
	var cacheMaxIdle time.Duration
	var missingToken string
	var requestTimeout time.Duration
	var purgeInterval time.Duration
	var jsonConfigPath string

	fs := pflag.NewFlagSet("config-server", pflag.ContinueOnError)
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&baseDir, "base-dir", "b", "", "Configuration root directory")
	fs.StringVarP(&extension, "extension", "e", "", "Module file extension")
	fs.StringVar(&parametersName, "parameters-name", "", "Parameter document name")
	fs.BoolVar(&cacheEnabled, "cache", false, "Enable the document cache")
	fs.DurationVar(&cacheMaxIdle, "cache-max-idle", 0, "Evict cache entries unused for this long")
	fs.StringVar(&missingToken, "missing-token", "", "Text written in place of missing parameters")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&purgeInterval, "purge-interval", 0, "Cache janitor interval (e.g., 1m)")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			BaseDirectory:  baseDir,
			Extension:      extension,
			ParametersName: parametersName,
			Cache: Cache{
				Enabled: cacheEnabled,
				MaxIdle: cacheMaxIdle,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Templating: Templating{
			MissingParameterToken: missingToken,
		},
		Workers: Workers{
			CachePurgeInterval: purgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type names the flag value kind in pflag's usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
