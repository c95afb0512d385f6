package store

import (
	"context"

	"github.com/amitvgi12/jarvis-configuration-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigRepository reads the configuration tree: applications, their modules
// with base and host layers applied, parameter documents and raw resources.
type ConfigRepository interface {
	// ListApplications returns application directory names united with
	// redirect record names, sorted and de-duplicated without regard to case.
	ListApplications(ctx context.Context) ([]string, error)

	// ListModules returns the selectable module names of an application.
	// With a non-empty hostName, modules that only exist as an override for
	// that host are included.
	ListModules(ctx context.Context, appName, hostName string) ([]string, error)

	// LoadModule returns the merged, not yet templated document of a module.
	LoadModule(ctx context.Context, req models.ConfigRequest) (*ResolvedDocument, error)

	// LoadParameters returns the parameter document of an application with the
	// host override applied. A missing parameter file yields an empty mapping.
	LoadParameters(ctx context.Context, appName, hostName string) (*ResolvedDocument, error)

	// ReadResource returns the raw bytes of a file in the application's
	// resources folder.
	ReadResource(ctx context.Context, appName, fileName string) ([]byte, error)

	// BaseDirectory returns the root of the configuration tree.
	BaseDirectory() string
}

// CachePurger is implemented by caching repositories that can drop entries
// whose files changed or that were not used for too long.
type CachePurger interface {
	// PurgeStale evicts stale and idle entries and reports how many were
	// removed.
	PurgeStale(ctx context.Context) int
}
