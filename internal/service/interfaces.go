package service

import (
	"context"

	"github.com/amitvgi12/jarvis-configuration-service/models"
)

// ConfigService resolves, templates and serves configuration documents.
type ConfigService interface {
	// Status reports the base folder, the known applications and the version
	// of the running service.
	Status(ctx context.Context) (models.ServerStatus, error)

	// ListModules returns the module names an application offers for a host.
	ListModules(ctx context.Context, appName, hostName string) ([]string, error)

	// GetModuleConfig returns the templated document of a module, serialized
	// in the notation it is stored in.
	GetModuleConfig(ctx context.Context, req models.ConfigRequest) (models.ConfigDocument, error)

	// GetResource returns a resource file of an application untouched.
	GetResource(ctx context.Context, appName, fileName string) ([]byte, error)
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// validating.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService // returns a decorated ConfigService applying additional behavior
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
