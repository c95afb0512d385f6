package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/amitvgi12/jarvis-configuration-service/internal/store"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

// ConfigValidationService rejects names that are empty or could reach outside
// the folder they are looked up in, before the wrapped service touches disk.
// A malformed application name is reported as an unknown application.
type ConfigValidationService struct {
	inner ConfigService
}

func NewConfigValidationService() ConfigServiceWrapper {
	return &ConfigValidationService{}
}

func (v *ConfigValidationService) Status(ctx context.Context) (models.ServerStatus, error) {
	return v.inner.Status(ctx)
}

func (v *ConfigValidationService) ListModules(ctx context.Context, appName, hostName string) ([]string, error) {
	if err := validateApplication(appName); err != nil {
		return nil, err
	}
	if err := validateName("host", hostName, false); err != nil {
		return nil, err
	}

	return v.inner.ListModules(ctx, appName, hostName)
}

func (v *ConfigValidationService) GetModuleConfig(ctx context.Context, req models.ConfigRequest) (models.ConfigDocument, error) {
	if err := validateApplication(req.AppName); err != nil {
		return models.ConfigDocument{}, err
	}
	if err := validateName("module", req.ModuleName, true); err != nil {
		return models.ConfigDocument{}, err
	}
	if err := validateName("host", req.HostName, false); err != nil {
		return models.ConfigDocument{}, err
	}

	return v.inner.GetModuleConfig(ctx, req)
}

func (v *ConfigValidationService) GetResource(ctx context.Context, appName, fileName string) ([]byte, error) {
	if err := validateApplication(appName); err != nil {
		return nil, err
	}
	if err := validateName("resource", fileName, true); err != nil {
		return nil, err
	}

	return v.inner.GetResource(ctx, appName, fileName)
}

func (v *ConfigValidationService) Wrap(wrapper ConfigService) ConfigService {
	v.inner = wrapper
	return v
}

func validateApplication(name string) error {
	if err := validateName("application", name, true); err != nil {
		return fmt.Errorf("%w: %s", store.ErrApplicationNotFound, err.Error())
	}
	return nil
}

func validateName(kind, name string, required bool) error {
	if name == "" {
		if required {
			return fmt.Errorf("%w: %s name is empty", ErrInvalidName, kind)
		}
		return nil
	}

	if name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %s name %q", ErrInvalidName, kind, name)
	}
	return nil
}
