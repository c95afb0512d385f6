// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running configuration service.
//
// [ServerAdapter] decouples callers from the REST protocol; the package ships
// an HTTP implementation built on resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// unwraps to the sentinel values in errors.go, so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrServerUnavailable] for 5xx and transport
// failures).
package adapter

import (
	"context"

	"github.com/amitvgi12/jarvis-configuration-service/models"
)

// ServerAdapter is the read-only API of the configuration service.
type ServerAdapter interface {
	// Status returns the base folder, applications and version of the server.
	Status(ctx context.Context) (models.ServerStatus, error)

	// ListModules returns the module names of an application. A non-empty
	// hostName also lists modules that exist only as overrides for that host.
	ListModules(ctx context.Context, appName, hostName string) ([]string, error)

	// GetModuleConfig fetches the rendered document of one module.
	GetModuleConfig(ctx context.Context, req models.ConfigRequest) (models.ConfigDocument, error)

	// GetResource fetches a raw resource file of an application.
	GetResource(ctx context.Context, appName, fileName string) ([]byte, error)
}
