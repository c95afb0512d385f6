package models

import "strings"

// ConfigRequest identifies one configuration document: a module of an
// application, optionally specialised for a host.
type ConfigRequest struct {
	// AppName is the application directory (or redirect record) name.
	AppName string `json:"app_name"`

	// ModuleName is the module file name without extension.
	ModuleName string `json:"module_name"`

	// HostName selects the host override layer. Empty means no override.
	HostName string `json:"host_name,omitempty"`
}

// CacheKey returns a case-insensitive key for the request, as names on the
// configuration tree are compared without regard to case.
func (r ConfigRequest) CacheKey() string {
	return strings.ToLower(r.AppName) + "\x00" +
		strings.ToLower(r.ModuleName) + "\x00" +
		strings.ToLower(r.HostName)
}

// ConfigDocument is a rendered configuration document ready to be sent.
type ConfigDocument struct {
	// Content is the serialized document.
	Content []byte

	// ContentType is the MIME type matching the notation of Content.
	ContentType string
}
