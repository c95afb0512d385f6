package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrApplicationNotFound is returned when neither an application
	// directory with a Default folder nor a redirect record exists for the
	// requested name.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrModuleNotFound is returned when none of the layers (base, module,
	// host override) of the requested module exist.
	ErrModuleNotFound = errors.New("module not found")

	// ErrResourceNotFound is returned when a raw resource file does not exist
	// under the application's resources folder.
	ErrResourceNotFound = errors.New("resource not found")
)

// Configuration tree errors. These indicate an operator mistake in the
// directory layout rather than a bad request.
var (
	// ErrMalformedRedirect is returned when a redirect record is empty or
	// holds more than one target.
	ErrMalformedRedirect = errors.New("malformed redirect record")

	// ErrRedirectChain is returned when a redirect points to a location that
	// is itself redirected. Only direct redirection is supported.
	ErrRedirectChain = errors.New("redirect chains are not supported")

	// ErrReadingFile is returned when an existing file or directory of the
	// configuration tree cannot be read.
	ErrReadingFile = errors.New("error reading configuration tree")

	// ErrInvalidLayer is returned when a layer file parses but its root is
	// not a mapping.
	ErrInvalidLayer = errors.New("layer root must be a mapping")
)
