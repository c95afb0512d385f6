package service

import "errors"

var (
	// ErrInvalidName is returned for application, module, host or resource
	// names that are empty when required or could escape their folder.
	ErrInvalidName = errors.New("invalid name")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
