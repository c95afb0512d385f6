package client

import "errors"

var (
	// ErrNoSource is returned when neither the server nor a default
	// document can provide the configuration.
	ErrNoSource = errors.New("no configuration source available")

	// ErrSettingNotFound is returned for dotted paths absent from the
	// fetched configuration.
	ErrSettingNotFound = errors.New("setting not found")
)
