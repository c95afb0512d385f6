// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ServerStatus is returned by the root endpoint and describes the running
// instance.
type ServerStatus struct {
	// BaseFolder is the root directory configuration is served from.
	BaseFolder string `json:"base_folder"`

	// Applications lists application directories and redirect records.
	Applications []string `json:"applications"`

	// Version is the build version of the running binary.
	Version string `json:"version"`
}

// ErrorResponse is the JSON body sent along with non-2xx responses.
type ErrorResponse struct {
	// Error is a human readable description of the failure.
	Error string `json:"error"`

	// MissingParameters lists unresolved parameter paths when the failure is
	// an incomplete parameter document.
	MissingParameters []string `json:"missing_parameters,omitempty"`
}
