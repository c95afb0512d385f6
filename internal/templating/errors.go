// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package templating

import (
	"errors"
	"strings"
)

// ErrMissingParameters is matched by every [*MissingParametersError].
var ErrMissingParameters = errors.New("missing parameters")

// MissingParametersError reports the dotted paths that had no value in the
// parameter document. Parameters is sorted.
type MissingParametersError struct {
	Parameters []string
}

func (e *MissingParametersError) Error() string {
	return "missing parameters: " + strings.Join(e.Parameters, ", ")
}

// Is makes errors.Is(err, ErrMissingParameters) succeed.
func (e *MissingParametersError) Is(target error) bool {
	return target == ErrMissingParameters
}
