// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the codecs. Callers match them with [errors.Is].
var (
	// ErrParsing is returned when raw bytes are not a valid document in the
	// requested notation.
	ErrParsing = errors.New("error parsing document")

	// ErrEncoding is returned when a tree cannot be serialized.
	ErrEncoding = errors.New("error encoding document")

	// ErrUnsupportedFormat is returned for file extensions that no codec
	// is registered for.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Format is the notation a document is stored and served in.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatYAML
)

// String returns the short name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ContentType returns the MIME type used when serving documents in f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// FormatForExtension maps a file extension (with the leading dot) to the
// notation of its content. The historical ".config" extension holds JSON.
func FormatForExtension(ext string) (Format, error) {
	switch strings.ToLower(ext) {
	case ".config", ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Decode parses data written in format f.
func Decode(data []byte, f Format) (*Node, error) {
	switch f {
	case FormatJSON:
		return decodeJSONC(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Encode serializes n in format f. JSON output is indented with two spaces.
func Encode(n *Node, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return encodeJSON(n, "  ")
	case FormatYAML:
		return encodeYAML(n)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}
