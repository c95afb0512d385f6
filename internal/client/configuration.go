package client

import (
	"strings"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
	"github.com/amitvgi12/jarvis-configuration-service/internal/templating"
)

// Source tells where a [Configuration] came from.
type Source string

const (
	SourceServer  Source = "server"
	SourceDefault Source = "default"
)

// Configuration is a fetched, fully rendered module document.
type Configuration struct {
	Document *document.Node
	Format   document.Format
	Source   Source
}

// GetSetting returns the value at a dotted path such as "db.main.host".
// Mappings and sequences are returned as compact JSON.
func (c *Configuration) GetSetting(path string) (string, bool) {
	return templating.Lookup(path, c.Document)
}

// Bytes serializes the document in its own notation.
func (c *Configuration) Bytes() ([]byte, error) {
	return document.Encode(c.Document, c.Format)
}

// formatForContentType maps a response Content-Type to a document notation.
func formatForContentType(contentType string) document.Format {
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		return document.FormatYAML
	}
	return document.FormatJSON
}
