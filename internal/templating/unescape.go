package templating

import (
	"strings"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
)

// Unescape replaces every %% with % in all string scalars of doc, recursing
// through mappings and sequences. It must run after the last substitution.
func Unescape(doc *document.Node) {
	switch doc.Kind() {
	case document.KindMapping:
		for _, key := range doc.Keys() {
			child, _ := doc.Get(key)
			Unescape(child)
		}
	case document.KindSequence:
		for i := 0; i < doc.Len(); i++ {
			Unescape(doc.Index(i))
		}
	case document.KindString:
		if strings.Contains(doc.Text(), escaped) {
			doc.SetText(unescapeText(doc.Text()))
		}
	}
}

// Render runs Walk over doc and, if every parameter resolved or a missing
// token is configured, Unescape. Without a missing token any unresolved
// parameter yields a [*MissingParametersError] and doc must be discarded.
func (e *Engine) Render(doc, params *document.Node) (Result, error) {
	res := e.Walk(doc, params)
	if !e.hasMissingToken {
		if err := res.Err(); err != nil {
			return res, err
		}
	}

	Unescape(doc)
	return res, nil
}

func unescapeText(s string) string {
	return strings.ReplaceAll(s, escaped, marker)
}
