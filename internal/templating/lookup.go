package templating

import (
	"strings"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
)

// Lookup resolves a dotted path such as "db.main.host" against params.
//
// Every segment but the last must name a mapping. The leaf is returned as
// text: strings verbatim, numbers as written, booleans as "true"/"false",
// null as the empty string and mappings or sequences as compact JSON. The
// second result is false when any segment is absent.
func Lookup(path string, params *document.Node) (string, bool) {
	if params == nil {
		return "", false
	}

	segments := strings.Split(path, ".")
	current := params
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current.Get(segment)
		if !ok || next.Kind() != document.KindMapping {
			return "", false
		}
		current = next
	}

	leaf, ok := current.Get(segments[len(segments)-1])
	if !ok {
		return "", false
	}
	return stringify(leaf)
}

func stringify(n *document.Node) (string, bool) {
	switch n.Kind() {
	case document.KindNull:
		return "", true
	case document.KindBool:
		if n.BoolValue() {
			return "true", true
		}
		return "false", true
	case document.KindNumber, document.KindString:
		return n.Text(), true
	default:
		s, err := document.CompactJSON(n)
		if err != nil {
			return "", false
		}
		return s, true
	}
}
