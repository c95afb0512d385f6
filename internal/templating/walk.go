package templating

import (
	"strings"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
)

// Walk substitutes tokens in every string scalar of doc, mutating it in place,
// and returns the aggregated Result.
//
// A string that consists of exactly one %{name}% token is an object
// parameter: when the parameter resolves, its value is parsed as JSON and the
// scalar is replaced by the parsed subtree. A value that does not parse turns
// the scalar into a diagnostic string instead of failing the document.
func (e *Engine) Walk(doc, params *document.Node) Result {
	var res Result
	e.walk(doc, params, &res)
	return res
}

func (e *Engine) walk(n, params *document.Node, res *Result) {
	switch n.Kind() {
	case document.KindMapping:
		for _, key := range n.Keys() {
			child, _ := n.Get(key)
			e.walk(child, params, res)
		}
	case document.KindSequence:
		for i := 0; i < n.Len(); i++ {
			e.walk(n.Index(i), params, res)
		}
	case document.KindString:
		e.walkString(n, params, res)
	}
}

func (e *Engine) walkString(n, params *document.Node, res *Result) {
	text := n.Text()
	tokens := scanTokens(text)
	if len(tokens) == 0 {
		return
	}

	if tok, ok := objectParameter(text, tokens); ok {
		e.expandObject(n, tok, params, res)
		return
	}

	out, r := e.substituteTokens(text, tokens, params)
	res.Merge(r)
	n.SetText(out)
}

// objectParameter reports whether text is a single %{...}% token and nothing else.
func objectParameter(text string, tokens []token) (token, bool) {
	if len(tokens) != 1 {
		return token{}, false
	}
	tok := tokens[0]
	if !tok.object || tok.start != 0 || tok.end != len(text) {
		return token{}, false
	}
	return tok, true
}

func (e *Engine) expandObject(n *document.Node, tok token, params *document.Node, res *Result) {
	text := n.Text()

	value, ok := Lookup(tok.path, params)
	if !ok {
		res.addMissing(tok.path)
		if e.hasMissingToken {
			n.SetText(protect(e.missingToken))
		}
		return
	}
	res.Replaced = true

	parsed, err := document.ParseJSON([]byte(value))
	if err != nil {
		n.SetText(protect("Parameter " + text + " is an object parameter and cannot be parsed: " + value))
		return
	}

	protectStrings(parsed)
	n.Replace(parsed)
}

func protectStrings(n *document.Node) {
	switch n.Kind() {
	case document.KindMapping:
		for _, key := range n.Keys() {
			child, _ := n.Get(key)
			protectStrings(child)
		}
	case document.KindSequence:
		for i := 0; i < n.Len(); i++ {
			protectStrings(n.Index(i))
		}
	case document.KindString:
		if strings.Contains(n.Text(), marker) {
			n.SetText(protect(n.Text()))
		}
	}
}
