// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package templating

import (
	"strings"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
)

const (
	marker  = "%"
	escaped = "%%"
)

// token is one %name% or %{name}% span found in a string.
type token struct {
	start, end int // s[start:end] is the whole token including delimiters
	path       string
	object     bool
}

// scanTokens returns the non-overlapping tokens of s from left to right.
//
// A delimiter is a single % that is neither preceded nor followed by another
// %, so %% never opens or closes a token. The body holds at least one
// character and does not span lines. The shortest body wins.
func scanTokens(s string) []token {
	var out []token

	for i := 0; i < len(s); i++ {
		if !isDelimiter(s, i) {
			continue
		}

		end := -1
		for j := i + 1; j < len(s); j++ {
			if s[j] == '\n' {
				break
			}
			if j >= i+2 && isDelimiter(s, j) {
				end = j
				break
			}
		}
		if end < 0 {
			continue
		}

		body := s[i+1 : end]
		out = append(out, token{
			start:  i,
			end:    end + 1,
			path:   strings.Trim(body, "{}"),
			object: strings.HasPrefix(body, "{") && strings.HasSuffix(body, "}"),
		})
		i = end
	}

	return out
}

func isDelimiter(s string, i int) bool {
	if s[i] != '%' {
		return false
	}
	if i > 0 && s[i-1] == '%' {
		return false
	}
	if i+1 < len(s) && s[i+1] == '%' {
		return false
	}
	return true
}

// protect doubles every marker of a produced value so the final Unescape pass
// hands it back unchanged.
func protect(s string) string {
	return strings.ReplaceAll(s, marker, escaped)
}

// Engine performs parameter substitution. The zero value has no
// missing-parameter token.
type Engine struct {
	missingToken    string
	hasMissingToken bool
}

// Option configures an [Engine].
type Option func(*Engine)

// WithMissingToken makes the engine emit token in place of parameters that
// cannot be resolved. Missing paths are still reported in the [Result].
func WithMissingToken(token string) Option {
	return func(e *Engine) {
		e.missingToken = token
		e.hasMissingToken = true
	}
}

// NewEngine returns an Engine configured with opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Substitute replaces every token of text with its value from params and
// returns the final string: resolved values appear verbatim and %% escapes
// written in text collapse to %.
//
// Unresolved tokens are recorded in the Result and replaced by the missing
// token when one is configured, or left as they were otherwise. Substitute
// never fails; deciding what a missing parameter means is up to the caller.
func (e *Engine) Substitute(text string, params *document.Node) (string, Result) {
	out, res := e.substituteTokens(text, scanTokens(text), params)
	return unescapeText(out), res
}

// substituteTokens emits resolved values in escaped form (each % doubled) so
// that a later [Unescape] restores them verbatim while collapsing the %%
// escapes written in the template itself.
func (e *Engine) substituteTokens(text string, tokens []token, params *document.Node) (string, Result) {
	var res Result
	if len(tokens) == 0 {
		return text, res
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, tok := range tokens {
		b.WriteString(text[last:tok.start])
		last = tok.end

		value, ok := Lookup(tok.path, params)
		if ok {
			res.Replaced = true
			b.WriteString(protect(value))
			continue
		}

		res.addMissing(tok.path)
		if e.hasMissingToken {
			b.WriteString(protect(e.missingToken))
		} else {
			b.WriteString(text[tok.start:tok.end])
		}
	}
	b.WriteString(text[last:])

	return b.String(), res
}
