// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

// Kind identifies which variant of the [Node] union is populated.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is one element of a configuration or parameter document.
//
// Only the fields matching Kind are meaningful:
//   - KindBool uses flag;
//   - KindNumber and KindString use text (numbers keep their literal form);
//   - KindSequence uses items;
//   - KindMapping uses keys (insertion order) and fields.
//
// Nodes are not safe for concurrent mutation. Every request works on its own
// copy, see [Node.Clone].
type Node struct {
	kind   Kind
	flag   bool
	text   string
	items  []*Node
	keys   []string
	fields map[string]*Node
}

// Null returns a null scalar.
func Null() *Node {
	return &Node{kind: KindNull}
}

// Bool returns a boolean scalar.
func Bool(v bool) *Node {
	return &Node{kind: KindBool, flag: v}
}

// Number returns a numeric scalar holding the literal text of the number.
func Number(literal string) *Node {
	return &Node{kind: KindNumber, text: literal}
}

// String returns a string scalar.
func String(v string) *Node {
	return &Node{kind: KindString, text: v}
}

// Sequence returns a sequence node holding items.
func Sequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: items}
}

// Mapping returns an empty mapping node.
func Mapping() *Node {
	return &Node{kind: KindMapping, fields: make(map[string]*Node)}
}

// Kind reports the variant of n.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsScalar reports whether n is neither a sequence nor a mapping.
func (n *Node) IsScalar() bool {
	return n.kind != KindSequence && n.kind != KindMapping
}

// BoolValue returns the value of a bool scalar.
func (n *Node) BoolValue() bool {
	return n.flag
}

// Text returns the string value of a string scalar or the literal of a number.
func (n *Node) Text() string {
	return n.text
}

// SetText turns n into a string scalar holding v.
func (n *Node) SetText(v string) {
	n.Replace(String(v))
}

// Replace overwrites n in place with the content of other. Parents keep
// pointing at n, so this is how the walker swaps a scalar for a subtree.
func (n *Node) Replace(other *Node) {
	*n = *other
}

// Len returns the number of items of a sequence or entries of a mapping.
func (n *Node) Len() int {
	switch n.kind {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.keys)
	default:
		return 0
	}
}

// Index returns the i-th item of a sequence.
func (n *Node) Index(i int) *Node {
	return n.items[i]
}

// Append adds item to the end of a sequence.
func (n *Node) Append(item *Node) {
	n.items = append(n.items, item)
}

// Keys returns the mapping keys in insertion order.
func (n *Node) Keys() []string {
	return n.keys
}

// Get returns the value stored under key and whether it exists.
// It always reports false for non-mapping nodes.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindMapping {
		return nil, false
	}
	v, ok := n.fields[key]
	return v, ok
}

// Set stores value under key, keeping the original position of an existing key.
func (n *Node) Set(key string, value *Node) {
	if _, ok := n.fields[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = value
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := &Node{kind: n.kind, flag: n.flag, text: n.text}
	switch n.kind {
	case KindSequence:
		out.items = make([]*Node, len(n.items))
		for i, item := range n.items {
			out.items[i] = item.Clone()
		}
	case KindMapping:
		out.keys = append([]string(nil), n.keys...)
		out.fields = make(map[string]*Node, len(n.fields))
		for k, v := range n.fields {
			out.fields[k] = v.Clone()
		}
	}
	return out
}

// Equal reports whether a and b hold the same tree. Mapping key order is
// ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.flag == b.flag
	case KindNumber, KindString:
		return a.text == b.text
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.fields) != len(b.fields) {
			return false
		}
		for k, av := range a.fields {
			bv, ok := b.fields[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}
