// Package document implements the tree model shared by configuration and
// parameter documents.
//
// A [Node] is a tagged union: a scalar (null, bool, number, string), an
// ordered sequence of nodes, or a mapping from string keys to nodes. The
// package also provides the codecs used to read documents from disk and
// write them back in the same notation, plus the layered merge used by the
// configuration resolver.
package document
