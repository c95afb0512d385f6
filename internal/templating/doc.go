// Package templating rewrites configuration documents by replacing %name%
// placeholders with values taken from a parameter document.
//
// The pieces are layered: [Lookup] resolves one dotted path, [Engine.Substitute]
// rewrites one string, [Engine.Walk] rewrites a whole tree in place and
// [Unescape] collapses %% into % once substitution is over. [Engine.Render]
// runs the full pipeline and turns missing parameters into a
// [*MissingParametersError].
//
// Nothing in this package holds shared mutable state; an Engine may be used by
// any number of goroutines as long as each works on its own document.
package templating
