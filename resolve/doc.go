// Package resolve implements dotted-name lookup over an immutable
// symbol catalog built by package core.
//
// A Resolver indexes every module and symbol path of the catalog into
// a dot-segmented path trie once, at construction. Resolve then splits
// a dotted name such as "arrow.r.double" by a single longest-prefix
// walk: the deepest indexed entry along the path is the namespace
// prefix ("arrow"), and the remaining segments ("r", "double") form the
// order-independent modifier query handed to the symbol's best-match
// selection.
//
// Key features:
//   - Resolve(name, opts...): codepoints + deprecation advisories, or a
//     module resolution when the name is a pure namespace prefix
//   - Enumerate(path): lazy, name-sorted listing of one module level
//   - Variants(path): lazy introspection of one symbol's variants,
//     with official Unicode character names for tooling
//   - WithDeprecationHandler(fn): observe advisories without inspecting
//     every Resolution
//
// The resolver holds no mutable state after New returns: lookups are
// pure functions over the frozen catalog and may run concurrently from
// any number of goroutines without locking. Nothing blocks and nothing
// is retried; all failures are terminal and returned to the caller.
//
// Errors:
//
//	ErrUnknownName          - a path segment matches no entry.
//	core.ErrInvalidModifier - malformed trailing modifier token.
//	core.ErrNoMatch         - no variant covers the queried modifiers.
//	core.ErrAmbiguousMatch  - catalog defect: two variants tie.
//
// Deprecation is never an error: resolving a deprecated name succeeds
// and carries the advisory in Resolution.Advisories.
package resolve
