// Package core defines the immutable data model of a symbol catalog —
// ModifierSet, Variant, Symbol, Module, Entry — together with the
// catalog constructor Build and the best-match variant selection
// algorithm.
//
// A catalog is a finite, acyclic namespace tree. Interior nodes are
// Modules, leaves are Symbols, and every Symbol owns an ordered list of
// Variants keyed by modifier sets. The tree is built exactly once from
// plain spec structs (EntrySpec, SymbolSpec, ModuleSpec, VariantSpec)
// and never mutated afterwards, so all values handed out by this
// package may be shared freely across goroutines without locking.
//
// Key guarantees (enforced by Build, never re-checked at lookup time):
//
//   - No duplicate entry names within one Module.
//   - Every Symbol has exactly one Variant with the empty ModifierSet
//     (the default).
//   - Modifier sets within one Symbol are pairwise distinct, except for
//     deprecated aliases that intentionally shadow a live variant.
//   - Every Variant carries at least one valid Unicode scalar value.
//
// Complexity:
//
//   - Symbol.Match is a linear scan over the variant list, O(V·M) for
//     V variants with at most M modifiers each. Variant lists are small
//     (typically under two dozen entries), so no index is kept.
//   - Module.Get is O(log N) via the backing ordered map.
//
// Errors:
//
//	ErrInvalidModifier  - malformed or duplicated modifier token.
//	ErrCatalogInvariant - catalog spec violates a structural invariant.
//	ErrNoMatch          - no variant covers the queried modifiers.
//	ErrAmbiguousMatch   - two distinct variants tie after all tie-breaks.
package core
