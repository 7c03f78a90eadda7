// Package core sentinel errors.
//
// Error policy (mirrors the rest of symdex):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Context (catalog path, offending token, …) is attached at the use
//     site via fmt.Errorf("…: %w", Err…), never baked into the sentinel.
//   - Lookup paths never panic; validation failures are returned errors.

package core

import "errors"

var (
	// ErrInvalidModifier indicates a malformed modifier token: empty,
	// containing characters outside [a-z0-9], or repeated within one
	// modifier list. Always a caller (or catalog author) input error.
	// Usage: if errors.Is(err, core.ErrInvalidModifier) { … }.
	ErrInvalidModifier = errors.New("core: invalid modifier token")

	// ErrCatalogInvariant indicates that a catalog spec handed to Build
	// violates a structural invariant (duplicate names, missing default
	// variant, colliding modifier sets, empty codepoint sequence).
	// Build fails fast: no partially usable Module escapes.
	ErrCatalogInvariant = errors.New("core: catalog invariant violation")

	// ErrNoMatch indicates that no variant of the symbol is a superset
	// of the queried modifier set. Terminal; reported to the caller.
	ErrNoMatch = errors.New("core: no variant matches modifiers")

	// ErrAmbiguousMatch indicates that two variants with distinct,
	// equally small modifier sets both cover the query. This is a
	// catalog authoring defect, not a normal runtime condition.
	ErrAmbiguousMatch = errors.New("core: ambiguous variant match")
)
