package core

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
)

// VariantSpec describes one variant of a symbol before validation.
type VariantSpec struct {
	// Modifiers lists the variant's modifier tokens in the author's
	// intended display order. Empty for the default variant.
	Modifiers []string

	// Value is the variant's codepoint sequence, one or more Unicode
	// scalar values encoded as a Go string.
	Value string

	// Deprecated, when non-empty, marks the variant deprecated with
	// this message. Hint optionally names the replacement path.
	Deprecated string
	Hint       string
}

// SymbolSpec describes a symbol: its variants in declaration order.
// Exactly one variant must carry no modifiers (the default).
type SymbolSpec struct {
	Variants []VariantSpec
}

// ModuleSpec describes a nested module's entries in any order; Build
// stores them name-sorted.
type ModuleSpec struct {
	Entries []EntrySpec
}

// EntrySpec binds a name to either a symbol or a nested module —
// exactly one of Symbol and Module must be non-nil. Deprecated/Hint
// apply to the binding as a whole (whole-symbol or whole-module
// deprecation).
type EntrySpec struct {
	Name   string
	Symbol *SymbolSpec
	Module *ModuleSpec

	Deprecated string
	Hint       string
}

// Build validates the given top-level entries against the catalog
// invariants and freezes them into an immutable Module tree rooted at
// an unnamed module.
//
// Build fails fast with an error wrapping ErrCatalogInvariant (and,
// for modifier defects, ErrInvalidModifier) the moment any invariant
// is broken; no partially built tree is ever returned. The checks:
//
//   - entry names are non-empty and contain no '.' (the path separator);
//   - no duplicate names within one module;
//   - every symbol has at least one variant and exactly one default
//     (empty modifier set);
//   - modifier tokens are valid and not repeated within a variant;
//   - modifier sets within one symbol are pairwise distinct, except
//     that a deprecated alias may share the set of one live variant;
//   - every variant value is non-empty, valid UTF-8.
//
// Complexity: O(total variants · modifiers) time, one pass.
func Build(entries ...EntrySpec) (*Module, error) {
	return buildModule("", "", ModuleSpec{Entries: entries})
}

// buildModule validates and freezes one module level, recursing into
// nested modules. path carries the dotted location for error messages.
func buildModule(name, path string, spec ModuleSpec) (*Module, error) {
	bound := treemap.NewWithStringComparator()

	for i := range spec.Entries {
		es := &spec.Entries[i]

		// 1. Entry name sanity.
		if es.Name == "" {
			return nil, fmt.Errorf("%w: %s: empty entry name", ErrCatalogInvariant, displayPath(path))
		}
		if strings.ContainsRune(es.Name, '.') {
			return nil, fmt.Errorf("%w: %s: entry name %q contains '.'", ErrCatalogInvariant, displayPath(path), es.Name)
		}

		// 2. Collision detection at this level.
		if _, dup := bound.Get(es.Name); dup {
			return nil, fmt.Errorf("%w: %s: duplicate entry %q", ErrCatalogInvariant, displayPath(path), es.Name)
		}

		child := joinPath(path, es.Name)
		entry := Entry{
			name:       es.Name,
			deprecated: Deprecation{Message: es.Deprecated, Hint: es.Hint},
		}

		// 3. Exactly one of Symbol / Module.
		switch {
		case es.Symbol != nil && es.Module != nil:
			return nil, fmt.Errorf("%w: %s: bound as both symbol and module", ErrCatalogInvariant, child)
		case es.Symbol != nil:
			sym, err := buildSymbol(es.Name, child, es.Symbol)
			if err != nil {
				return nil, err
			}
			entry.sym = sym
		case es.Module != nil:
			mod, err := buildModule(es.Name, child, *es.Module)
			if err != nil {
				return nil, err
			}
			entry.mod = mod
		default:
			return nil, fmt.Errorf("%w: %s: neither symbol nor module", ErrCatalogInvariant, child)
		}

		bound.Put(es.Name, entry)
	}

	return &Module{name: name, entries: bound}, nil
}

// buildSymbol validates one symbol's variant list and computes the
// symbol's canonical modifier display order (first-appearance order of
// tokens across the declared variants).
func buildSymbol(name, path string, spec *SymbolSpec) (*Symbol, error) {
	if len(spec.Variants) == 0 {
		return nil, fmt.Errorf("%w: %s: symbol has no variants", ErrCatalogInvariant, path)
	}

	// 1. Canonical order: rank each token by first appearance.
	rank := make(map[string]int)
	for _, vs := range spec.Variants {
		for _, tok := range vs.Modifiers {
			if _, seen := rank[tok]; !seen {
				rank[tok] = len(rank)
			}
		}
	}

	sym := &Symbol{name: name, variants: make([]Variant, 0, len(spec.Variants)), def: -1}
	liveByKey := make(map[string]int, len(spec.Variants)) // set key → index of live variant

	for i, vs := range spec.Variants {
		// 2. Modifier set validation.
		mods, err := NewModifierSet(vs.Modifiers...)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: variant %d: %w", ErrCatalogInvariant, path, i, err)
		}

		// 3. Codepoint sequence validation.
		if vs.Value == "" {
			return nil, fmt.Errorf("%w: %s: variant %s has no codepoints", ErrCatalogInvariant, path, mods)
		}
		if !utf8.ValidString(vs.Value) {
			return nil, fmt.Errorf("%w: %s: variant %s is not valid UTF-8", ErrCatalogInvariant, path, mods)
		}

		v := Variant{
			mods:       mods,
			display:    displayOrder(mods, rank),
			codepoints: []rune(vs.Value),
			deprecated: Deprecation{Message: vs.Deprecated, Hint: vs.Hint},
		}

		// 4. Pairwise-distinct sets, modulo the deprecated-alias case:
		// any number of deprecated aliases may share a set, but at most
		// one live variant may claim it.
		if !v.IsDeprecated() {
			if prev, clash := liveByKey[mods.Key()]; clash {
				return nil, fmt.Errorf("%w: %s: variants %d and %d share modifier set %s",
					ErrCatalogInvariant, path, prev, i, mods)
			}
			liveByKey[mods.Key()] = i
		}

		// 5. Exactly one default variant.
		if mods.IsEmpty() {
			if sym.def >= 0 {
				return nil, fmt.Errorf("%w: %s: more than one default variant", ErrCatalogInvariant, path)
			}
			sym.def = i
		}

		sym.variants = append(sym.variants, v)
	}

	if sym.def < 0 {
		return nil, fmt.Errorf("%w: %s: no default variant", ErrCatalogInvariant, path)
	}

	return sym, nil
}

// displayOrder sorts the set's tokens by the symbol's canonical rank.
func displayOrder(mods ModifierSet, rank map[string]int) []string {
	out := mods.Tokens()
	sort.Slice(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })

	return out
}

// joinPath appends a segment to a dotted catalog path.
func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}

// displayPath renders the root path readably in error messages.
func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}

	return path
}
