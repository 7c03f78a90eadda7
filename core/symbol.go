package core

import (
	"fmt"
	"iter"
)

// Symbol is a named entry holding an ordered list of Variants, exactly
// one of which carries the empty ModifierSet (the default). Symbols are
// built once by Build and immutable afterwards.
type Symbol struct {
	name     string
	variants []Variant // declaration order
	def      int       // index of the default variant
}

// Name returns the symbol's local name within its module.
func (s *Symbol) Name() string { return s.name }

// Default returns the symbol's default variant — the unique variant
// with the empty modifier set. Its existence is guaranteed by Build.
func (s *Symbol) Default() Variant { return s.variants[s.def] }

// Len returns the number of variants, the default included.
func (s *Symbol) Len() int { return len(s.variants) }

// Variants returns a restartable iterator over all variants in
// declaration order.
func (s *Symbol) Variants() iter.Seq[Variant] {
	return func(yield func(Variant) bool) {
		for _, v := range s.variants {
			if !yield(v) {
				return
			}
		}
	}
}

// Match selects the single best variant for the queried modifier set.
//
// Algorithm:
//  1. Candidates are the variants whose modifier set is a superset of
//     the query (the variant specifies at least everything asked for,
//     possibly more). No candidate → ErrNoMatch.
//  2. Among candidates, only those with the fewest extra, unrequested
//     modifiers survive — the "closest" variants to the query.
//  3. If the survivors all share one identical modifier set (possible
//     only through a deprecated alias shadowing a live variant), the
//     earliest-declared non-deprecated one wins; if every survivor is
//     deprecated, the earliest-declared wins.
//  4. Two survivors with distinct modifier sets tie for specificity.
//     That is a catalog authoring defect — the query genuinely
//     under-specifies — and Match fails with ErrAmbiguousMatch rather
//     than breaking the tie arbitrarily.
//
// Deprecated variants remain matchable; selecting one surfaces its
// advisory through Variant.Deprecation, not through the error return.
//
// Complexity: O(V·M) linear scan, V = variants, M = modifiers/variant.
func (s *Symbol) Match(query ModifierSet) (Variant, error) {
	// 1. Superset filter, tracking the smallest candidate size seen.
	smallest := -1
	var candidates []int
	for i := range s.variants {
		if !query.IsSubsetOf(s.variants[i].mods) {
			continue
		}
		if n := s.variants[i].mods.Len(); smallest < 0 || n < smallest {
			smallest = n
			candidates = candidates[:0]
			candidates = append(candidates, i)
		} else if n == smallest {
			candidates = append(candidates, i)
		}
	}

	// 2. Nothing covers the query.
	if len(candidates) == 0 {
		return Variant{}, fmt.Errorf("symbol %q, query %s: %w", s.name, query, ErrNoMatch)
	}

	// 3. Unique closest variant.
	if len(candidates) == 1 {
		return s.variants[candidates[0]], nil
	}

	// 4. Several equally small survivors. Identical sets can only stem
	// from the deprecated-alias exception; distinct sets are ambiguous.
	first := s.variants[candidates[0]].mods
	for _, i := range candidates[1:] {
		if !s.variants[i].mods.Equal(first) {
			return Variant{}, fmt.Errorf("symbol %q, query %s: variants %s and %s are equally close: %w",
				s.name, query, first, s.variants[i].mods, ErrAmbiguousMatch)
		}
	}

	// 5. Alias shadowing: the earliest-declared live variant wins.
	for _, i := range candidates {
		if !s.variants[i].IsDeprecated() {
			return s.variants[i], nil
		}
	}

	// 6. Every survivor is deprecated; declaration order decides.
	return s.variants[candidates[0]], nil
}
