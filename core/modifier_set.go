package core

import (
	"fmt"
	"sort"
	"strings"
)

// ModifierSet is an immutable, order-independent, deduplicated set of
// modifier tokens. Equality is set equality; the internal storage is
// sorted so that Key, Equal and iteration are deterministic regardless
// of the order tokens were supplied in.
//
// Note that the sorted order is a storage detail for determinism only.
// The display order of a variant's modifiers is a property of its
// Symbol (first-declaration order); see Variant.Modifiers.
type ModifierSet struct {
	tokens []string // sorted ascending, no duplicates
	key    string   // tokens joined by '.', cached
}

// EmptyModifierSet is the query produced by a dotted name with no
// trailing modifier segments. It matches exactly the default variant.
var EmptyModifierSet = ModifierSet{}

// NewModifierSet validates tokens and returns the set they form.
// Each token must be a non-empty string of lowercase ASCII letters and
// digits; a repeated token is rejected rather than collapsed, because
// it almost always signals a typo in a dotted name.
//
// Errors: ErrInvalidModifier (wrapped with the offending token).
func NewModifierSet(tokens ...string) (ModifierSet, error) {
	if len(tokens) == 0 {
		return EmptyModifierSet, nil
	}

	// 1. Validate every token before allocating.
	for _, tok := range tokens {
		if !validModifierToken(tok) {
			return EmptyModifierSet, fmt.Errorf("%w: %q", ErrInvalidModifier, tok)
		}
	}

	// 2. Sort a private copy for canonical storage.
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)

	// 3. Reject duplicates, now adjacent after sorting.
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return EmptyModifierSet, fmt.Errorf("%w: duplicate %q", ErrInvalidModifier, sorted[i])
		}
	}

	return ModifierSet{tokens: sorted, key: strings.Join(sorted, ".")}, nil
}

// validModifierToken reports whether tok is a legal modifier token:
// non-empty, lowercase ASCII alphanumerics only.
func validModifierToken(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}

// Len returns the number of tokens in the set.
func (m ModifierSet) Len() int { return len(m.tokens) }

// IsEmpty reports whether the set has no tokens.
func (m ModifierSet) IsEmpty() bool { return len(m.tokens) == 0 }

// Contains reports whether tok is a member of the set.
func (m ModifierSet) Contains(tok string) bool {
	// Sets are tiny (rarely more than three tokens); a scan beats a
	// binary search in practice and keeps the code obvious.
	for _, t := range m.tokens {
		if t == tok {
			return true
		}
	}

	return false
}

// IsSubsetOf reports whether every token of m appears in other.
func (m ModifierSet) IsSubsetOf(other ModifierSet) bool {
	if len(m.tokens) > len(other.tokens) {
		return false
	}
	for _, t := range m.tokens {
		if !other.Contains(t) {
			return false
		}
	}

	return true
}

// Equal reports set equality.
func (m ModifierSet) Equal(other ModifierSet) bool { return m.key == other.key }

// Key returns a canonical string form of the set (tokens sorted and
// joined by '.'). Two sets are equal iff their keys are equal, so Key
// is suitable as a map key.
func (m ModifierSet) Key() string { return m.key }

// Tokens returns the tokens in sorted order. The slice is a copy.
func (m ModifierSet) Tokens() []string {
	out := make([]string, len(m.tokens))
	copy(out, m.tokens)

	return out
}

// String implements fmt.Stringer. The empty set renders as "{}" so it
// stays visible in error and log output.
func (m ModifierSet) String() string {
	if m.IsEmpty() {
		return "{}"
	}

	return "{" + strings.Join(m.tokens, ", ") + "}"
}
