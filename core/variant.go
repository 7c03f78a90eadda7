package core

// Variant is one concrete codepoint sequence of a Symbol, identified
// by its modifier set. Variants are value data: constructed by Build,
// immutable afterwards.
type Variant struct {
	mods       ModifierSet
	display    []string // tokens in the symbol's canonical display order
	codepoints []rune   // one or more Unicode scalar values
	deprecated Deprecation
}

// Modifiers returns the variant's tokens in the owning Symbol's
// canonical display order — the order in which each token first
// appeared in the symbol's definition. This preserves the catalog
// author's intended spelling (e.g. "arrow.r.double" rather than
// "arrow.double.r") even though lookup is order-independent.
// The slice is a copy.
func (v Variant) Modifiers() []string {
	out := make([]string, len(v.display))
	copy(out, v.display)

	return out
}

// ModifierSet returns the variant's modifier set.
func (v Variant) ModifierSet() ModifierSet { return v.mods }

// Codepoints returns the variant's Unicode scalar values. The slice is
// a copy; len ≥ 1 is guaranteed by Build.
func (v Variant) Codepoints() []rune {
	out := make([]rune, len(v.codepoints))
	copy(out, v.codepoints)

	return out
}

// Value returns the variant's codepoints as a string.
func (v Variant) Value() string { return string(v.codepoints) }

// Deprecation returns the variant-level advisory; zero if the variant
// is not deprecated.
func (v Variant) Deprecation() Deprecation { return v.deprecated }

// IsDeprecated reports whether the variant carries an advisory.
func (v Variant) IsDeprecated() bool { return !v.deprecated.IsZero() }

// IsDefault reports whether this is the symbol's default variant
// (the unique variant with the empty modifier set).
func (v Variant) IsDefault() bool { return v.mods.IsEmpty() }
