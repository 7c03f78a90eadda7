package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symdex/core"
)

// buildArrow constructs the toy arrow symbol shared by the matcher
// tests: {} → U+2192, {r,double} → U+21D2, {t} → U+2191,
// {t,double} → U+21D1.
func buildArrow(t *testing.T) *core.Symbol {
	t.Helper()
	root, err := core.Build(core.EntrySpec{
		Name: "arrow",
		Symbol: &core.SymbolSpec{Variants: []core.VariantSpec{
			{Value: "→"},
			{Modifiers: []string{"r", "double"}, Value: "⇒"},
			{Modifiers: []string{"t"}, Value: "↑"},
			{Modifiers: []string{"t", "double"}, Value: "⇑"},
		}},
	})
	require.NoError(t, err)

	entry, ok := root.Get("arrow")
	require.True(t, ok)
	require.Equal(t, core.KindSymbol, entry.Kind())

	return entry.Symbol()
}

func TestSymbol_Default(t *testing.T) {
	arrow := buildArrow(t)
	def := arrow.Default()
	assert.True(t, def.IsDefault())
	assert.Equal(t, []rune{0x2192}, def.Codepoints())
	assert.Equal(t, "→", def.Value())
}

func TestSymbol_Match_EmptyQueryHitsDefault(t *testing.T) {
	arrow := buildArrow(t)
	v, err := arrow.Match(core.EmptyModifierSet)
	require.NoError(t, err)
	assert.Equal(t, "→", v.Value())
}

func TestSymbol_Match_ExactAndOrderIndependent(t *testing.T) {
	arrow := buildArrow(t)

	a, err := arrow.Match(mustSet(t, "r", "double"))
	require.NoError(t, err)
	b, err := arrow.Match(mustSet(t, "double", "r"))
	require.NoError(t, err)

	assert.Equal(t, "⇒", a.Value())
	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, a.ModifierSet(), b.ModifierSet())
}

func TestSymbol_Match_BestMatchMinimality(t *testing.T) {
	// {} / {a} / {a,b}: the query {a} must select {a}, not {a,b}.
	root, err := core.Build(core.EntrySpec{
		Name: "x",
		Symbol: &core.SymbolSpec{Variants: []core.VariantSpec{
			{Value: "0"},
			{Modifiers: []string{"a"}, Value: "1"},
			{Modifiers: []string{"a", "b"}, Value: "2"},
		}},
	})
	require.NoError(t, err)
	entry, _ := root.Get("x")
	sym := entry.Symbol()

	v, err := sym.Match(mustSet(t, "a"))
	require.NoError(t, err)
	assert.Equal(t, "1", v.Value())

	v, err = sym.Match(core.EmptyModifierSet)
	require.NoError(t, err)
	assert.Equal(t, "0", v.Value())

	v, err = sym.Match(mustSet(t, "b"))
	require.NoError(t, err)
	assert.Equal(t, "2", v.Value(), "{a,b} is the only superset of {b}")
}

func TestSymbol_Match_SupersetSelection(t *testing.T) {
	arrow := buildArrow(t)

	// {t} is under-specified against {t} and {t,double}; the smaller
	// candidate {t} wins.
	v, err := arrow.Match(mustSet(t, "t"))
	require.NoError(t, err)
	assert.Equal(t, "↑", v.Value())

	// {r} only matches {r,double}.
	v, err = arrow.Match(mustSet(t, "r"))
	require.NoError(t, err)
	assert.Equal(t, "⇒", v.Value())
}

func TestSymbol_Match_NoMatch(t *testing.T) {
	arrow := buildArrow(t)
	_, err := arrow.Match(mustSet(t, "left"))
	assert.ErrorIs(t, err, core.ErrNoMatch)
}

func TestSymbol_Match_Ambiguous(t *testing.T) {
	arrow := buildArrow(t)

	// {double} is covered by both {r,double} and {t,double}, equally
	// small but distinct: a catalog authoring defect, reported as such.
	_, err := arrow.Match(mustSet(t, "double"))
	assert.ErrorIs(t, err, core.ErrAmbiguousMatch)
}

func TestSymbol_Match_Deterministic(t *testing.T) {
	arrow := buildArrow(t)
	q := mustSet(t, "t", "double")

	first, err := arrow.Match(q)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		again, err := arrow.Match(q)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "⇑", first.Value())
}

func TestSymbol_Match_DeprecatedAliasLoses(t *testing.T) {
	// A deprecated alias shares the {old} set with nothing, but shares
	// {b} with a live variant: the live one must win the tie.
	root, err := core.Build(core.EntrySpec{
		Name: "tick",
		Symbol: &core.SymbolSpec{Variants: []core.VariantSpec{
			{Value: "✓"},
			{Modifiers: []string{"b"}, Value: "OLD", Deprecated: "renamed", Hint: "tick.b"},
			{Modifiers: []string{"b"}, Value: "✔"},
		}},
	})
	require.NoError(t, err)
	entry, _ := root.Get("tick")

	v, err := entry.Symbol().Match(mustSet(t, "b"))
	require.NoError(t, err)
	assert.Equal(t, "✔", v.Value())
	assert.False(t, v.IsDeprecated())
}

func TestSymbol_Match_DeprecatedStillMatchable(t *testing.T) {
	root, err := core.Build(core.EntrySpec{
		Name: "star",
		Symbol: &core.SymbolSpec{Variants: []core.VariantSpec{
			{Value: "★"},
			{Modifiers: []string{"stroked"}, Value: "☆", Deprecated: "renamed in 0.3", Hint: "star.outline"},
			{Modifiers: []string{"outline"}, Value: "☆"},
		}},
	})
	require.NoError(t, err)
	entry, _ := root.Get("star")

	v, err := entry.Symbol().Match(mustSet(t, "stroked"))
	require.NoError(t, err)
	assert.Equal(t, "☆", v.Value())
	require.True(t, v.IsDeprecated())
	assert.Equal(t, "renamed in 0.3, use star.outline instead", v.Deprecation().String())
}

func TestSymbol_Variants_DeclarationOrder(t *testing.T) {
	arrow := buildArrow(t)

	var values []string
	for v := range arrow.Variants() {
		values = append(values, v.Value())
	}
	assert.Equal(t, []string{"→", "⇒", "↑", "⇑"}, values)
	assert.Equal(t, 4, arrow.Len())
}

func TestVariant_CanonicalDisplayOrder(t *testing.T) {
	// "r" appears before "double" in the symbol definition, so display
	// order is r,double even though storage order is alphabetic.
	arrow := buildArrow(t)
	v, err := arrow.Match(mustSet(t, "double", "r"))
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "double"}, v.Modifiers())
	assert.Equal(t, []string{"double", "r"}, v.ModifierSet().Tokens())
}
