package resolve_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symdex/core"
	"github.com/katalvlaran/symdex/resolve"
)

// buildResolver assembles the shared test catalog:
//
//	arrow              {} → U+2192, {r,double} → U+21D2, {t} → U+2191, {t,double} → U+21D1
//	gt                 {} → >, {eq} → ≥, {eq,slant} → ⩾
//	oldarrow           deprecated whole-symbol alias of arrow
//	legacy (module)    deprecated namespace holding symbol tick
//	emoji.face.grin    nested modules, multi-codepoint variant under {beaming}
func buildResolver(t testing.TB) *resolve.Resolver {
	t.Helper()
	root, err := core.Build(
		core.EntrySpec{Name: "arrow", Symbol: &core.SymbolSpec{Variants: []core.VariantSpec{
			{Value: "→"},
			{Modifiers: []string{"r", "double"}, Value: "⇒"},
			{Modifiers: []string{"t"}, Value: "↑"},
			{Modifiers: []string{"t", "double"}, Value: "⇑"},
		}}},
		core.EntrySpec{Name: "gt", Symbol: &core.SymbolSpec{Variants: []core.VariantSpec{
			{Value: ">"},
			{Modifiers: []string{"eq"}, Value: "≥"},
			{Modifiers: []string{"eq", "slant"}, Value: "⩾"},
		}}},
		core.EntrySpec{
			Name:       "oldarrow",
			Symbol:     &core.SymbolSpec{Variants: []core.VariantSpec{{Value: "→"}}},
			Deprecated: "renamed",
			Hint:       "arrow",
		},
		core.EntrySpec{
			Name:       "legacy",
			Deprecated: "namespace retired",
			Module: &core.ModuleSpec{Entries: []core.EntrySpec{
				{Name: "tick", Symbol: &core.SymbolSpec{Variants: []core.VariantSpec{
					{Value: "✓"},
					{Modifiers: []string{"light"}, Value: "✓", Deprecated: "fold into default", Hint: "legacy.tick"},
				}}},
			}},
		},
		core.EntrySpec{Name: "emoji", Module: &core.ModuleSpec{Entries: []core.EntrySpec{
			{Name: "face", Module: &core.ModuleSpec{Entries: []core.EntrySpec{
				{Name: "grin", Symbol: &core.SymbolSpec{Variants: []core.VariantSpec{
					{Value: "\U0001F600"},
					{Modifiers: []string{"beaming"}, Value: "\U0001F601️"},
				}}},
			}}},
		}}},
	)
	require.NoError(t, err)

	return resolve.New(root)
}

func TestResolve_DefaultVariant(t *testing.T) {
	r := buildResolver(t)

	res, err := r.Resolve("arrow")
	require.NoError(t, err)
	assert.Equal(t, core.KindSymbol, res.Kind)
	assert.Equal(t, []rune{0x2192}, res.Codepoints)
	assert.Equal(t, "→", res.Value())
	assert.False(t, res.Deprecated())
}

func TestResolve_ModifierLookup(t *testing.T) {
	r := buildResolver(t)

	res, err := r.Resolve("arrow.t.double")
	require.NoError(t, err)
	assert.Equal(t, "⇑", res.Value())

	// Order independence: the same variant under both spellings.
	other, err := r.Resolve("arrow.double.t")
	require.NoError(t, err)
	assert.Equal(t, res.Value(), other.Value())
	assert.Equal(t, res.Variant.ModifierSet(), other.Variant.ModifierSet())
}

func TestResolve_BestMatchMinimality(t *testing.T) {
	r := buildResolver(t)

	res, err := r.Resolve("gt.eq")
	require.NoError(t, err)
	assert.Equal(t, "≥", res.Value(), "{eq} must beat {eq,slant}")
}

func TestResolve_AmbiguousUnderSpecification(t *testing.T) {
	r := buildResolver(t)

	// {double} is covered by {r,double} and {t,double} alike.
	_, err := r.Resolve("arrow.double")
	assert.ErrorIs(t, err, core.ErrAmbiguousMatch)
}

func TestResolve_NoMatch(t *testing.T) {
	r := buildResolver(t)

	_, err := r.Resolve("arrow.left")
	assert.ErrorIs(t, err, core.ErrNoMatch)
	assert.NotErrorIs(t, err, resolve.ErrUnknownName)
}

func TestResolve_UnknownName(t *testing.T) {
	r := buildResolver(t)

	_, err := r.Resolve("nosuchsymbol")
	assert.ErrorIs(t, err, resolve.ErrUnknownName)

	// An unknown segment below a known module is UnknownName too, not
	// a modifier error: modules have no modifiers.
	_, err = r.Resolve("emoji.paw")
	assert.ErrorIs(t, err, resolve.ErrUnknownName)

	_, err = r.Resolve("emoji.face.frown")
	assert.ErrorIs(t, err, resolve.ErrUnknownName)
}

func TestResolve_InvalidModifierToken(t *testing.T) {
	r := buildResolver(t)

	_, err := r.Resolve("arrow.Double")
	assert.ErrorIs(t, err, core.ErrInvalidModifier)

	_, err = r.Resolve("arrow..double")
	assert.ErrorIs(t, err, core.ErrInvalidModifier)

	_, err = r.Resolve("arrow.t.t")
	assert.ErrorIs(t, err, core.ErrInvalidModifier)
}

func TestResolve_ModuleResolution(t *testing.T) {
	r := buildResolver(t)

	res, err := r.Resolve("emoji.face")
	require.NoError(t, err)
	assert.Equal(t, core.KindModule, res.Kind)
	require.NotNil(t, res.Module)
	assert.Equal(t, "face", res.Module.Name())
	assert.Empty(t, res.Codepoints)

	// The empty name resolves to the root namespace.
	res, err = r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, core.KindModule, res.Kind)
	assert.Equal(t, "", res.Module.Name())
}

func TestResolve_NestedSymbol(t *testing.T) {
	r := buildResolver(t)

	res, err := r.Resolve("emoji.face.grin")
	require.NoError(t, err)
	assert.Equal(t, "😀", res.Value())

	// Multi-codepoint variant: emoji + variation selector.
	res, err = r.Resolve("emoji.face.grin.beaming")
	require.NoError(t, err)
	assert.Equal(t, []rune{0x1F601, 0xFE0F}, res.Codepoints)
}

func TestResolve_DeprecationTransparency(t *testing.T) {
	r := buildResolver(t)

	// The deprecated alias resolves to its own legacy codepoints and
	// surfaces the advisory; deprecation is not an error.
	res, err := r.Resolve("oldarrow")
	require.NoError(t, err)
	assert.Equal(t, "→", res.Value())
	require.True(t, res.Deprecated())
	require.Len(t, res.Advisories, 1)
	assert.Equal(t, "oldarrow", res.Advisories[0].Path)
	assert.Equal(t, "renamed", res.Advisories[0].Deprecation.Message)
	assert.Equal(t, "arrow", res.Advisories[0].Deprecation.Hint)
}

func TestResolve_AdvisoriesCombine(t *testing.T) {
	r := buildResolver(t)

	// Module-level and variant-level advisories stack, outermost first.
	res, err := r.Resolve("legacy.tick.light")
	require.NoError(t, err)
	assert.Equal(t, "✓", res.Value())
	require.Len(t, res.Advisories, 2)
	assert.Equal(t, "legacy", res.Advisories[0].Path)
	assert.Equal(t, "namespace retired", res.Advisories[0].Deprecation.Message)
	assert.Equal(t, "legacy.tick", res.Advisories[1].Path)
	assert.Equal(t, "fold into default", res.Advisories[1].Deprecation.Message)
}

func TestResolve_DeprecationHandler(t *testing.T) {
	r := buildResolver(t)

	var seen []string
	_, err := r.Resolve("legacy.tick.light", resolve.WithDeprecationHandler(func(a resolve.Advisory) {
		seen = append(seen, a.Path)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy", "legacy.tick"}, seen)

	// No advisories, no calls.
	seen = nil
	_, err = r.Resolve("arrow", resolve.WithDeprecationHandler(func(a resolve.Advisory) {
		seen = append(seen, a.Path)
	}))
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestResolve_Deterministic(t *testing.T) {
	r := buildResolver(t)

	first, err := r.Resolve("arrow.r.double")
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		again, err := r.Resolve("arrow.r.double")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEnumerate_Root(t *testing.T) {
	r := buildResolver(t)

	seq, err := r.Enumerate("")
	require.NoError(t, err)

	got := map[string]string{}
	for name, kind := range seq {
		got[name] = kind.String()
	}
	want := map[string]string{
		"arrow":    "symbol",
		"gt":       "symbol",
		"oldarrow": "symbol",
		"legacy":   "module",
		"emoji":    "module",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("root enumeration mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerate_SortedAndRestartable(t *testing.T) {
	r := buildResolver(t)

	seq, err := r.Enumerate("")
	require.NoError(t, err)

	collect := func() []string {
		var names []string
		for name := range seq {
			names = append(names, name)
		}
		return names
	}
	first := collect()
	assert.Equal(t, []string{"arrow", "emoji", "gt", "legacy", "oldarrow"}, first)
	assert.Equal(t, first, collect())
}

func TestEnumerate_NestedAndErrors(t *testing.T) {
	r := buildResolver(t)

	seq, err := r.Enumerate("emoji.face")
	require.NoError(t, err)
	var names []string
	for name, kind := range seq {
		names = append(names, name)
		assert.Equal(t, core.KindSymbol, kind)
	}
	assert.Equal(t, []string{"grin"}, names)

	_, err = r.Enumerate("nosuchmodule")
	assert.ErrorIs(t, err, resolve.ErrUnknownName)

	// A symbol path is not enumerable.
	_, err = r.Enumerate("arrow")
	assert.ErrorIs(t, err, resolve.ErrUnknownName)
}

func TestVariants_DeclarationOrderAndContent(t *testing.T) {
	r := buildResolver(t)

	seq, err := r.Variants("arrow")
	require.NoError(t, err)

	var got []resolve.VariantInfo
	for info := range seq {
		got = append(got, info)
	}
	// Display order follows each token's first appearance across the
	// declared variants: r and double precede t here, so {t,double}
	// reads back as double, t.
	want := []resolve.VariantInfo{
		{Modifiers: nil, Codepoints: []rune{0x2192}},
		{Modifiers: []string{"r", "double"}, Codepoints: []rune{0x21D2}},
		{Modifiers: []string{"t"}, Codepoints: []rune{0x2191}},
		{Modifiers: []string{"double", "t"}, Codepoints: []rune{0x21D1}},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("variants mismatch (-want +got):\n%s", diff)
	}
}

func TestVariants_RuneNames(t *testing.T) {
	r := buildResolver(t)

	seq, err := r.Variants("arrow")
	require.NoError(t, err)
	for info := range seq {
		assert.Equal(t, "RIGHTWARDS ARROW", info.RuneNames()[0])
		break
	}

	_, err = r.Variants("emoji")
	assert.ErrorIs(t, err, resolve.ErrUnknownName)

	_, err = r.Variants("ghost")
	assert.ErrorIs(t, err, resolve.ErrUnknownName)
}

func TestResolver_ConcurrentLookups(t *testing.T) {
	r := buildResolver(t)

	names := []string{"arrow", "arrow.t", "arrow.r.double", "gt.eq", "emoji.face.grin", "legacy.tick"}
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				name := names[i%len(names)]
				if _, err := r.Resolve(name); err != nil {
					t.Errorf("Resolve(%q): %v", name, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
