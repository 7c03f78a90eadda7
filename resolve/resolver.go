package resolve

import (
	"fmt"
	"iter"
	"strings"

	"github.com/dghubble/trie"

	"github.com/katalvlaran/symdex/core"
)

// Resolver performs dotted-name lookups against one immutable catalog.
// Construct with New; the zero value is not usable.
//
// All methods are safe for unsynchronized concurrent use: the index is
// written only inside New and read-only forever after.
type Resolver struct {
	root  *core.Module
	index *trie.PathTrie // dotted path → core.Entry
}

// New builds a Resolver over the given catalog root. It walks the tree
// once and indexes the dotted path of every module and symbol into a
// dot-segmented path trie, so Resolve later needs a single
// longest-prefix walk per lookup instead of a per-level descent.
//
// Complexity: O(total entries) time and space, once.
func New(root *core.Module) *Resolver {
	r := &Resolver{
		root: root,
		index: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: dotSegmenter,
		}),
	}
	r.indexModule("", root)

	return r
}

// indexModule registers every entry of m under its dotted path,
// recursing into nested modules.
func (r *Resolver) indexModule(prefix string, m *core.Module) {
	for name, entry := range m.Entries() {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		r.index.Put(path, entry)
		if entry.Kind() == core.KindModule {
			r.indexModule(path, entry.Module())
		}
	}
}

// Resolve looks up a dotted name.
//
// The name is split on '.'; leading segments are matched against the
// namespace tree by a longest-prefix trie walk, and every segment
// beyond the deepest matching entry is treated as an order-independent
// modifier token for that symbol. Examples, against the built-in
// catalog shape:
//
//	Resolve("arrow")           → the default variant of symbol arrow
//	Resolve("arrow.t.double")  → the {t,double} variant
//	Resolve("emoji.face")      → a module resolution (namespace prefix)
//	Resolve("")                → a module resolution of the root
//
// Deprecation advisories of every traversed binding and of the matched
// variant are collected into the Resolution (and handed to the
// WithDeprecationHandler observer, if any); they never fail the call.
//
// Errors: ErrUnknownName, core.ErrInvalidModifier, core.ErrNoMatch,
// core.ErrAmbiguousMatch — all terminal, none retried, nothing logged.
func (r *Resolver) Resolve(name string, opts ...Option) (Resolution, error) {
	// 1. Apply options.
	ropts := DefaultOptions()
	for _, fn := range opts {
		fn(&ropts)
	}

	// 2. The empty name addresses the root namespace itself.
	if name == "" {
		return finish(Resolution{Kind: core.KindModule, Module: r.root}, ropts), nil
	}

	// 3. Longest-prefix walk: remember the deepest indexed entry and
	// collect binding-level advisories of every module passed through.
	var (
		deepest    core.Entry
		deepestKey string
		found      bool
		advisories []Advisory
	)
	_ = r.index.WalkPath(name, func(key string, value interface{}) error {
		entry := value.(core.Entry)
		deepest, deepestKey, found = entry, key, true
		if entry.IsDeprecated() {
			advisories = append(advisories, Advisory{Path: key, Deprecation: entry.Deprecation()})
		}

		return nil
	})
	if !found {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownName, firstSegment(name))
	}

	// 4. Remaining segments past the deepest entry.
	rest := strings.TrimPrefix(name, deepestKey)
	rest = strings.TrimPrefix(rest, ".")

	// 5. A module consumes the whole name or nothing more.
	if deepest.Kind() == core.KindModule {
		if rest != "" {
			return Resolution{}, fmt.Errorf("%w: %q has no entry %q",
				ErrUnknownName, deepestKey, firstSegment(rest))
		}

		return finish(Resolution{
			Kind:       core.KindModule,
			Module:     deepest.Module(),
			Advisories: advisories,
		}, ropts), nil
	}

	// 6. Symbol: trailing segments form the modifier query.
	var query core.ModifierSet
	if rest != "" {
		var err error
		if query, err = core.NewModifierSet(strings.Split(rest, ".")...); err != nil {
			return Resolution{}, fmt.Errorf("resolve %q: %w", name, err)
		}
	}

	variant, err := deepest.Symbol().Match(query)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve %q: %w", name, err)
	}
	if variant.IsDeprecated() {
		advisories = append(advisories, Advisory{Path: deepestKey, Deprecation: variant.Deprecation()})
	}

	return finish(Resolution{
		Kind:       core.KindSymbol,
		Codepoints: variant.Codepoints(),
		Variant:    variant,
		Advisories: advisories,
	}, ropts), nil
}

// Enumerate returns a lazy, restartable iterator over the (local name,
// kind) pairs of one module level, in ascending name order. The empty
// path enumerates the root module.
//
// Errors: ErrUnknownName if the path matches nothing, or names a
// symbol rather than a module.
func (r *Resolver) Enumerate(path string) (iter.Seq2[string, core.EntryKind], error) {
	mod, err := r.module(path)
	if err != nil {
		return nil, err
	}

	return func(yield func(string, core.EntryKind) bool) {
		for name, entry := range mod.Entries() {
			if !yield(name, entry.Kind()) {
				return
			}
		}
	}, nil
}

// Variants returns a lazy, restartable iterator over all variants of
// the symbol at path, in declaration order, for introspection and
// documentation tooling.
//
// Errors: ErrUnknownName if the path matches nothing, or names a
// module rather than a symbol.
func (r *Resolver) Variants(path string) (iter.Seq[VariantInfo], error) {
	entry, ok := r.lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, path)
	}
	if entry.Kind() != core.KindSymbol {
		return nil, fmt.Errorf("%w: %q is a module, not a symbol", ErrUnknownName, path)
	}
	sym := entry.Symbol()

	return func(yield func(VariantInfo) bool) {
		for v := range sym.Variants() {
			info := VariantInfo{
				Modifiers:   v.Modifiers(),
				Codepoints:  v.Codepoints(),
				Deprecation: v.Deprecation(),
			}
			if !yield(info) {
				return
			}
		}
	}, nil
}

// module resolves path to a namespace node; "" is the root.
func (r *Resolver) module(path string) (*core.Module, error) {
	if path == "" {
		return r.root, nil
	}
	entry, ok := r.lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, path)
	}
	if entry.Kind() != core.KindModule {
		return nil, fmt.Errorf("%w: %q is a symbol, not a module", ErrUnknownName, path)
	}

	return entry.Module(), nil
}

// lookup fetches the exact entry at a dotted path, if any.
func (r *Resolver) lookup(path string) (core.Entry, bool) {
	v := r.index.Get(path)
	if v == nil {
		return core.Entry{}, false
	}

	return v.(core.Entry), true
}

// finish invokes the advisory observer and returns res unchanged.
func finish(res Resolution, opts ResolveOptions) Resolution {
	if opts.OnDeprecated != nil {
		for _, a := range res.Advisories {
			opts.OnDeprecated(a)
		}
	}

	return res
}

// firstSegment returns the part of a dotted name before the first '.'.
func firstSegment(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}

	return name
}

// dotSegmenter segments trie keys on '.' the way import paths are
// segmented: for "a.b.c" successive calls yield ("a", 1), (".b", 3),
// (".c", -1). It allocates nothing.
func dotSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}

	return path[start : start+end+1], start + end + 1
}
