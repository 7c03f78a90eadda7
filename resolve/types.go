// Package resolve types and options for catalog lookup: the Resolution
// result, deprecation advisories, variant introspection records, and
// the functional options accepted by Resolver.Resolve.
package resolve

import (
	"errors"

	"golang.org/x/text/unicode/runenames"

	"github.com/katalvlaran/symdex/core"
)

// ErrUnknownName indicates that a namespace or symbol segment of a
// dotted name matches no entry at its level, or that the path handed
// to Enumerate/Variants names an entry of the wrong kind. Terminal;
// reported to the caller.
// Usage: if errors.Is(err, resolve.ErrUnknownName) { … }.
var ErrUnknownName = errors.New("resolve: unknown name")

// Advisory is one deprecation notice collected while resolving a name:
// the dotted path of the deprecated binding (or of the symbol whose
// variant is deprecated) together with the catalog author's message.
type Advisory struct {
	// Path is the dotted catalog path the advisory is attached to.
	Path string

	// Deprecation is the advisory payload from the catalog.
	Deprecation core.Deprecation
}

// String renders the advisory as a single warning line.
func (a Advisory) String() string { return a.Path + ": " + a.Deprecation.String() }

// Resolution is the successful outcome of Resolve. Exactly one of the
// two kinds applies:
//
//   - core.KindSymbol: Codepoints/Variant are set, Module is nil.
//   - core.KindModule: Module is set (the name was a pure namespace
//     prefix, used for enumeration rather than lookup).
//
// Advisories lists every deprecation encountered on the way, outermost
// binding first, variant-level last; none of them suppresses another.
type Resolution struct {
	// Kind distinguishes symbol from module resolutions.
	Kind core.EntryKind

	// Codepoints holds the resolved scalar values of a symbol
	// resolution; nil for module resolutions.
	Codepoints []rune

	// Variant is the matched variant of a symbol resolution.
	Variant core.Variant

	// Module is the resolved namespace node of a module resolution.
	Module *core.Module

	// Advisories carries all deprecation notices, in path order.
	Advisories []Advisory
}

// Value returns the resolved codepoints as a string; empty for module
// resolutions.
func (r Resolution) Value() string { return string(r.Codepoints) }

// Deprecated reports whether any advisory was collected.
func (r Resolution) Deprecated() bool { return len(r.Advisories) > 0 }

// VariantInfo is one record of Resolver.Variants: a read-only snapshot
// of a single variant for introspection and documentation tooling.
type VariantInfo struct {
	// Modifiers lists the variant's tokens in the symbol's canonical
	// display order; empty for the default variant.
	Modifiers []string

	// Codepoints holds the variant's scalar values.
	Codepoints []rune

	// Deprecation is the variant-level advisory; zero if live.
	Deprecation core.Deprecation
}

// Value returns the variant's codepoints as a string.
func (v VariantInfo) Value() string { return string(v.Codepoints) }

// RuneNames returns the official Unicode character name of every
// codepoint in the variant, e.g. "RIGHTWARDS DOUBLE ARROW". Intended
// for documentation generators and diagnostic output.
func (v VariantInfo) RuneNames() []string {
	names := make([]string, len(v.Codepoints))
	for i, r := range v.Codepoints {
		names[i] = runenames.Name(r)
	}

	return names
}

// Option configures optional behavior of a single Resolve call.
type Option func(*ResolveOptions)

// ResolveOptions holds configurable parameters for Resolve.
type ResolveOptions struct {
	// OnDeprecated, if non-nil, is invoked once per collected advisory,
	// in path order, before Resolve returns. It observes only; it
	// cannot veto the resolution.
	OnDeprecated func(Advisory)
}

// DefaultOptions returns the zero configuration: no advisory handler.
func DefaultOptions() ResolveOptions {
	return ResolveOptions{OnDeprecated: nil}
}

// WithDeprecationHandler installs fn as the advisory observer for this
// Resolve call. Useful for callers that want warn-on-deprecated
// semantics without inspecting every Resolution.
func WithDeprecationHandler(fn func(Advisory)) Option {
	return func(o *ResolveOptions) { o.OnDeprecated = fn }
}
