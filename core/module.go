package core

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
)

// EntryKind distinguishes the two closed cases of a module entry.
type EntryKind int8

const (
	// KindSymbol marks an Entry holding a Symbol leaf.
	KindSymbol EntryKind = iota

	// KindModule marks an Entry holding a nested Module.
	KindModule
)

// String implements fmt.Stringer for diagnostics and test output.
func (k EntryKind) String() string {
	if k == KindModule {
		return "module"
	}

	return "symbol"
}

// Entry is a definition bound in a Module: either a Symbol or a nested
// Module (a closed two-case sum), plus binding-level deprecation
// metadata. Exactly one of Symbol()/Module() is non-nil, as directed
// by Kind().
type Entry struct {
	name       string
	sym        *Symbol
	mod        *Module
	deprecated Deprecation
}

// Name returns the entry's local name within its parent module.
func (e Entry) Name() string { return e.name }

// Kind reports whether the entry binds a symbol or a nested module.
func (e Entry) Kind() EntryKind {
	if e.mod != nil {
		return KindModule
	}

	return KindSymbol
}

// Symbol returns the bound symbol, or nil for a module entry.
func (e Entry) Symbol() *Symbol { return e.sym }

// Module returns the bound module, or nil for a symbol entry.
func (e Entry) Module() *Module { return e.mod }

// Deprecation returns the binding-level advisory (whole-symbol or
// whole-module deprecation); zero if the binding is live.
func (e Entry) Deprecation() Deprecation { return e.deprecated }

// IsDeprecated reports whether the binding carries an advisory.
func (e Entry) IsDeprecated() bool { return !e.deprecated.IsZero() }

// Module is a namespace node mapping local names to entries. The root
// module of a catalog is unnamed. Modules form a finite, acyclic tree
// built once by Build; lookups are read-only and safe for concurrent
// use without locking.
//
// Entries are kept in an ordered map (sorted by name), so enumeration
// order is deterministic and matches the original catalog convention
// of name-sorted module listings.
type Module struct {
	name    string
	entries *treemap.Map // string → Entry
}

// Name returns the module's local name; the root module returns "".
func (m *Module) Name() string { return m.name }

// Len returns the number of entries bound in the module.
func (m *Module) Len() int { return m.entries.Size() }

// Get returns the entry bound under name.
func (m *Module) Get(name string) (Entry, bool) {
	v, found := m.entries.Get(name)
	if !found {
		return Entry{}, false
	}

	return v.(Entry), true
}

// Entries returns a restartable iterator over (name, entry) pairs in
// ascending name order. The iterator reflects the immutable tree, so
// repeated passes always see identical contents.
func (m *Module) Entries() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		it := m.entries.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value().(Entry)) {
				return
			}
		}
	}
}
