// Package symdex maps human-readable dotted names to Unicode codepoint
// sequences — from plain symbols through modifier-narrowed variants to
// emoji sequences, math styling and numeral systems.
//
// 🚀 What is symdex?
//
//	A thread-safe, in-memory symbol index that brings together:
//		• Core model: immutable catalogs of symbols, variants & nested modules
//		• Resolution: dotted-name lookup with best-match modifier narrowing
//		• Deprecation: renamed entries keep resolving, callers get advisories
//		• Built-ins: a shipped catalog of math symbols, marks & emoji
//		• Styling: bold, italic, script, fraktur, double-struck & more
//		• Numerals: Roman, Greek, Hebrew, kana, Chinese & circled numbers
//
// ✨ Why choose symdex?
//
//   - Predictable – resolution is deterministic, ambiguity is an error
//   - Rock-solid guarantees – catalogs are validated once, then immutable
//   - Pure data – bring your own catalog or use the built-in one
//   - Honest errors – sentinel errors for every failure class, errors.Is-ready
//
// Everything is organized under five subpackages:
//
//	core/     — catalog model: modifier sets, variants, symbols, modules, Build
//	resolve/  — dotted-name resolver: lookup, enumeration, variant listing
//	sym/      — the built-in catalog and process-wide default resolver
//	styling/  — math-style character mapping (bold, script, fraktur, ...)
//	numerals/ — numeral-system rendering of unsigned integers
//
// Quick start:
//
//	res, err := sym.Resolve("arrow.l.double")
//	if err != nil { ... }
//	fmt.Println(res.Value()) // ⇐
//
// See each subpackage's doc.go for the full contract, and examples/ for
// scenario walkthroughs.
//
//	go get github.com/katalvlaran/symdex
package symdex
