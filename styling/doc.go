// Package styling maps characters to their mathematical styled forms:
// bold, italic, script, fraktur, double-struck, monospace, and the
// Arabic presentation styles (initial, tailed, stretched, looped).
//
// Most styles are a fixed codepoint offset into the Mathematical
// Alphanumeric Symbols block, with per-character exceptions for the
// forms Unicode placed in the Letterlike Symbols block long before the
// math alphabets existed (ℎ, ℬ, ℂ, ℜ and friends). The chancery and
// roundhand script styles have no codepoints of their own; they are
// expressed as variation sequences, so Apply returns two runes there
// and one everywhere else.
//
// Characters without a styled form pass through unchanged; the API
// never fails.
//
// Mapping data follows the Unicode Core Specification chapter 22, the
// Mathematical Alphanumeric Symbols and Arabic Mathematical Alphabetic
// Symbols charts, and the MathML Core text-transform tables.
package styling
