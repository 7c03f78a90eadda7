package styling

import "strings"

// Style selects a mathematical styled form.
type Style int

const (
	// Serif is the normal, unstyled form. It is also the isolated
	// style, the normal form for Arabic. This is the zero value.
	Serif Style = iota
	// SerifBold is the normal bold form.
	SerifBold
	// SerifItalic is the normal italic form.
	SerifItalic
	// SerifItalicBold is the normal bold italic form.
	SerifItalicBold
	// SansSerif is the sans-serif form.
	SansSerif
	// SansSerifBold is the sans-serif bold form.
	SansSerifBold
	// SansSerifItalic is the sans-serif italic form.
	SansSerifItalic
	// SansSerifItalicBold is the sans-serif bold italic form.
	SansSerifItalicBold
	// Fraktur is the fraktur (black-letter) form.
	Fraktur
	// FrakturBold is the bold fraktur form.
	FrakturBold
	// Script is the script form.
	Script
	// ScriptBold is the bold script form.
	ScriptBold
	// Chancery is the chancery variant of script, a variation sequence
	// with selector U+FE00.
	Chancery
	// ChanceryBold is the chancery variant of bold script. The bold
	// sequences are not standardized by Unicode.
	ChanceryBold
	// Roundhand is the roundhand variant of script, a variation
	// sequence with selector U+FE01.
	Roundhand
	// RoundhandBold is the roundhand variant of bold script. The bold
	// sequences are not standardized by Unicode.
	RoundhandBold
	// DoubleStruck is the double-struck (blackboard-bold) form.
	DoubleStruck
	// DoubleStruckItalic is the double-struck italic form. Unicode has
	// only the handful of these in the Letterlike Symbols block.
	DoubleStruckItalic
	// Monospace is the monospace form.
	Monospace
	// Initial is the initial form, for Arabic.
	Initial
	// Tailed is the tailed form, for Arabic.
	Tailed
	// Looped is the looped form, for Arabic.
	Looped
	// Stretched is the stretched form, for Arabic.
	Stretched
)

// styleNames indexes the display names by Style value.
var styleNames = [...]string{
	Serif:               "serif",
	SerifBold:           "serif-bold",
	SerifItalic:         "serif-italic",
	SerifItalicBold:     "serif-italic-bold",
	SansSerif:           "sans-serif",
	SansSerifBold:       "sans-serif-bold",
	SansSerifItalic:     "sans-serif-italic",
	SansSerifItalicBold: "sans-serif-italic-bold",
	Fraktur:             "fraktur",
	FrakturBold:         "fraktur-bold",
	Script:              "script",
	ScriptBold:          "script-bold",
	Chancery:            "chancery",
	ChanceryBold:        "chancery-bold",
	Roundhand:           "roundhand",
	RoundhandBold:       "roundhand-bold",
	DoubleStruck:        "double-struck",
	DoubleStruckItalic:  "double-struck-italic",
	Monospace:           "monospace",
	Initial:             "initial",
	Tailed:              "tailed",
	Looped:              "looped",
	Stretched:           "stretched",
}

// String returns the style's display name, or "unknown" for values
// outside the declared set.
func (s Style) String() string {
	if s < Serif || int(s) >= len(styleNames) {
		return "unknown"
	}

	return styleNames[s]
}

// Apply converts r to the styled form given by style. Chancery and
// roundhand return two runes (base plus variation selector); every
// other style returns one. Runes with no styled form come back
// unchanged.
func Apply(r rune, style Style) []rune {
	switch style {
	case SerifBold:
		return []rune{toSerifBold(r)}
	case SerifItalic:
		return []rune{toSerifItalic(r)}
	case SerifItalicBold:
		return []rune{toSerifItalicBold(r)}
	case SansSerif:
		return []rune{toSansSerif(r)}
	case SansSerifBold:
		return []rune{toSansSerifBold(r)}
	case SansSerifItalic:
		return []rune{toSansSerifItalic(r)}
	case SansSerifItalicBold:
		return []rune{toSansSerifItalicBold(r)}
	case Fraktur:
		return []rune{toFraktur(r)}
	case FrakturBold:
		return []rune{toFrakturBold(r)}
	case Script:
		return []rune{toScript(r)}
	case ScriptBold:
		return []rune{toScriptBold(r)}
	case Chancery:
		return []rune{toScript(r), variationSelector1}
	case ChanceryBold:
		return []rune{toScriptBold(r), variationSelector1}
	case Roundhand:
		return []rune{toScript(r), variationSelector2}
	case RoundhandBold:
		return []rune{toScriptBold(r), variationSelector2}
	case DoubleStruck:
		return []rune{toDoubleStruck(r)}
	case DoubleStruckItalic:
		return []rune{toDoubleStruckItalic(r)}
	case Monospace:
		return []rune{toMonospace(r)}
	case Initial:
		return []rune{toInitial(r)}
	case Tailed:
		return []rune{toTailed(r)}
	case Looped:
		return []rune{toLooped(r)}
	case Stretched:
		return []rune{toStretched(r)}
	default: // Serif and unknown values: identity.
		return []rune{r}
	}
}

// ApplyString converts every rune in s to the styled form given by
// style.
func ApplyString(s string, style Style) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		for _, out := range Apply(r, style) {
			b.WriteRune(out)
		}
	}

	return b.String()
}
