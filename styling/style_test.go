package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestApplyString_Styles spot-checks every style, leaning on the
// exceptional cases: the Letterlike Symbols holes, dotless italics,
// Greek oddballs, Arabic math alphabets, and the two-rune script
// variants.
func TestApplyString_Styles(t *testing.T) {
	cases := []struct {
		name  string
		style Style
		in    string
		want  string
	}{
		{"serif identity", Serif, "Ax9 α!", "Ax9 α!"},
		{"bold latin", SerifBold, "Ma0", "\U0001D40C\U0001D41A\U0001D7CE"},
		{"bold greek", SerifBold, "Ααϴ", "\U0001D6A8\U0001D6C2\U0001D6B9"},
		{"bold digamma", SerifBold, "Ϝϝ", "\U0001D7CA\U0001D7CB"},
		{"bold nabla partial", SerifBold, "∇∂", "\U0001D6C1\U0001D6DB"},
		{"italic planck hole", SerifItalic, "ah z", "\U0001D44Eℎ \U0001D467"},
		{"italic dotless", SerifItalic, "ıȷ", "\U0001D6A4\U0001D6A5"},
		{"italic hbar", SerifItalic, "ħ", "ℏ"},
		{"bold italic", SerifItalicBold, "Mx", "\U0001D474\U0001D499"},
		{"sans", SansSerif, "Ab3", "\U0001D5A0\U0001D5BB\U0001D7E5"},
		{"sans bold", SansSerifBold, "Zϰ", "\U0001D5ED\U0001D78C"},
		{"sans italic", SansSerifItalic, "Qq", "\U0001D618\U0001D632"},
		{"sans bold italic digits", SansSerifItalicBold, "07", "\U0001D7EC\U0001D7F3"},
		{"fraktur holes", Fraktur, "CHIRZ", "ℭℌℑℜℨ"},
		{"fraktur plain", Fraktur, "Ap", "\U0001D504\U0001D52D"},
		{"fraktur bold", FrakturBold, "Aa", "\U0001D56C\U0001D586"},
		{"script holes", Script, "BEFHILMR", "ℬℰℱℋℐℒℳℛ"},
		{"script small holes", Script, "ego", "ℯℊℴ"},
		{"script plain", Script, "Aa", "\U0001D49C\U0001D4B6"},
		{"script bold", ScriptBold, "Aa", "\U0001D4D0\U0001D4EA"},
		{"chancery", Chancery, "foo", "\U0001D4BB︀ℴ︀ℴ︀"},
		{"roundhand", Roundhand, "P", "\U0001D4AB︁"},
		{"roundhand bold", RoundhandBold, "k", "\U0001D4F4︁"},
		{"double-struck holes", DoubleStruck, "CHNPQRZ", "ℂℍℕℙℚℝℤ"},
		{"double-struck plain", DoubleStruck, "Aa1", "\U0001D538\U0001D552\U0001D7D9"},
		{"double-struck greek", DoubleStruck, "ΓΠγπ", "ℾℿℽℼ"},
		{"double-struck sum", DoubleStruck, "∑", "⅀"},
		{"double-struck arabic", DoubleStruck, "فب", "\U0001EEB0\U0001EEA1"},
		{"double-struck italic", DoubleStruckItalic, "Ddeij", "ⅅⅆⅇⅈⅉ"},
		{"monospace", Monospace, "mono", "\U0001D696\U0001D698\U0001D697\U0001D698"},
		{"initial", Initial, "ك", "\U0001EE2A"},
		{"tailed", Tailed, "ں", "\U0001EE5D"},
		{"stretched", Stretched, "ب", "\U0001EE61"},
		{"looped", Looped, "اف", "\U0001EE80\U0001EE90"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyString(tc.in, tc.style))
		})
	}
}

// TestApply_RuneCounts: chancery and roundhand emit variation
// sequences, all other styles a single rune.
func TestApply_RuneCounts(t *testing.T) {
	assert.Len(t, Apply('A', SerifBold), 1)
	assert.Len(t, Apply('A', Chancery), 2)
	assert.Len(t, Apply('A', ChanceryBold), 2)
	assert.Len(t, Apply('A', Roundhand), 2)
	assert.Len(t, Apply('A', RoundhandBold), 2)

	assert.Equal(t, []rune{'\U0001D49C', '︀'}, Apply('A', Chancery))
}

// TestApply_PassThrough: unmapped runes come back unchanged under
// every style.
func TestApply_PassThrough(t *testing.T) {
	for style := Serif; style <= Stretched; style++ {
		got := Apply('?', style)
		assert.Equal(t, '?', got[0], "style %v", style)
	}
}

// TestStyle_String covers the display names and the out-of-range
// guard.
func TestStyle_String(t *testing.T) {
	assert.Equal(t, "serif", Serif.String())
	assert.Equal(t, "sans-serif-bold", SansSerifBold.String())
	assert.Equal(t, "double-struck-italic", DoubleStruckItalic.String())
	assert.Equal(t, "stretched", Stretched.String())
	assert.Equal(t, "unknown", Style(99).String())
	assert.Equal(t, "unknown", Style(-1).String())
}
