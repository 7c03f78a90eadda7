package styling

// Variation selectors distinguishing the chancery and roundhand glyph
// variants of the script letters (StandardizedVariants.txt).
const (
	variationSelector1 = '︀'
	variationSelector2 = '︁'
)

// The per-style mappings below are fixed codepoint offsets with
// per-character exceptions. Exception cases must stay above the range
// cases they punch holes into: the switch picks the first match.

// toSerifBold maps to the bold forms.
func toSerifBold(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D3BF
	case r >= 'a' && r <= 'z':
		return r + 0x1D3B9
	case r >= 'Α' && r <= 'Ρ': // Α..Ρ
		return r + 0x1D317
	case r == 'ϴ': // ϴ
		return r + 0x1D2C5
	case r >= 'Σ' && r <= 'Ω': // Σ..Ω
		return r + 0x1D317
	case r == '∇': // ∇
		return r + 0x1B4BA
	case r >= 'α' && r <= 'ω': // α..ω
		return r + 0x1D311
	case r == '∂': // ∂
		return r + 0x1B4D9
	case r == 'ϵ': // ϵ
		return r + 0x1D2E7
	case r == 'ϑ': // ϑ
		return r + 0x1D30C
	case r == 'ϰ': // ϰ
		return r + 0x1D2EE
	case r == 'ϕ': // ϕ
		return r + 0x1D30A
	case r == 'ϱ': // ϱ
		return r + 0x1D2EF
	case r == 'ϖ': // ϖ
		return r + 0x1D30B
	case r == 'Ϝ' || r == 'ϝ': // Ϝ ϝ
		return r + 0x1D3EE
	case r >= '0' && r <= '9':
		return r + 0x1D79E
	}

	return r
}

// toSerifItalic maps to the italic forms. Planck's ℎ, the dotless
// letters, and ħ predate the math alphabets and live in other blocks.
func toSerifItalic(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D3F3
	case r == 'h': // ℎ, Letterlike Symbols
		return r + 0x20A6
	case r >= 'a' && r <= 'z':
		return r + 0x1D3ED
	case r == 'ı': // ı
		return r + 0x1D573
	case r == 'ȷ': // ȷ
		return r + 0x1D46E
	case r >= 'Α' && r <= 'Ρ': // Α..Ρ
		return r + 0x1D351
	case r == 'ϴ': // ϴ
		return r + 0x1D2FF
	case r >= 'Σ' && r <= 'Ω': // Σ..Ω
		return r + 0x1D351
	case r == '∇': // ∇
		return r + 0x1B4F4
	case r >= 'α' && r <= 'ω': // α..ω
		return r + 0x1D34B
	case r == '∂': // ∂
		return r + 0x1B513
	case r == 'ϵ': // ϵ
		return r + 0x1D321
	case r == 'ϑ': // ϑ
		return r + 0x1D346
	case r == 'ϰ': // ϰ
		return r + 0x1D328
	case r == 'ϕ': // ϕ
		return r + 0x1D344
	case r == 'ϱ': // ϱ
		return r + 0x1D329
	case r == 'ϖ': // ϖ
		return r + 0x1D345
	case r == 'ħ': // ħ → ℏ; missing from MathML Core
		return r + 0x1FE8
	}

	return r
}

// toSerifItalicBold maps to the bold italic forms.
func toSerifItalicBold(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D427
	case r >= 'a' && r <= 'z':
		return r + 0x1D421
	case r >= 'Α' && r <= 'Ρ': // Α..Ρ
		return r + 0x1D38B
	case r == 'ϴ': // ϴ
		return r + 0x1D339
	case r >= 'Σ' && r <= 'Ω': // Σ..Ω
		return r + 0x1D38B
	case r == '∇': // ∇
		return r + 0x1B52E
	case r >= 'α' && r <= 'ω': // α..ω
		return r + 0x1D385
	case r == '∂': // ∂
		return r + 0x1B54D
	case r == 'ϵ': // ϵ
		return r + 0x1D35B
	case r == 'ϑ': // ϑ
		return r + 0x1D380
	case r == 'ϰ': // ϰ
		return r + 0x1D362
	case r == 'ϕ': // ϕ
		return r + 0x1D37E
	case r == 'ϱ': // ϱ
		return r + 0x1D363
	case r == 'ϖ': // ϖ
		return r + 0x1D37F
	}

	return r
}

// toSansSerif maps to the sans-serif forms.
func toSansSerif(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D55F
	case r >= 'a' && r <= 'z':
		return r + 0x1D559
	case r >= '0' && r <= '9':
		return r + 0x1D7B2
	}

	return r
}

// toSansSerifBold maps to the sans-serif bold forms.
func toSansSerifBold(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D593
	case r >= 'a' && r <= 'z':
		return r + 0x1D58D
	case r >= 'Α' && r <= 'Ρ': // Α..Ρ
		return r + 0x1D3C5
	case r == 'ϴ': // ϴ
		return r + 0x1D373
	case r >= 'Σ' && r <= 'Ω': // Σ..Ω
		return r + 0x1D3C5
	case r == '∇': // ∇
		return r + 0x1B568
	case r >= 'α' && r <= 'ω': // α..ω
		return r + 0x1D3BF
	case r == '∂': // ∂
		return r + 0x1B587
	case r == 'ϵ': // ϵ
		return r + 0x1D395
	case r == 'ϑ': // ϑ
		return r + 0x1D3BA
	case r == 'ϰ': // ϰ
		return r + 0x1D39C
	case r == 'ϕ': // ϕ
		return r + 0x1D3B8
	case r == 'ϱ': // ϱ
		return r + 0x1D39D
	case r == 'ϖ': // ϖ
		return r + 0x1D3B9
	case r >= '0' && r <= '9':
		return r + 0x1D7BC
	}

	return r
}

// toSansSerifItalic maps to the sans-serif italic forms. Only the
// Latin letters have them.
func toSansSerifItalic(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D5C7
	case r >= 'a' && r <= 'z':
		return r + 0x1D5C1
	}

	return r
}

// toSansSerifItalicBold maps to the sans-serif bold italic forms.
// Greek and digits share the sans-serif bold table.
func toSansSerifItalicBold(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D593
	case r >= 'a' && r <= 'z':
		return r + 0x1D58D
	case r >= 'Α' && r <= 'Ρ': // Α..Ρ
		return r + 0x1D3C5
	case r == 'ϴ': // ϴ
		return r + 0x1D373
	case r >= 'Σ' && r <= 'Ω': // Σ..Ω
		return r + 0x1D3C5
	case r == '∇': // ∇
		return r + 0x1B568
	case r >= 'α' && r <= 'ω': // α..ω
		return r + 0x1D3BF
	case r == '∂': // ∂
		return r + 0x1B587
	case r == 'ϵ': // ϵ
		return r + 0x1D395
	case r == 'ϑ': // ϑ
		return r + 0x1D3BA
	case r == 'ϰ': // ϰ
		return r + 0x1D39C
	case r == 'ϕ': // ϕ
		return r + 0x1D3B8
	case r == 'ϱ': // ϱ
		return r + 0x1D39D
	case r == 'ϖ': // ϖ
		return r + 0x1D3B9
	case r >= '0' && r <= '9':
		return r + 0x1D7BC
	}

	return r
}

// toFraktur maps to the fraktur forms. ℭ ℌ ℑ ℜ ℨ sit in Letterlike
// Symbols.
func toFraktur(r rune) rune {
	switch {
	case r == 'C':
		return r + 0x20EA
	case r == 'H':
		return r + 0x20C4
	case r == 'I':
		return r + 0x20C8
	case r == 'R':
		return r + 0x20CA
	case r == 'Z':
		return r + 0x20CE
	case r >= 'A' && r <= 'Z':
		return r + 0x1D4C3
	case r >= 'a' && r <= 'z':
		return r + 0x1D4BD
	}

	return r
}

// toFrakturBold maps to the bold fraktur forms.
func toFrakturBold(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D52B
	case r >= 'a' && r <= 'z':
		return r + 0x1D525
	}

	return r
}

// toScript maps to the script forms. The Letterlike Symbols block
// holds ℬ ℰ ℱ ℋ ℐ ℒ ℳ ℛ and the small ℯ ℊ ℴ.
func toScript(r rune) rune {
	switch {
	case r == 'B':
		return r + 0x20EA
	case r == 'E' || r == 'F':
		return r + 0x20EB
	case r == 'H':
		return r + 0x20C3
	case r == 'I':
		return r + 0x20C7
	case r == 'L':
		return r + 0x20C6
	case r == 'M':
		return r + 0x20E6
	case r == 'R':
		return r + 0x20C9
	case r >= 'A' && r <= 'Z':
		return r + 0x1D45B
	case r == 'e':
		return r + 0x20CA
	case r == 'g':
		return r + 0x20A3
	case r == 'o':
		return r + 0x20C5
	case r >= 'a' && r <= 'z':
		return r + 0x1D455
	}

	return r
}

// toScriptBold maps to the bold script forms.
func toScriptBold(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D48F
	case r >= 'a' && r <= 'z':
		return r + 0x1D489
	}

	return r
}

// toDoubleStruck maps to the double-struck forms: Latin with the
// Letterlike holes (ℂ ℍ ℕ ℙ ℚ ℝ ℤ), digits, the Arabic math alphabet,
// and the four Greek letters plus ⅀ that MathML Core omits.
func toDoubleStruck(r rune) rune {
	switch {
	case r == 'C':
		return r + 0x20BF
	case r == 'H':
		return r + 0x20C5
	case r == 'N':
		return r + 0x20C7
	case r == 'P' || r == 'Q':
		return r + 0x20C9
	case r == 'R':
		return r + 0x20CB
	case r == 'Z':
		return r + 0x20CA
	case r >= 'A' && r <= 'Z':
		return r + 0x1D4F7
	case r >= 'a' && r <= 'z':
		return r + 0x1D4F1
	case r >= '0' && r <= '9':
		return r + 0x1D7A8
	case r == 'ب': // ب
		return r + 0x1E879
	case r == 'ج' || r == 'ع': // ج ع
		return r + 0x1E876
	case r == 'د' || r == 'ز': // د ز
		return r + 0x1E874
	case r == 'و': // و
		return r + 0x1E85D
	case r == 'ح': // ح
		return r + 0x1E87A
	case r == 'ط': // ط
		return r + 0x1E871
	case r == 'ي': // ي
		return r + 0x1E85F
	case r >= 'ل' && r <= 'ن': // ل..ن
		return r + 0x1E867
	case r == 'س': // س
		return r + 0x1E87B
	case r == 'ف': // ف
		return r + 0x1E86F
	case r == 'ص': // ص
		return r + 0x1E87C
	case r == 'ق': // ق
		return r + 0x1E870
	case r == 'ر' || r == 'ظ': // ر ظ
		return r + 0x1E882
	case r == 'ش': // ش
		return r + 0x1E880
	case r >= 'ت' && r <= 'ث': // ت ث
		return r + 0x1E88B
	case r == 'خ': // خ
		return r + 0x1E889
	case r == 'ذ': // ذ
		return r + 0x1E888
	case r == 'ض': // ض
		return r + 0x1E883
	case r == 'غ': // غ
		return r + 0x1E881
	case r == 'Γ': // Γ → ℾ
		return r + 0x1DAB
	case r == 'Π': // Π → ℿ
		return r + 0x1D9F
	case r == 'γ': // γ → ℽ
		return r + 0x1D8A
	case r == 'π': // π → ℼ
		return r + 0x1D7C
	case r == '∑': // ∑ → ⅀; the only negative offset
		return '⅀'
	}

	return r
}

// toDoubleStruckItalic maps to the double-struck italic forms. Unicode
// encodes only ⅅ ⅆ ⅇ ⅈ ⅉ, all in Letterlike Symbols.
func toDoubleStruckItalic(r rune) rune {
	switch {
	case r == 'D':
		return r + 0x2101
	case r == 'd' || r == 'e':
		return r + 0x20E2
	case r == 'i' || r == 'j':
		return r + 0x20DF
	}

	return r
}

// toMonospace maps to the monospace forms.
func toMonospace(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x1D62F
	case r >= 'a' && r <= 'z':
		return r + 0x1D629
	case r >= '0' && r <= '9':
		return r + 0x1D7C6
	}

	return r
}

// toInitial maps to the Arabic initial forms.
func toInitial(r rune) rune {
	switch {
	case r == 'ب': // ب
		return r + 0x1E7F9
	case r == 'ج' || r == 'ع': // ج ع
		return r + 0x1E7F6
	case r == 'ه': // ه
		return r + 0x1E7DD
	case r == 'ح': // ح
		return r + 0x1E7FA
	case r == 'ي': // ي
		return r + 0x1E7DF
	case r >= 'ك' && r <= 'ن': // ك..ن
		return r + 0x1E7E7
	case r == 'س': // س
		return r + 0x1E7FB
	case r == 'ف': // ف
		return r + 0x1E7EF
	case r == 'ص': // ص
		return r + 0x1E7FC
	case r == 'ق': // ق
		return r + 0x1E7F0
	case r == 'ش': // ش
		return r + 0x1E800
	case r >= 'ت' && r <= 'ث': // ت ث
		return r + 0x1E80B
	case r == 'خ': // خ
		return r + 0x1E809
	case r == 'ض': // ض
		return r + 0x1E803
	case r == 'غ': // غ
		return r + 0x1E801
	}

	return r
}

// toTailed maps to the Arabic tailed forms.
func toTailed(r rune) rune {
	switch {
	case r == 'ج' || r == 'ع': // ج ع
		return r + 0x1E816
	case r == 'ح': // ح
		return r + 0x1E81A
	case r == 'ي': // ي
		return r + 0x1E7FF
	case r == 'ل' || r == 'ن': // ل ن
		return r + 0x1E807
	case r == 'س': // س
		return r + 0x1E81B
	case r == 'ص': // ص
		return r + 0x1E81C
	case r == 'ق': // ق
		return r + 0x1E810
	case r == 'ش': // ش
		return r + 0x1E820
	case r == 'خ': // خ
		return r + 0x1E829
	case r == 'ض': // ض
		return r + 0x1E823
	case r == 'غ': // غ
		return r + 0x1E821
	case r == 'ں': // ں
		return r + 0x1E7A3
	case r == 'ٯ': // ٯ
		return r + 0x1E7F0
	}

	return r
}

// toStretched maps to the Arabic stretched forms.
func toStretched(r rune) rune {
	switch {
	case r == 'ب': // ب
		return r + 0x1E839
	case r == 'ج' || r == 'ع': // ج ع
		return r + 0x1E836
	case r == 'ه': // ه
		return r + 0x1E81D
	case r == 'ح': // ح
		return r + 0x1E83A
	case r == 'ط': // ط
		return r + 0x1E831
	case r == 'ي': // ي
		return r + 0x1E81F
	case r == 'ك' || (r >= 'م' && r <= 'ن'): // ك, م..ن
		return r + 0x1E827
	case r == 'س': // س
		return r + 0x1E83B
	case r == 'ف': // ف
		return r + 0x1E82F
	case r == 'ص': // ص
		return r + 0x1E83C
	case r == 'ق': // ق
		return r + 0x1E830
	case r == 'ش': // ش
		return r + 0x1E840
	case r >= 'ت' && r <= 'ث': // ت ث
		return r + 0x1E84B
	case r == 'خ': // خ
		return r + 0x1E849
	case r == 'ض': // ض
		return r + 0x1E843
	case r == 'ظ': // ظ
		return r + 0x1E842
	case r == 'غ': // غ
		return r + 0x1E841
	case r == 'ٮ': // ٮ
		return r + 0x1E80E
	case r == 'ڡ': // ڡ
		return r + 0x1E7DD
	}

	return r
}

// toLooped maps to the Arabic looped forms.
func toLooped(r rune) rune {
	switch {
	case r >= 'ا' && r <= 'ب': // ا ب
		return r + 0x1E859
	case r == 'ج' || r == 'ع': // ج ع
		return r + 0x1E856
	case r == 'د' || r == 'ز': // د ز
		return r + 0x1E854
	case r >= 'ه' && r <= 'و': // ه و
		return r + 0x1E83D
	case r == 'ح': // ح
		return r + 0x1E85A
	case r == 'ط': // ط
		return r + 0x1E851
	case r == 'ي': // ي
		return r + 0x1E83F
	case r >= 'ل' && r <= 'ن': // ل..ن
		return r + 0x1E847
	case r == 'س': // س
		return r + 0x1E85B
	case r == 'ف': // ف
		return r + 0x1E84F
	case r == 'ص': // ص
		return r + 0x1E85C
	case r == 'ق': // ق
		return r + 0x1E850
	case r == 'ر' || r == 'ظ': // ر ظ
		return r + 0x1E862
	case r == 'ش': // ش
		return r + 0x1E860
	case r >= 'ت' && r <= 'ث': // ت ث
		return r + 0x1E86B
	case r == 'خ': // خ
		return r + 0x1E869
	case r == 'ذ': // ذ
		return r + 0x1E868
	case r == 'ض': // ض
		return r + 0x1E863
	case r == 'غ': // غ
		return r + 0x1E861
	}

	return r
}
