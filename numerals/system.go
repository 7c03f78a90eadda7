package numerals

import "fmt"

// System identifies a numeral system.
type System int

const (
	// Arabic is base-ten Arabic numerals: 0, 1, 2, 3, ...
	Arabic System = iota
	// LowerLatin counts with lowercase Latin letters: a, b, ..., z, aa, ab, ...
	LowerLatin
	// UpperLatin counts with uppercase Latin letters: A, B, ..., Z, AA, AB, ...
	UpperLatin
	// LowerRoman is lowercase Roman numerals: i, ii, iii, ...
	LowerRoman
	// UpperRoman is uppercase Roman numerals: I, II, III, ...
	UpperRoman
	// LowerGreek is Greek alphabetic (Ionian) numerals in lowercase.
	LowerGreek
	// UpperGreek is Greek alphabetic numerals in uppercase.
	UpperGreek
	// Symbol cycles the footnote marks * † ‡ § ¶ ‖, repeating them for
	// larger values.
	Symbol
	// Hebrew is Hebrew alphabetic numerals.
	Hebrew
	// LowerSimplifiedChinese is simplified Chinese standard numerals.
	LowerSimplifiedChinese
	// UpperSimplifiedChinese is simplified Chinese "banknote" numerals.
	UpperSimplifiedChinese
	// LowerTraditionalChinese is traditional Chinese standard numerals.
	LowerTraditionalChinese
	// UpperTraditionalChinese is traditional Chinese "banknote" numerals.
	UpperTraditionalChinese
	// HiraganaAiueo counts hiragana in gojūon order; includes n,
	// excludes wi and we.
	HiraganaAiueo
	// HiraganaIroha counts hiragana in iroha order; includes wi and we,
	// excludes n.
	HiraganaIroha
	// KatakanaAiueo counts katakana in gojūon order.
	KatakanaAiueo
	// KatakanaIroha counts katakana in iroha order.
	KatakanaIroha
	// KoreanJamo counts Korean jamo: ㄱ, ㄴ, ㄷ, ...
	KoreanJamo
	// KoreanSyllable counts Korean syllables: 가, 나, 다, ...
	KoreanSyllable
	// EasternArabic is Eastern Arabic digits.
	EasternArabic
	// EasternArabicPersian is the Persian/Urdu variant of Eastern
	// Arabic digits.
	EasternArabicPersian
	// Devanagari is Devanagari digits.
	Devanagari
	// BengaliNumber is Bengali digits.
	BengaliNumber
	// BengaliLetter counts Bengali letters: ক, খ, গ, ..., কক, কখ, ...
	BengaliLetter
	// Circled is the circled numbers up to fifty: ①, ②, ③, ...
	Circled
	// DoubleCircled is the double-circled numbers up to ten: ⓵, ⓶, ...
	DoubleCircled
	numSystems // sentinel, keep last
)

// systemNames maps System values to their dotted names. Case carries
// meaning: "roman" and "Roman" are different systems.
var systemNames = [numSystems]string{
	Arabic:                  "arabic",
	LowerLatin:              "latin",
	UpperLatin:              "Latin",
	LowerRoman:              "roman",
	UpperRoman:              "Roman",
	LowerGreek:              "greek",
	UpperGreek:              "Greek",
	Symbol:                  "symbols",
	Hebrew:                  "hebrew",
	LowerSimplifiedChinese:  "chinese.simplified",
	UpperSimplifiedChinese:  "Chinese.simplified",
	LowerTraditionalChinese: "chinese.traditional",
	UpperTraditionalChinese: "Chinese.traditional",
	HiraganaAiueo:           "hiragana.aiueo",
	HiraganaIroha:           "hiragana.iroha",
	KatakanaAiueo:           "katakana.aiueo",
	KatakanaIroha:           "katakana.iroha",
	KoreanJamo:              "korean.jamo",
	KoreanSyllable:          "korean.syllable",
	EasternArabic:           "arabic.eastern",
	EasternArabicPersian:    "arabic.persian",
	Devanagari:              "devanagari",
	BengaliNumber:           "bengali.number",
	BengaliLetter:           "bengali.letter",
	Circled:                 "circled",
	DoubleCircled:           "circled.double",
}

// systemsByName is the reverse of systemNames, built at init.
var systemsByName = func() map[string]System {
	m := make(map[string]System, numSystems)
	for sys, name := range systemNames {
		m[name] = System(sys)
	}

	return m
}()

// FromName returns the system with the given dotted name, or an error
// wrapping ErrUnknownSystem.
func FromName(name string) (System, error) {
	sys, ok := systemsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}

	return sys, nil
}

// Name returns the system's dotted name.
func (s System) Name() string {
	if s < Arabic || s >= numSystems {
		return "unknown"
	}

	return systemNames[s]
}

// String implements fmt.Stringer; it is the same as Name.
func (s System) String() string { return s.Name() }

// Apply pairs n with the system for rendering. The returned value
// implements fmt.Stringer, so it drops straight into fmt verbs.
func (s System) Apply(n uint64) Formatted {
	return Formatted{system: s, number: n}
}

// Formatted is a number together with the numeral system to display
// it in.
type Formatted struct {
	system System
	number uint64
}

// System returns the numeral system.
func (f Formatted) System() System { return f.system }

// Number returns the wrapped value.
func (f Formatted) Number() uint64 { return f.number }

// String renders the number in the chosen system.
func (f Formatted) String() string {
	n := f.number
	switch f.system {
	case Arabic:
		return positional(digitsArabic, n)
	case LowerLatin:
		return bijective(lettersLatinLower, n)
	case UpperLatin:
		return bijective(lettersLatinUpper, n)
	case LowerRoman:
		return additive(romanLower, n)
	case UpperRoman:
		return additive(romanUpper, n)
	case LowerGreek:
		return additive(greekLower, n)
	case UpperGreek:
		return additive(greekUpper, n)
	case Symbol:
		return symbolic(footnoteMarks, n)
	case Hebrew:
		return additive(hebrew, n)
	case LowerSimplifiedChinese:
		return chinese(simplifiedLower, n)
	case UpperSimplifiedChinese:
		return chinese(simplifiedUpper, n)
	case LowerTraditionalChinese:
		return chinese(traditionalLower, n)
	case UpperTraditionalChinese:
		return chinese(traditionalUpper, n)
	case HiraganaAiueo:
		return bijective(hiraganaAiueo, n)
	case HiraganaIroha:
		return bijective(hiraganaIroha, n)
	case KatakanaAiueo:
		return bijective(katakanaAiueo, n)
	case KatakanaIroha:
		return bijective(katakanaIroha, n)
	case KoreanJamo:
		return bijective(koreanJamo, n)
	case KoreanSyllable:
		return bijective(koreanSyllables, n)
	case EasternArabic:
		return positional(digitsEasternArabic, n)
	case EasternArabicPersian:
		return positional(digitsPersian, n)
	case Devanagari:
		return positional(digitsDevanagari, n)
	case BengaliNumber:
		return positional(digitsBengali, n)
	case BengaliLetter:
		return bijective(lettersBengali, n)
	case Circled:
		return fixed(circled, n)
	case DoubleCircled:
		return fixed(doubleCircled, n)
	default:
		return positional(digitsArabic, n)
	}
}
