package numerals

// weighted is one additive symbol: a text and the value it contributes.
type weighted struct {
	text  string
	value uint64
}

// Roman numerals. Values past 3999 use the overline (vinculum) forms,
// a base letter followed by U+0305 COMBINING OVERLINE. A lone "n"/"N"
// writes zero, after the medieval usage of nulla.
var romanLower = []weighted{
	{"m̅", 1000000},
	{"d̅", 500000},
	{"c̅", 100000},
	{"l̅", 50000},
	{"x̅", 10000},
	{"v̅", 5000},
	{"i̅v̅", 4000},
	{"m", 1000},
	{"cm", 900},
	{"d", 500},
	{"cd", 400},
	{"c", 100},
	{"xc", 90},
	{"l", 50},
	{"xl", 40},
	{"x", 10},
	{"ix", 9},
	{"v", 5},
	{"iv", 4},
	{"i", 1},
	{"n", 0},
}

var romanUpper = []weighted{
	{"M̅", 1000000},
	{"D̅", 500000},
	{"C̅", 100000},
	{"L̅", 50000},
	{"X̅", 10000},
	{"V̅", 5000},
	{"I̅V̅", 4000},
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
	{"N", 0},
}

// Greek alphabetic (Ionian) numerals. Thousands carry the lower
// keraia U+0375; the archaic stigma, koppa, and sampi fill 6, 90, and
// 900. Zero is U+1018A GREEK ZERO SIGN.
var greekLower = []weighted{
	{"͵θ", 9000},
	{"͵η", 8000},
	{"͵ζ", 7000},
	{"͵ϛ", 6000},
	{"͵ε", 5000},
	{"͵δ", 4000},
	{"͵γ", 3000},
	{"͵β", 2000},
	{"͵α", 1000},
	{"ϡ", 900},
	{"ω", 800},
	{"ψ", 700},
	{"χ", 600},
	{"φ", 500},
	{"υ", 400},
	{"τ", 300},
	{"σ", 200},
	{"ρ", 100},
	{"ϟ", 90},
	{"π", 80},
	{"ο", 70},
	{"ξ", 60},
	{"ν", 50},
	{"μ", 40},
	{"λ", 30},
	{"κ", 20},
	{"ι", 10},
	{"θ", 9},
	{"η", 8},
	{"ζ", 7},
	{"ϛ", 6},
	{"ε", 5},
	{"δ", 4},
	{"γ", 3},
	{"β", 2},
	{"α", 1},
	{"\U0001018A", 0},
}

var greekUpper = []weighted{
	{"͵Θ", 9000},
	{"͵Η", 8000},
	{"͵Ζ", 7000},
	{"͵Ϛ", 6000},
	{"͵Ε", 5000},
	{"͵Δ", 4000},
	{"͵Γ", 3000},
	{"͵Β", 2000},
	{"͵Α", 1000},
	{"Ϡ", 900},
	{"Ω", 800},
	{"Ψ", 700},
	{"Χ", 600},
	{"Φ", 500},
	{"Υ", 400},
	{"Τ", 300},
	{"Σ", 200},
	{"Ρ", 100},
	{"Ϟ", 90},
	{"Π", 80},
	{"Ο", 70},
	{"Ξ", 60},
	{"Ν", 50},
	{"Μ", 40},
	{"Λ", 30},
	{"Κ", 20},
	{"Ι", 10},
	{"Θ", 9},
	{"Η", 8},
	{"Ζ", 7},
	{"Ϛ", 6},
	{"Ε", 5},
	{"Δ", 4},
	{"Γ", 3},
	{"Β", 2},
	{"Α", 1},
	{"\U0001018A", 0},
}

// Hebrew numerals. 15 and 16 avoid spelling the divine name, using
// ט״ו and ט״ז instead of יה and יו.
var hebrew = []weighted{
	{"ת", 400},
	{"ש", 300},
	{"ר", 200},
	{"ק", 100},
	{"צ", 90},
	{"פ", 80},
	{"ע", 70},
	{"ס", 60},
	{"נ", 50},
	{"מ", 40},
	{"ל", 30},
	{"כ", 20},
	{"יט", 19},
	{"יח", 18},
	{"יז", 17},
	{"טז", 16},
	{"טו", 15},
	{"י", 10},
	{"ט", 9},
	{"ח", 8},
	{"ז", 7},
	{"ו", 6},
	{"ה", 5},
	{"ד", 4},
	{"ג", 3},
	{"ב", 2},
	{"א", 1},
	{"-", 0},
}

// Bijective letter tables.
var (
	lettersLatinLower = []rune("abcdefghijklmnopqrstuvwxyz")
	lettersLatinUpper = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	hiraganaAiueo = []rune("あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん")
	hiraganaIroha = []rune("いろはにほへとちりぬるをわかよたれそつねならむうゐのおくやまけふこえてあさきゆめみしゑひもせす")
	katakanaAiueo = []rune("アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン")
	katakanaIroha = []rune("イロハニホヘトチリヌルヲワカヨタレソツネナラムウヰノオクヤマケフコエテアサキユメミシヱヒモセス")

	koreanJamo      = []rune("ㄱㄴㄷㄹㅁㅂㅅㅇㅈㅊㅋㅌㅍㅎ")
	koreanSyllables = []rune("가나다라마바사아자차카타파하")

	lettersBengali = []rune("কখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযরলশষসহ")
)

// Positional digit tables.
var (
	digitsArabic        = []rune("0123456789")
	digitsEasternArabic = []rune("٠١٢٣٤٥٦٧٨٩")
	digitsPersian       = []rune("۰۱۲۳۴۵۶۷۸۹")
	digitsDevanagari    = []rune("०१२३४५६७८९")
	digitsBengali       = []rune("০১২৩৪৫৬৭৮৯")
)

// circled covers 0 through 50: ⓪, ①..⑳, ㉑..㉟, ㊱..㊿.
var circled = func() []rune {
	out := []rune{'⓪'}
	for r := rune(0x2460); r <= 0x2473; r++ { // ①..⑳
		out = append(out, r)
	}
	for r := rune(0x3251); r <= 0x325F; r++ { // ㉑..㉟
		out = append(out, r)
	}
	for r := rune(0x32B1); r <= 0x32BF; r++ { // ㊱..㊿
		out = append(out, r)
	}

	return out
}()

// doubleCircled covers 0 through 10; Unicode has no double-circled
// zero, so plain '0' fills the slot.
var doubleCircled = []rune("0⓵⓶⓷⓸⓹⓺⓻⓼⓽⓾")

// footnoteMarks is the traditional reference-mark sequence.
var footnoteMarks = []rune{'*', '†', '‡', '§', '¶', '‖'}
