package numerals

import "strings"

// chineseTable parameterizes the four Chinese numeral styles. The
// standard ("lower") styles read naturally and may open with a bare 十
// for 10..19; the banknote ("upper") styles use the fraud-resistant
// digit forms and always spell the leading one.
type chineseTable struct {
	digits  [10]rune // 0..9
	units   [3]rune  // 10, 100, 1000
	groups  [4]rune  // 10^4, 10^8, 10^12, 10^16
	bareTen bool
}

var (
	simplifiedLower = chineseTable{
		digits:  [10]rune{'零', '一', '二', '三', '四', '五', '六', '七', '八', '九'},
		units:   [3]rune{'十', '百', '千'},
		groups:  [4]rune{'万', '亿', '兆', '京'},
		bareTen: true,
	}
	simplifiedUpper = chineseTable{
		digits: [10]rune{'零', '壹', '贰', '叁', '肆', '伍', '陆', '柒', '捌', '玖'},
		units:  [3]rune{'拾', '佰', '仟'},
		groups: [4]rune{'万', '亿', '兆', '京'},
	}
	traditionalLower = chineseTable{
		digits:  [10]rune{'零', '一', '二', '三', '四', '五', '六', '七', '八', '九'},
		units:   [3]rune{'十', '百', '千'},
		groups:  [4]rune{'萬', '億', '兆', '京'},
		bareTen: true,
	}
	traditionalUpper = chineseTable{
		digits: [10]rune{'零', '壹', '貳', '參', '肆', '伍', '陸', '柒', '捌', '玖'},
		units:  [3]rune{'拾', '佰', '仟'},
		groups: [4]rune{'萬', '億', '兆', '京'},
	}
)

// chinese writes n in the ten-thousand-grouped system: the number is
// split into base-10000 groups, each rendered with the 千/百/十 units
// and followed by its scale marker (万, 亿, ...). A single 零 bridges
// every gap left by zero digits or skipped groups.
func chinese(t chineseTable, n uint64) string {
	if n == 0 {
		return string(t.digits[0])
	}

	// 1. Split into groups of four decimal digits, little-endian.
	var groups []uint64
	for rest := n; rest != 0; rest /= 10000 {
		groups = append(groups, rest%10000)
	}

	// 2. Emit big-endian, bridging gaps with 零.
	var b strings.Builder
	pendingZero := false
	for gi := len(groups) - 1; gi >= 0; gi-- {
		g := groups[gi]
		if g == 0 {
			if b.Len() > 0 {
				pendingZero = true
			}
			continue
		}
		if b.Len() > 0 && (pendingZero || g < 1000) {
			b.WriteRune(t.digits[0])
		}
		pendingZero = false

		t.writeGroup(&b, g, b.Len() == 0 && t.bareTen)
		if gi > 0 {
			b.WriteRune(t.groups[gi-1])
		}
	}

	return b.String()
}

// writeGroup renders one 1..9999 group. bareTen drops the leading 一
// before 十, turning 一十三 into 十三 when the group opens the whole
// number in a standard-case style.
func (t chineseTable) writeGroup(b *strings.Builder, g uint64, bareTen bool) {
	wrote := false
	pendingZero := false

	for ui := 2; ui >= 0; ui-- {
		scale := uint64(10)
		for i := 0; i < ui; i++ {
			scale *= 10
		}
		d := g / scale % 10
		if d == 0 {
			pendingZero = pendingZero || wrote
			continue
		}
		if pendingZero {
			b.WriteRune(t.digits[0])
			pendingZero = false
		}
		if !(ui == 0 && d == 1 && bareTen && !wrote) {
			b.WriteRune(t.digits[d])
		}
		b.WriteRune(t.units[ui])
		wrote = true
	}

	if d := g % 10; d != 0 {
		if pendingZero {
			b.WriteRune(t.digits[0])
		}
		b.WriteRune(t.digits[d])
	}
}
