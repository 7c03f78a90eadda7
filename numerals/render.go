package numerals

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// additive writes n in sign-value notation: symbols must be listed by
// decreasing value, and the rendered value is the sum of the symbols
// present. A trailing zero-valued symbol, when the table has one, is
// the system's zero mark.
func additive(symbols []weighted, n uint64) string {
	if n == 0 {
		if last := symbols[len(symbols)-1]; last.value == 0 {
			return last.text
		}

		return "0"
	}

	var b strings.Builder
	for _, s := range symbols {
		if s.value == 0 || s.value > n {
			continue
		}
		reps := n / s.value
		for i := uint64(0); i < reps; i++ {
			b.WriteString(s.text)
		}
		n -= s.value * reps
	}

	return b.String()
}

// bijective writes n in big-endian bijective base-b, b being the
// number of symbols. The system has no zero digit (as in spreadsheet
// column names), so zero renders as a dash.
func bijective(symbols []rune, n uint64) string {
	if n == 0 {
		return "-"
	}

	radix := uint64(len(symbols))
	var digits []rune
	for rest := n; rest != 0; rest /= radix {
		rest--
		i, err := safecast.Conv[int](rest % radix)
		if err != nil {
			return strconv.FormatUint(n, 10)
		}
		digits = append(digits, symbols[i])
	}

	return reversed(digits)
}

// positional writes n in big-endian positional base-b.
func positional(symbols []rune, n uint64) string {
	if n == 0 {
		return string(symbols[0])
	}

	radix := uint64(len(symbols))
	var digits []rune
	for rest := n; rest != 0; rest /= radix {
		i, err := safecast.Conv[int](rest % radix)
		if err != nil {
			return strconv.FormatUint(n, 10)
		}
		digits = append(digits, symbols[i])
	}

	return reversed(digits)
}

// fixed indexes n directly into the table, falling back to the plain
// Arabic rendering past the end.
func fixed(symbols []rune, n uint64) string {
	if i, err := safecast.Conv[int](n); err == nil && i < len(symbols) {
		return string(symbols[i])
	}

	return strconv.FormatUint(n, 10)
}

// symbolic cycles through the table, repeating the picked symbol:
// with marks * † ‡, 4 renders "**", 5 "††", 7 "***". Zero renders as
// a dash.
func symbolic(symbols []rune, n uint64) string {
	if n == 0 {
		return "-"
	}

	size := uint64(len(symbols))
	i, err := safecast.Conv[int]((n - 1) % size)
	if err != nil {
		return strconv.FormatUint(n, 10)
	}

	var b strings.Builder
	for reps := (n + size - 1) / size; reps > 0; reps-- {
		b.WriteRune(symbols[i])
	}

	return b.String()
}

// reversed joins digits accumulated little-endian into a string.
func reversed(digits []rune) string {
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}
