// Package numerals renders unsigned integers in numeral systems used
// worldwide: positional digit sets (Arabic, Eastern Arabic, Persian,
// Devanagari, Bengali), additive sign-value systems (Roman, Greek,
// Hebrew), bijective letter counting (Latin, kana, jamo, Bengali
// letters), fixed symbol tables (circled numbers), repeated footnote
// marks, and Chinese ten-thousand-grouped numerals.
//
// A system is picked by its dotted name:
//
//	sys, err := numerals.FromName("Roman")
//	if err != nil { ... }
//	fmt.Println(sys.Apply(1994)) // MCMXCIV
//
// Case distinguishes variants: "roman" is lowercase Roman numerals,
// "Roman" uppercase; likewise "latin"/"Latin", "greek"/"Greek", and
// the Chinese standard/banknote forms.
//
// Every system renders every uint64; rendering never fails. Additive
// systems write zero with the system's own zero mark (𐆊 for Greek, n/N
// for Roman, a dash for Hebrew); bijective and symbolic systems have
// no zero and fall back to a dash.
package numerals
