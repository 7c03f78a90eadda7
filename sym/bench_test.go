package sym

import "testing"

// BenchmarkResolve measures lookups against the shipped catalog,
// mixing defaults, modifier narrowing, and nested modules.
func BenchmarkResolve(b *testing.B) {
	names := []string{"arrow", "gt.eq.slant", "brace.l", "emoji.animal.cat.black"}

	Resolver() // build outside the timed loop
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Resolve(names[i%len(names)]); err != nil {
			b.Fatal(err)
		}
	}
}
