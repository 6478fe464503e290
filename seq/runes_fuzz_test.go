package seq

import (
	"testing"
)

func FuzzFromString(f *testing.F) {
	// Seed corpus
	f.Add("")
	f.Add("hello")
	f.Add("héllo wörld")
	f.Add("日本語")
	f.Add("a\xffb") // invalid UTF-8 mid-string

	f.Fuzz(func(t *testing.T, s string) {
		got := Collect(FromString(s))
		want := []rune(s)

		if len(got) != len(want) {
			t.Fatalf("rune count mismatch for %q: got %d, want %d", s, len(got), len(want))
		}
		for x := 0; x < len(want); x = x + 1 {
			if got[x] != want[x] {
				t.Fatalf("rune %d of %q: got %q, want %q", x, s, got[x], want[x])
			}
		}
	})
}
