package parsing

import (
	"testing"

	"github.com/chazu/tempo/desc"
)

func FuzzParse(f *testing.F) {
	items := desc.MustCompile("[year]-[month]-[day][optional [T[hour]:[minute]]]", 2)
	f.Add("2024-03-07")
	f.Add("2024-03-07T10:30")
	f.Add("2024-03-07T10:3")
	f.Add("")
	f.Add("xxxx-xx-xx")
	f.Fuzz(func(t *testing.T, input string) {
		p, n, err := Parse(items, []byte(input))
		if err != nil {
			return
		}
		if p == nil {
			t.Fatal("nil accumulator on success")
		}
		if n > len(input) {
			t.Fatalf("consumed %d of %d bytes", n, len(input))
		}
	})
}
