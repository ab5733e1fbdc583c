package desc

import "testing"

// FuzzCompile checks that arbitrary descriptions either compile or fail with
// a typed error; the compiler must never panic and every reported span must
// lie within the source.
func FuzzCompile(f *testing.F) {
	seeds := []string{
		"",
		"[year]-[month]-[day]",
		"version = 2, [first [[hour]] [[hour repr:12]]]",
		"[optional [[year]]]",
		"[[",
		`\[`,
		"version = ",
		"[ignore count:4]",
		"[day padding:space][month repr:long case_sensitive:false]",
		"[unix_timestamp precision:nanosecond sign:mandatory]",
	}
	for _, seed := range seeds {
		f.Add(seed, 1)
		f.Add(seed, 2)
	}

	f.Fuzz(func(t *testing.T, source string, version int) {
		if version != 1 && version != 2 {
			version = 1
		}
		items, err := Compile(source, version)
		if err != nil {
			ifd, ok := err.(*InvalidFormatDescription)
			if !ok {
				t.Fatalf("error type %T", err)
			}
			if ifd.Start < 0 || ifd.End > len(source)+1 || ifd.Start > ifd.End {
				t.Fatalf("span %d..%d outside source of length %d",
					ifd.Start, ifd.End, len(source))
			}
			return
		}
		for _, item := range items {
			if lit, ok := item.(Literal); ok && len(lit.Text) == 0 {
				t.Fatal("compiled an empty literal item")
			}
		}
	})
}
