// Tempogen - bake format descriptions into Go source at build time
//
// The generator runs the same grammar compiler the library exposes at run
// time; the only difference is when it runs. Typical use is a go:generate
// line next to the code that formats with the description.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chazu/tempo/desc"
	"github.com/chazu/tempo/manifest"
)

func main() {
	pkg := flag.String("pkg", "main", "Package name for the generated file")
	varName := flag.String("var", "Format", "Variable name for the compiled sequence")
	version := flag.Int("version", 1, "Grammar version for descriptions without a version directive (1 or 2)")
	catalogDir := flag.String("catalog", "", "Directory containing tempo.toml (for @name descriptions)")
	out := flag.String("o", "", "Output file (default: stdout)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tempogen [options] <description>\n\n")
		fmt.Fprintf(os.Stderr, "Compiles a format description and emits it as a Go variable, so the\n")
		fmt.Fprintf(os.Stderr, "description is validated at build time instead of at run time.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tempogen -pkg clock -var ISODate -o isodate.go '[year]-[month]-[day]'\n")
		fmt.Fprintf(os.Stderr, "  tempogen -var RFC @rfc-ish   # From the nearest tempo.toml\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	source := flag.Arg(0)

	items, err := compileArg(source, *version, *catalogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code, err := generate(*pkg, *varName, source, items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(code)
		return
	}
	if err := os.WriteFile(*out, code, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
}

func compileArg(source string, version int, catalogDir string) ([]desc.Item, error) {
	if name, ok := strings.CutPrefix(source, "@"); ok {
		dir := catalogDir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			c, err := manifest.FindAndLoad(wd)
			if err != nil {
				return nil, err
			}
			if c == nil {
				return nil, fmt.Errorf("no %s found from %s upward", manifest.FileName, wd)
			}
			return c.Compile(name)
		}
		c, err := manifest.Load(dir)
		if err != nil {
			return nil, err
		}
		return c.Compile(name)
	}
	return desc.Compile(source, version)
}
