package main

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/chazu/tempo/desc"
)

// generate emits a Go source file declaring varName as the compiled form of
// source. The output goes through the imports processor so it is gofmt-clean.
func generate(pkg, varName, source string, items []desc.Item) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by tempogen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"github.com/chazu/tempo/desc\"\n\n")
	fmt.Fprintf(&buf, "// %s is the compiled form of %q.\n", varName, source)
	fmt.Fprintf(&buf, "var %s = ", varName)
	writeItems(&buf, items, 0)
	buf.WriteString("\n")

	out, err := imports.Process(varName+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}

func writeItems(buf *bytes.Buffer, items []desc.Item, depth int) {
	if len(items) == 0 {
		buf.WriteString("[]desc.Item(nil)")
		return
	}
	buf.WriteString("[]desc.Item{\n")
	for _, it := range items {
		indent(buf, depth+1)
		writeItem(buf, it, depth+1)
		buf.WriteString(",\n")
	}
	indent(buf, depth)
	buf.WriteString("}")
}

func writeItem(buf *bytes.Buffer, it desc.Item, depth int) {
	switch it := it.(type) {
	case desc.Literal:
		fmt.Fprintf(buf, "desc.Literal{Text: []byte(%q)}", it.Text)
	case desc.Component:
		fmt.Fprintf(buf, "desc.Component{Kind: desc.%s", kindIdent(it.Kind))
		if len(it.Mods) > 0 {
			buf.WriteString(", Mods: desc.Modifiers{")
			keys := make([]string, 0, len(it.Mods))
			for k := range it.Mods {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for i, k := range keys {
				if i > 0 {
					buf.WriteString(", ")
				}
				fmt.Fprintf(buf, "%q: %q", k, it.Mods[k])
			}
			buf.WriteString("}")
		}
		buf.WriteString("}")
	case desc.Optional:
		buf.WriteString("desc.Optional{Items: ")
		writeItems(buf, it.Items, depth)
		buf.WriteString("}")
	case desc.First:
		buf.WriteString("desc.First{Alternatives: [][]desc.Item{\n")
		for _, alt := range it.Alternatives {
			indent(buf, depth+1)
			writeItems(buf, alt, depth+1)
			buf.WriteString(",\n")
		}
		indent(buf, depth)
		buf.WriteString("}}")
	}
}

// kindIdent turns a component name like "week_number" into the constant
// identifier KindWeekNumber.
func kindIdent(k desc.Kind) string {
	var b strings.Builder
	b.WriteString("Kind")
	for _, part := range strings.Split(k.String(), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
}
