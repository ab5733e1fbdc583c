package main

import (
	"strings"
	"testing"

	"github.com/chazu/tempo/desc"
)

func TestGenerate(t *testing.T) {
	source := "[year]-[month padding:none]-[day][optional [T[hour]:[minute]]]"
	items := desc.MustCompile(source, 2)

	code, err := generate("clock", "ISODate", source, items)
	if err != nil {
		t.Fatal(err)
	}
	got := string(code)

	for _, want := range []string{
		"// Code generated by tempogen. DO NOT EDIT.",
		"package clock",
		`import "github.com/chazu/tempo/desc"`,
		"var ISODate = []desc.Item{",
		"desc.Component{Kind: desc.KindYear}",
		`desc.Component{Kind: desc.KindMonth, Mods: desc.Modifiers{"padding": "none"}}`,
		`desc.Literal{Text: []byte("-")}`,
		"desc.Optional{Items: []desc.Item{",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated source missing %q:\n%s", want, got)
		}
	}
}

func TestGenerateFirst(t *testing.T) {
	items := desc.MustCompile("[first [[year]] [[year repr:last_two]]]", 2)
	code, err := generate("clock", "Year", "…", items)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "desc.First{Alternatives: [][]desc.Item{") {
		t.Errorf("generated source missing First literal:\n%s", code)
	}
}

func TestKindIdent(t *testing.T) {
	tests := []struct {
		kind desc.Kind
		want string
	}{
		{desc.KindYear, "KindYear"},
		{desc.KindWeekNumber, "KindWeekNumber"},
		{desc.KindUnixTimestamp, "KindUnixTimestamp"},
		{desc.KindOffsetHour, "KindOffsetHour"},
	}
	for _, tt := range tests {
		if got := kindIdent(tt.kind); got != tt.want {
			t.Errorf("kindIdent(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
