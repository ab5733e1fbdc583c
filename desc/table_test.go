package desc

import "testing"

func TestTableCoversAllKinds(t *testing.T) {
	seen := map[Kind]bool{}
	for name, def := range components {
		if seen[def.kind] {
			t.Errorf("kind %v registered twice", def.kind)
		}
		seen[def.kind] = true
		if def.kind.String() != name {
			t.Errorf("kind %v renders as %q, registered as %q", def.kind, def.kind, name)
		}
	}
	for kind := KindYear; kind <= KindEnd; kind++ {
		if !seen[kind] {
			t.Errorf("kind %v missing from the table", kind)
		}
	}
}

func TestModifierDefValidation(t *testing.T) {
	tests := []struct {
		component string
		key       string
		value     string
		ok        bool
	}{
		{"year", "padding", "space", true},
		{"year", "padding", "left", false},
		{"hour", "repr", "12", true},
		{"hour", "repr", "13", false},
		{"ignore", "count", "42", true},
		{"ignore", "count", "0", false},
		{"ignore", "count", "-1", false},
		{"ignore", "count", "many", false},
		{"subsecond", "digits", "1+", true},
		{"subsecond", "digits", "10", false},
	}

	for _, tc := range tests {
		def, ok := lookupComponent(tc.component)
		if !ok {
			t.Fatalf("component %q missing", tc.component)
		}
		md, ok := def.mods[tc.key]
		if !ok {
			t.Fatalf("%s has no %q modifier", tc.component, tc.key)
		}
		if got := md.accepts(tc.value); got != tc.ok {
			t.Errorf("%s %s:%s accepts = %v, want %v",
				tc.component, tc.key, tc.value, got, tc.ok)
		}
	}
}

func TestRequiredModifiers(t *testing.T) {
	for name, def := range components {
		for key, md := range def.mods {
			if md.required && md.def != "" {
				t.Errorf("%s %s is required but has a default", name, key)
			}
			if !md.required && md.values != nil && md.def == "" {
				t.Errorf("%s %s is optional but has no default", name, key)
			}
		}
	}
	if !components["ignore"].mods["count"].required {
		t.Error("ignore count must be required")
	}
}

func TestModAccessorDefaults(t *testing.T) {
	c := Component{Kind: KindMonth}
	if c.Mod("repr") != "numerical" {
		t.Errorf("month repr default = %q", c.Mod("repr"))
	}
	if !c.CaseSensitive() {
		t.Error("case_sensitive should default to true")
	}

	c = Component{Kind: KindMonth, Mods: Modifiers{"repr": "short", "case_sensitive": "false"}}
	if c.Mod("repr") != "short" || c.CaseSensitive() {
		t.Error("explicit modifiers should win over defaults")
	}
}
