package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalog = `
[catalog]
name = "iso"
default-version = 2

[formats.date]
description = "[year]-[month]-[day]"

[formats.datetime]
description = "[year]-[month]-[day]T[hour]:[minute]:[second][optional [.[subsecond]]]"
notes = "extended ISO 8601, subseconds when present"

[formats.rfc-ish]
description = "[weekday repr:short], [day] [month repr:short] [year]"
version = 1
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeCatalog(t, sampleCatalog)
	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Meta.Name != "iso" {
		t.Errorf("Name = %q, want %q", c.Meta.Name, "iso")
	}
	if c.Meta.DefaultVersion != 2 {
		t.Errorf("DefaultVersion = %d, want 2", c.Meta.DefaultVersion)
	}
	if len(c.Formats) != 3 {
		t.Fatalf("len(Formats) = %d, want 3", len(c.Formats))
	}
	want := []string{"date", "datetime", "rfc-ish"}
	names := c.Names()
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestLoadMissingDescription(t *testing.T) {
	dir := writeCatalog(t, "[formats.empty]\nnotes = \"no description\"\n")
	if _, err := Load(dir); err == nil {
		t.Error("catalog with descriptionless format loaded without error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("missing tempo.toml loaded without error")
	}
}

func TestFindAndLoad(t *testing.T) {
	dir := writeCatalog(t, sampleCatalog)
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	c, err := FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if c == nil {
		t.Fatal("catalog not found from nested directory")
	}
	if c.Dir != dir {
		t.Errorf("Dir = %q, want %q", c.Dir, dir)
	}
}

func TestCompile(t *testing.T) {
	dir := writeCatalog(t, sampleCatalog)
	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	// The datetime format uses version 2 syntax, available through the
	// catalog default.
	if _, err := c.Compile("datetime"); err != nil {
		t.Errorf("Compile(datetime): %v", err)
	}
	if _, err := c.Compile("nope"); err == nil {
		t.Error("unknown format compiled without error")
	}

	all, err := c.CompileAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("len(CompileAll()) = %d, want 3", len(all))
	}
}

func TestCompileBadDescription(t *testing.T) {
	dir := writeCatalog(t, "[formats.bad]\ndescription = \"[foo]\"\n")
	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Compile("bad"); err == nil {
		t.Error("unknown component compiled without error")
	}
	if _, err := c.CompileAll(); err == nil {
		t.Error("CompileAll succeeded with a bad format present")
	}
}
