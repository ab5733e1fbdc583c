// Package manifest handles tempo.toml format catalogs: named, reusable
// format descriptions kept next to the project that uses them.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/chazu/tempo/desc"
)

// FileName is the catalog file looked up by FindAndLoad.
const FileName = "tempo.toml"

// Catalog is a parsed tempo.toml.
type Catalog struct {
	Meta    Meta              `toml:"catalog"`
	Formats map[string]Format `toml:"formats"`

	// Dir is the directory containing the tempo.toml file (set at load time).
	Dir string `toml:"-"`
}

// Meta contains catalog-wide settings.
type Meta struct {
	Name string `toml:"name"`

	// DefaultVersion is the grammar version for formats that do not name
	// their own. Zero lets the compiler pick its default.
	DefaultVersion int `toml:"default-version"`
}

// Format is a single named description.
type Format struct {
	Description string `toml:"description"`
	Version     int    `toml:"version"`
	Notes       string `toml:"notes"`
}

// Load parses a tempo.toml file from the given directory.
func Load(dir string) (*Catalog, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	for name, f := range c.Formats {
		if f.Description == "" {
			return nil, fmt.Errorf("%s: format %q has no description", path, name)
		}
	}
	return &c, nil
}

// FindAndLoad walks up from startDir to find a tempo.toml file, then loads
// and returns the catalog. Returns nil if no catalog is found.
func FindAndLoad(startDir string) (*Catalog, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Names returns the catalog's format names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Formats))
	for name := range c.Formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile compiles the named format. Per-format grammar versions override
// the catalog default.
func (c *Catalog) Compile(name string) ([]desc.Item, error) {
	f, ok := c.Formats[name]
	if !ok {
		return nil, fmt.Errorf("catalog has no format %q", name)
	}
	version := f.Version
	if version == 0 {
		version = c.Meta.DefaultVersion
	}
	items, err := desc.Compile(f.Description, version)
	if err != nil {
		return nil, fmt.Errorf("format %q: %w", name, err)
	}
	return items, nil
}

// CompileAll compiles every format in the catalog, failing on the first bad
// description.
func (c *Catalog) CompileAll() (map[string][]desc.Item, error) {
	compiled := make(map[string][]desc.Item, len(c.Formats))
	for _, name := range c.Names() {
		items, err := c.Compile(name)
		if err != nil {
			return nil, err
		}
		compiled[name] = items
	}
	return compiled, nil
}
