package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	"gopkg.in/yaml.v3"
)

// Catalog is the ordered set of presets offered to clients.
type Catalog struct {
	Presets []Preset `toml:"presets" yaml:"presets"`
}

// DefaultCatalog is served when no catalog file is configured.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Presets: []Preset{
			{ID: "react", Icon: "react", Name: "React", SandboxID: "react-starter"},
		},
	}
}

// ResolvePath joins name under dataDir without letting it escape.
// Absolute names are returned as is.
func ResolvePath(dataDir, name string) (string, error) {
	if filepath.IsAbs(name) || dataDir == "" {
		return name, nil
	}
	return securejoin.SecureJoin(dataDir, name)
}

// LoadCatalog reads a TOML or YAML catalog, chosen by file extension.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks that ids are present, unique, and not the NoPreset sentinel.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Presets))
	for i, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("preset %d: id is required", i)
		}
		if p.ID == NoPreset {
			return fmt.Errorf("preset %d: id %q is reserved", i, NoPreset)
		}
		if seen[p.ID] {
			return fmt.Errorf("preset %d: duplicate id %q", i, p.ID)
		}
		if p.Name == "" {
			return fmt.Errorf("preset %s: name is required", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// List returns a copy of the presets in catalog order.
func (c *Catalog) List() []Preset {
	out := make([]Preset, len(c.Presets))
	copy(out, c.Presets)
	return out
}
