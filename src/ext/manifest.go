package ext

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
)

// APIVersion is the host ABI version manifests constrain against.
const APIVersion = "1.0.0"

// Manifest describes a unit on disk: identity, kind, and the operations
// it promises to expose. Manifests are TOML files, one per unit.
type Manifest struct {
	Name        string       `toml:"name"`
	Kind        UnitKind     `toml:"kind"`
	Version     string       `toml:"version"`
	RequiresAPI string       `toml:"requires-api"`
	Ops         []ManifestOp `toml:"ops"`

	Path string `toml:"-"`
}

// ManifestOp is one declared operation.
type ManifestOp struct {
	Name  string `toml:"name"`
	Arity int    `toml:"arity"`
}

// LoadManifest reads and validates a single manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	m.Path = path

	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s: missing unit name", path)
	}
	switch m.Kind {
	case KindPlatform, KindPure:
	case "":
		return nil, fmt.Errorf("manifest %s: missing kind", path)
	default:
		return nil, fmt.Errorf("manifest %s: kind must be %q or %q, got %q",
			path, KindPlatform, KindPure, m.Kind)
	}
	if m.Version != "" {
		if _, err := semver.NewVersion(m.Version); err != nil {
			return nil, fmt.Errorf("manifest %s: version %q: %w", path, m.Version, err)
		}
	}
	if m.RequiresAPI != "" {
		if _, err := semver.NewConstraint(m.RequiresAPI); err != nil {
			return nil, fmt.Errorf("manifest %s: requires-api %q: %w", path, m.RequiresAPI, err)
		}
	}
	return &m, nil
}

// CheckAPI reports whether the manifest's requires-api constraint accepts
// the host API version. An empty constraint accepts anything.
func (m *Manifest) CheckAPI() error {
	if m.RequiresAPI == "" {
		return nil
	}
	c, err := semver.NewConstraint(m.RequiresAPI)
	if err != nil {
		return fmt.Errorf("manifest %s: requires-api %q: %w", m.Path, m.RequiresAPI, err)
	}
	v := semver.MustParse(APIVersion)
	if !c.Check(v) {
		return fmt.Errorf("manifest %s: unit %s requires API %q, host provides %s",
			m.Path, m.Name, m.RequiresAPI, APIVersion)
	}
	return nil
}

// Verify checks a registered unit against its manifest: matching name and
// kind, a satisfied API constraint, and every declared operation present
// with the declared arity.
func (m *Manifest) Verify(unit Unit) error {
	if unit.Name() != m.Name {
		return fmt.Errorf("manifest %s: unit name %s does not match %s", m.Path, unit.Name(), m.Name)
	}
	if unit.Kind() != m.Kind {
		return fmt.Errorf("manifest %s: unit %s is %s, manifest says %s",
			m.Path, m.Name, unit.Kind(), m.Kind)
	}
	if err := m.CheckAPI(); err != nil {
		return err
	}

	ops := make(map[string]int, len(unit.Ops()))
	for _, op := range unit.Ops() {
		ops[op.Name] = op.Arity
	}
	for _, decl := range m.Ops {
		arity, ok := ops[decl.Name]
		if !ok {
			return fmt.Errorf("manifest %s: unit %s does not expose operation %s",
				m.Path, m.Name, decl.Name)
		}
		if arity != decl.Arity {
			return fmt.Errorf("manifest %s: operation %s.%s has arity %d, manifest says %d",
				m.Path, m.Name, decl.Name, arity, decl.Arity)
		}
	}
	return nil
}

// ManifestSet is a collection of manifests indexed by unit name.
type ManifestSet struct {
	byName map[string]*Manifest
}

// LoadManifestDir reads every .toml file in dir. A missing directory
// yields an empty set.
func LoadManifestDir(dir string) (*ManifestSet, error) {
	set := &ManifestSet{byName: make(map[string]*Manifest)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		m, err := LoadManifest(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if prev, dup := set.byName[m.Name]; dup {
			return nil, fmt.Errorf("manifest %s: unit %s already declared in %s",
				m.Path, m.Name, prev.Path)
		}
		set.byName[m.Name] = m
	}
	return set, nil
}

// Lookup returns the manifest for a unit name, if any.
func (s *ManifestSet) Lookup(name string) (*Manifest, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// Names returns sorted unit names with manifests.
func (s *ManifestSet) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of manifests in the set.
func (s *ManifestSet) Len() int { return len(s.byName) }
