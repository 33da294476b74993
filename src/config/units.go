package config

// UnitsConfig selects and configures units.
type UnitsConfig struct {
	// Enabled restricts loading to the listed units. Empty means all
	// registered units.
	Enabled []string `yaml:"enabled"`

	// Disabled excludes units from loading, after Enabled is applied.
	Disabled []string `yaml:"disabled"`

	// Options holds per-unit option maps, handed to units that accept
	// configuration.
	Options map[string]map[string]any `yaml:"options"`
}

// DefaultUnitsConfig returns unit selection defaults.
func DefaultUnitsConfig() UnitsConfig {
	return UnitsConfig{}
}

// Select filters the registered unit names through Enabled/Disabled.
func (c UnitsConfig) Select(registered []string) []string {
	skip := make(map[string]bool, len(c.Disabled))
	for _, name := range c.Disabled {
		skip[name] = true
	}

	candidates := registered
	if len(c.Enabled) > 0 {
		candidates = c.Enabled
	}

	var out []string
	for _, name := range candidates {
		if !skip[name] {
			out = append(out, name)
		}
	}
	return out
}
