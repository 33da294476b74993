package config

// FixturesConfig locates unit manifests and the delta baseline.
type FixturesConfig struct {
	// Dir is the directory holding unit manifest files.
	Dir string `yaml:"dir"`

	// TargetBranch is the baseline branch fixture deltas are computed
	// against. Empty means auto-detect (CI env, then main/master).
	TargetBranch string `yaml:"target_branch"`
}

// DefaultFixturesConfig returns fixture defaults.
func DefaultFixturesConfig() FixturesConfig {
	return FixturesConfig{
		Dir: "fixtures",
	}
}
