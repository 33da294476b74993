package config

// HostConfig tunes the extension host.
type HostConfig struct {
	// MaxConcurrentCalls bounds in-flight operation dispatches.
	MaxConcurrentCalls int64 `yaml:"max_concurrent_calls"`

	// VerifyManifests makes loads fail when a unit does not satisfy its
	// manifest in the fixtures directory.
	VerifyManifests bool `yaml:"verify_manifests"`
}

// DefaultHostConfig returns host defaults.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		MaxConcurrentCalls: 64,
		VerifyManifests:    true,
	}
}
