package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/extkit/src/ext"

	// Built-in units register themselves on import.
	_ "github.com/sofmeright/extkit/src/ext/units"
)

var unitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Work with extension units",
}

func init() {
	rootCmd.AddCommand(unitCmd)
}

// newHost builds a host from the loaded config: per-unit options, call
// concurrency, and manifest verification against the fixtures directory.
func newHost() (*ext.Host, *ext.ManifestSet, error) {
	manifests, err := ext.LoadManifestDir(cfg.Fixtures.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading manifests: %w", err)
	}

	opts := ext.HostOptions{
		MaxConcurrentCalls: cfg.Host.MaxConcurrentCalls,
		UnitOptions:        cfg.Units.Options,
	}
	if cfg.Host.VerifyManifests {
		opts.Manifests = manifests
	}
	return ext.NewHost(opts), manifests, nil
}
