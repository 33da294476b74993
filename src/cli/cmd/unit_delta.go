package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/extkit/src/ext"
	"github.com/sofmeright/extkit/src/fixtures"
	"github.com/sofmeright/extkit/src/output"
)

var unitDeltaCmd = &cobra.Command{
	Use:   "delta",
	Short: "List units whose fixtures changed vs the baseline branch",
	RunE:  runUnitDelta,
}

func init() {
	unitCmd.AddCommand(unitDeltaCmd)
}

func runUnitDelta(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	manifests, err := ext.LoadManifestDir(cfg.Fixtures.Dir)
	if err != nil {
		return fmt.Errorf("loading manifests: %w", err)
	}

	delta := &fixtures.Delta{
		RootDir:      rootDir,
		TargetBranch: cfg.Fixtures.TargetBranch,
		Verbose:      verbose,
	}
	changed, err := delta.ChangedFiles(cmd.Context())
	if err != nil {
		return err
	}

	affected := fixtures.AffectedUnits(changed, manifests, cfg.Fixtures.Dir)
	printer := output.NewPrinter()
	if len(affected) == 0 {
		printer.Warnf("no affected units")
		return nil
	}
	for _, name := range affected {
		fmt.Fprintln(printer.Writer, name)
	}
	return nil
}
