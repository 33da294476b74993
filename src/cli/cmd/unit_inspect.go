package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/extkit/src/ext"
	"github.com/sofmeright/extkit/src/output"
)

var unitInspectCmd = &cobra.Command{
	Use:   "inspect <unit>",
	Short: "Show a unit's operations and manifest status",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnitInspect,
}

func init() {
	unitCmd.AddCommand(unitInspectCmd)
}

func runUnitInspect(cmd *cobra.Command, args []string) error {
	name := args[0]

	unit, err := ext.Get(name)
	if err != nil {
		return err
	}

	manifests, err := ext.LoadManifestDir(cfg.Fixtures.Dir)
	if err != nil {
		return fmt.Errorf("loading manifests: %w", err)
	}

	printer := output.NewPrinter()
	fmt.Fprintf(printer.Writer, "%s (%s)\n", unit.Name(), unit.Kind())
	for _, op := range unit.Ops() {
		printer.OpLine(op.Name, op.Arity, op.Doc)
	}

	m, ok := manifests.Lookup(name)
	if !ok {
		printer.Warnf("no manifest in %s", cfg.Fixtures.Dir)
		return nil
	}

	fmt.Fprintf(printer.Writer, "manifest: %s (version %s, requires-api %q)\n",
		m.Path, m.Version, m.RequiresAPI)
	if err := m.Verify(unit); err != nil {
		printer.Errorf("manifest check failed: %v", err)
		return err
	}
	fmt.Fprintf(printer.Writer, "manifest check: ok (host API %s)\n", ext.APIVersion)
	return nil
}
