package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/extkit/src/ext"
	"github.com/sofmeright/extkit/src/output"
)

var listLoad bool

var unitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered units",
	RunE:  runUnitList,
}

func init() {
	unitListCmd.Flags().BoolVar(&listLoad, "load", false, "load selected units before listing")
	unitCmd.AddCommand(unitListCmd)
}

func runUnitList(cmd *cobra.Command, args []string) error {
	host, manifests, err := newHost()
	if err != nil {
		return err
	}

	selected := cfg.Units.Select(ext.All())
	if listLoad {
		if err := host.LoadAll(cmd.Context(), selected); err != nil {
			return err
		}
	}

	printer := output.NewPrinter()
	rows := make([]output.UnitRow, 0, len(selected))
	for _, name := range selected {
		unit, err := ext.Get(name)
		if err != nil {
			return err
		}
		_, hasManifest := manifests.Lookup(name)
		rows = append(rows, output.UnitRow{
			Name:     name,
			Kind:     string(unit.Kind()),
			Ops:      len(unit.Ops()),
			Loaded:   host.Loaded(name),
			Manifest: hasManifest,
		})
	}
	printer.Units(rows)
	return nil
}
