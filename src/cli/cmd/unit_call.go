package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/extkit/src/ext"
	"github.com/sofmeright/extkit/src/output"
)

var callRepeat int

var unitCallCmd = &cobra.Command{
	Use:   "call <unit> <op> [args...]",
	Short: "Load a unit and invoke an operation",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runUnitCall,
}

func init() {
	unitCallCmd.Flags().IntVar(&callRepeat, "repeat", 1, "invoke the operation this many times")
	unitCmd.AddCommand(unitCallCmd)
}

func runUnitCall(cmd *cobra.Command, args []string) error {
	unitName, opName := args[0], args[1]

	host, _, err := newHost()
	if err != nil {
		return err
	}
	if _, err := host.Load(cmd.Context(), unitName); err != nil {
		return fmt.Errorf("loading unit %s: %w", unitName, err)
	}

	callArgs := make([]ext.Value, 0, len(args)-2)
	for _, a := range args[2:] {
		callArgs = append(callArgs, ext.ParseValue(a))
	}

	if callRepeat < 1 {
		callRepeat = 1
	}

	printer := output.NewPrinter()
	var result ext.Value
	for i := 0; i < callRepeat; i++ {
		result, err = host.Call(cmd.Context(), unitName, opName, callArgs...)
		if err != nil {
			return err
		}
	}
	printer.Result(unitName, opName, result.String())
	return nil
}
