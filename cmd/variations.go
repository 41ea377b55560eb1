package cmd

import (
	"fmt"

	"github.com/corvidsec/waflex/internal/engine"
	"github.com/spf13/cobra"
)

var variationsCmd = &cobra.Command{
	Use:   "variations <url>",
	Short: "Run the full scan and print the engine's stable JSON report shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := engine.New(buildPolicy())
		result, err := e.TestVariations(args[0])
		if err != nil {
			return fmt.Errorf("%s (last_error: %s)", err, e.LastError())
		}
		return writeReport(result.MarshalJSON())
	},
}
