package cmd

import (
	"fmt"

	"github.com/corvidsec/waflex/internal/engine"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect <url>",
	Short: "WAF fingerprinting (stub: always reports unknown)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := engine.New(buildPolicy())
		info, err := e.DetectWAF(args[0])
		if err != nil {
			return fmt.Errorf("%s (last_error: %s)", err, e.LastError())
		}
		return writeReport(info.MarshalJSON())
	},
}
