package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/corvidsec/waflex/internal/engine"
	"github.com/spf13/cobra"
)

var testTechnique string

var testCmd = &cobra.Command{
	Use:   "test <url>",
	Short: "Generate variants for a single named technique without dispatching them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := engine.New(buildPolicy())
		variants, err := e.TestTechnique(args[0], testTechnique)
		if err != nil {
			return fmt.Errorf("%s (last_error: %s)", err, e.LastError())
		}

		if flags.format == "json" {
			data, err := json.MarshalIndent(struct {
				Variations []string `json:"variations"`
			}{Variations: variants}, "", "  ")
			if err != nil {
				return err
			}
			return writeReport(string(data))
		}

		var out string
		for _, v := range variants {
			out += v + "\n"
		}
		return writeReport(out)
	},
}

func init() {
	testCmd.Flags().StringVar(&testTechnique, "technique", engine.TechniquePathBypass, "Technique name: path_bypass, url_encoding")
}
