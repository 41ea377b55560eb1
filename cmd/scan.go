package cmd

import (
	"fmt"
	"os"

	"github.com/corvidsec/waflex/internal/output"
	"github.com/corvidsec/waflex/internal/probe"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Run a full baseline-plus-variant scan and print a formatted report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		policy := buildPolicy()

		orchestrator := probe.New(policy)

		var bar *progressbar.ProgressBar
		if term.IsTerminal(int(os.Stderr.Fd())) {
			bar = progressbar.Default(int64(policy.DispatchCap()), "dispatching")
		}

		var bodies [][]byte
		result, err := orchestrator.ScanWithBodies(url, policy, func(index int, body []byte) {
			bodies = append(bodies, body)
			if bar != nil {
				bar.Add(1)
			}
		})
		if err != nil {
			return err
		}
		if bar != nil {
			bar.Finish()
		}

		view := output.FromResult(url, result)
		output.EnrichTitles(&view, bodies)

		writer := writerForFormat(flags.format)
		rendered, err := writer.Write(view)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		return writeReport(rendered)
	},
}

func writerForFormat(format string) output.Writer {
	switch format {
	case "json":
		return output.JSONWriter{}
	case "csv":
		return output.CSVWriter{}
	case "html":
		return output.HTMLWriter{}
	default:
		return output.TextWriter{NoColor: flags.noColor}
	}
}
