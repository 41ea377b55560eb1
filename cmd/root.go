package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/corvidsec/waflex/internal/config"
	"github.com/corvidsec/waflex/pkg/version"
	"github.com/spf13/cobra"
)

// flags holds every persistent flag shared by waflex's subcommands, in
// the shape a config.ScanPolicy is built from once cobra has parsed
// os.Args.
var flags struct {
	timeout         time.Duration
	strategy        string
	techniques      []string
	output          string
	format          string
	headers         []string
	insecure        bool
	followRedirects bool
	hook            string
	logFile         string
	verbose         bool
	noColor         bool
	requestFile     string
}

var rootCmd = &cobra.Command{
	Use:     "waflex <command> <url>",
	Short:   "Access-control bypass probe: mutate a denied request, see what the origin actually enforces",
	Version: version.Version,
	Long: `waflex takes a URL that returned an access-denied response and generates
a family of bypass-variant requests — path mutations, encoding tricks,
forged headers, protocol abuse, and Unicode homographs — dispatches them
to the origin, and reports which ones produced a materially different
response.`,
	Example: `  waflex scan https://example.com/admin
  waflex test https://example.com/admin --technique path_bypass
  waflex variations https://example.com/admin --strategy thorough
  waflex detect https://example.com
  waflex list`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.DurationVar(&flags.timeout, "timeout", 10*time.Second, "Per-request timeout")
	pf.StringVar(&flags.strategy, "strategy", "balanced", "Dispatch pacing: fast, balanced, thorough, stealth")
	pf.StringSliceVar(&flags.techniques, "techniques", config.DefaultTechniques, "Technique families recorded in the scan policy (not read by any subcommand; use test --technique)")
	pf.StringVarP(&flags.output, "output", "o", "", "Write the report to this file instead of stdout")
	pf.StringVar(&flags.format, "format", "text", "Report format: text, json, csv, html")
	pf.StringArrayVarP(&flags.headers, "header", "H", nil, "Extra request header 'Key: Value' (repeatable)")
	pf.BoolVar(&flags.insecure, "insecure", true, "Skip TLS certificate verification")
	pf.BoolVar(&flags.followRedirects, "follow-redirects", false, "Follow HTTP redirects")
	pf.StringVar(&flags.hook, "hook", "", "Shell command to run once per confirmed bypass")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file in addition to stderr")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose (debug-level) logging")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored text output")
	pf.StringVarP(&flags.requestFile, "request-file", "r", "", "Seed baseline headers from a captured raw HTTP request")

	rootCmd.AddCommand(scanCmd, testCmd, variationsCmd, detectCmd, listCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildPolicy assembles a config.ScanPolicy from the parsed persistent
// flags, layered onto config.Default().
func buildPolicy() config.ScanPolicy {
	p := config.Default()
	p.Strategy = config.Strategy(flags.strategy)
	p.Timeout = flags.timeout
	p.Techniques = flags.techniques
	p.OutputFormat = flags.format
	p.VerifySSL = !flags.insecure
	p.FollowRedirects = flags.followRedirects
	p.HookCommand = flags.hook
	p.LogFile = flags.logFile
	p.RequestFile = flags.requestFile
	p.ExtraHeaders = flags.headers
	if flags.verbose {
		p.Verbosity = "debug"
	}
	return p
}

// writeReport sends rendered to flags.output if set, otherwise stdout.
func writeReport(rendered string) error {
	if flags.output == "" {
		fmt.Println(rendered)
		return nil
	}
	return os.WriteFile(flags.output, []byte(rendered+"\n"), 0644)
}
