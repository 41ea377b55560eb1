package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// TextWriter renders a ScanView as a colorized terminal summary:
// bypasses in green, soft-404s in yellow, everything else dim.
type TextWriter struct {
	NoColor bool
}

var (
	bypassColor  = color.New(color.FgGreen, color.Bold)
	soft404Color = color.New(color.FgYellow)
	failColor    = color.New(color.FgHiBlack)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

// Write renders v as a human-readable report.
func (w TextWriter) Write(v ScanView) (string, error) {
	if w.NoColor {
		color.NoColor = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerColor.Sprintf("target: %s", v.URL))
	fmt.Fprintf(&b, "baseline: status=%d size=%d time=%.1fms\n\n", v.Baseline.Status, v.Baseline.Size, v.Baseline.TimeMS)

	for _, variant := range v.Variations {
		line := fmt.Sprintf("[%3d] %-40s size=%-8d %s", variant.Status, variant.Variation, variant.Size, variant.Reason)
		if variant.Title != "" {
			line += fmt.Sprintf(" title=%q", variant.Title)
		}
		switch {
		case variant.Bypass:
			b.WriteString(bypassColor.Sprint(line))
		case strings.Contains(variant.Reason, "soft_404"):
			b.WriteString(soft404Color.Sprint(line))
		default:
			b.WriteString(failColor.Sprint(line))
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nsummary: %d tested, %d bypasses, %d failed\n",
		v.Summary.TotalTested, v.Summary.SuccessfulBypasses, v.Summary.FailedAttempts())

	return b.String(), nil
}
