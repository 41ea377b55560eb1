// Package report renders scan results into the engine's stable JSON
// shapes. Escaping is hand-rolled rather than delegated to encoding/json
// because control bytes and DEL need uppercase \u00XX escapes, and every
// other byte — including raw non-ASCII bypass payloads — must pass
// through literally rather than through UTF-8 validation.
package report

import (
	"fmt"
	"strings"
)

// EscapeString renders s as the contents of a JSON string literal
// (without the surrounding quotes): NUL becomes \u0000; ", \, \n, \r, \t use their standard short escapes; any other
// byte below 0x20 or equal to 0x7F becomes an uppercase \u00XX escape;
// every other byte, including multi-byte UTF-8 sequences, passes through
// unchanged.
func EscapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case 0x00:
			b.WriteString(`\u0000`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7F {
				fmt.Fprintf(&b, `\u00%02X`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

// Quote wraps EscapeString's output in double quotes.
func Quote(s string) string {
	return `"` + EscapeString(s) + `"`
}

// ScanResult is the shape returned by the scan endpoint: the target URL
// plus its first 10 generated path variants.
type ScanResult struct {
	URL        string
	Variations []string
}

// MaxScanVariations bounds the variations array in a scan result.
const MaxScanVariations = 10

// MarshalJSON renders r as {"url": ..., "variations": [...]}, truncating
// Variations to MaxScanVariations entries.
func (r ScanResult) MarshalJSON() string {
	variants := r.Variations
	if len(variants) > MaxScanVariations {
		variants = variants[:MaxScanVariations]
	}
	var b strings.Builder
	b.WriteString(`{"url":`)
	b.WriteString(Quote(r.URL))
	b.WriteString(`,"variations":[`)
	for i, v := range variants {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Quote(v))
	}
	b.WriteString(`]}`)
	return b.String()
}

// BaselineResult is the baseline entry in a test_variations report.
type BaselineResult struct {
	Status int
	Size   int
	TimeMS float64
}

func (b BaselineResult) marshal() string {
	return fmt.Sprintf(`{"status":%d,"size":%d,"time":%s}`, b.Status, b.Size, formatFloat(b.TimeMS))
}

// VariationResult is one dispatched-variant entry in a test_variations
// report.
type VariationResult struct {
	Variation string
	Status    int
	Size      int
	TimeMS    float64
	Bypass    bool
	Reason    string
}

func (v VariationResult) marshal() string {
	return fmt.Sprintf(
		`{"variation":%s,"status":%d,"size":%d,"time":%s,"bypass":%t,"reason":%s}`,
		Quote(v.Variation), v.Status, v.Size, formatFloat(v.TimeMS), v.Bypass, Quote(v.Reason),
	)
}

// Summary counts outcomes across a scan's dispatched variants.
type Summary struct {
	TotalTested        int
	SuccessfulBypasses int
}

// FailedAttempts is always derived, never stored independently, so it
// can never drift from the two counts it's computed from.
func (s Summary) FailedAttempts() int {
	return s.TotalTested - s.SuccessfulBypasses
}

func (s Summary) marshal() string {
	return fmt.Sprintf(
		`{"total_tested":%d,"successful_bypasses":%d,"failed_attempts":%d}`,
		s.TotalTested, s.SuccessfulBypasses, s.FailedAttempts(),
	)
}

// TestVariationsResult is the full shape returned by test_variations:
// the baseline, every dispatched variant in order, and a summary.
type TestVariationsResult struct {
	Baseline   BaselineResult
	Variations []VariationResult
	Summary    Summary
}

// MarshalJSON renders r as
// {"baseline":...,"variations":[...],"summary":...}.
func (r TestVariationsResult) MarshalJSON() string {
	var b strings.Builder
	b.WriteString(`{"baseline":`)
	b.WriteString(r.Baseline.marshal())
	b.WriteString(`,"variations":[`)
	for i, v := range r.Variations {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.marshal())
	}
	b.WriteString(`],"summary":`)
	b.WriteString(r.Summary.marshal())
	b.WriteString(`}`)
	return b.String()
}

// formatFloat renders a duration in milliseconds without a trailing
// ".0000" for whole numbers, matching what a JSON number literal for a
// wall-clock measurement should look like.
func formatFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	return s
}
