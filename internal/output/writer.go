// Package output renders a completed scan into one of the CLI's report
// formats. This is a presentation layer on top of internal/report's
// strict §6 JSON encoder — it is free to add fields (like a response
// title) that the engine's stable JSON shape never carries.
package output

import "github.com/corvidsec/waflex/internal/report"

// VariantView is one dispatched variant, enriched for CLI display with
// a page title when the response body was HTML. Title never influences
// classification — it is populated after the fact from an already
// classified report.VariationResult.
type VariantView struct {
	Variation string
	Status    int
	Size      int
	TimeMS    float64
	Bypass    bool
	Reason    string
	Title     string
}

// ScanView is a full test_variations report ready for CLI rendering.
type ScanView struct {
	URL        string
	Baseline   report.BaselineResult
	Variations []VariantView
	Summary    report.Summary
}

// FromResult builds a ScanView from the engine's report, with titles
// left blank; callers that want title enrichment call EnrichTitles
// separately with the raw response bodies.
func FromResult(url string, r *report.TestVariationsResult) ScanView {
	views := make([]VariantView, len(r.Variations))
	for i, v := range r.Variations {
		views[i] = VariantView{
			Variation: v.Variation,
			Status:    v.Status,
			Size:      v.Size,
			TimeMS:    v.TimeMS,
			Bypass:    v.Bypass,
			Reason:    v.Reason,
		}
	}
	return ScanView{
		URL:        url,
		Baseline:   r.Baseline,
		Variations: views,
		Summary:    r.Summary,
	}
}

// Writer renders a ScanView and returns the result as a string.
// Implementations must not mutate the
// view they're given.
type Writer interface {
	Write(v ScanView) (string, error)
}
