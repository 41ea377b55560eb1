package output

import "encoding/json"

// jsonVariant and jsonScan mirror ScanView with json tags — kept
// separate from internal/report's hand-rolled encoder because the CLI
// output layer's shape (it carries Title) is not the engine's stable
// §6 wire format.
type jsonVariant struct {
	Variation string  `json:"variation"`
	Status    int     `json:"status"`
	Size      int     `json:"size"`
	TimeMS    float64 `json:"time_ms"`
	Bypass    bool    `json:"bypass"`
	Reason    string  `json:"reason"`
	Title     string  `json:"title,omitempty"`
}

type jsonScan struct {
	URL      string  `json:"url"`
	Baseline jsonBase `json:"baseline"`
	Variations []jsonVariant `json:"variations"`
	Summary  jsonSummary `json:"summary"`
}

type jsonBase struct {
	Status int     `json:"status"`
	Size   int     `json:"size"`
	TimeMS float64 `json:"time_ms"`
}

type jsonSummary struct {
	TotalTested        int `json:"total_tested"`
	SuccessfulBypasses int `json:"successful_bypasses"`
	FailedAttempts     int `json:"failed_attempts"`
}

// JSONWriter renders a ScanView as indented JSON.
type JSONWriter struct{}

func (JSONWriter) Write(v ScanView) (string, error) {
	out := jsonScan{
		URL: v.URL,
		Baseline: jsonBase{
			Status: v.Baseline.Status,
			Size:   v.Baseline.Size,
			TimeMS: v.Baseline.TimeMS,
		},
		Summary: jsonSummary{
			TotalTested:        v.Summary.TotalTested,
			SuccessfulBypasses: v.Summary.SuccessfulBypasses,
			FailedAttempts:     v.Summary.FailedAttempts(),
		},
	}
	out.Variations = make([]jsonVariant, len(v.Variations))
	for i, variant := range v.Variations {
		out.Variations[i] = jsonVariant{
			Variation: variant.Variation,
			Status:    variant.Status,
			Size:      variant.Size,
			TimeMS:    variant.TimeMS,
			Bypass:    variant.Bypass,
			Reason:    variant.Reason,
			Title:     variant.Title,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
