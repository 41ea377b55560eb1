package output

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVWriter renders a ScanView as one row per dispatched variant, with
// a header row and one leading baseline row.
type CSVWriter struct{}

var csvHeader = []string{"variation", "status", "size", "time_ms", "bypass", "reason", "title"}

func (CSVWriter) Write(v ScanView) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	if err := w.Write([]string{
		"__baseline__",
		strconv.Itoa(v.Baseline.Status),
		strconv.Itoa(v.Baseline.Size),
		strconv.FormatFloat(v.Baseline.TimeMS, 'f', -1, 64),
		"false",
		"",
		"",
	}); err != nil {
		return "", err
	}

	for _, variant := range v.Variations {
		row := []string{
			variant.Variation,
			strconv.Itoa(variant.Status),
			strconv.Itoa(variant.Size),
			strconv.FormatFloat(variant.TimeMS, 'f', -1, 64),
			strconv.FormatBool(variant.Bypass),
			variant.Reason,
			variant.Title,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
