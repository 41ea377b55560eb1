// Package classify implements the baseline-vs-variant differential
// classifier: a pure function of the two responses' status codes, sizes,
// and the variant's body, with no dependency on wall-clock time, network
// state, or prior calls.
package classify

import "regexp"

// Reason names one of the fixed classification outcomes.
type Reason string

const (
	ReasonConnectionFailed Reason = "connection_failed"
	ReasonPossibleSoft404  Reason = "possible_soft_404"
	ReasonSoft404Detected  Reason = "soft_404_detected"
	ReasonStatusChange     Reason = "status_change"
	ReasonSizeDifference   Reason = "size_difference"
	ReasonFailed           Reason = "failed"
)

// Verdict is the outcome of classifying one variant against a baseline.
type Verdict struct {
	Bypass bool
	Reason Reason
}

var notFoundPattern = regexp.MustCompile(`(?i)404|not found`)

// soft404SizeThreshold is the response-size ceiling below which a
// 2xx/3xx response is presumptively a soft 404 rather than a real page.
const soft404SizeThreshold = 100

// sizeGrowthThreshold is the fractional size increase, over the
// baseline, required to call an identical-status response a bypass.
const sizeGrowthThreshold = 0.30

// Classify is a pure function of the baseline status/size and the
// variant's status/size/body. Given identical inputs it always yields
// an identical verdict; the first matching rule wins.
func Classify(baselineStatus, baselineSize, variantStatus, variantSize int, variantBody string) Verdict {
	switch {
	case variantStatus == 0:
		return Verdict{Bypass: false, Reason: ReasonConnectionFailed}

	case baselineStatus >= 400 && variantStatus >= 200 && variantStatus < 400 && variantSize < soft404SizeThreshold:
		return Verdict{Bypass: false, Reason: ReasonPossibleSoft404}

	case baselineStatus >= 400 && variantStatus >= 200 && variantStatus < 400 && looksLikeSoft404(variantBody):
		return Verdict{Bypass: false, Reason: ReasonSoft404Detected}

	case baselineStatus >= 400 && variantStatus >= 200 && variantStatus < 400:
		return Verdict{Bypass: true, Reason: ReasonStatusChange}

	case variantStatus == baselineStatus && baselineSize > 0 && variantSize > 0 &&
		variantSize > baselineSize &&
		float64(variantSize-baselineSize)/float64(baselineSize) > sizeGrowthThreshold:
		return Verdict{Bypass: true, Reason: ReasonSizeDifference}

	default:
		return Verdict{Bypass: false, Reason: ReasonFailed}
	}
}

// looksLikeSoft404 reports whether body contains a literal "404" or a
// case-insensitive "not found" — the two markers most front-end 404
// pages leave in an otherwise-200 response.
func looksLikeSoft404(body string) bool {
	return notFoundPattern.MatchString(body)
}
