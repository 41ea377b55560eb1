package strategy

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/corvidsec/waflex/internal/urlmodel"
)

// DefaultPartialEncodeProbability is the per-byte encode probability used
// by the partial-URL variant when the caller does not override it.
const DefaultPartialEncodeProbability = 0.5

// EncodingOptions configures the seedable parts of EncodingVariants so
// tests can pin down the mixed and partial outputs.
type EncodingOptions struct {
	// Seed drives the RNG for the mixed and partial-URL variants. Two
	// calls with the same seed and input produce identical output.
	Seed int64
	// PartialProbability is the per-byte encode probability for the
	// partial-URL variant. Zero means DefaultPartialEncodeProbability.
	PartialProbability float64
}

// EncodingVariants emits, in fixed order: single, double, triple URL
// encoding, an HTML-entity encoding, a \u00HH unicode-escape encoding, a
// per-byte-random "mixed" encoding, and a per-byte-probabilistic "partial"
// URL encoding. The last two consult opts for determinism.
func EncodingVariants(s string, opts EncodingOptions) []string {
	prob := opts.PartialProbability
	if prob == 0 {
		prob = DefaultPartialEncodeProbability
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	return []string{
		urlmodel.URLEncodeMulti(s, 1),
		urlmodel.URLEncodeMulti(s, 2),
		urlmodel.URLEncodeMulti(s, 3),
		htmlEntityEncode(s),
		unicodeEscapeEncode(s),
		mixedEncode(s, rng),
		partialEncode(s, rng, prob),
	}
}

// htmlEntityEncode renders every byte of s as a decimal HTML entity.
func htmlEntityEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(&b, "&#%d;", s[i])
	}
	return b.String()
}

// unicodeEscapeEncode renders every byte of s as a \u00HH escape.
func unicodeEscapeEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(&b, "\\u00%02X", s[i])
	}
	return b.String()
}

// mixedEncode independently chooses, per byte, among identity, %HH, and
// &#N; encoding.
func mixedEncode(s string, rng *rand.Rand) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch rng.Intn(3) {
		case 0:
			b.WriteByte(c)
		case 1:
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			fmt.Fprintf(&b, "&#%d;", c)
		}
	}
	return b.String()
}

// partialEncode independently percent-encodes each byte with probability
// prob, leaving the rest untouched.
func partialEncode(s string, rng *rand.Rand, prob float64) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if rng.Float64() < prob {
			fmt.Fprintf(&b, "%%%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
