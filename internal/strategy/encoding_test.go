package strategy

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestEncodingVariantsOrderAndCount(t *testing.T) {
	out := EncodingVariants("/a", EncodingOptions{Seed: 1})
	if len(out) != 7 {
		t.Fatalf("got %d variants, want 7", len(out))
	}
	if out[0] != "%2Fa" {
		t.Errorf("single = %q", out[0])
	}
	if out[1] != "%252Fa" {
		t.Errorf("double = %q", out[1])
	}
	if out[2] != "%25252Fa" {
		t.Errorf("triple = %q", out[2])
	}
}

func TestHTMLEntityEncode(t *testing.T) {
	got := htmlEntityEncode("/a")
	if got != "&#47;&#97;" {
		t.Errorf("htmlEntityEncode(/a) = %q", got)
	}
}

func TestUnicodeEscapeEncode(t *testing.T) {
	got := unicodeEscapeEncode("/a")
	if got != "\\u002F\\u0061" {
		t.Errorf("unicodeEscapeEncode(/a) = %q", got)
	}
}

func TestEncodingVariantsDeterministicWithSeed(t *testing.T) {
	a := EncodingVariants("/admin/secret", EncodingOptions{Seed: 42})
	b := EncodingVariants("/admin/secret", EncodingOptions{Seed: 42})
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("index %d differs across identical seeds: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestEncodingVariantsDifferentSeedsCanDiffer(t *testing.T) {
	a := EncodingVariants("/admin/secret/path/here", EncodingOptions{Seed: 1})
	b := EncodingVariants("/admin/secret/path/here", EncodingOptions{Seed: 2})
	mixedA, mixedB := a[5], b[5]
	if mixedA == mixedB {
		t.Errorf("expected mixed encodings to differ across seeds for a long input")
	}
}

func TestPartialEncodeZeroProbabilityIsIdentity(t *testing.T) {
	out := EncodingVariants("/admin", EncodingOptions{Seed: 1, PartialProbability: 1e-9})
	partial := out[6]
	if strings.Contains(partial, "%") {
		t.Errorf("expected near-zero probability partial encode to leave input untouched, got %q", partial)
	}
}

func TestMixedEncodeOnlyProducesKnownForms(t *testing.T) {
	in := "/admin/x"
	out := mixedEncode(in, rand.New(rand.NewSource(7)))
	if out == "" {
		t.Fatal("empty mixed encoding")
	}
	rest := out
	for i := 0; i < len(in); i++ {
		c := in[i]
		pct, ent := fmt.Sprintf("%%%02X", c), fmt.Sprintf("&#%d;", c)
		switch {
		case strings.HasPrefix(rest, pct):
			rest = rest[len(pct):]
		case strings.HasPrefix(rest, ent):
			rest = rest[len(ent):]
		case rest != "" && rest[0] == c:
			rest = rest[1:]
		default:
			t.Fatalf("byte %q of %q not encoded as identity, %%HH or &#N; in %q", c, in, out)
		}
	}
	if rest != "" {
		t.Errorf("unexpected trailing output %q in %q", rest, out)
	}
}
