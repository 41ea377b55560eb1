package strategy

import (
	"strings"
	"testing"
)

func TestPathVariantsRootHasNoTrailingSlashStrip(t *testing.T) {
	// "/" has length 1, so the trailing-slash stage must not emit an
	// empty stripped variant (there's nothing to strip to).
	out := PathVariants("/")
	if contains(out, "") {
		t.Errorf("PathVariants(%q) produced an empty variant, got %q", "/", out)
	}
}

func TestPathVariantsIncludesNullByte(t *testing.T) {
	out := PathVariants("/admin")
	found := false
	for _, v := range out {
		if strings.HasSuffix(v, "\x00") && !strings.Contains(v, "%00") {
			found = true
		}
	}
	if !found {
		t.Errorf("PathVariants(%q) missing raw null-byte variant, got %q", "/admin", out)
	}
}

func TestPathVariantsIncludesPercentEncodedNull(t *testing.T) {
	out := PathVariants("/admin")
	want := []string{"/admin%00", "/admin%00.jpg", "/admin%00.php", "/admin%00.html"}
	for _, w := range want {
		if !contains(out, w) {
			t.Errorf("PathVariants(%q) missing %q", "/admin", w)
		}
	}
}

func TestPathVariantsTrailingSlashAdd(t *testing.T) {
	out := PathVariants("/admin")
	for _, w := range []string{"/admin/", "/admin//", "/admin/.", "/admin/./"} {
		if !contains(out, w) {
			t.Errorf("missing %q in %q", w, out)
		}
	}
}

func TestPathVariantsTrailingSlashStrip(t *testing.T) {
	out := PathVariants("/admin/")
	if !contains(out, "/admin") {
		t.Errorf("expected stripped /admin in %q", out)
	}
}

func TestPathVariantsCaseVariants(t *testing.T) {
	// The case stage follows four trailing-slash variants and one
	// char-substitution variant ("/Admi%6e"). GenerateCaseVariations
	// upper-cases the first byte, which is the '/', so its third output is
	// "/admin" rather than the input "/Admin".
	out := PathVariants("/Admin")
	for i, w := range []string{"/ADMIN", "/admin", "/admin"} {
		if len(out) <= 5+i || out[5+i] != w {
			t.Errorf("missing case variant %q at index %d in %q", w, 5+i, out)
		}
	}
}

func TestPathVariantsTraversal(t *testing.T) {
	out := PathVariants("/admin")
	for _, w := range []string{"/./admin", "/../admin", "/allowed/../admin", "/public/../admin", "/static/../admin"} {
		if !contains(out, w) {
			t.Errorf("missing traversal variant %q in %q", w, out)
		}
	}
}

func TestPathVariantsSemicolon(t *testing.T) {
	out := PathVariants("/admin")
	for _, w := range []string{"/admin;", "/admin;/", "/admin;x", "/admin;.jpg"} {
		if !contains(out, w) {
			t.Errorf("missing semicolon variant %q in %q", w, out)
		}
	}
}

func TestPathVariantsPercentEncodedDots(t *testing.T) {
	out := PathVariants("/admin")
	for _, w := range []string{"/%2e/admin", "/%2e%2e/admin"} {
		if !contains(out, w) {
			t.Errorf("missing percent-dot variant %q in %q", w, out)
		}
	}
}

func TestPathVariantsSubstituteEncodedChars(t *testing.T) {
	out := PathVariants("/env")
	found := false
	for _, v := range out {
		if strings.Contains(v, "%65") || strings.Contains(v, "%6e") || strings.Contains(v, "%76") {
			found = true
		}
	}
	if !found {
		t.Errorf("PathVariants(%q) missing char-substitution variant, got %q", "/env", out)
	}
}

func TestPathVariantsDeterministic(t *testing.T) {
	a := PathVariants("/secret/path")
	b := PathVariants("/secret/path")
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("index %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
