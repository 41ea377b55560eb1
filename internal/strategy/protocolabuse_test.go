package strategy

import "testing"

func TestMethodVariants(t *testing.T) {
	out := MethodVariants("GET")
	want := []string{"GET", "get", "GET", "Get", "GET ", "GETX",
		"GETT", "POSTX", "PUTT", "DELETEX", "get", "Get", "GET "}
	if len(out) != len(want) {
		t.Fatalf("got %d variants, want %d: %q", len(out), len(want), out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("index %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestHTTPVersionVariants(t *testing.T) {
	want := []string{"0.9", "1.0", "1.1", "2.0"}
	for i, v := range want {
		if HTTPVersionVariants[i] != v {
			t.Errorf("index %d = %q, want %q", i, HTTPVersionVariants[i], v)
		}
	}
}

func TestApplyRewriteDuplicateHeaders(t *testing.T) {
	base := HeaderSet{{Name: "Host", Value: "example.com"}}
	out, ver := ApplyRewrite(RewriteAddDuplicateHeaders, base)
	if ver != "" {
		t.Errorf("version = %q, want unchanged", ver)
	}
	if len(out) != 2 || out[1].Name != "Host" || out[1].Value != "localhost" {
		t.Errorf("out = %+v", out)
	}
	if len(base) != 1 {
		t.Errorf("ApplyRewrite mutated caller's slice: %+v", base)
	}
}

func TestApplyRewriteConflictingHeaders(t *testing.T) {
	out, _ := ApplyRewrite(RewriteAddConflictingHeaders, nil)
	if len(out) != 2 {
		t.Fatalf("got %d headers, want 2", len(out))
	}
	if out[0].Name != "Content-Length" || out[0].Value != "10" {
		t.Errorf("first header = %+v", out[0])
	}
	if out[1].Name != "Transfer-Encoding" || out[1].Value != "chunked" {
		t.Errorf("second header = %+v", out[1])
	}
}

func TestApplyRewriteDowngrade09ClearsHeaders(t *testing.T) {
	base := HeaderSet{{Name: "Host", Value: "example.com"}, {Name: "User-Agent", Value: "x"}}
	out, ver := ApplyRewrite(RewriteDowngrade09, base)
	if ver != "0.9" {
		t.Errorf("version = %q, want 0.9", ver)
	}
	if len(out) != 0 {
		t.Errorf("out = %+v, want cleared", out)
	}
}

func TestApplyRewriteDowngrade10KeepsHeaders(t *testing.T) {
	base := HeaderSet{{Name: "Host", Value: "example.com"}}
	out, ver := ApplyRewrite(RewriteDowngrade10, base)
	if ver != "1.0" {
		t.Errorf("version = %q, want 1.0", ver)
	}
	if len(out) != 1 {
		t.Errorf("out = %+v, want headers preserved", out)
	}
}
