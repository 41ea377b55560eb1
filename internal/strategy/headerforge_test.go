package strategy

import "testing"

func TestForwardedForVariantsCount(t *testing.T) {
	out := ForwardedForVariants()
	want := len(forwardedForHeaders) * len(forwardedForIPs)
	if len(out) != want {
		t.Fatalf("got %d variants, want %d", len(out), want)
	}
	if out[0][0].Name != "X-Forwarded-For" || out[0][0].Value != "127.0.0.1" {
		t.Errorf("first variant = %+v", out[0])
	}
}

func TestForwardedForVariantsHeaderMajorOrder(t *testing.T) {
	out := ForwardedForVariants()
	n := len(forwardedForIPs)
	for i := 0; i < n; i++ {
		if out[i][0].Name != "X-Forwarded-For" {
			t.Errorf("index %d name = %q, want X-Forwarded-For", i, out[i][0].Name)
		}
	}
	if out[n][0].Name != "X-Real-IP" {
		t.Errorf("index %d name = %q, want X-Real-IP", n, out[n][0].Name)
	}
}

func TestRewriteVariantsBindPath(t *testing.T) {
	out := RewriteVariants("/admin")
	for _, hs := range out {
		if hs[0].Value != "/admin" {
			t.Errorf("rewrite variant %+v does not bind /admin", hs)
		}
	}
	if len(out) != 4 {
		t.Fatalf("got %d rewrite variants, want 4", len(out))
	}
}

func TestHostOverrideVariants(t *testing.T) {
	out := HostOverrideVariants()
	if len(out) != 6 {
		t.Fatalf("got %d host-override variants, want 6", len(out))
	}
	for _, hs := range out {
		if hs[0].Name != "Host" {
			t.Errorf("variant %+v not a Host header", hs)
		}
	}
}

func TestAuthSpoofVariants(t *testing.T) {
	out := AuthSpoofVariants()
	if len(out) != 6 {
		t.Fatalf("got %d auth-spoof variants, want 6", len(out))
	}
}

func TestHeaderForgeVariantsOrder(t *testing.T) {
	out := HeaderForgeVariants("/admin")
	wantLen := len(ForwardedForVariants()) + len(RewriteVariants("/admin")) + len(HostOverrideVariants()) + len(AuthSpoofVariants())
	if len(out) != wantLen {
		t.Fatalf("got %d, want %d", len(out), wantLen)
	}
	ffLen := len(ForwardedForVariants())
	if out[ffLen][0].Name != "X-Original-URL" {
		t.Errorf("rewrite block does not start where expected: %+v", out[ffLen])
	}
}
