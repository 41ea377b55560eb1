package urlmodel

import "testing"

func TestParseDefaults(t *testing.T) {
	u, err := Parse("http://h")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Path != "/" {
		t.Errorf("Path = %q, want /", u.Path)
	}
	if u.Port != 80 {
		t.Errorf("Port = %d, want 80", u.Port)
	}
}

func TestParseExplicitPort(t *testing.T) {
	u, err := Parse("http://h:65535/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Port != 65535 {
		t.Errorf("Port = %d, want 65535", u.Port)
	}
}

func TestParseNonNumericPortFails(t *testing.T) {
	if _, err := Parse("http://h:abc/"); err != ErrInvalidURL {
		t.Errorf("err = %v, want ErrInvalidURL", err)
	}
}

func TestParseEmptyHostFails(t *testing.T) {
	if _, err := Parse("http:///path"); err != ErrInvalidURL {
		t.Errorf("err = %v, want ErrInvalidURL", err)
	}
}

func TestBuildRoundTrip(t *testing.T) {
	in := "http://example.com/admin/panel?x=1#frag"
	u, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.Build(); got != in {
		t.Errorf("Build() = %q, want %q", got, in)
	}
}

func TestBuildSchemelessDefaults(t *testing.T) {
	u, err := Parse("example.com")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Scheme != "http" {
		t.Errorf("Scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/" {
		t.Errorf("Path = %q, want /", u.Path)
	}
}

func TestHostPort(t *testing.T) {
	u, _ := Parse("https://example.com/x")
	if got := u.HostPort(); got != "example.com:443" {
		t.Errorf("HostPort() = %q", got)
	}
}
