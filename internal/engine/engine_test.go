package engine

import (
	"testing"

	"github.com/corvidsec/waflex/internal/config"
)

func TestVersionIsStable(t *testing.T) {
	if Version() != "0.1.0" {
		t.Errorf("Version() = %q, want 0.1.0", Version())
	}
}

func TestScanReturnsFirstVariantsAndURL(t *testing.T) {
	e := New(config.Default())
	result, err := e.Scan("http://example.com/admin")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if result.URL != "http://example.com/admin" {
		t.Errorf("URL = %q, want unchanged input", result.URL)
	}
	if len(result.Variations) == 0 {
		t.Error("expected non-empty variations")
	}
	if e.LastError() != "" {
		t.Errorf("LastError() = %q, want empty after success", e.LastError())
	}
}

func TestScanInvalidURLSetsLastError(t *testing.T) {
	e := New(config.Default())
	_, err := e.Scan("http://example.com:bad/admin")
	if err == nil {
		t.Fatal("expected error for invalid url")
	}
	if e.LastError() == "" {
		t.Error("expected LastError() populated after failure")
	}
	if StatusCode(err) != 4 {
		t.Errorf("StatusCode = %d, want 4 (INVALID_URL)", StatusCode(err))
	}
}

func TestTestTechniquePathBypass(t *testing.T) {
	e := New(config.Default())
	variants, err := e.TestTechnique("http://example.com/admin", TechniquePathBypass)
	if err != nil {
		t.Fatalf("TestTechnique: %v", err)
	}
	if len(variants) == 0 {
		t.Error("expected non-empty path_bypass variants")
	}
}

func TestTestTechniqueURLEncoding(t *testing.T) {
	e := New(config.Default())
	variants, err := e.TestTechnique("http://example.com/admin", TechniqueURLEncoding)
	if err != nil {
		t.Fatalf("TestTechnique: %v", err)
	}
	if len(variants) != 7 {
		t.Errorf("url_encoding variant count = %d, want 7", len(variants))
	}
}

func TestTestTechniqueUnknownYieldsEmptySuccess(t *testing.T) {
	e := New(config.Default())
	variants, err := e.TestTechnique("http://example.com/admin", "not_a_real_technique")
	if err != nil {
		t.Fatalf("TestTechnique: %v, want SUCCESS for unknown technique", err)
	}
	if len(variants) != 0 {
		t.Errorf("expected empty variations for unknown technique, got %d", len(variants))
	}
}

func TestDetectWAFStub(t *testing.T) {
	e := New(config.Default())
	info, err := e.DetectWAF("http://example.com/")
	if err != nil {
		t.Fatalf("DetectWAF: %v", err)
	}
	if info.Type != "unknown" || info.Confidence != 0.0 {
		t.Errorf("DetectWAF = %+v, want {unknown 0}", info)
	}
	if info.MarshalJSON() != `{"type":"unknown","confidence":0}` {
		t.Errorf("MarshalJSON() = %q", info.MarshalJSON())
	}
}

func TestTestVariationsRejectsInvalidURL(t *testing.T) {
	e := New(config.Default())
	_, err := e.TestVariations("not a url at all ://")
	if err == nil {
		t.Fatal("expected error for invalid url")
	}
}
