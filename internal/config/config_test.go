package config

import (
	"testing"
	"time"
)

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	p := Default()
	if p.Strategy != StrategyThorough {
		t.Errorf("Strategy = %q, want thorough (engine default hits the full 50-request ceiling)", p.Strategy)
	}
	if p.DispatchCap() != MaxDispatchCeiling {
		t.Errorf("DispatchCap() = %d, want the full %d ceiling by default", p.DispatchCap(), MaxDispatchCeiling)
	}
	if p.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", p.Timeout)
	}
	if p.Retries != 3 {
		t.Errorf("Retries = %d, want 3", p.Retries)
	}
	if len(p.Techniques) != 2 || p.Techniques[0] != "path_bypass" || p.Techniques[1] != "header_forge" {
		t.Errorf("Techniques = %v, want [path_bypass header_forge]", p.Techniques)
	}
	if p.FollowRedirects {
		t.Error("FollowRedirects should default off for probing")
	}
	if p.VerifySSL {
		t.Error("VerifySSL should default off for probing")
	}
}

func TestDefaultTechniquesSliceIsNotShared(t *testing.T) {
	a := Default()
	a.Techniques[0] = "mutated"
	b := Default()
	if b.Techniques[0] == "mutated" {
		t.Error("Default() must return an independent Techniques slice each call")
	}
}

func TestTimeoutMSOverridesOrchestratorDefault(t *testing.T) {
	p := ScanPolicy{Timeout: 5 * time.Second}
	if p.TimeoutMS() != 5000 {
		t.Errorf("TimeoutMS() = %d, want 5000", p.TimeoutMS())
	}
}

func TestTimeoutMSFallsBackWhenUnset(t *testing.T) {
	p := ScanPolicy{}
	if p.TimeoutMS() != 30000 {
		t.Errorf("TimeoutMS() = %d, want 30000 default", p.TimeoutMS())
	}
}

func TestDispatchCapNeverExceedsCeiling(t *testing.T) {
	for _, s := range []Strategy{StrategyFast, StrategyBalanced, StrategyThorough, StrategyStealth, "unknown"} {
		p := ScanPolicy{Strategy: s}
		if p.DispatchCap() > MaxDispatchCeiling {
			t.Errorf("strategy %q dispatch cap %d exceeds ceiling %d", s, p.DispatchCap(), MaxDispatchCeiling)
		}
	}
}

func TestDispatchCapThoroughHitsCeiling(t *testing.T) {
	p := ScanPolicy{Strategy: StrategyThorough}
	if p.DispatchCap() != MaxDispatchCeiling {
		t.Errorf("thorough cap = %d, want %d", p.DispatchCap(), MaxDispatchCeiling)
	}
}

func TestDispatchCapUnknownFallsBackToBalanced(t *testing.T) {
	p := ScanPolicy{Strategy: "bogus"}
	balanced := ScanPolicy{Strategy: StrategyBalanced}
	if p.DispatchCap() != balanced.DispatchCap() {
		t.Errorf("unknown strategy cap = %d, want balanced cap %d", p.DispatchCap(), balanced.DispatchCap())
	}
}

func TestDispatchCapFastAndStealthMatch(t *testing.T) {
	fast := ScanPolicy{Strategy: StrategyFast}
	stealth := ScanPolicy{Strategy: StrategyStealth}
	if fast.DispatchCap() != 10 || stealth.DispatchCap() != 10 {
		t.Errorf("fast/stealth caps = %d/%d, want 10/10", fast.DispatchCap(), stealth.DispatchCap())
	}
}
