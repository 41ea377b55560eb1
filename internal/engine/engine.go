package engine

import (
	"fmt"
	"sync"

	"github.com/corvidsec/waflex/internal/config"
	"github.com/corvidsec/waflex/internal/logging"
	"github.com/corvidsec/waflex/internal/probe"
	"github.com/corvidsec/waflex/internal/report"
	"github.com/corvidsec/waflex/internal/strategy"
	"github.com/corvidsec/waflex/internal/urlmodel"
	"github.com/corvidsec/waflex/pkg/version"
)

// Engine is a self-contained scan session: its own policy, its own
// logger, its own last-error slot. It is a Go value type, not a
// process-wide singleton — a caller wanting isolated scans (different
// timeouts, different hook commands, different log sinks) constructs
// one Engine per concern rather than mutating shared global state.
type Engine struct {
	policy config.ScanPolicy
	logger *logging.Logger

	mu      sync.Mutex
	lastErr error
}

// New builds an Engine using policy for every Scan/TestVariations call
// until reconfigured.
func New(policy config.ScanPolicy) *Engine {
	logger := logging.New(logging.Level(orDefault(policy.Verbosity, "info")))
	if policy.LogFile != "" {
		if err := logger.SetOutputFile(policy.LogFile, true); err != nil {
			logger.Warnf("opening log file %s: %v", policy.LogFile, err)
		}
	}
	return &Engine{
		policy: policy,
		logger: logger,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Version returns the engine's stable version string.
func Version() string {
	return version.Version
}

// LastError returns the message of the last error this Engine produced,
// or "" if the last call succeeded.
func (e *Engine) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastErr == nil {
		return ""
	}
	return e.lastErr.Error()
}

func (e *Engine) setLastErr(err error) error {
	e.mu.Lock()
	e.lastErr = err
	e.mu.Unlock()
	return err
}

// Scan generates the fixed path-bypass variants for url's path, without
// dispatching any request, and returns them alongside the target URL.
// ScanResult.MarshalJSON truncates them to the first 10 — the strict §6
// "scan" output shape, not the full test_variations report.
func (e *Engine) Scan(url string) (report.ScanResult, error) {
	target, err := urlmodel.Parse(url)
	if err != nil {
		return report.ScanResult{}, e.setLastErr(NewError(KindInvalidURL, "invalid target url", err.Error()))
	}
	e.logger.WithField("url", url).Debugf("generating path variants")
	variants := strategy.PathVariants(target.Path)
	e.setLastErr(nil)
	return report.ScanResult{URL: url, Variations: variants}, nil
}

// technique names accepted by TestTechnique.
const (
	TechniquePathBypass  = "path_bypass"
	TechniqueURLEncoding = "url_encoding"
)

// TestTechnique generates variants for a single named technique against
// url's path. An unrecognized technique name yields an empty slice and
// no error, matching the §6 contract that unknown names are SUCCESS
// with an empty variations array.
func (e *Engine) TestTechnique(url, technique string) ([]string, error) {
	target, err := urlmodel.Parse(url)
	if err != nil {
		return nil, e.setLastErr(NewError(KindInvalidURL, "invalid target url", err.Error()))
	}

	var variants []string
	switch technique {
	case TechniquePathBypass:
		variants = strategy.PathVariants(target.Path)
	case TechniqueURLEncoding:
		variants = strategy.EncodingVariants(target.Path, strategy.EncodingOptions{
			Seed:               1,
			PartialProbability: strategy.DefaultPartialEncodeProbability,
		})
	default:
		variants = nil
	}
	e.setLastErr(nil)
	return variants, nil
}

// TestVariations runs the full baseline-plus-capped-dispatch scan
// described in spec.md §4.8 and returns the assembled report.
func (e *Engine) TestVariations(baseURL string) (*report.TestVariationsResult, error) {
	orchestrator := probe.New(e.policy)
	result, err := orchestrator.Scan(baseURL, e.policy)
	if err != nil {
		return nil, e.setLastErr(NewError(KindInvalidURL, "scan failed", err.Error()))
	}
	e.setLastErr(nil)
	return result, nil
}

// WAFInfo is the stub result of DetectWAF.
type WAFInfo struct {
	Type       string
	Confidence float64
}

// MarshalJSON renders w as {"type":...,"confidence":...}, matching the
// §6 detect_waf stub shape.
func (w WAFInfo) MarshalJSON() string {
	return fmt.Sprintf(`{"type":%s,"confidence":%g}`, report.Quote(w.Type), w.Confidence)
}

// DetectWAF is a hard-coded stub: real WAF fingerprinting is an
// unimplemented extension point (see internal/httpengine/pool.go for
// the connection-pooling counterpart). It always reports "unknown" with
// zero confidence, without dispatching any request.
func (e *Engine) DetectWAF(url string) (WAFInfo, error) {
	if _, err := urlmodel.Parse(url); err != nil {
		return WAFInfo{}, e.setLastErr(NewError(KindInvalidURL, "invalid target url", err.Error()))
	}
	e.setLastErr(nil)
	return WAFInfo{Type: "unknown", Confidence: 0.0}, nil
}
