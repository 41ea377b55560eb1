// Package probe orchestrates a single differential scan: parse the
// target, generate path variants, dispatch a baseline and each variant
// through the HTTP engine in strict order, and classify each response
// against the baseline.
package probe

import (
	"fmt"
	"strings"
	"time"

	"github.com/corvidsec/waflex/internal/classify"
	"github.com/corvidsec/waflex/internal/config"
	"github.com/corvidsec/waflex/internal/hook"
	"github.com/corvidsec/waflex/internal/httpengine"
	"github.com/corvidsec/waflex/internal/reqparse"
	"github.com/corvidsec/waflex/internal/report"
	"github.com/corvidsec/waflex/internal/strategy"
	"github.com/corvidsec/waflex/internal/urlmodel"
)

// Orchestrator runs scans against a fixed HTTP client and dispatch
// policy. A zero-value Orchestrator is not usable; construct one with
// New.
type Orchestrator struct {
	client    *httpengine.Client
	throttler *Throttler
	hookRun   *hook.Runner
}

// New builds an Orchestrator for policy. When policy.Strategy is
// stealth, dispatches are paced by an adaptive throttler seeded at
// policy.StealthDelay; every other strategy dispatches back-to-back.
func New(policy config.ScanPolicy) *Orchestrator {
	delay := policy.StealthDelay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &Orchestrator{
		client:    httpengine.NewClient(),
		throttler: NewThrottler(delay, policy.Strategy == config.StrategyStealth, policy.HookQuiet),
		hookRun:   hook.NewRunner(policy.HookCommand, policy.HookQuiet),
	}
}

// Scan runs the full path-bypass differential scan against baseURL and
// returns the assembled report. Requests are dispatched strictly in
// strategy.PathVariants order, capped at policy.DispatchCap(), and
// never concurrently.
func (o *Orchestrator) Scan(baseURL string, policy config.ScanPolicy) (*report.TestVariationsResult, error) {
	return o.scan(baseURL, policy, nil)
}

// ScanWithBodies behaves like Scan but additionally invokes onBody once
// per dispatched variant (not the baseline) with its raw response body,
// in dispatch order — used by the CLI report layer for title
// enrichment, which must never influence classification.
func (o *Orchestrator) ScanWithBodies(baseURL string, policy config.ScanPolicy, onBody func(index int, body []byte)) (*report.TestVariationsResult, error) {
	return o.scan(baseURL, policy, onBody)
}

func (o *Orchestrator) scan(baseURL string, policy config.ScanPolicy, onBody func(index int, body []byte)) (*report.TestVariationsResult, error) {
	target, err := urlmodel.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}

	baselineHeaders, err := baselineHeaders(policy)
	if err != nil {
		return nil, err
	}
	if policy.UserAgent != "" && !httpengine.HasFold(baselineHeaders, "User-Agent") {
		baselineHeaders = httpengine.Add(baselineHeaders, "User-Agent", policy.UserAgent)
	}

	timeoutMS := policy.TimeoutMS()
	tlsEnabled := strings.EqualFold(target.Scheme, "https")

	baselineReq := &httpengine.Request{
		Method:      "GET",
		Path:        target.Path,
		Query:       target.Query,
		Headers:     baselineHeaders,
		Host:        target.Host,
		Port:        target.Port,
		TLS:         tlsEnabled,
		TimeoutMS:   timeoutMS,
		VerifySSL:   policy.VerifySSL,
		HTTPVersion: "1.1",
	}
	baselineResp := o.client.Do(baselineReq)
	baselineSize := len(baselineResp.Body)

	variants := strategy.PathVariants(target.Path)

	dispatchCap := policy.DispatchCap()
	if dispatchCap > len(variants) {
		dispatchCap = len(variants)
	}

	result := &report.TestVariationsResult{
		Baseline: report.BaselineResult{
			Status: baselineResp.StatusCode,
			Size:   baselineSize,
			TimeMS: baselineResp.ResponseTimeMS,
		},
	}

	successfulBypasses := 0
	for i := 0; i < dispatchCap; i++ {
		variantPath := variants[i]

		if policy.Strategy == config.StrategyStealth {
			time.Sleep(o.throttler.Delay())
		}

		req := &httpengine.Request{
			Method:      "GET",
			Path:        variantPath,
			Query:       target.Query,
			Headers:     baselineHeaders,
			Host:        target.Host,
			Port:        target.Port,
			TLS:         tlsEnabled,
			TimeoutMS:   timeoutMS,
			VerifySSL:   policy.VerifySSL,
			HTTPVersion: "1.1",
		}
		resp := o.client.Do(req)
		if resp.StatusCode == 0 {
			o.throttler.RecordError()
		} else {
			o.throttler.RecordStatus(resp.StatusCode)
		}
		if onBody != nil {
			onBody(i, resp.Body)
		}

		verdict := classify.Classify(baselineResp.StatusCode, baselineSize, resp.StatusCode, len(resp.Body), string(resp.Body))
		if verdict.Bypass {
			successfulBypasses++
			o.hookRun.Run(hook.Bypass{
				URL:       target.Scheme + "://" + target.HostPort() + variantPath,
				Variation: variantPath,
				Status:    resp.StatusCode,
				Size:      len(resp.Body),
				Reason:    string(verdict.Reason),
			})
		}

		result.Variations = append(result.Variations, report.VariationResult{
			Variation: variantPath,
			Status:    resp.StatusCode,
			Size:      len(resp.Body),
			TimeMS:    resp.ResponseTimeMS,
			Bypass:    verdict.Bypass,
			Reason:    string(verdict.Reason),
		})
	}

	result.Summary = report.Summary{
		TotalTested:        len(result.Variations),
		SuccessfulBypasses: successfulBypasses,
	}

	return result, nil
}

// baselineHeaders returns the headers every dispatched request in the
// scan carries: the headers captured in policy.RequestFile when set,
// followed by policy.ExtraHeaders — so an operator can add a header the
// captured request didn't have without re-exporting it.
func baselineHeaders(policy config.ScanPolicy) (httpengine.Header, error) {
	var headers httpengine.Header
	if policy.RequestFile != "" {
		parsed, err := reqparse.ParseFile(policy.RequestFile)
		if err != nil {
			return nil, fmt.Errorf("probe: loading request file: %w", err)
		}
		headers = parsed.Headers
	}
	extra, err := parseExtraHeaders(policy.ExtraHeaders)
	if err != nil {
		return nil, err
	}
	return append(headers, extra...), nil
}

// parseExtraHeaders turns repeated "Key: Value" strings into header
// fields, preserving order and duplicates the same way reqparse does.
func parseExtraHeaders(raw []string) (httpengine.Header, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(httpengine.Header, 0, len(raw))
	for _, h := range raw {
		colonIdx := strings.Index(h, ":")
		if colonIdx < 0 {
			return nil, fmt.Errorf("probe: invalid header %q, expected 'Key: Value'", h)
		}
		out = append(out, strategy.HeaderField{
			Name:  strings.TrimSpace(h[:colonIdx]),
			Value: strings.TrimSpace(h[colonIdx+1:]),
		})
	}
	return out, nil
}
