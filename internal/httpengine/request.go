// Package httpengine is a low-level HTTP/1.1 client with explicit socket,
// timeout, and TLS control. It exists because net/http normalizes method
// names, canonicalizes header casing, and rejects malformed request lines
// before they ever reach the wire — the bypass techniques in
// internal/strategy depend on none of that happening.
package httpengine

import (
	"fmt"
	"strings"

	"github.com/corvidsec/waflex/internal/strategy"
)

// Header is an ordered, duplicate-tolerant header container. It is the
// wire-facing counterpart of strategy.HeaderSet.
type Header = strategy.HeaderSet

// Add appends name/value to h without checking for an existing entry —
// callers that want duplicate headers on the wire call this twice.
func Add(h Header, name, value string) Header {
	return append(h, strategy.HeaderField{Name: name, Value: value})
}

// Get returns the first value stored under name, matched case-sensitively
// (request-side headers are case-preserving on both store and read; the
// caller is responsible for matching the case it inserted).
func Get(h Header, name string) (string, bool) {
	for _, f := range h {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// HasFold reports whether h contains a header named name under a
// case-insensitive comparison.
func HasFold(h Header, name string) bool {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// Request is a single HTTP request with every field a bypass technique
// might need to mutate. Method is a string, not an enum, because variants
// like "GETT" or "get " are first-class inputs, not errors.
type Request struct {
	Method          string
	Path            string
	Query           string
	Headers         Header
	Body            []byte
	TimeoutMS       int
	FollowRedirects bool
	VerifySSL       bool
	HTTPVersion     string // "0.9", "1.0", "1.1"

	Host string
	Port uint16
	TLS  bool
}

// DefaultTimeoutMS is used when a Request does not set TimeoutMS.
const DefaultTimeoutMS = 10000

// requestTarget renders the request-line target: path, then "?query" if
// query is non-empty.
func (r *Request) requestTarget() string {
	if r.Query != "" {
		return r.Path + "?" + r.Query
	}
	return r.Path
}

// versionToken renders the HTTP-version component of the request line.
// An empty or unrecognized HTTPVersion defaults to HTTP/1.1.
func (r *Request) versionToken() string {
	switch r.HTTPVersion {
	case "0.9":
		return "HTTP/0.9"
	case "1.0":
		return "HTTP/1.0"
	case "2.0":
		return "HTTP/2.0"
	default:
		return "HTTP/1.1"
	}
}

// Serialize renders r as the exact bytes to write to the wire. This is
// deliberately byte-literal: no method validation, no header-name
// case-fixup, no path normalization, no escaping. The wire bytes are
// what the differential probe is testing.
//
// HTTP/0.9 requests are a bare "METHOD path\r\n" with no headers, no
// version token, and no body — matching the pre-1.0 wire format the
// downgrade_0.9 rewrite targets.
func (r *Request) Serialize() []byte {
	if r.HTTPVersion == "0.9" {
		return []byte(fmt.Sprintf("%s %s\r\n", r.Method, r.requestTarget()))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\r\n", r.Method, r.requestTarget(), r.versionToken())

	fmt.Fprintf(&b, "Host: %s\r\n", r.Host)
	b.WriteString("User-Agent: waflex/0.1\r\n")
	b.WriteString("Connection: close\r\n")

	for _, f := range r.Headers {
		fmt.Fprintf(&b, "%s: %s\r\n", f.Name, f.Value)
	}

	if len(r.Body) > 0 && !HasFold(r.Headers, "Content-Length") {
		fmt.Fprintf(&b, "Content-Length: %d\r\n", len(r.Body))
	}

	b.WriteString("\r\n")

	out := []byte(b.String())
	if len(r.Body) > 0 {
		out = append(out, r.Body...)
	}
	return out
}
