package strategy

import "strings"

// customMethods is the fixed list of non-standard method tokens tried
// regardless of the request's base method.
var customMethods = []string{"GETT", "POSTX", "PUTT", "DELETEX", "get", "Get", "GET "}

// HTTPVersionVariants is the fixed set of protocol versions to retry a
// request under.
var HTTPVersionVariants = []string{"0.9", "1.0", "1.1", "2.0"}

// MethodVariants returns the fixed-order case and whitespace mutations of
// method, followed by the fixed custom-method list.
func MethodVariants(method string) []string {
	out := []string{
		method,
		strings.ToLower(method),
		strings.ToUpper(method),
		capitalize(method),
		method + " ",
		method + "X",
	}
	out = append(out, customMethods...)
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// RequestRewrite names one of the fixed protocol-abuse request mutations.
type RequestRewrite string

const (
	RewriteAddDuplicateHeaders  RequestRewrite = "add_duplicate_headers"
	RewriteAddConflictingHeaders RequestRewrite = "add_conflicting_headers"
	RewriteDowngrade09          RequestRewrite = "downgrade_0.9"
	RewriteDowngrade10          RequestRewrite = "downgrade_1.0"
)

// RequestRewrites is the fixed, applied-in-order list of rewrite
// descriptors the protocol-abuse strategy exercises against a request.
var RequestRewrites = []RequestRewrite{
	RewriteAddDuplicateHeaders,
	RewriteAddConflictingHeaders,
	RewriteDowngrade09,
	RewriteDowngrade10,
}

// ApplyRewrite mutates a copy of headers and returns it along with the
// HTTP version the rewrite implies (empty string means "leave unchanged").
// httpengine.Header is an alias of HeaderSet, so the result can be used
// directly as a request's ordered, multi-value headers.
func ApplyRewrite(rw RequestRewrite, headers HeaderSet) (HeaderSet, string) {
	switch rw {
	case RewriteAddDuplicateHeaders:
		out := append(HeaderSet{}, headers...)
		out = append(out, HeaderField{Name: "Host", Value: "localhost"})
		return out, ""
	case RewriteAddConflictingHeaders:
		out := append(HeaderSet{}, headers...)
		out = append(out,
			HeaderField{Name: "Content-Length", Value: "10"},
			HeaderField{Name: "Transfer-Encoding", Value: "chunked"},
		)
		return out, ""
	case RewriteDowngrade09:
		return nil, "0.9"
	case RewriteDowngrade10:
		out := append(HeaderSet{}, headers...)
		return out, "1.0"
	}
	return append(HeaderSet{}, headers...), ""
}
