// Package urlmodel implements the URL parsing, building, and byte-level
// codec primitives that every bypass technique is built on. Parsing is
// deliberately naive: it never rejects a malformed URL that a bypass
// payload might legitimately need to round-trip.
package urlmodel

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidURL is returned when a URL cannot be parsed at all — an empty
// host or a non-numeric port. Everything else is accepted as-is.
var ErrInvalidURL = errors.New("urlmodel: invalid url")

// ParsedURL is the decomposed form of a target URL. Port is always
// populated with the scheme default when the input omits it.
type ParsedURL struct {
	Scheme   string
	Host     string
	Port     uint16
	Path     string
	Query    string
	Fragment string
}

// Parse splits s into scheme, host, port, path, query and fragment.
// It does not validate percent-encoding, reserved characters, or path
// segments — the bypass techniques depend on being able to carry
// malformed paths through unmodified.
func Parse(s string) (*ParsedURL, error) {
	rest := s
	scheme := "http"

	if idx := strings.Index(rest, "://"); idx >= 0 {
		scheme = rest[:idx]
		rest = rest[idx+3:]
	}

	authority := rest
	path := "/"
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		authority = rest[:idx]
		path = rest[idx:]
	}

	fragment := ""
	if idx := strings.IndexByte(path, '#'); idx >= 0 {
		fragment = path[idx+1:]
		path = path[:idx]
	}
	query := ""
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		query = path[idx+1:]
		path = path[:idx]
	}
	if path == "" {
		path = "/"
	}

	host := authority
	var port uint16
	if idx := strings.LastIndexByte(authority, ':'); idx >= 0 && !strings.Contains(authority[idx+1:], "]") {
		host = authority[:idx]
		portStr := authority[idx+1:]
		p, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return nil, ErrInvalidURL
		}
		port = uint16(p)
	}

	if host == "" {
		return nil, ErrInvalidURL
	}

	if port == 0 {
		if strings.EqualFold(scheme, "https") {
			port = 443
		} else {
			port = 80
		}
	}

	return &ParsedURL{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Path:     path,
		Query:    query,
		Fragment: fragment,
	}, nil
}

// Build reassembles a ParsedURL into its string form. The port is omitted
// when it matches the scheme default, so Build(Parse(u)) is byte-identical
// to an http or https u whenever u carried an explicit path and either no
// port or a non-default one; an explicit default port (":80" on http,
// ":443" on https) is dropped.
func (u *ParsedURL) Build() string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Host)

	isDefaultPort := (strings.EqualFold(u.Scheme, "https") && u.Port == 443) ||
		(strings.EqualFold(u.Scheme, "http") && u.Port == 80)
	if !isDefaultPort && u.Port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(u.Port), 10))
	}

	if u.Path == "" {
		b.WriteByte('/')
	} else {
		b.WriteString(u.Path)
	}
	if u.Query != "" {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}

// HostPort returns "host:port" as used for dialing.
func (u *ParsedURL) HostPort() string {
	return u.Host + ":" + strconv.FormatUint(uint64(u.Port), 10)
}
