// Package reqparse reads a captured raw HTTP request (a Burp Suite or
// browser devtools export) and extracts the target URL and headers, so a
// scan can seed its baseline request with a real session's cookies and
// auth headers instead of bare defaults.
package reqparse

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/corvidsec/waflex/internal/strategy"
)

// ParsedRequest holds the extracted data from a raw HTTP request file.
type ParsedRequest struct {
	Method  string
	URL     string // scheme + host only; the caller supplies the path
	Headers strategy.HeaderSet
}

// ParseFile reads a raw HTTP request and extracts the target URL and all
// headers including cookies, preserving header order and duplicates.
func ParseFile(path string) (*ParsedRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening request file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024) // 1MB lines for large cookies

	if !scanner.Scan() {
		return nil, fmt.Errorf("request file is empty")
	}
	requestLine := strings.TrimSpace(scanner.Text())
	parts := strings.SplitN(requestLine, " ", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid request line: %q", requestLine)
	}
	method := parts[0]
	requestPath := parts[1]

	var headers strategy.HeaderSet
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break // end of headers
		}
		colonIdx := strings.Index(line, ":")
		if colonIdx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:colonIdx])
		value := strings.TrimSpace(line[colonIdx+1:])
		headers = append(headers, strategy.HeaderField{Name: key, Value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}

	host, ok := headerValue(headers, "Host")
	if !ok {
		return nil, fmt.Errorf("request file missing Host header")
	}

	scheme := "https"
	if strings.HasSuffix(host, ":80") {
		scheme = "http"
	}

	if strings.HasPrefix(requestPath, "http://") || strings.HasPrefix(requestPath, "https://") {
		parsedURL, err := url.Parse(requestPath)
		if err != nil {
			return nil, fmt.Errorf("invalid URL in request line: %w", err)
		}
		return &ParsedRequest{
			Method:  method,
			URL:     parsedURL.Scheme + "://" + parsedURL.Host,
			Headers: headers,
		}, nil
	}

	return &ParsedRequest{
		Method:  method,
		URL:     scheme + "://" + host,
		Headers: headers,
	}, nil
}

func headerValue(h strategy.HeaderSet, name string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}
