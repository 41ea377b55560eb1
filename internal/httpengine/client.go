package httpengine

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"time"
)

// Client dials a fresh connection per request. There is no connection
// reuse: each probe request is independent by design (see pool.go for
// the declared-but-unused extension point), and a shared connection
// would let one malformed request corrupt the framing of the next.
type Client struct {
	// ReadBufferCap bounds how much response data a single request will
	// buffer before giving up on more. Zero means DefaultReadBufferCap.
	ReadBufferCap int
}

// DefaultReadBufferCap matches the ceiling used for probe responses;
// bypass detection only needs status line, headers, and enough body to
// classify soft-404s, not the full payload of a large file.
const DefaultReadBufferCap = 1 << 20

// NewClient returns a Client with default settings.
func NewClient() *Client {
	return &Client{ReadBufferCap: DefaultReadBufferCap}
}

// Do dials req.Host:req.Port, optionally over TLS, writes the byte-literal
// serialized request, and reads until EOF, a read timeout, or the read
// buffer cap. Any transport, TLS, or parse failure yields a status_code=0
// response; Do itself never returns an error.
func (c *Client) Do(req *Request) *Response {
	start := time.Now()

	timeout := time.Duration(req.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = time.Duration(DefaultTimeoutMS) * time.Millisecond
	}

	address := net.JoinHostPort(req.Host, fmt.Sprintf("%d", req.Port))

	var conn net.Conn
	var err error
	if req.TLS {
		dialer := &net.Dialer{Timeout: timeout}
		tlsConfig := &tls.Config{
			InsecureSkipVerify: !req.VerifySSL,
			ServerName:         req.Host,
		}
		conn, err = tls.DialWithDialer(dialer, "tcp", address, tlsConfig)
	} else {
		conn, err = net.DialTimeout("tcp", address, timeout)
	}
	if err != nil {
		return failure("dial: "+err.Error(), elapsedMS(start))
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return failure("set deadline: "+err.Error(), elapsedMS(start))
	}

	if _, err := conn.Write(req.Serialize()); err != nil {
		return failure("write: "+err.Error(), elapsedMS(start))
	}

	capBytes := c.ReadBufferCap
	if capBytes <= 0 {
		capBytes = DefaultReadBufferCap
	}

	raw, err := readUntilCapOrTimeout(conn, capBytes, timeout)
	if err != nil && len(raw) == 0 {
		return failure("read: "+err.Error(), elapsedMS(start))
	}

	elapsed := elapsedMS(start)
	if len(raw) == 0 {
		return failure("no response data received", elapsed)
	}
	return parseResponse(raw, elapsed)
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

// readUntilCapOrTimeout reads from conn until EOF, a read timeout fires,
// or cap bytes have been buffered.
func readUntilCapOrTimeout(conn net.Conn, capBytes int, timeout time.Duration) ([]byte, error) {
	buf := make([]byte, 65536)
	var out []byte
	for len(out) < capBytes {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return out, err
		}
		n, err := conn.Read(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				return out, nil
			}
			return out, err
		}
	}
	return out, nil
}

// Get issues a GET request against host:port for path (with optional
// query), using default headers and no body.
func (c *Client) Get(host string, port uint16, tlsEnabled bool, path, query string, timeoutMS int, verifySSL bool) *Response {
	req := &Request{
		Method:      "GET",
		Path:        path,
		Query:       query,
		Host:        host,
		Port:        port,
		TLS:         tlsEnabled,
		TimeoutMS:   timeoutMS,
		VerifySSL:   verifySSL,
		HTTPVersion: "1.1",
	}
	return c.Do(req)
}
