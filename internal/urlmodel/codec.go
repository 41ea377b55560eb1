package urlmodel

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

const upperHex = "0123456789ABCDEF"

// isUnreserved reports whether b needs no percent-encoding.
func isUnreserved(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == '.' || b == '~':
		return true
	}
	return false
}

// URLEncode percent-encodes every byte of s that is not in
// [A-Za-z0-9-_.~], emitting uppercase %HH escapes. It does not special-case
// '+' or space — the corresponding decode-side '+' handling is an
// intentional asymmetry.
func URLEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0xf])
	}
	return b.String()
}

// URLEncodeMulti applies URLEncode n times in sequence. Double and triple
// encoding are deliberate bypass techniques, not accidental re-encoding.
func URLEncodeMulti(s string, n int) string {
	out := s
	for i := 0; i < n; i++ {
		out = URLEncode(out)
	}
	return out
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// URLDecode reverses percent-encoding, treating '+' as space. A '%' not
// followed by two hex digits passes through literally rather than
// producing an error — malformed escapes are common in bypass payloads.
func URLDecode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				hi, ok1 := hexVal(s[i+1])
				lo, ok2 := hexVal(s[i+2])
				if ok1 && ok2 {
					b.WriteByte(hi<<4 | lo)
					i += 2
					continue
				}
			}
			b.WriteByte('%')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Base64Encode returns the standard base64 encoding of data.
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode is intentionally unimplemented. The source this system was
// distilled from ships a declared-but-empty base64_decode; no caller in
// this codebase exercises it. Calling it is a programming error.
func Base64Decode(string) ([]byte, error) {
	panic("urlmodel: Base64Decode is not implemented")
}

// HexEncode returns the lowercase hex encoding of data.
func HexEncode(data []byte) string {
	return hex.EncodeToString(data)
}

// GenerateCaseVariations returns exactly three variants of s, in fixed
// order: all-upper, all-lower, first-upper-rest-lower.
func GenerateCaseVariations(s string) []string {
	if s == "" {
		return []string{"", "", ""}
	}
	lower := strings.ToLower(s)
	upper := strings.ToUpper(s)
	firstUpper := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	return []string{upper, lower, firstUpper}
}
