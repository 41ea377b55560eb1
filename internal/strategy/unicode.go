package strategy

import "strings"

// nfdTable maps a Latin-1 precomposed letter to its base letter plus a
// combining diacritical mark, mimicking (without depending on) Unicode's
// canonical NFD decomposition for the 46 accented Latin letters bypass
// payloads actually use.
var nfdTable = map[rune]string{
	0x00C0: "À", 0x00C1: "Á", 0x00C2: "Â", 0x00C4: "Ä", 0x00C5: "Å",
	0x00C7: "Ç",
	0x00C8: "È", 0x00C9: "É", 0x00CA: "Ê", 0x00CB: "Ë",
	0x00CC: "Ì", 0x00CD: "Í", 0x00CE: "Î", 0x00CF: "Ï",
	0x00D1: "Ñ",
	0x00D2: "Ò", 0x00D3: "Ó", 0x00D4: "Ô", 0x00D6: "Ö",
	0x00D9: "Ù", 0x00DA: "Ú", 0x00DB: "Û", 0x00DC: "Ü",
	0x00E0: "à", 0x00E1: "á", 0x00E2: "â", 0x00E4: "ä", 0x00E5: "å",
	0x00E7: "ç",
	0x00E8: "è", 0x00E9: "é", 0x00EA: "ê", 0x00EB: "ë",
	0x00EC: "ì", 0x00ED: "í", 0x00EE: "î", 0x00EF: "ï",
	0x00F1: "ñ",
	0x00F2: "ò", 0x00F3: "ó", 0x00F4: "ô", 0x00F6: "ö",
	0x00F9: "ù", 0x00FA: "ú", 0x00FB: "û", 0x00FC: "ü",
}

const (
	zwj  = "‍" // zero-width joiner
	zwsp = "​" // zero-width space
	zwnj = "‌" // zero-width non-joiner

	bidiOverrideStart = "‮" // right-to-left override
	bidiOverrideEnd   = "‬" // pop directional formatting
	ltrOverrideStart  = "‭" // left-to-right override
	ltrOverrideEnd    = "‬"
)

// decomposeNFD rewrites every rune of s present in nfdTable as its
// base-letter-plus-combining-mark form, leaving everything else untouched.
func decomposeNFD(s string) string {
	var b strings.Builder
	for _, r := range s {
		if d, ok := nfdTable[r]; ok {
			b.WriteString(d)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// insertAfterASCIILetters appends zw after every ASCII letter in s.
func insertAfterASCIILetters(s, zw string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteString(zw)
		}
	}
	return b.String()
}

// NormalizationVariants returns, in fixed order: the input unchanged, an
// NFD-like decomposition (omitted if it equals the input), three
// zero-width-insertion variants (ZWJ, ZWSP, ZWNJ), a bidi-override wrap,
// and an LTR-override wrap.
func NormalizationVariants(s string) []string {
	out := []string{s}
	if d := decomposeNFD(s); d != s {
		out = append(out, d)
	}
	out = append(out,
		insertAfterASCIILetters(s, zwj),
		insertAfterASCIILetters(s, zwsp),
		insertAfterASCIILetters(s, zwnj),
		bidiOverrideStart+s+bidiOverrideEnd,
		ltrOverrideStart+s+ltrOverrideEnd,
	)
	return out
}

// homographEntry is one ASCII character and its ordered list of visually
// confusable replacement codepoints.
type homographEntry struct {
	ascii        byte
	replacements []rune
}

// homographTable is deliberately ordered (uppercase, then lowercase, then
// digits) so variant generation is deterministic. Letter entries draw from
// Cyrillic, Greek, and math-bold confusables ('a' also has a
// Latin-with-diacritic form); digit entries are math-bold only.
var homographTable = []homographEntry{
	{'A', []rune{0x0410, 0x0391, 0x1D400}},
	{'B', []rune{0x0412, 0x0392, 0x1D401}},
	{'C', []rune{0x0421, 0x03F9, 0x1D402}},
	{'E', []rune{0x0415, 0x0395, 0x1D404}},
	{'H', []rune{0x041D, 0x0397, 0x1D407}},
	{'K', []rune{0x041A, 0x039A, 0x1D40A}},
	{'M', []rune{0x041C, 0x039C, 0x1D40C}},
	{'O', []rune{0x041E, 0x039F, 0x1D40E}},
	{'P', []rune{0x0420, 0x03A1, 0x1D40F}},
	{'T', []rune{0x0422, 0x03A4, 0x1D413}},
	{'X', []rune{0x0425, 0x03A7, 0x1D417}},
	{'Y', []rune{0x0423, 0x03A5, 0x1D418}},
	{'a', []rune{0x0430, 0x03B1, 0x0101, 0x1D41A}},
	{'c', []rune{0x0441, 0x03F2, 0x1D41C}},
	{'e', []rune{0x0435, 0x03B5, 0x1D41E}},
	{'o', []rune{0x043E, 0x03BF, 0x1D428}},
	{'p', []rune{0x0440, 0x03C1, 0x1D429}},
	{'x', []rune{0x0445, 0x03C7, 0x1D431}},
	{'y', []rune{0x0443, 0x1D432}},
	{'0', []rune{0x1D7CE}},
	{'1', []rune{0x1D7CF}},
	{'2', []rune{0x1D7D0}},
	{'3', []rune{0x1D7D1}},
	{'4', []rune{0x1D7D2}},
	{'5', []rune{0x1D7D3}},
	{'6', []rune{0x1D7D4}},
	{'7', []rune{0x1D7D5}},
	{'8', []rune{0x1D7D6}},
	{'9', []rune{0x1D7D7}},
}

// replaceAllByte substitutes every occurrence of ascii in s with r.
func replaceAllByte(s string, ascii byte, r rune) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == ascii {
			b.WriteRune(r)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

const fullWidthOffset = 0xFEE0

// fullWidthVariant maps every ASCII 0x21..0x7E byte in s to its
// fullwidth-form codepoint, leaving other bytes untouched.
func fullWidthVariant(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x21 && c <= 0x7E {
			b.WriteRune(rune(c) + fullWidthOffset)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// mathBoldVariant maps every ASCII letter and digit in s to its
// mathematical-bold codepoint.
func mathBoldVariant(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteRune(0x1D400 + rune(c-'A'))
		case c >= 'a' && c <= 'z':
			b.WriteRune(0x1D41A + rune(c-'a'))
		case c >= '0' && c <= '9':
			b.WriteRune(0x1D7CE + rune(c-'0'))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// HomographVariants emits, in table order, one variant per (ascii,
// replacement) pair with every occurrence of that ASCII character
// replaced; then a mixed variant using each mappable char's first
// replacement simultaneously; then a full-width variant; then a
// math-bold variant.
func HomographVariants(s string) []string {
	var out []string

	for _, entry := range homographTable {
		if !strings.ContainsRune(s, rune(entry.ascii)) {
			continue
		}
		for _, r := range entry.replacements {
			out = append(out, replaceAllByte(s, entry.ascii, r))
		}
	}

	out = append(out, mixedHomographVariant(s))
	out = append(out, fullWidthVariant(s))
	out = append(out, mathBoldVariant(s))
	return out
}

// mixedHomographVariant replaces every mappable character in s with its
// first table entry, all in a single pass.
func mixedHomographVariant(s string) string {
	first := make(map[byte]rune, len(homographTable))
	for _, entry := range homographTable {
		if len(entry.replacements) > 0 {
			first[entry.ascii] = entry.replacements[0]
		}
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if r, ok := first[s[i]]; ok {
			b.WriteRune(r)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
