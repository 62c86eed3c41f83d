package scan

import (
	"strings"
	"unicode/utf8"
)

func isSurrogate(r rune) bool     { return r >= 0xD800 && r <= 0xDFFF }
func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func combineSurrogates(hi, lo rune) rune {
	return (hi-0xD800)<<10 | (lo - 0xDC00) + 0x10000
}

// AppendSurrogate writes the generalized UTF-8 (WTF-8) form of a lone
// surrogate code point. utf8.AppendRune would substitute U+FFFD instead.
func AppendSurrogate(dst []byte, r rune) []byte {
	return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
}

// DecodeSurrogate reports whether b starts with a WTF-8 encoded surrogate and
// returns it.
func DecodeSurrogate(b string) (rune, bool) {
	if len(b) < 3 || b[0] != 0xED || b[1] < 0xA0 || b[1] > 0xBF || b[2]&0xC0 != 0x80 {
		return 0, false
	}
	return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), true
}

// JoinSurrogates replaces every WTF-8 high surrogate that is immediately
// followed by a WTF-8 low surrogate with the UTF-8 form of the scalar the pair
// encodes. Unpaired halves are left as they are.
func JoinSurrogates(s string) string {
	if !strings.Contains(s, "\xed") {
		return s
	}
	var out []byte
	last := 0
	for i := 0; i+6 <= len(s); {
		hi, ok := DecodeSurrogate(s[i:])
		if !ok || !isHighSurrogate(hi) {
			i++
			continue
		}
		lo, ok := DecodeSurrogate(s[i+3:])
		if !ok || !isLowSurrogate(lo) {
			i += 3
			continue
		}
		if out == nil {
			out = make([]byte, 0, len(s))
		}
		out = append(out, s[last:i]...)
		out = utf8.AppendRune(out, combineSurrogates(hi, lo))
		i += 6
		last = i
	}
	if out == nil {
		return s
	}
	return string(append(out, s[last:]...))
}
