package pj

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reoring/pj/internal/scan"
)

// Encode renders v as pretty-printed JSON followed by a single newline.
// Objects and arrays put each child on its own line, indented one unit deeper
// than the container; empty containers render as {} and [].
func Encode(v Value, opts ...EncodeOpt) ([]byte, error) {
	opt := lastOpt(opts)
	e := &encoder{
		indent:   opt.indent(),
		compact:  opt.Compact,
		maxDepth: opt.maxDepth(),
	}
	if err := e.value(v, 0); err != nil {
		return nil, err
	}
	e.buf = append(e.buf, '\n')
	return e.buf, nil
}

// EncodeTo renders v into w. Nothing is written when encoding fails.
func EncodeTo(w io.Writer, v Value, opts ...EncodeOpt) error {
	out, err := Encode(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

type encoder struct {
	buf      []byte
	indent   string
	compact  bool
	maxDepth int
	path     []string
}

func (e *encoder) value(v Value, depth int) error {
	switch v.kind {
	case KindNull:
		e.buf = append(e.buf, "null"...)
	case KindBool:
		e.buf = strconv.AppendBool(e.buf, v.b)
	case KindNumber:
		e.buf = append(e.buf, v.s...)
	case KindString:
		e.buf = appendString(e.buf, v.s)
	case KindArray:
		if err := e.enter(depth); err != nil {
			return err
		}
		if len(v.elems) == 0 {
			e.buf = append(e.buf, "[]"...)
			return nil
		}
		e.buf = append(e.buf, '[')
		for i, el := range v.elems {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.newline(depth + 1)
			e.path = append(e.path, strconv.Itoa(i))
			if err := e.value(el, depth+1); err != nil {
				return err
			}
			e.path = e.path[:len(e.path)-1]
		}
		e.newline(depth)
		e.buf = append(e.buf, ']')
	case KindObject:
		if err := e.enter(depth); err != nil {
			return err
		}
		if len(v.members) == 0 {
			e.buf = append(e.buf, "{}"...)
			return nil
		}
		e.buf = append(e.buf, '{')
		for i, m := range v.members {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.newline(depth + 1)
			e.buf = appendString(e.buf, m.Key)
			e.buf = append(e.buf, ':')
			if !e.compact {
				e.buf = append(e.buf, ' ')
			}
			e.path = append(e.path, pointerEscaper.Replace(m.Key))
			if err := e.value(m.Value, depth+1); err != nil {
				return err
			}
			e.path = e.path[:len(e.path)-1]
		}
		e.newline(depth)
		e.buf = append(e.buf, '}')
	}
	return nil
}

func (e *encoder) enter(depth int) error {
	if depth < e.maxDepth {
		return nil
	}
	return &Error{
		Code:    CodeMaxDepthExceeded,
		Offset:  -1,
		Path:    "/" + strings.Join(e.path, "/"),
		Message: "max depth " + strconv.Itoa(e.maxDepth) + " exceeded",
	}
}

func (e *encoder) newline(depth int) {
	if e.compact {
		return
	}
	e.buf = append(e.buf, '\n')
	for i := 0; i < depth; i++ {
		e.buf = append(e.buf, e.indent...)
	}
}

const hexDigits = "0123456789abcdef"

// appendString writes s as a quoted JSON string. Quotation marks, reverse
// solidus and control characters are escaped; other characters are written
// as UTF-8. Lone surrogates come back as \uXXXX escapes and invalid UTF-8
// becomes U+FFFD.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch c {
			case '"', '\\':
				dst = append(dst, '\\', c)
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			}
			i++
			start = i
			continue
		}
		if r, ok := scan.DecodeSurrogate(s[i:]); ok {
			dst = append(dst, s[start:i]...)
			dst = appendUnicodeEscape(dst, r)
			i += 3
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = appendUnicodeEscape(dst, utf8.RuneError)
			i++
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

func appendUnicodeEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xF], hexDigits[r>>8&0xF], hexDigits[r>>4&0xF], hexDigits[r&0xF])
}
