package scan

import (
	"fmt"
	"unicode/utf8"
)

// Scanner tokenizes a JSON text held in memory. It is not restartable.
type Scanner struct {
	src       []byte
	pos       int
	line      int
	lineStart int
	buf       []byte
}

// New returns a Scanner positioned at the beginning of src.
func New(src []byte) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Offset returns the byte offset of the next unread byte.
func (s *Scanner) Offset() int64 { return int64(s.pos) }

func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\r':
			s.pos++
		case '\n':
			s.pos++
			s.line++
			s.lineStart = s.pos
		default:
			return
		}
	}
}

func (s *Scanner) errorf(code string, at int, format string, a ...any) *Error {
	return &Error{
		Code:    code,
		Offset:  int64(at),
		Line:    s.line,
		Column:  at - s.lineStart + 1,
		Message: fmt.Sprintf(format, a...),
	}
}

func (s *Scanner) token(k Kind, start int, text string) Token {
	return Token{Kind: k, Text: text, Offset: int64(start), Line: s.line, Column: start - s.lineStart + 1}
}

// Next returns the next token, or a token of KindEOF once the input is
// exhausted. Trailing whitespace is consumed before EOF is reported.
func (s *Scanner) Next() (Token, error) {
	s.skipSpace()
	start := s.pos
	if start >= len(s.src) {
		return s.token(KindEOF, start, ""), nil
	}
	c := s.src[start]
	switch c {
	case '{':
		s.pos++
		return s.token(KindBeginObject, start, ""), nil
	case '}':
		s.pos++
		return s.token(KindEndObject, start, ""), nil
	case '[':
		s.pos++
		return s.token(KindBeginArray, start, ""), nil
	case ']':
		s.pos++
		return s.token(KindEndArray, start, ""), nil
	case ':':
		s.pos++
		return s.token(KindColon, start, ""), nil
	case ',':
		s.pos++
		return s.token(KindComma, start, ""), nil
	case '"':
		text, err := s.scanString()
		if err != nil {
			return Token{}, err
		}
		return s.token(KindString, start, text), nil
	}
	if c == '-' || isDigit(c) {
		lit, err := s.scanNumber()
		if err != nil {
			return Token{}, err
		}
		return s.token(KindNumber, start, lit), nil
	}
	if isIdentByte(c) {
		for s.pos < len(s.src) && isIdentByte(s.src[s.pos]) {
			s.pos++
		}
		switch word := string(s.src[start:s.pos]); word {
		case "true":
			return s.token(KindTrue, start, word), nil
		case "false":
			return s.token(KindFalse, start, word), nil
		case "null":
			return s.token(KindNull, start, word), nil
		default:
			return Token{}, s.errorf(CodeUnexpectedToken, start, "unexpected identifier %q", word)
		}
	}
	r, _ := utf8.DecodeRune(s.src[start:])
	return Token{}, s.errorf(CodeUnexpectedToken, start, "unexpected character %q", r)
}

// scanNumber consumes a number lexeme following the RFC 8259 grammar:
// -? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
func (s *Scanner) scanNumber() (string, error) {
	start := s.pos
	if s.src[s.pos] == '-' {
		s.pos++
	}
	switch {
	case s.pos >= len(s.src):
		return "", s.errorf(CodeInvalidNumber, s.pos, "invalid number: missing digits")
	case s.src[s.pos] == '0':
		s.pos++
		if s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			return "", s.errorf(CodeInvalidNumber, s.pos, "invalid number: leading zero")
		}
	case isDigit(s.src[s.pos]):
		s.skipDigits()
	default:
		return "", s.errorf(CodeInvalidNumber, s.pos, "invalid number: expected digit, found %s", s.describe(s.pos))
	}
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		if s.pos >= len(s.src) || !isDigit(s.src[s.pos]) {
			return "", s.errorf(CodeInvalidNumber, s.pos, "invalid number: expected digit after decimal point, found %s", s.describe(s.pos))
		}
		s.skipDigits()
	}
	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		s.pos++
		if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		if s.pos >= len(s.src) || !isDigit(s.src[s.pos]) {
			return "", s.errorf(CodeInvalidNumber, s.pos, "invalid number: expected exponent digit, found %s", s.describe(s.pos))
		}
		s.skipDigits()
	}
	return string(s.src[start:s.pos]), nil
}

func (s *Scanner) skipDigits() {
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
}

// scanString consumes a quoted string and returns its unescaped content.
// Lone UTF-16 surrogates are kept as WTF-8 sequences so they survive a
// decode/encode cycle.
func (s *Scanner) scanString() (string, error) {
	open := s.pos
	s.pos++
	s.buf = s.buf[:0]
	chunk := s.pos
	for {
		if s.pos >= len(s.src) {
			return "", s.errorf(CodeUnterminatedString, open, "unterminated string")
		}
		c := s.src[s.pos]
		switch {
		case c == '"':
			s.buf = append(s.buf, s.src[chunk:s.pos]...)
			s.pos++
			return string(s.buf), nil
		case c == '\\':
			s.buf = append(s.buf, s.src[chunk:s.pos]...)
			if err := s.scanEscape(); err != nil {
				return "", err
			}
			chunk = s.pos
		case c < 0x20:
			return "", s.errorf(CodeControlCharacter, s.pos, "control character %U in string", rune(c))
		default:
			s.pos++
		}
	}
}

func (s *Scanner) scanEscape() error {
	esc := s.pos
	s.pos++
	if s.pos >= len(s.src) {
		return s.errorf(CodeUnterminatedString, esc, "unterminated string")
	}
	c := s.src[s.pos]
	s.pos++
	switch c {
	case '"', '\\', '/':
		s.buf = append(s.buf, c)
	case 'b':
		s.buf = append(s.buf, '\b')
	case 'f':
		s.buf = append(s.buf, '\f')
	case 'n':
		s.buf = append(s.buf, '\n')
	case 'r':
		s.buf = append(s.buf, '\r')
	case 't':
		s.buf = append(s.buf, '\t')
	case 'u':
		r, ok := s.hex4(s.pos)
		if !ok {
			return s.errorf(CodeInvalidUnicodeEscape, esc, "invalid unicode escape: expected four hex digits")
		}
		s.pos += 4
		if isHighSurrogate(r) && s.pos+1 < len(s.src) && s.src[s.pos] == '\\' && s.src[s.pos+1] == 'u' {
			if lo, ok := s.hex4(s.pos + 2); ok && isLowSurrogate(lo) {
				s.pos += 6
				s.buf = utf8.AppendRune(s.buf, combineSurrogates(r, lo))
				return nil
			}
		}
		if isSurrogate(r) {
			s.buf = AppendSurrogate(s.buf, r)
			return nil
		}
		s.buf = utf8.AppendRune(s.buf, r)
	default:
		r, _ := utf8.DecodeRune(s.src[s.pos-1:])
		return s.errorf(CodeInvalidEscape, esc, "invalid escape '\\%c'", r)
	}
	return nil
}

func (s *Scanner) hex4(at int) (rune, bool) {
	if at+4 > len(s.src) {
		return 0, false
	}
	var r rune
	for _, c := range s.src[at : at+4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			r |= rune(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return r, true
}

func (s *Scanner) describe(at int) string {
	if at >= len(s.src) {
		return "end of input"
	}
	r, _ := utf8.DecodeRune(s.src[at:])
	return fmt.Sprintf("%q", r)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
