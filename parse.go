package pj

import (
	"fmt"

	eng "github.com/reoring/pj/internal/engine"
	"github.com/reoring/pj/internal/scan"
)

// Decode parses src, which must hold exactly one JSON value surrounded by
// optional whitespace, using the current JSON driver.
func Decode(src []byte, opts ...DecodeOpt) (Value, error) {
	return Codec{Decoding: lastOpt(opts)}.Decode(src)
}

// DecodeFrom consumes src to its end and builds the single value it holds.
// Nesting depth and the duplicate key policy are enforced while tokens arrive,
// so adversarial input fails with max_depth_exceeded before recursion gets
// deep.
func DecodeFrom(src TokenSource, opts ...DecodeOpt) (Value, error) {
	v, _, err := decodeFrom(src, lastOpt(opts))
	return v, err
}

func decodeFrom(src TokenSource, opt DecodeOpt) (Value, []*Error, error) {
	eopt := eng.EnforceOptions{
		MaxDepth:    opt.maxDepth(),
		MaxWarnings: opt.Strictness.MaxWarnings,
	}
	switch opt.Strictness.OnDuplicateKey {
	case Warn:
		eopt.OnDuplicate = eng.DupWarn
	case Reject:
		eopt.OnDuplicate = eng.DupError
	}
	p := &parser{src: eng.WrapWithEnforcement(src, eopt)}

	tok, err := p.next()
	if err != nil {
		return Value{}, nil, err
	}
	v, err := p.parseValue(tok)
	if err != nil {
		return Value{}, nil, err
	}
	if err := p.expectEOF(); err != nil {
		return Value{}, nil, err
	}
	return v, p.warnings(), nil
}

type parser struct {
	src eng.Source
}

func (p *parser) warnings() []*Error {
	dups := p.src.Duplicates()
	if len(dups) == 0 {
		return nil
	}
	out := make([]*Error, len(dups))
	for i := range dups {
		out[i] = toError(&dups[i], dups[i].Path)
	}
	return out
}

func (p *parser) next() (scan.Token, error) {
	tok, err := p.src.Next()
	if err != nil {
		return scan.Token{}, toError(err, p.src.Path())
	}
	return tok, nil
}

// expectEOF rejects anything but whitespace after the top-level value.
func (p *parser) expectEOF() error {
	tok, err := p.src.Next()
	if err != nil {
		e := toError(err, "/")
		return &Error{
			Code:    CodeTrailingContent,
			Offset:  e.Offset,
			Line:    e.Line,
			Column:  e.Column,
			Path:    "/",
			Message: "trailing content after top-level value",
			Cause:   e,
		}
	}
	if tok.Kind != scan.KindEOF {
		return errorAt(CodeTrailingContent, tok, "/", "trailing content after top-level value, found %s", describe(tok))
	}
	return nil
}

func (p *parser) parseValue(tok scan.Token) (Value, error) {
	switch tok.Kind {
	case scan.KindBeginObject:
		return p.parseObject()
	case scan.KindBeginArray:
		return p.parseArray()
	case scan.KindString:
		return String(tok.Text), nil
	case scan.KindNumber:
		return Value{kind: KindNumber, s: tok.Text}, nil
	case scan.KindTrue:
		return Bool(true), nil
	case scan.KindFalse:
		return Bool(false), nil
	case scan.KindNull:
		return Null(), nil
	case scan.KindEOF:
		return Value{}, p.unexpectedEOF(tok)
	default:
		return Value{}, errorAt(CodeExpectedValue, tok, p.src.Path(), "expected value, found %s", describe(tok))
	}
}

func (p *parser) parseObject() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	var ob objectBuilder
	if tok.Kind == scan.KindEndObject {
		return ob.value(), nil
	}
	for {
		switch tok.Kind {
		case scan.KindString:
		case scan.KindEOF:
			return Value{}, p.unexpectedEOF(tok)
		default:
			return Value{}, errorAt(CodeExpectedKey, tok, p.src.Path(), "expected string key, found %s", describe(tok))
		}
		key := tok.Text

		if tok, err = p.next(); err != nil {
			return Value{}, err
		}
		switch tok.Kind {
		case scan.KindColon:
		case scan.KindEOF:
			return Value{}, p.unexpectedEOF(tok)
		default:
			return Value{}, errorAt(CodeExpectedColon, tok, p.src.Path(), "expected ':' after object key, found %s", describe(tok))
		}

		if tok, err = p.next(); err != nil {
			return Value{}, err
		}
		v, err := p.parseValue(tok)
		if err != nil {
			return Value{}, err
		}
		ob.set(key, v)

		if tok, err = p.next(); err != nil {
			return Value{}, err
		}
		switch tok.Kind {
		case scan.KindComma:
			if tok, err = p.next(); err != nil {
				return Value{}, err
			}
		case scan.KindEndObject:
			return ob.value(), nil
		case scan.KindEOF:
			return Value{}, p.unexpectedEOF(tok)
		default:
			return Value{}, errorAt(CodeExpectedCommaOrClose, tok, p.src.Path(), "expected ',' or '}', found %s", describe(tok))
		}
	}
}

func (p *parser) parseArray() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	elems := []Value{}
	if tok.Kind == scan.KindEndArray {
		return Value{kind: KindArray, elems: elems}, nil
	}
	for {
		v, err := p.parseValue(tok)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)

		if tok, err = p.next(); err != nil {
			return Value{}, err
		}
		switch tok.Kind {
		case scan.KindComma:
			if tok, err = p.next(); err != nil {
				return Value{}, err
			}
		case scan.KindEndArray:
			return Value{kind: KindArray, elems: elems}, nil
		case scan.KindEOF:
			return Value{}, p.unexpectedEOF(tok)
		default:
			return Value{}, errorAt(CodeExpectedCommaOrClose, tok, p.src.Path(), "expected ',' or ']', found %s", describe(tok))
		}
	}
}

func (p *parser) unexpectedEOF(tok scan.Token) error {
	return errorAt(CodeUnexpectedEndOfInput, tok, p.src.Path(), "unexpected end of input")
}

func describe(tok scan.Token) string {
	switch tok.Kind {
	case scan.KindString:
		return fmt.Sprintf("string %q", tok.Text)
	case scan.KindNumber:
		return "number " + tok.Text
	default:
		return tok.Kind.String()
	}
}
