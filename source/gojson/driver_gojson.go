package gojson

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/pj"
)

// Driver returns a pj.JSONDriver backed by goccy/go-json.
func Driver() pj.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewBytes(b []byte) pj.TokenSource { return NewBytes(b) }
func (driverGoJSON) Name() string                     { return "go-json" }

// ---- pj.TokenSource implementation using go-json Decoder ----

// go-json's Decoder.Token consumes separators without returning or checking
// them; NewBytes validates the whole document first and the source then
// re-synthesizes ':' and ',' so the stream matches the native scanner.
// Positions are unknown and reported as -1.

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
	count        int
}

type source struct {
	dec     *j.Decoder
	stack   []frame
	pending []pj.Token
	done    bool
}

// NewReader reads r to its end and wraps the content like NewBytes.
func NewReader(r io.Reader) pj.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return failedSource{err: &pj.Error{Code: pj.CodeUnexpectedToken, Offset: -1, Path: "/", Message: "go-json: " + err.Error(), Cause: err}}
	}
	return NewBytes(b)
}

// NewBytes wraps a byte slice into a pj.TokenSource using go-json. Documents
// that j.Valid rejects are handed to the native scanner, so malformed input
// fails with the same code and position as with the default driver.
func NewBytes(b []byte) pj.TokenSource {
	if !j.Valid(b) {
		return pj.NativeDriver().NewBytes(b)
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return &source{dec: dec}
}

type failedSource struct{ err error }

func (f failedSource) Next() (pj.Token, error) { return pj.Token{}, f.err }

func tokenOf(k pj.TokenKind, text string) pj.Token {
	return pj.Token{Kind: k, Text: text, Offset: -1}
}

func (s *source) Next() (pj.Token, error) {
	if len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		return t, nil
	}
	if s.done {
		return tokenOf(pj.TokenEOF, ""), nil
	}
	raw, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.done = true
			return tokenOf(pj.TokenEOF, ""), nil
		}
		return pj.Token{}, &pj.Error{Code: pj.CodeUnexpectedToken, Offset: -1, Message: "go-json: " + err.Error(), Cause: err}
	}

	var tok pj.Token
	switch v := raw.(type) {
	case j.Delim:
		switch v {
		case '{':
			tok = tokenOf(pj.TokenBeginObject, "")
		case '[':
			tok = tokenOf(pj.TokenBeginArray, "")
		case '}':
			s.pop()
			return tokenOf(pj.TokenEndObject, ""), nil
		case ']':
			s.pop()
			return tokenOf(pj.TokenEndArray, ""), nil
		}
	case string:
		tok = tokenOf(pj.TokenString, v)
		if n := len(s.stack); n > 0 && s.stack[n-1].kind == kindObject && s.stack[n-1].expectingKey {
			top := &s.stack[n-1]
			top.expectingKey = false
			if top.count > 0 {
				return s.emit(tokenOf(pj.TokenComma, ""), tok), nil
			}
			return tok, nil
		}
	case bool:
		if v {
			tok = tokenOf(pj.TokenTrue, "true")
		} else {
			tok = tokenOf(pj.TokenFalse, "false")
		}
	case j.Number:
		if _, err := pj.Number(string(v)); err != nil {
			return pj.Token{}, err
		}
		tok = tokenOf(pj.TokenNumber, string(v))
	case float64:
		tok = tokenOf(pj.TokenNumber, strconv.FormatFloat(v, 'g', -1, 64))
	case nil:
		tok = tokenOf(pj.TokenNull, "null")
	}

	// tok starts a value: emit the separator that preceded it.
	var sep *pj.Token
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		switch {
		case top.kind == kindObject:
			colon := tokenOf(pj.TokenColon, "")
			sep = &colon
			top.expectingKey = true
		case top.count > 0:
			comma := tokenOf(pj.TokenComma, "")
			sep = &comma
		}
		top.count++
	}
	switch tok.Kind {
	case pj.TokenBeginObject:
		s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
	case pj.TokenBeginArray:
		s.stack = append(s.stack, frame{kind: kindArray})
	}
	if sep != nil {
		return s.emit(*sep, tok), nil
	}
	return tok, nil
}

func (s *source) emit(first, then pj.Token) pj.Token {
	s.pending = append(s.pending, then)
	return first
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}
