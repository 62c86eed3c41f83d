package pj

import (
	"sync"

	"github.com/reoring/pj/internal/scan"
)

// TokenKind enumerates lexical token kinds. The alias lets third-party drivers
// produce tokens without importing internal packages.
type TokenKind = scan.Kind

const (
	TokenEOF         TokenKind = scan.KindEOF
	TokenBeginObject TokenKind = scan.KindBeginObject
	TokenEndObject   TokenKind = scan.KindEndObject
	TokenBeginArray  TokenKind = scan.KindBeginArray
	TokenEndArray    TokenKind = scan.KindEndArray
	TokenColon       TokenKind = scan.KindColon
	TokenComma       TokenKind = scan.KindComma
	TokenString      TokenKind = scan.KindString
	TokenNumber      TokenKind = scan.KindNumber
	TokenTrue        TokenKind = scan.KindTrue
	TokenFalse       TokenKind = scan.KindFalse
	TokenNull        TokenKind = scan.KindNull
)

// Token describes a token in the input. Text holds decoded string content or
// the raw number lexeme. Offset records the byte position when known (-1
// otherwise); Line and Column are 0 when unknown.
type Token = scan.Token

// TokenSource yields tokens in a single forward pass and reports TokenEOF once
// the input is exhausted.
type TokenSource = scan.Source

// JSONDriver converts JSON input into a TokenSource via a pluggable SPI. The
// default implementation is the native scanner and may be swapped with
// SetJSONDriver.
type JSONDriver interface {
	NewBytes(b []byte) TokenSource
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = nativeDriver{}
)

// SetJSONDriver replaces the process-wide JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the native scanner.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = nativeDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the process-wide JSON driver.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// NativeDriver returns the driver backed by the built-in scanner.
func NativeDriver() JSONDriver { return nativeDriver{} }

type nativeDriver struct{}

func (nativeDriver) NewBytes(b []byte) TokenSource { return scan.New(b) }
func (nativeDriver) Name() string                  { return "native" }

// JSONBytes wraps a byte slice as a TokenSource using the current driver.
func JSONBytes(b []byte) TokenSource { return CurrentJSONDriver().NewBytes(b) }
