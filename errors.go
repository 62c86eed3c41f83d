package pj

import (
	"errors"
	"fmt"
	"strings"

	eng "github.com/reoring/pj/internal/engine"
	"github.com/reoring/pj/internal/scan"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// Lexical
	CodeUnterminatedString   = scan.CodeUnterminatedString
	CodeInvalidEscape        = scan.CodeInvalidEscape
	CodeInvalidUnicodeEscape = scan.CodeInvalidUnicodeEscape
	CodeInvalidNumber        = scan.CodeInvalidNumber
	CodeUnexpectedToken      = scan.CodeUnexpectedToken
	CodeControlCharacter     = scan.CodeControlCharacter
	// Structural
	CodeExpectedValue        = "expected_value"
	CodeExpectedKey          = "expected_key"
	CodeExpectedColon        = "expected_colon"
	CodeExpectedCommaOrClose = "expected_comma_or_close"
	CodeUnexpectedEndOfInput = "unexpected_end_of_input"
	CodeTrailingContent      = "trailing_content"
	CodeMaxDepthExceeded     = eng.CodeMaxDepthExceeded
	// Policy
	CodeDuplicateKey = eng.CodeDuplicateKey
	CodeTooLarge     = "too_large"
)

// Error is a decode or encode failure with positional context.
type Error struct {
	Code    string // One of the codes listed above.
	Offset  int64  // Byte offset in the input (-1 when unknown).
	Line    int    // 1-based; 0 when unknown.
	Column  int    // 1-based byte column; 0 when unknown.
	Path    string // JSON Pointer of the value being read ("/" for the root).
	Message string
	Cause   error // Optional: underlying error.
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Message)
	if e.Line > 0 {
		fmt.Fprintf(b, " at line %d column %d", e.Line, e.Column)
	} else if e.Offset >= 0 {
		fmt.Fprintf(b, " at offset %d", e.Offset)
	}
	if e.Path != "" {
		fmt.Fprintf(b, " (path %s)", e.Path)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code string) bool {
	e, ok := AsError(err)
	return ok && e.Code == code
}

func errorAt(code string, tok scan.Token, path, format string, a ...any) *Error {
	return &Error{
		Code:    code,
		Offset:  tok.Offset,
		Line:    tok.Line,
		Column:  tok.Column,
		Path:    path,
		Message: fmt.Sprintf(format, a...),
	}
}

// toError converts failures from the scanner, the enforcement layer or a
// third-party driver into *Error.
func toError(err error, path string) *Error {
	var se *scan.Error
	if errors.As(err, &se) {
		return &Error{Code: se.Code, Offset: se.Offset, Line: se.Line, Column: se.Column, Path: path, Message: se.Message}
	}
	var ie *eng.IssueError
	if errors.As(err, &ie) {
		return errorAt(ie.Code, ie.Token, ie.Path, "%s", ie.Message)
	}
	if e, ok := AsError(err); ok {
		return e
	}
	return &Error{Code: CodeUnexpectedToken, Offset: -1, Path: path, Message: err.Error(), Cause: err}
}
