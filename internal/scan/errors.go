package scan

import "fmt"

// Lexical error codes. The public package re-exports them.
const (
	CodeUnterminatedString   = "unterminated_string"
	CodeInvalidEscape        = "invalid_escape"
	CodeInvalidUnicodeEscape = "invalid_unicode_escape"
	CodeInvalidNumber        = "invalid_number"
	CodeUnexpectedToken      = "unexpected_token"
	CodeControlCharacter     = "control_character"
)

// Error is a lexical failure at a byte offset.
type Error struct {
	Code    string
	Offset  int64
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d column %d", e.Message, e.Line, e.Column)
}
