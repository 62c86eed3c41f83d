package scan

// Kind enumerates lexical token kinds.
type Kind int

const (
	KindEOF Kind = iota
	KindBeginObject
	KindEndObject
	KindBeginArray
	KindEndArray
	KindColon
	KindComma
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
)

// String returns the token as it would appear in the input.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindBeginObject:
		return "'{'"
	case KindEndObject:
		return "'}'"
	case KindBeginArray:
		return "'['"
	case KindEndArray:
		return "']'"
	case KindColon:
		return "':'"
	case KindComma:
		return "','"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTrue:
		return "'true'"
	case KindFalse:
		return "'false'"
	case KindNull:
		return "'null'"
	default:
		return "unknown token"
	}
}

// StartsValue reports whether a token of this kind opens a JSON value.
func (k Kind) StartsValue() bool {
	switch k {
	case KindBeginObject, KindBeginArray, KindString, KindNumber, KindTrue, KindFalse, KindNull:
		return true
	}
	return false
}

// Token is a lexical unit. Text holds the decoded content of strings and the raw
// lexeme of numbers. Offset is the byte position of the first byte of the
// token (-1 when the producing source cannot tell).
type Token struct {
	Kind   Kind
	Text   string
	Offset int64
	Line   int
	Column int
}

// Source produces tokens in a single forward pass.
type Source interface {
	Next() (Token, error)
}
