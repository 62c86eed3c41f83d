package pj

import "fmt"

// A Visitor handles every variant of Value. Accept dispatches to exactly one
// method; Array and Object implementations may recurse with Accept.
type Visitor[T any] interface {
	Null() (T, error)
	Bool(bool) (T, error)
	Number(literal string) (T, error)
	String(string) (T, error)
	Array([]Value) (T, error)
	Object([]Member) (T, error)
}

// Accept applies visitor to v.
//
// This is a function so that the visitor result can be a generic type; Go does
// not allow methods to have type parameters unrelated to the receiver.
func Accept[T any](v Value, visitor Visitor[T]) (T, error) {
	switch v.kind {
	case KindNull:
		return visitor.Null()
	case KindBool:
		return visitor.Bool(v.b)
	case KindNumber:
		return visitor.Number(v.s)
	case KindString:
		return visitor.String(v.s)
	case KindArray:
		return visitor.Array(v.elems)
	case KindObject:
		return visitor.Object(v.members)
	default:
		var zero T
		return zero, fmt.Errorf("pj: unknown value kind %d", v.kind)
	}
}
