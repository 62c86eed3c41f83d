package pj

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/pj/internal/scan"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a decoded JSON value. The zero Value is null. Arrays and objects own
// their children; a Value is never mutated after construction.
type Value struct {
	kind Kind

	b bool
	// s is the string content for KindString and the literal text for
	// KindNumber.
	s string

	elems   []Value
	members []Member
}

// Member is a key-value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integral number.
func Int(i int64) Value { return Value{kind: KindNumber, s: strconv.FormatInt(i, 10)} }

// Float returns a number holding the shortest representation of f that
// parses back to f. NaN and infinities have no JSON form.
func Float(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, &Error{Code: CodeInvalidNumber, Offset: -1, Message: fmt.Sprintf("non-finite number %v", f)}
	}
	return Value{kind: KindNumber, s: strconv.FormatFloat(f, 'g', -1, 64)}, nil
}

// Number returns a number holding literal verbatim. The literal must follow
// the RFC 8259 number grammar.
func Number(literal string) (Value, error) {
	tok, err := scan.New([]byte(literal)).Next()
	if err != nil || tok.Kind != scan.KindNumber || tok.Text != literal {
		return Value{}, &Error{Code: CodeInvalidNumber, Offset: -1, Message: fmt.Sprintf("invalid number literal %q", literal), Cause: err}
	}
	return Value{kind: KindNumber, s: literal}, nil
}

// MustNumber is like Number but panics on an invalid literal.
func MustNumber(literal string) Value {
	v, err := Number(literal)
	if err != nil {
		panic("pj.MustNumber: " + err.Error())
	}
	return v
}

// String returns a string value. An adjacent pair of WTF-8 encoded surrogate
// halves is stored as the scalar it encodes, matching what decoding the
// encoded text would produce.
func String(s string) Value { return Value{kind: KindString, s: scan.JoinSurrogates(s)} }

// Array returns an array holding a copy of elems.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: append([]Value{}, elems...)}
}

// Object returns an object with the given members in order. A repeated key
// replaces the earlier value but keeps the earlier position.
func Object(members ...Member) Value {
	var ob objectBuilder
	for _, m := range members {
		ob.set(scan.JoinSurrogates(m.Key), m.Value)
	}
	return ob.value()
}

// objectBuilder accumulates members with last-write-wins semantics.
type objectBuilder struct {
	members []Member
	index   map[string]int
}

const linearLookupLimit = 8

func (ob *objectBuilder) set(key string, v Value) {
	if i, ok := ob.lookup(key); ok {
		ob.members[i].Value = v
		return
	}
	ob.members = append(ob.members, Member{Key: key, Value: v})
	if ob.index != nil {
		ob.index[key] = len(ob.members) - 1
	} else if len(ob.members) > linearLookupLimit {
		ob.index = make(map[string]int, len(ob.members)*2)
		for i, m := range ob.members {
			ob.index[m.Key] = i
		}
	}
}

func (ob *objectBuilder) lookup(key string) (int, bool) {
	if ob.index != nil {
		i, ok := ob.index[key]
		return i, ok
	}
	for i := range ob.members {
		if ob.members[i].Key == key {
			return i, true
		}
	}
	return 0, false
}

func (ob *objectBuilder) value() Value {
	if ob.members == nil {
		return Value{kind: KindObject, members: []Member{}}
	}
	return Value{kind: KindObject, members: ob.members}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) expect(k Kind) error {
	if v.kind != k {
		return fmt.Errorf("pj: expected %s, got %s", k, v.kind)
	}
	return nil
}

// AsBool returns the boolean value.
func (v Value) AsBool() (bool, error) {
	if err := v.expect(KindBool); err != nil {
		return false, err
	}
	return v.b, nil
}

// AsString returns the string content.
func (v Value) AsString() (string, error) {
	if err := v.expect(KindString); err != nil {
		return "", err
	}
	return v.s, nil
}

// Literal returns the number text exactly as decoded or constructed.
func (v Value) Literal() (string, error) {
	if err := v.expect(KindNumber); err != nil {
		return "", err
	}
	return v.s, nil
}

// AsFloat64 returns the number as the nearest float64.
func (v Value) AsFloat64() (float64, error) {
	if err := v.expect(KindNumber); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(v.s, 64)
}

// AsInt64 returns the number as an int64 when it is integral and in range.
// Literals like 1e3 or 2.0 are accepted.
func (v Value) AsInt64() (int64, error) {
	if err := v.expect(KindNumber); err != nil {
		return 0, err
	}
	if !strings.ContainsAny(v.s, ".eE") {
		return strconv.ParseInt(v.s, 10, 64)
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("pj: number %s is not an int64", v.s)
	}
	return int64(f), nil
}

// Elems returns the array elements. The slice must not be modified.
func (v Value) Elems() ([]Value, error) {
	if err := v.expect(KindArray); err != nil {
		return nil, err
	}
	return v.elems, nil
}

// Members returns the object members in insertion order. The slice must not be
// modified.
func (v Value) Members() ([]Member, error) {
	if err := v.expect(KindObject); err != nil {
		return nil, err
	}
	return v.members, nil
}

// Len returns the number of elements or members; 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.elems)
	case KindObject:
		return len(v.members)
	}
	return 0
}

// Get returns the member value for key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Index returns the i-th array element.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.elems) {
		return Value{}, false
	}
	return v.elems[i], true
}

// String renders v as compact JSON without a trailing newline.
func (v Value) String() string {
	out, err := Encode(v, EncodeOpt{Compact: true})
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(out[:len(out)-1])
}
