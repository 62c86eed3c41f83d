package pj

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPointerNotFound is returned by At when a pointer does not resolve.
var ErrPointerNotFound = errors.New("pj: pointer not found")

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// At resolves an RFC 6901 JSON Pointer against v. The empty pointer addresses
// v itself; "/" addresses the member with the empty key.
func (v Value) At(pointer string) (Value, error) {
	if pointer == "" {
		return v, nil
	}
	if pointer[0] != '/' {
		return Value{}, fmt.Errorf("pj: invalid pointer %q: must start with '/'", pointer)
	}
	cur := v
	for _, raw := range strings.Split(pointer[1:], "/") {
		if err := checkPointerEscapes(raw); err != nil {
			return Value{}, fmt.Errorf("pj: invalid pointer %q: %w", pointer, err)
		}
		token := pointerUnescaper.Replace(raw)
		switch cur.kind {
		case KindObject:
			next, ok := cur.Get(token)
			if !ok {
				return Value{}, fmt.Errorf("%w: %q has no member %q", ErrPointerNotFound, pointer, token)
			}
			cur = next
		case KindArray:
			i, err := arrayIndex(token)
			if err != nil {
				return Value{}, fmt.Errorf("pj: invalid pointer %q: %w", pointer, err)
			}
			next, ok := cur.Index(i)
			if !ok {
				return Value{}, fmt.Errorf("%w: %q index %d out of range", ErrPointerNotFound, pointer, i)
			}
			cur = next
		default:
			return Value{}, fmt.Errorf("%w: %q descends into %s", ErrPointerNotFound, pointer, cur.kind)
		}
	}
	return cur, nil
}

func checkPointerEscapes(tok string) error {
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			continue
		}
		if i+1 >= len(tok) || (tok[i+1] != '0' && tok[i+1] != '1') {
			return errors.New("'~' must be followed by '0' or '1'")
		}
	}
	return nil
}

func arrayIndex(tok string) (int, error) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, fmt.Errorf("bad array index %q", tok)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("bad array index %q", tok)
		}
	}
	return strconv.Atoi(tok)
}
