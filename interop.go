package pj

import (
	"fmt"
	"sort"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// MarshalJSON renders v compactly so a Value can be embedded in structs handled
// by goccy/go-json or encoding/json.
func (v Value) MarshalJSON() ([]byte, error) {
	out, err := Encode(v, EncodeOpt{Compact: true})
	if err != nil {
		return nil, err
	}
	return out[:len(out)-1], nil
}

// UnmarshalJSON decodes b with the default options, preserving member order.
func (v *Value) UnmarshalJSON(b []byte) error {
	nv, err := Decode(b)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// FromGo converts generic Go data into a Value. Map keys are sorted because Go
// maps have no order.
func FromGo(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case gojson.Number:
		return Number(string(t))
	case float64:
		return Float(t)
	case float32:
		return Float(float64(t))
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Value{kind: KindNumber, s: strconv.FormatUint(uint64(t), 10)}, nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return Value{kind: KindNumber, s: strconv.FormatUint(t, 10)}, nil
	case []any:
		elems := make([]Value, len(t))
		for i, el := range t {
			v, err := FromGo(el)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Value{kind: KindArray, elems: elems}, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			v, err := FromGo(t[k])
			if err != nil {
				return Value{}, err
			}
			members[i] = Member{Key: k, Value: v}
		}
		return Value{kind: KindObject, members: members}, nil
	default:
		return Value{}, fmt.Errorf("pj: unsupported Go type %T", x)
	}
}

// ToGo converts v into generic Go data: nil, bool, gojson.Number, string,
// []any and map[string]any. Member order is lost.
func ToGo(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return gojson.Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.elems))
		for i, el := range v.elems {
			out[i] = ToGo(el)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.members))
		for _, m := range v.members {
			out[m.Key] = ToGo(m.Value)
		}
		return out
	default:
		return nil
	}
}
