package pj_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/pj"
)

func TestObjectLastWriteWins(t *testing.T) {
	v := pj.Object(
		pj.Member{Key: "a", Value: pj.Int(1)},
		pj.Member{Key: "b", Value: pj.Int(2)},
		pj.Member{Key: "a", Value: pj.Int(3)},
	)
	assert.Equal(t, `{"a":3,"b":2}`, v.String())
	assert.Equal(t, 2, v.Len())
}

func TestObjectManyMembers(t *testing.T) {
	var members []pj.Member
	for i := 0; i < 40; i++ {
		members = append(members, pj.Member{Key: fmt.Sprintf("k%d", i%20), Value: pj.Int(int64(i))})
	}
	v := pj.Object(members...)
	require.Equal(t, 20, v.Len())
	got, ok := v.Get("k3")
	require.True(t, ok)
	assert.Equal(t, "23", got.String())
	ms, err := v.Members()
	require.NoError(t, err)
	assert.Equal(t, "k0", ms[0].Key)
	assert.Equal(t, "k19", ms[19].Key)
}

func TestArrayCopiesInput(t *testing.T) {
	elems := []pj.Value{pj.Int(1), pj.Int(2)}
	v := pj.Array(elems...)
	elems[0] = pj.Null()
	first, ok := v.Index(0)
	require.True(t, ok)
	assert.Equal(t, "1", first.String())
	_, ok = v.Index(2)
	assert.False(t, ok)
}

func TestNumberConstructors(t *testing.T) {
	for _, lit := range []string{"0", "-0", "12", "1.5", "1e9", "-2.5E-3"} {
		v, err := pj.Number(lit)
		require.NoError(t, err, lit)
		got, err := v.Literal()
		require.NoError(t, err)
		assert.Equal(t, lit, got)
	}
	for _, lit := range []string{"", "01", "+1", ".5", "1.", "1e", "NaN", "1 ", " 1", "1,2"} {
		_, err := pj.Number(lit)
		assert.True(t, pj.IsCode(err, pj.CodeInvalidNumber), "literal %q: %v", lit, err)
	}
	assert.Panics(t, func() { pj.MustNumber("x") })

	f, err := pj.Float(0.1)
	require.NoError(t, err)
	assert.Equal(t, "0.1", f.String())
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := pj.Float(bad)
		assert.True(t, pj.IsCode(err, pj.CodeInvalidNumber))
	}
}

func TestNumberAccessors(t *testing.T) {
	n, err := pj.MustNumber("1e3").AsInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)

	_, err = pj.MustNumber("1.5").AsInt64()
	assert.Error(t, err)
	_, err = pj.MustNumber("9223372036854775808").AsInt64()
	assert.Error(t, err)

	f, err := pj.MustNumber("2.5").AsFloat64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)
}

func TestAccessorsRejectWrongKind(t *testing.T) {
	v := pj.String("x")
	_, err := v.AsBool()
	assert.Error(t, err)
	_, err = v.Literal()
	assert.Error(t, err)
	_, err = v.Elems()
	assert.Error(t, err)
	_, err = v.Members()
	assert.Error(t, err)
	_, ok := v.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, v.Len())
	_, err = pj.Null().AsString()
	assert.Error(t, err)
	assert.True(t, pj.Null().IsNull())
	assert.Equal(t, "null", pj.Value{}.String())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{a: `1`, b: `1.0`, want: true},
		{a: `100`, b: `1e2`, want: true},
		{a: `0`, b: `-0`, want: true},
		{a: `9007199254740993`, b: `9007199254740992`, want: false},
		{a: `1e400`, b: `1e400`, want: true},
		{a: `1e400`, b: `2e400`, want: false},
		{a: `1E400`, b: `1e400`, want: true},
		{a: `1e400`, b: `10e399`, want: true},
		{a: `1e400`, b: `1.0000000000000000000001e400`, want: false},
		{a: `0.1`, b: `1e-1`, want: true},
		{a: `-0.0`, b: `0`, want: true},
		{a: `9007199254740993.0`, b: `9007199254740992`, want: false},
		{a: `1e-400`, b: `0`, want: false},
		{a: `{"a":1,"b":2}`, b: `{"b":2,"a":1}`, want: false},
		{a: `[1,[2]]`, b: `[1,[2]]`, want: true},
		{a: `[1]`, b: `[1,1]`, want: false},
		{a: `"a"`, b: `"a"`, want: true},
		{a: `null`, b: `false`, want: false},
		{a: `{}`, b: `[]`, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pj.Equal(mustDecode(t, tt.a), mustDecode(t, tt.b)), "%s vs %s", tt.a, tt.b)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", pj.KindObject.String())
	assert.Equal(t, "null", pj.KindNull.String())
}

// render rebuilds compact JSON through the visitor to prove every variant is
// reachable.
type render struct{}

func (render) Null() (string, error)             { return "null", nil }
func (render) Bool(b bool) (string, error)       { return fmt.Sprint(b), nil }
func (render) Number(lit string) (string, error) { return lit, nil }
func (render) String(s string) (string, error)   { return fmt.Sprintf("%q", s), nil }
func (r render) Array(elems []pj.Value) (string, error) {
	parts := make([]string, len(elems))
	for i, el := range elems {
		s, err := pj.Accept[string](el, r)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ",") + "]", nil
}
func (r render) Object(members []pj.Member) (string, error) {
	parts := make([]string, len(members))
	for i, m := range members {
		s, err := pj.Accept[string](m.Value, r)
		if err != nil {
			return "", err
		}
		parts[i] = fmt.Sprintf("%q:%s", m.Key, s)
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

func TestAccept(t *testing.T) {
	src := `{"b":[1,true,null,"x"],"a":{}}`
	got, err := pj.Accept[string](mustDecode(t, src), render{})
	require.NoError(t, err)
	assert.Equal(t, src, got)
}
