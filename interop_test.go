package pj_test

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/pj"
)

type envelope struct {
	Kind    string   `json:"kind"`
	Payload pj.Value `json:"payload"`
}

func TestValueEmbedsInGoJSON(t *testing.T) {
	var env envelope
	require.NoError(t, gojson.Unmarshal([]byte(`{"kind":"k","payload":{"z":1,"a":[true,null]}}`), &env))
	assert.Equal(t, "k", env.Kind)
	assert.Equal(t, `{"z":1,"a":[true,null]}`, env.Payload.String())

	out, err := gojson.Marshal(env)
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"k","payload":{"z":1,"a":[true,null]}}`, string(out))
}

func TestUnmarshalJSONReportsCodec(t *testing.T) {
	var v pj.Value
	err := v.UnmarshalJSON([]byte(`{"a":}`))
	assert.True(t, pj.IsCode(err, pj.CodeExpectedValue))
}

func TestFromGo(t *testing.T) {
	v, err := pj.FromGo(map[string]any{
		"b": []any{1, int64(-2), uint64(18446744073709551615), 1.5, "s", nil, true},
		"a": gojson.Number("1e100"),
		"c": pj.String("kept"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1e100,"b":[1,-2,18446744073709551615,1.5,"s",null,true],"c":"kept"}`, v.String())

	_, err = pj.FromGo(struct{}{})
	assert.Error(t, err)
	_, err = pj.FromGo([]any{1, nanValue()})
	assert.True(t, pj.IsCode(err, pj.CodeInvalidNumber))
}

func nanValue() float64 {
	zero := 0.0
	return zero / zero
}

func TestToGo(t *testing.T) {
	v := mustDecode(t, `{"n":12345678901234567890,"s":"x","l":[false,null],"o":{}}`)
	got := pj.ToGo(v)
	want := map[string]any{
		"n": gojson.Number("12345678901234567890"),
		"s": "x",
		"l": []any{false, nil},
		"o": map[string]any{},
	}
	assert.Equal(t, want, got)

	back, err := pj.FromGo(got)
	require.NoError(t, err)
	assert.Equal(t, `{"l":[false,null],"n":12345678901234567890,"o":{},"s":"x"}`, back.String())
}
