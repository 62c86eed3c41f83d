package pj_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/pj"
)

func TestEncodeScenarioObjectWithArray(t *testing.T) {
	out, err := pj.Format([]byte(`{"x":[1,2,3],"y":null}`))
	require.NoError(t, err)
	want := "{\n" +
		"  \"x\": [\n" +
		"    1,\n" +
		"    2,\n" +
		"    3\n" +
		"  ],\n" +
		"  \"y\": null\n" +
		"}\n"
	assert.Equal(t, want, string(out))
}

func TestEncodeScenarioTabEscape(t *testing.T) {
	out, err := pj.Format([]byte(`{"a": "tab\there"}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"tab\\there\"\n}\n", string(out))
}

func TestEncodeEmptyContainers(t *testing.T) {
	for _, src := range []string{"{}", "[]"} {
		out, err := pj.Format([]byte(src))
		require.NoError(t, err)
		assert.Equal(t, src+"\n", string(out))
	}

	v := pj.Object(
		pj.Member{Key: "a", Value: pj.Array()},
		pj.Member{Key: "b", Value: pj.Object()},
	)
	out, err := pj.Encode(v)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [],\n  \"b\": {}\n}\n", string(out))
}

func TestEncodeScalarsAtTopLevel(t *testing.T) {
	tests := []struct {
		v    pj.Value
		want string
	}{
		{v: pj.Null(), want: "null\n"},
		{v: pj.Bool(true), want: "true\n"},
		{v: pj.Bool(false), want: "false\n"},
		{v: pj.Int(-42), want: "-42\n"},
		{v: pj.MustNumber("1.50e+10"), want: "1.50e+10\n"},
		{v: pj.String("hi"), want: "\"hi\"\n"},
	}
	for _, tt := range tests {
		out, err := pj.Encode(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(out))
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "quote and backslash", in: `a"b\c`, want: `"a\"b\\c"`},
		{name: "short escapes", in: "\b\f\n\r\t", want: `"\b\f\n\r\t"`},
		{name: "other controls", in: "\x00\x01\x1f", want: `"\u0000\u0001\u001f"`},
		{name: "delete is literal", in: "\x7f", want: "\"\x7f\""},
		{name: "solidus is literal", in: "a/b", want: `"a/b"`},
		{name: "non ascii is literal", in: "日本語 😀", want: `"日本語 😀"`},
		{name: "invalid utf8", in: "a\xffb", want: `"a\ufffdb"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := pj.Encode(pj.String(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", string(out))
		})
	}
}

func TestEncodeLoneSurrogateRoundTrip(t *testing.T) {
	out, err := pj.Format([]byte(`"\uD800"`))
	require.NoError(t, err)
	assert.Equal(t, "\"\\ud800\"\n", string(out))

	out, err = pj.Format([]byte(`["x\uDC00y", "\uD83D\uDE00"]`))
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"x\\udc00y\",\n  \"😀\"\n]\n", string(out))
}

func TestEncodeOptions(t *testing.T) {
	v := mustDecode(t, `{"a":[1,{"b":true}],"c":{}}`)

	out, err := pj.Encode(v, pj.EncodeOpt{Compact: true})
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":[1,{\"b\":true}],\"c\":{}}\n", string(out))
	assert.Equal(t, `{"a":[1,{"b":true}],"c":{}}`, v.String())

	out, err = pj.Encode(v, pj.EncodeOpt{Indent: "\t"})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": [\n\t\t1,\n\t\t{\n\t\t\t\"b\": true\n\t\t}\n\t],\n\t\"c\": {}\n}\n", string(out))
}

func nestedArrays(depth int) pj.Value {
	v := pj.Array()
	for i := 1; i < depth; i++ {
		v = pj.Array(v)
	}
	return v
}

func TestEncodeDepthGuard(t *testing.T) {
	_, err := pj.Encode(nestedArrays(pj.DefaultMaxDepth))
	require.NoError(t, err)

	_, err = pj.Encode(nestedArrays(pj.DefaultMaxDepth + 1))
	assert.True(t, pj.IsCode(err, pj.CodeMaxDepthExceeded))

	v := pj.Object(pj.Member{Key: "a/b", Value: pj.Array(pj.Array())})
	_, err = pj.Encode(v, pj.EncodeOpt{MaxDepth: 2})
	e, ok := pj.AsError(err)
	require.True(t, ok)
	assert.Equal(t, pj.CodeMaxDepthExceeded, e.Code)
	assert.Equal(t, "/a~1b/0", e.Path)
}

func TestEncodeToWritesNothingOnFailure(t *testing.T) {
	var buf bytes.Buffer
	err := pj.EncodeTo(&buf, nestedArrays(4), pj.EncodeOpt{MaxDepth: 3})
	require.Error(t, err)
	assert.Zero(t, buf.Len())

	require.NoError(t, pj.EncodeTo(&buf, pj.Array(pj.Int(1))))
	assert.Equal(t, "[\n  1\n]\n", buf.String())
}

func TestCodecFormatTo(t *testing.T) {
	c := pj.Codec{Encoding: pj.EncodeOpt{Compact: true}}
	var buf bytes.Buffer
	require.NoError(t, c.FormatTo(&buf, []byte(" [ 1 , 2 ] ")))
	assert.Equal(t, "[1,2]\n", buf.String())

	buf.Reset()
	require.Error(t, c.FormatTo(&buf, []byte(`[1,`)))
	assert.Zero(t, buf.Len())
}
