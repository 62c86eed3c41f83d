// Package pj decodes JSON text into an order-preserving Value tree and renders
// it back as indentation-normalized text.
//
// The package provides:
//
//   - Decode / DecodeFrom: RFC 8259 decoding through a lexical scanner and a
//     recursive-descent parser, with a nesting depth guard
//   - Encode / EncodeTo: deterministic pretty printing (two-space indent,
//     trailing newline) or compact output
//   - A structured error model (Error with code, offset, line, column and
//     JSON Pointer path)
//   - Duplicate key policy (Ignore, Warn or Reject) and DetectDuplicateKeys
//   - JSON Pointer lookup (Value.At), Equal and the Visitor/Accept pair
//   - A pluggable token source SPI (JSONDriver); the native scanner is the
//     default and source/gojson offers a goccy/go-json backed alternative
//
// Design policy:
//   - Keep only public APIs in the root package; put the scanner and the
//     enforcement layer under internal/.
//   - Values are immutable after construction; the codec has no global mutable
//     state besides the driver selection.
//
// Typical usage:
//
//	v, err := pj.Decode(data)
//	out, err := pj.Encode(v)
//
//	codec := pj.Codec{Decoding: pj.DecodeOpt{MaxDepth: 64}}
//	err = codec.FormatTo(os.Stdout, data)
package pj
