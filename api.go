package pj

import (
	"fmt"
	"io"
)

// Codec bundles decoding and encoding options so a host can configure the
// pipeline once and reuse it. The zero Codec uses the defaults and the
// process-wide JSON driver. A Codec holds no mutable state and is safe for
// concurrent use.
type Codec struct {
	Decoding DecodeOpt
	Encoding EncodeOpt
	// Driver selects the token source; nil means CurrentJSONDriver().
	Driver JSONDriver
}

func (c Codec) driver() JSONDriver {
	if c.Driver != nil {
		return c.Driver
	}
	return CurrentJSONDriver()
}

// Decode parses src into a Value.
func (c Codec) Decode(src []byte) (Value, error) {
	v, _, err := c.DecodeWithWarnings(src)
	return v, err
}

// DecodeWithWarnings is like Decode but also returns the recoverable problems
// met on the way. With Strictness.OnDuplicateKey set to Warn every repeated
// key is reported as a duplicate_key error while the value is still built
// with last write wins.
func (c Codec) DecodeWithWarnings(src []byte) (Value, []*Error, error) {
	if limit := c.Decoding.MaxBytes; limit > 0 && int64(len(src)) > limit {
		return Value{}, nil, &Error{
			Code:    CodeTooLarge,
			Offset:  limit,
			Path:    "/",
			Message: fmt.Sprintf("input of %d bytes exceeds limit of %d", len(src), limit),
		}
	}
	return decodeFrom(c.driver().NewBytes(src), c.Decoding)
}

// Encode renders v with the codec's encoding options.
func (c Codec) Encode(v Value) ([]byte, error) { return Encode(v, c.Encoding) }

// Format decodes src and re-encodes it. On failure no output is produced.
func (c Codec) Format(src []byte) ([]byte, error) {
	v, err := c.Decode(src)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}

// FormatTo is like Format but writes the result to w.
func (c Codec) FormatTo(w io.Writer, src []byte) error {
	out, err := c.Format(src)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Format pretty-prints src with the default options.
func Format(src []byte) ([]byte, error) { return Codec{}.Format(src) }
