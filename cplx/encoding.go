package cplx

import (
	"fmt"

	"github.com/kbolino/bigrat"
	"github.com/vmihailenco/msgpack/v4"
)

// EncodeMsgpack writes z as a two-element array of bigrat extension values.
func (z *Z) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.Encode(&z.re); err != nil {
		return fmt.Errorf("encoding real part: %w", err)
	}
	if err := enc.Encode(&z.im); err != nil {
		return fmt.Errorf("encoding imaginary part: %w", err)
	}
	return nil
}

// DecodeMsgpack reads a value written by EncodeMsgpack into z.
// z is unchanged on error.
func (z *Z) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: complex array of length %d", bigrat.ErrEncoding, n)
	}
	var re, im bigrat.N
	if err := dec.Decode(&re); err != nil {
		return fmt.Errorf("decoding real part: %w", err)
	}
	if err := dec.Decode(&im); err != nil {
		return fmt.Errorf("decoding imaginary part: %w", err)
	}
	z.set(&re, &im)
	return nil
}
