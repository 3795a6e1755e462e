package bigrat

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v4"
)

// ExtType is the msgpack extension type code used for N.
const ExtType int8 = 0x52

func init() {
	msgpack.RegisterExt(ExtType, (*N)(nil))
}

// MarshalMsgpack encodes x as the payload of a msgpack extension value: the
// gob encodings of the numerator and denominator, each preceded by its length
// as a uvarint. The parts are encoded as stored, so unreduced values survive
// a round trip unchanged.
func (x *N) MarshalMsgpack() ([]byte, error) {
	num, err := x.m.GobEncode()
	if err != nil {
		return nil, fmt.Errorf("encoding numerator: %w", err)
	}
	den, err := x.den().GobEncode()
	if err != nil {
		return nil, fmt.Errorf("encoding denominator: %w", err)
	}
	buf := make([]byte, 0, 2*binary.MaxVarintLen64+len(num)+len(den))
	buf = binary.AppendUvarint(buf, uint64(len(num)))
	buf = append(buf, num...)
	buf = binary.AppendUvarint(buf, uint64(len(den)))
	buf = append(buf, den...)
	return buf, nil
}

// UnmarshalMsgpack decodes a payload written by MarshalMsgpack into x.
// x is left unchanged if the payload is malformed or has a zero denominator.
func (x *N) UnmarshalMsgpack(data []byte) error {
	var m, n big.Int
	rest, err := readPart(data, &m)
	if err != nil {
		return fmt.Errorf("decoding numerator: %w", err)
	}
	rest, err = readPart(rest, &n)
	if err != nil {
		return fmt.Errorf("decoding denominator: %w", err)
	}
	if len(rest) != 0 {
		return ErrEncoding
	}
	if n.Sign() == 0 {
		return ErrDenZero
	}
	x.m.Set(&m)
	x.n.Set(&n)
	return nil
}

// readPart decodes one length-prefixed integer from data into v and returns
// the remaining bytes.
func readPart(data []byte, v *big.Int) ([]byte, error) {
	l, k := binary.Uvarint(data)
	if k <= 0 || l > uint64(len(data)-k) {
		return nil, ErrEncoding
	}
	data = data[k:]
	if err := v.GobDecode(data[:l]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return data[l:], nil
}

// FromDecimal converts a decimal number to N exactly.
// The result is in lowest terms.
func FromDecimal(d decimal.Decimal) *N {
	z := new(N)
	z.m.Set(d.Coefficient())
	exp := d.Exponent()
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs32(exp))), nil)
	if exp >= 0 {
		z.m.Mul(&z.m, scale)
	} else {
		z.n.Set(scale)
	}
	return z.Reduce()
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Decimal converts x to a decimal number rounded to the given number of
// places after the decimal point, with ties rounded away from zero.
func (x *N) Decimal(places int32) decimal.Decimal {
	num := decimal.NewFromBigInt(&x.m, 0)
	den := decimal.NewFromBigInt(x.den(), 0)
	return num.DivRound(den, places)
}
