package cplx

import (
	"fmt"
	"math/big"

	"github.com/kbolino/bigrat"
)

// Operand is a value accepted by the binary operations of Z. The accepted
// dynamic types are *Z, *bigrat.N, *big.Int, int, int64 and float64; any
// other type, or a nil pointer, yields ErrUnsupportedType.
type Operand = any

type kind int

const (
	kindComplex kind = iota
	kindRat
	kindInt
	kindFloat
)

// operand is an Operand sorted by kind. For kindComplex only z is set.
// Otherwise r holds the exact value as a rational, for kindInt i holds it as
// an integer, and for kindFloat f holds the original float64.
type operand struct {
	kind kind
	z    *Z
	r    *bigrat.N
	i    *big.Int
	f    float64
}

func classify(v Operand) (operand, error) {
	switch v := v.(type) {
	case *Z:
		if v != nil {
			return operand{kind: kindComplex, z: v}, nil
		}
	case *bigrat.N:
		if v != nil {
			return operand{kind: kindRat, r: v}, nil
		}
	case *big.Int:
		if v != nil {
			return intOperand(v), nil
		}
	case int:
		return intOperand(big.NewInt(int64(v))), nil
	case int64:
		return intOperand(big.NewInt(v)), nil
	case float64:
		r, err := bigrat.FromFloat64Exact(v)
		if err != nil {
			return operand{}, err
		}
		return operand{kind: kindFloat, r: r, f: v}, nil
	}
	return operand{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

func intOperand(v *big.Int) operand {
	return operand{kind: kindInt, r: bigrat.FromBigInt(v), i: v}
}

// realOperand converts an operand that must not be complex to a rational.
// Floats are converted with bigrat.FromFloat64.
func realOperand(v Operand) (*bigrat.N, error) {
	o, err := classify(v)
	if err != nil {
		return nil, err
	}
	switch o.kind {
	case kindComplex:
		return nil, fmt.Errorf("%w: complex value where a real one is required", ErrUnsupportedType)
	case kindFloat:
		return bigrat.FromFloat64(o.f)
	}
	return o.r, nil
}

// scalar returns the multiplier used for a real operand. Integers and floats
// are used exactly. A rational is replaced by the exact value of its nearest
// float64, or used as is when that float64 would be infinite.
func (o operand) scalar() *bigrat.N {
	if o.kind != kindRat {
		return o.r
	}
	f, _ := o.r.Float64()
	r, err := bigrat.FromFloat64Exact(f)
	if err != nil {
		return o.r
	}
	return r
}
