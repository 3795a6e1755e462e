// Package cplx provides complex numbers whose real and imaginary parts are
// exact rational numbers from package bigrat.
//
// Binary operations accept any Operand on the right-hand side. The formula
// used depends on the kind of operand, mirroring how each kind combines with
// a bigrat.N: integers and floats are used exactly, and a rational multiplier
// is applied through its float64 value. Constructors taking a float64 convert
// it with bigrat.FromFloat64 instead.
package cplx

import (
	"errors"
	"math"
	"math/big"

	"github.com/kbolino/bigrat"
	"github.com/kbolino/bigrat/internal/floatfmt"
)

// Common errors returned by functions in this package.
// Division by zero is reported with bigrat.ErrDivByZero.
var (
	ErrInvalidOp       = errors.New("inverse of zero")
	ErrUnsupportedType = errors.New("unsupported operand type")
)

// Z is a complex number re + im·i with rational parts.
//
// The zero value of Z is 0+0i and ready to use. Z must not be copied by
// value; use Set. Methods that mutate their receiver are not safe for
// concurrent use.
type Z struct {
	re bigrat.N
	im bigrat.N
}

// New returns re + im·i. The arguments are copied.
func New(re, im *bigrat.N) *Z {
	z := new(Z)
	z.re.Set(re)
	z.im.Set(im)
	return z
}

// FromReal returns re + 0i.
func FromReal(re *bigrat.N) *Z {
	z := new(Z)
	z.re.Set(re)
	z.im.Set(bigrat.FromInt64(0))
	return z
}

// FromInt64 returns re + im·i.
func FromInt64(re, im int64) *Z {
	return New(bigrat.FromInt64(re), bigrat.FromInt64(im))
}

// FromBig returns re + im·i.
func FromBig(re, im *big.Int) *Z {
	return New(bigrat.FromBigInt(re), bigrat.FromBigInt(im))
}

// FromFloat64 returns re + im·i with each part converted by
// bigrat.FromFloat64.
func FromFloat64(re, im float64) (*Z, error) {
	r, err := bigrat.FromFloat64(re)
	if err != nil {
		return nil, err
	}
	i, err := bigrat.FromFloat64(im)
	if err != nil {
		return nil, err
	}
	return New(r, i), nil
}

// From converts a single operand to Z. A *Z is copied; a real operand
// becomes the real part with a zero imaginary part, a float64 converted by
// bigrat.FromFloat64.
func From(v Operand) (*Z, error) {
	if w, ok := v.(*Z); ok && w != nil {
		return new(Z).Set(w), nil
	}
	r, err := realOperand(v)
	if err != nil {
		return nil, err
	}
	return FromReal(r), nil
}

// FromParts returns re + im·i, where re and im are any real operands.
func FromParts(re, im Operand) (*Z, error) {
	r, err := realOperand(re)
	if err != nil {
		return nil, err
	}
	i, err := realOperand(im)
	if err != nil {
		return nil, err
	}
	return New(r, i), nil
}

// Real returns a copy of the real part of z.
func (z *Z) Real() *bigrat.N {
	return new(bigrat.N).Set(&z.re)
}

// Imag returns a copy of the imaginary part of z.
func (z *Z) Imag() *bigrat.N {
	return new(bigrat.N).Set(&z.im)
}

// SetReal sets the real part of z to a copy of v and returns z.
func (z *Z) SetReal(v *bigrat.N) *Z {
	z.re.Set(v)
	return z
}

// SetImag sets the imaginary part of z to a copy of v and returns z.
func (z *Z) SetImag(v *bigrat.N) *Z {
	z.im.Set(v)
	return z
}

// Set sets z to a copy of w and returns z.
func (z *Z) Set(w *Z) *Z {
	z.re.Set(&w.re)
	z.im.Set(&w.im)
	return z
}

// IsZero returns true if z is exactly 0+0i.
func (z *Z) IsZero() bool {
	return z.re.IsZero() && z.im.IsZero()
}

// IsReal returns true if the imaginary part of z is zero.
func (z *Z) IsReal() bool {
	return z.im.IsZero()
}

// Abs returns the magnitude of z, computed in floating point.
func (z *Z) Abs() float64 {
	r, i := z.floats()
	return math.Sqrt(r*r + i*i)
}

// Arg returns the argument of z in radians, in the range [-Pi, Pi].
func (z *Z) Arg() float64 {
	r, i := z.floats()
	return math.Atan2(i, r)
}

// Complex128 returns the nearest complex128 to z.
func (z *Z) Complex128() complex128 {
	r, i := z.floats()
	return complex(r, i)
}

// String returns z as "(R + Ii)", or "(R - Ii)" when the imaginary part is
// negative, with R and I the float64 values of the parts written with the
// fewest digits that identify them, e.g. "(0.5 + 0.75i)".
func (z *Z) String() string {
	r, i := z.floats()
	if i >= 0 {
		return "(" + floatfmt.Repr(r) + " + " + floatfmt.Repr(i) + "i)"
	}
	return "(" + floatfmt.Repr(r) + " - " + floatfmt.Repr(-i) + "i)"
}

// GoString returns z in constructor form, e.g. "Complex(0.5, 0.75)", with
// each part written as by bigrat.N.String.
func (z *Z) GoString() string {
	return "Complex(" + z.re.String() + ", " + z.im.String() + ")"
}

func (z *Z) floats() (re, im float64) {
	re, _ = z.re.Float64()
	im, _ = z.im.Float64()
	return re, im
}
