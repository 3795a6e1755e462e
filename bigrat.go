// Package bigrat provides arbitrary-precision rational numbers.
// See the N type and New function for details.
package bigrat

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/kbolino/bigrat/internal/floatfmt"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero    = errors.New("denominator is zero")
	ErrDenInvalid = errors.New("denominator is not positive")
	ErrDivByZero  = errors.New("division by zero")
	ErrNotFinite  = errors.New("value is not finite")
	ErrEncoding   = errors.New("invalid rational encoding")
)

// DisplayPlaces is the number of decimal places String rounds to.
const DisplayPlaces = 10

var bigOne = big.NewInt(1)

// N is a rational number with arbitrary-precision numerator and denominator.
//
// Unlike big.Rat, N does not keep itself in lowest terms. Values built by New
// are stored exactly as given, and only the operations documented as reducing
// their result bring it to canonical form (gcd(num, den) == 1 and den > 0).
// Reduce may be called at any time to do so explicitly.
//
// The denominator is never zero: New rejects it and so does SetDen. The zero
// value of N is equal to 0/1 and ready to use.
//
// N contains big.Int values and must not be copied by value; use Set.
// Methods that mutate their receiver are not safe for concurrent use.
type N struct {
	m big.Int
	n big.Int // zero means 1
}

// Try creates a new rational number with the given numerator and denominator.
// Try returns an error if the denominator is zero. The result is not reduced.
func Try(num, den int64) (*N, error) {
	if den == 0 {
		return nil, ErrDenZero
	}
	x := new(N)
	x.m.SetInt64(num)
	x.n.SetInt64(den)
	return x, nil
}

// New is like Try but panics if the denominator is zero.
func New(num, den int64) *N {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// TryBig is like Try but takes arbitrary-precision parts.
// The arguments are copied.
func TryBig(num, den *big.Int) (*N, error) {
	if den.Sign() == 0 {
		return nil, ErrDenZero
	}
	x := new(N)
	x.m.Set(num)
	x.n.Set(den)
	return x, nil
}

// NewBig is like TryBig but panics if the denominator is zero.
func NewBig(num, den *big.Int) *N {
	x, err := TryBig(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// FromInt64 returns v/1.
func FromInt64(v int64) *N {
	x := new(N)
	x.m.SetInt64(v)
	x.n.SetInt64(1)
	return x
}

// FromBigInt returns v/1.
func FromBigInt(v *big.Int) *N {
	x := new(N)
	x.m.Set(v)
	x.n.SetInt64(1)
	return x
}

// FromBigRat converts a big.Rat to N. The result is in lowest terms.
func FromBigRat(r *big.Rat) *N {
	x := new(N)
	x.m.Set(r.Num())
	x.n.Set(r.Denom())
	return x
}

// Num returns a copy of the numerator of x.
func (x *N) Num() *big.Int {
	return new(big.Int).Set(&x.m)
}

// Den returns a copy of the denominator of x.
func (x *N) Den() *big.Int {
	return new(big.Int).Set(x.den())
}

// SetNum sets the numerator of x to v and returns x. x is not reduced.
func (x *N) SetNum(v *big.Int) *N {
	x.m.Set(v)
	return x
}

// SetDen sets the denominator of x to v. x is not reduced.
// SetDen returns an error and leaves x unchanged if v is zero.
func (x *N) SetDen(v *big.Int) error {
	if v.Sign() == 0 {
		return ErrDenZero
	}
	x.n.Set(v)
	return nil
}

// Set sets x to a copy of y and returns x.
func (x *N) Set(y *N) *N {
	if x != y {
		x.m.Set(&y.m)
		x.n.Set(y.den())
	}
	return x
}

// Reduce brings x to lowest terms with a positive denominator and returns x.
// Reducing a value that is already reduced leaves it unchanged.
func (x *N) Reduce() *N {
	x.n.Set(x.den())
	d := GCD(&x.m, &x.n)
	if d.Cmp(bigOne) != 0 {
		x.m.Quo(&x.m, d)
		x.n.Quo(&x.n, d)
	}
	if x.n.Sign() < 0 {
		x.m.Neg(&x.m)
		x.n.Neg(&x.n)
	}
	return x
}

// IsReduced returns true if x is in lowest terms with a positive denominator.
func (x *N) IsReduced() bool {
	n := x.den()
	return n.Sign() > 0 && GCD(&x.m, n).Cmp(bigOne) == 0
}

// IsZero returns true if x is equal to 0.
func (x *N) IsZero() bool {
	return x.m.Sign() == 0
}

// IsInt returns true if x is equal to an integer.
func (x *N) IsInt() bool {
	return new(big.Int).Rem(&x.m, x.den()).Sign() == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x *N) Sign() int {
	return x.m.Sign() * x.den().Sign()
}

// Neg returns the negation of x, -x, with the denominator of x unchanged.
func (x *N) Neg() *N {
	z := new(N)
	z.m.Neg(&x.m)
	z.n.Set(x.den())
	return z
}

// Abs returns the absolute value of x, |x|, as |num|/|den|.
func (x *N) Abs() *N {
	z := new(N)
	z.m.Abs(&x.m)
	z.n.Abs(x.den())
	return z
}

// TryInv returns the inverse of x, 1/x, in lowest terms.
// TryInv returns an error if x is zero.
func (x *N) TryInv() (*N, error) {
	if x.m.Sign() == 0 {
		return nil, ErrDivByZero
	}
	z := new(N)
	z.m.Set(x.den())
	z.n.Set(&x.m)
	return z.Reduce(), nil
}

// Inv is like TryInv but panics if x is zero.
func (x *N) Inv() *N {
	z, err := x.TryInv()
	if err != nil {
		panic(err)
	}
	return z
}

// Equal returns true if x and y have the same value, whether or not either is
// reduced.
func (x *N) Equal(y *N) bool {
	var l, r big.Int
	l.Mul(&x.m, y.den())
	r.Mul(x.den(), &y.m)
	return l.Cmp(&r) == 0
}

// EqualInt returns true if x is equal to the integer v.
func (x *N) EqualInt(v *big.Int) bool {
	var r big.Int
	r.Mul(v, x.den())
	return x.m.Cmp(&r) == 0
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x *N) Cmp(y *N) int {
	var l, r, d big.Int
	l.Mul(&x.m, y.den())
	r.Mul(x.den(), &y.m)
	d.Mul(x.den(), y.den())
	return l.Cmp(&r) * d.Sign()
}

// Add adds x and y and returns the result in lowest terms.
func (x *N) Add(y *N) *N {
	return new(N).setSum(x, y, false).Reduce()
}

// AddInt adds the integer v to x and returns the result.
// The result keeps the denominator of x and is not reduced.
func (x *N) AddInt(v *big.Int) *N {
	return new(N).setSumInt(x, v, false)
}

// Sub subtracts y from x and returns the result in lowest terms.
func (x *N) Sub(y *N) *N {
	return new(N).setSum(x, y, true).Reduce()
}

// SubInt subtracts the integer v from x and returns the result.
// The result keeps the denominator of x and is not reduced.
func (x *N) SubInt(v *big.Int) *N {
	return new(N).setSumInt(x, v, true)
}

// Mul multiplies x and y and returns the result in lowest terms.
func (x *N) Mul(y *N) *N {
	return new(N).setProd(x, &y.m, y.den()).Reduce()
}

// MulInt multiplies x by the integer v and returns the result in lowest terms.
func (x *N) MulInt(v *big.Int) *N {
	return new(N).setProd(x, v, bigOne).Reduce()
}

// TryDiv divides x by y and returns the result in lowest terms.
// TryDiv returns an error if y is zero.
func (x *N) TryDiv(y *N) (*N, error) {
	if y.m.Sign() == 0 {
		return nil, ErrDivByZero
	}
	return new(N).setProd(x, y.den(), &y.m).Reduce(), nil
}

// Div is like TryDiv but panics if y is zero.
// The following are equivalent in outcome:
//
//	x.Div(y).Equal(x.Mul(y.Inv()))
func (x *N) Div(y *N) *N {
	z, err := x.TryDiv(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TryDivInt divides x by the integer v and returns the result in lowest
// terms. TryDivInt returns an error if v is zero.
func (x *N) TryDivInt(v *big.Int) (*N, error) {
	if v.Sign() == 0 {
		return nil, ErrDivByZero
	}
	return new(N).setProd(x, bigOne, v).Reduce(), nil
}

// DivInt is like TryDivInt but panics if v is zero.
func (x *N) DivInt(v *big.Int) *N {
	z, err := x.TryDivInt(v)
	if err != nil {
		panic(err)
	}
	return z
}

// TryPow raises x to the integer power e.
//
// For e > 0 the result is num**e / den**e. For e < 0 numerator and
// denominator trade places first, giving den**|e| / num**|e|. Either way the
// parts are raised as they are stored and the result is not reduced, so a
// negative numerator raised to a negative odd power leaves a negative
// denominator. x**0 is 1/1 for every x, including 0.
//
// TryPow returns an error if x is zero and e is negative.
func (x *N) TryPow(e int) (*N, error) {
	z := new(N)
	switch {
	case e == 0:
		z.m.SetInt64(1)
		z.n.SetInt64(1)
	case e > 0:
		k := big.NewInt(int64(e))
		z.m.Exp(&x.m, k, nil)
		z.n.Exp(x.den(), k, nil)
	default:
		if x.m.Sign() == 0 {
			return nil, ErrDivByZero
		}
		k := big.NewInt(-int64(e))
		z.m.Exp(x.den(), k, nil)
		z.n.Exp(&x.m, k, nil)
	}
	return z, nil
}

// Pow is like TryPow but panics if x is zero and e is negative.
func (x *N) Pow(e int) *N {
	z, err := x.TryPow(e)
	if err != nil {
		panic(err)
	}
	return z
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the nearest float64, or ±Inf if x
// is too large in magnitude.
func (x *N) Float64() (v float64, exact bool) {
	return x.BigRat().Float64()
}

// BigRat converts x to a new big.Rat.
func (x *N) BigRat() *big.Rat {
	return new(big.Rat).SetFrac(&x.m, x.den())
}

// String returns x as a decimal number: the nearest float64 to x, rounded to
// DisplayPlaces decimal places and written with the fewest digits that
// identify it, e.g. "0.5", "1.0", "0.3333333333" or "1e+100".
func (x *N) String() string {
	v, _ := x.Float64()
	return floatfmt.Repr(floatfmt.Round(v, DisplayPlaces))
}

// GoString returns x in constructor form, e.g. "Rational(1, 2)", with the
// numerator and denominator exactly as stored.
func (x *N) GoString() string {
	return fmt.Sprintf("Rational(%s, %s)", x.m.String(), x.den().String())
}

// RatString returns x as m/n, with the parts exactly as stored.
func (x *N) RatString() string {
	return x.m.String() + "/" + x.den().String()
}

// DecimalString returns a string representation of x, as a decimal number
// to the given number of digits after the decimal point.
// The last digit is rounded to nearest, with ties rounded away from zero.
// If prec <= 0, the decimal point is omitted from the string.
// If the result of rounding is zero but x is negative, the string will still
// include a negative sign.
//
// The following relation holds for all values of x:
//
//	x.DecimalString(prec) == x.BigRat().FloatString(prec)
func (x *N) DecimalString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	return x.BigRat().FloatString(prec)
}

// den returns the denominator of x, treating the zero value as 1.
// The result must not be modified.
func (x *N) den() *big.Int {
	if x.n.Sign() == 0 {
		return bigOne
	}
	return &x.n
}

// setSum sets z to x+y (or x-y if sub) over the common denominator
// den(x)*den(y), without reducing, and returns z.
func (z *N) setSum(x, y *N, sub bool) *N {
	var ad, bc, bd big.Int
	ad.Mul(&x.m, y.den())
	bc.Mul(x.den(), &y.m)
	if sub {
		ad.Sub(&ad, &bc)
	} else {
		ad.Add(&ad, &bc)
	}
	bd.Mul(x.den(), y.den())
	z.m.Set(&ad)
	z.n.Set(&bd)
	return z
}

// setSumInt sets z to x+v (or x-v if sub) over the denominator of x and
// returns z.
func (z *N) setSumInt(x *N, v *big.Int, sub bool) *N {
	var t big.Int
	t.Mul(v, x.den())
	if sub {
		t.Sub(&x.m, &t)
	} else {
		t.Add(&x.m, &t)
	}
	z.n.Set(x.den())
	z.m.Set(&t)
	return z
}

// setProd sets z to (num(x)*m) / (den(x)*n), without reducing, and returns z.
func (z *N) setProd(x *N, m, n *big.Int) *N {
	var p, q big.Int
	p.Mul(&x.m, m)
	q.Mul(x.den(), n)
	z.m.Set(&p)
	z.n.Set(&q)
	return z
}
