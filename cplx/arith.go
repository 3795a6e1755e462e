package cplx

import "github.com/kbolino/bigrat"

// TryAdd adds v to z and returns the result.
// A real v is added to the real part only.
func (z *Z) TryAdd(v Operand) (*Z, error) {
	o, err := classify(v)
	if err != nil {
		return nil, err
	}
	re, im := sum(z, o, false)
	return New(re, im), nil
}

// Add is like TryAdd but panics on error.
func (z *Z) Add(v Operand) *Z {
	w, err := z.TryAdd(v)
	if err != nil {
		panic(err)
	}
	return w
}

// TrySub subtracts v from z and returns the result.
// A real v is subtracted from the real part only.
func (z *Z) TrySub(v Operand) (*Z, error) {
	o, err := classify(v)
	if err != nil {
		return nil, err
	}
	re, im := sum(z, o, true)
	return New(re, im), nil
}

// Sub is like TrySub but panics on error.
func (z *Z) Sub(v Operand) *Z {
	w, err := z.TrySub(v)
	if err != nil {
		panic(err)
	}
	return w
}

// TryMul multiplies z by v and returns the result.
//
// A complex v gives the usual product. A real v multiplies both parts: an
// integer or float64 exactly, and a *bigrat.N through the exact value of its
// nearest float64. A *bigrat.N too large for float64 is used exactly.
func (z *Z) TryMul(v Operand) (*Z, error) {
	o, err := classify(v)
	if err != nil {
		return nil, err
	}
	re, im, err := product(z, o)
	if err != nil {
		return nil, err
	}
	return New(re, im), nil
}

// Mul is like TryMul but panics on error.
func (z *Z) Mul(v Operand) *Z {
	w, err := z.TryMul(v)
	if err != nil {
		panic(err)
	}
	return w
}

// TryDiv divides z by v and returns the result.
// A real v divides both parts. TryDiv returns bigrat.ErrDivByZero if v is
// zero, whether real or complex.
func (z *Z) TryDiv(v Operand) (*Z, error) {
	o, err := classify(v)
	if err != nil {
		return nil, err
	}
	re, im, err := quotient(z, o)
	if err != nil {
		return nil, err
	}
	return New(re, im), nil
}

// Div is like TryDiv but panics on error.
func (z *Z) Div(v Operand) *Z {
	w, err := z.TryDiv(v)
	if err != nil {
		panic(err)
	}
	return w
}

// TryEqual reports whether z and v have the same value. A real v is equal
// to z only if z has a zero imaginary part and a real part equal to v.
func (z *Z) TryEqual(v Operand) (bool, error) {
	o, err := classify(v)
	if err != nil {
		return false, err
	}
	switch o.kind {
	case kindComplex:
		return z.re.Equal(&o.z.re) && z.im.Equal(&o.z.im), nil
	case kindInt:
		return z.im.IsZero() && z.re.EqualInt(o.i), nil
	default:
		return z.im.IsZero() && z.re.Equal(o.r), nil
	}
}

// Equal is like TryEqual but panics on error.
func (z *Z) Equal(v Operand) bool {
	eq, err := z.TryEqual(v)
	if err != nil {
		panic(err)
	}
	return eq
}

// AddAssign sets z to z+v, as TryAdd.
func (z *Z) AddAssign(v Operand) error {
	o, err := classify(v)
	if err != nil {
		return err
	}
	z.set(sum(z, o, false))
	return nil
}

// SubAssign sets z to z-v, as TrySub.
func (z *Z) SubAssign(v Operand) error {
	o, err := classify(v)
	if err != nil {
		return err
	}
	z.set(sum(z, o, true))
	return nil
}

// MulAssign sets z to z*v, as TryMul. z is unchanged on error.
func (z *Z) MulAssign(v Operand) error {
	o, err := classify(v)
	if err != nil {
		return err
	}
	re, im, err := product(z, o)
	if err != nil {
		return err
	}
	z.set(re, im)
	return nil
}

// DivAssign sets z to z/v, as TryDiv. z is unchanged on error.
func (z *Z) DivAssign(v Operand) error {
	o, err := classify(v)
	if err != nil {
		return err
	}
	re, im, err := quotient(z, o)
	if err != nil {
		return err
	}
	z.set(re, im)
	return nil
}

// Neg returns -z.
func (z *Z) Neg() *Z {
	return New(z.re.Neg(), z.im.Neg())
}

// Conj returns the complex conjugate of z.
func (z *Z) Conj() *Z {
	return New(&z.re, z.im.Neg())
}

// TryInverse returns 1/z, computed as the conjugate of z divided by
// re² + im². TryInverse returns ErrInvalidOp if z is zero.
func (z *Z) TryInverse() (*Z, error) {
	d := norm(z)
	if d.IsZero() {
		return nil, ErrInvalidOp
	}
	return New(z.re.Div(d), z.im.Neg().Div(d)), nil
}

// Inverse is like TryInverse but panics if z is zero.
func (z *Z) Inverse() *Z {
	w, err := z.TryInverse()
	if err != nil {
		panic(err)
	}
	return w
}

// TryPow raises z to the integer power e by repeated squaring.
// A negative e raises the inverse of z to -e, and z**0 is 1+0i.
// z itself is not modified.
// TryPow returns ErrInvalidOp if z is zero and e is negative.
func (z *Z) TryPow(e int) (*Z, error) {
	base := z
	var k uint
	if e < 0 {
		inv, err := z.TryInverse()
		if err != nil {
			return nil, err
		}
		base = inv
		k = uint(-(e + 1)) + 1
	} else {
		k = uint(e)
	}
	result := FromInt64(1, 0)
	if k == 0 {
		return result, nil
	}
	sq := new(Z).Set(base)
	for {
		if k&1 == 1 {
			result.set(mulComplex(result, sq))
		}
		k >>= 1
		if k == 0 {
			return result, nil
		}
		sq.set(mulComplex(sq, sq))
	}
}

// Pow is like TryPow but panics on error.
func (z *Z) Pow(e int) *Z {
	w, err := z.TryPow(e)
	if err != nil {
		panic(err)
	}
	return w
}

func (z *Z) set(re, im *bigrat.N) {
	z.re.Set(re)
	z.im.Set(im)
}

func sum(z *Z, o operand, sub bool) (re, im *bigrat.N) {
	switch o.kind {
	case kindComplex:
		if sub {
			return z.re.Sub(&o.z.re), z.im.Sub(&o.z.im)
		}
		return z.re.Add(&o.z.re), z.im.Add(&o.z.im)
	case kindInt:
		if sub {
			return z.re.SubInt(o.i), z.Imag()
		}
		return z.re.AddInt(o.i), z.Imag()
	default:
		if sub {
			return z.re.Sub(o.r), z.Imag()
		}
		return z.re.Add(o.r), z.Imag()
	}
}

func product(z *Z, o operand) (re, im *bigrat.N, err error) {
	switch o.kind {
	case kindComplex:
		re, im = mulComplex(z, o.z)
		return re, im, nil
	case kindInt:
		return z.re.MulInt(o.i), z.im.MulInt(o.i), nil
	default:
		s := o.scalar()
		return z.re.Mul(s), z.im.Mul(s), nil
	}
}

func quotient(z *Z, o operand) (re, im *bigrat.N, err error) {
	switch o.kind {
	case kindComplex:
		w := o.z
		d := norm(w)
		if d.IsZero() {
			return nil, nil, bigrat.ErrDivByZero
		}
		// ((ac + bd) / d, (bc - ad) / d)
		re = z.re.Mul(&w.re).Add(z.im.Mul(&w.im))
		im = z.im.Mul(&w.re).Sub(z.re.Mul(&w.im))
		return re.Div(d), im.Div(d), nil
	case kindInt:
		if o.i.Sign() == 0 {
			return nil, nil, bigrat.ErrDivByZero
		}
		return z.re.DivInt(o.i), z.im.DivInt(o.i), nil
	case kindFloat:
		if o.f == 0 {
			return nil, nil, bigrat.ErrDivByZero
		}
		return z.re.Div(o.r), z.im.Div(o.r), nil
	default:
		if o.r.IsZero() {
			return nil, nil, bigrat.ErrDivByZero
		}
		return z.re.Div(o.r), z.im.Div(o.r), nil
	}
}

// mulComplex returns the parts of z*w: (ac - bd, ad + bc).
func mulComplex(z, w *Z) (re, im *bigrat.N) {
	re = z.re.Mul(&w.re).Sub(z.im.Mul(&w.im))
	im = z.re.Mul(&w.im).Add(z.im.Mul(&w.re))
	return re, im
}

// norm returns re² + im².
func norm(z *Z) *bigrat.N {
	return z.re.Mul(&z.re).Add(z.im.Mul(&z.im))
}
