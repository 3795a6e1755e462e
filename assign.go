package bigrat

import "math/big"

// The methods in this file mutate their receiver. In each of them the
// receiver may also appear as the argument, as in x.MulAssign(x).

// AddAssign sets x to x+y in lowest terms.
func (x *N) AddAssign(y *N) {
	x.setSum(x, y, false).Reduce()
}

// AddIntAssign adds the integer v to x by adding v*den to the numerator.
// Unlike the other assignments, x is not reduced afterward.
func (x *N) AddIntAssign(v *big.Int) {
	x.setSumInt(x, v, false)
}

// SubAssign sets x to x-y in lowest terms.
func (x *N) SubAssign(y *N) {
	x.setSum(x, y, true).Reduce()
}

// SubIntAssign sets x to x-v in lowest terms.
func (x *N) SubIntAssign(v *big.Int) {
	x.setSumInt(x, v, true).Reduce()
}

// MulAssign sets x to x*y in lowest terms.
func (x *N) MulAssign(y *N) {
	x.setProd(x, &y.m, y.den()).Reduce()
}

// MulIntAssign sets x to x*v in lowest terms.
func (x *N) MulIntAssign(v *big.Int) {
	x.setProd(x, v, bigOne).Reduce()
}

// DivAssign sets x to x/y in lowest terms.
// DivAssign returns an error and leaves x unchanged if y is zero.
func (x *N) DivAssign(y *N) error {
	if y.m.Sign() == 0 {
		return ErrDivByZero
	}
	x.setProd(x, y.den(), &y.m).Reduce()
	return nil
}

// DivIntAssign sets x to x/v in lowest terms.
// DivIntAssign returns an error and leaves x unchanged if v is zero.
func (x *N) DivIntAssign(v *big.Int) error {
	if v.Sign() == 0 {
		return ErrDivByZero
	}
	x.setProd(x, bigOne, v).Reduce()
	return nil
}
