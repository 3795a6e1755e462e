package bigrat

import "math/big"

// GCD returns the greatest common divisor (GCD) of |m| and |n|.
// The GCD is the largest integer that divides both m and n.
// GCD(0, n) is |n|, and GCD(0, 0) is 0.
func GCD(m, n *big.Int) *big.Int {
	_, _, d := ExtGCD(m, n)
	return d
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
func ExtGCD(m, n *big.Int) (a, b, d *big.Int) {
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E, run on
	// |m| and |n| with the signs moved onto the coefficients at the end
	c := new(big.Int).Abs(m)
	d = new(big.Int).Abs(n)
	a0, b0 := big.NewInt(1), big.NewInt(0)
	a, b = big.NewInt(0), big.NewInt(1)
	if d.Sign() == 0 {
		// GCD(m, 0) == |m| == sign(m)*m
		a.SetInt64(int64(m.Sign()))
		b.SetInt64(0)
		return a, b, c
	}
	var q, r, t big.Int
	for {
		q.QuoRem(c, d, &r)
		if r.Sign() == 0 {
			break
		}
		c.Set(d)
		d.Set(&r)
		t.Mul(&q, a)
		t.Sub(a0, &t)
		a0.Set(a)
		a.Set(&t)
		t.Mul(&q, b)
		t.Sub(b0, &t)
		b0.Set(b)
		b.Set(&t)
	}
	if m.Sign() < 0 {
		a.Neg(a)
	}
	if n.Sign() < 0 {
		b.Neg(b)
	}
	return a, b, d
}
