package bigrat

import (
	"math"
	"math/big"
)

// DefaultMaxDen bounds the denominator of values returned by FromFloat64.
const DefaultMaxDen = 1_000_000

// FromFloat64 returns the rational number closest to v among those with a
// denominator of at most DefaultMaxDen. This recovers the obvious fraction
// for floats that came from one, e.g. 0.1 gives 1/10 and 2.0/3 gives 2/3.
// The result is in lowest terms.
// FromFloat64 returns an error if v is NaN or infinite.
func FromFloat64(v float64) (*N, error) {
	x, err := FromFloat64Exact(v)
	if err != nil {
		return nil, err
	}
	return x.LimitDen(DefaultMaxDen), nil
}

// FromFloat64Exact extracts a rational number from a float64. The result is
// exactly equal to v and in lowest terms.
// FromFloat64Exact returns an error if v is NaN or infinite.
func FromFloat64Exact(v float64) (*N, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNotFinite
	}
	return FromBigRat(new(big.Rat).SetFloat64(v)), nil
}

// LimitDen returns the rational number closest to x with a denominator of at
// most max. The result is in lowest terms.
// LimitDen panics if max is not positive.
func (x *N) LimitDen(max int64) *N {
	if max < 1 {
		panic(ErrDenInvalid)
	}
	r := x.BigRat()
	bound := big.NewInt(max)
	if r.Denom().Cmp(bound) <= 0 {
		return FromBigRat(r)
	}

	// Walk the continued fraction expansion of r, keeping the last two
	// convergents p0/q0 and p1/q1, until the next denominator would exceed
	// the bound.
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	var a, q2, t big.Int
	for {
		// d > 0, so Euclidean division floors
		a.Div(n, d)
		q2.Mul(&a, q1)
		q2.Add(&q2, q0)
		if q2.Cmp(bound) > 0 {
			break
		}
		t.Mul(&a, p1)
		t.Add(&t, p0)
		p0.Set(p1)
		q0.Set(q1)
		p1.Set(&t)
		q1.Set(&q2)
		t.Mul(&a, d)
		t.Sub(n, &t)
		n.Set(d)
		d.Set(&t)
	}

	// The best approximation is either the last convergent or the
	// semiconvergent with the largest denominator allowed.
	k := new(big.Int).Sub(bound, q0)
	k.Quo(k, q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := new(big.Rat).SetFrac(p1, q1)
	if distance(conv, r).Cmp(distance(semi, r)) <= 0 {
		return FromBigRat(conv)
	}
	return FromBigRat(semi)
}

// distance returns |a - b|.
func distance(a, b *big.Rat) *big.Rat {
	d := new(big.Rat).Sub(a, b)
	return d.Abs(d)
}
