package bigrat_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/kbolino/bigrat"
)

type GCDCase struct {
	M, N, D *big.Int
}

func gcdCase(m, n, d int64) GCDCase {
	return GCDCase{big.NewInt(m), big.NewInt(n), big.NewInt(d)}
}

var GCDCases = []GCDCase{
	gcdCase(1, 1, 1),
	gcdCase(1, 2, 1),
	gcdCase(2, 2, 2),
	gcdCase(2, 3, 1),
	gcdCase(2, 4, 2),
	gcdCase(2, 6, 2),
	gcdCase(3, 6, 3),
	gcdCase(4, 6, 2),
	gcdCase(6, 6, 6),
	gcdCase(6, 8, 2),
	gcdCase(6, 9, 3),
	gcdCase(24, 120, 24),
	gcdCase(36, 120, 12),
	gcdCase(7, 360, 1),
	gcdCase(7, 14, 7),
	gcdCase(7, 21, 7),
	gcdCase(360, 92821, 1),
	gcdCase(360, 92822, 2),
	gcdCase(3600, 216000, 3600),
	gcdCase(123456789, 987654321, 9),
	gcdCase(P1*P2*P3, P2*P3*P4, P2*P3),
	gcdCase(
		2*3*5*7*11*13*17*19*23*29*31*37*41*43*47,
		2*3*5*7*11*13*17*19*23*29*31*37*41*43*53,
		2*3*5*7*11*13*17*19*23*29*31*37*41*43,
	),
	gcdCase(math.MaxInt64-1, math.MaxInt64, 1),
	gcdCase(0, 5, 5),
	gcdCase(0, 0, 0),
	gcdCase(-6, 9, 3),
	gcdCase(-6, -9, 3),
	{pow10(40), new(big.Int).Mul(pow10(25), big.NewInt(3)), pow10(25)},
	{new(big.Int).Mul(pow10(100), big.NewInt(P1)), new(big.Int).Mul(pow10(90), big.NewInt(P2)), pow10(90)},
}

var SymGCDCases []GCDCase

func init() {
	SymGCDCases = append(SymGCDCases, GCDCases...)
	for _, c := range GCDCases {
		if c.M.Cmp(c.N) == 0 {
			continue
		}
		SymGCDCases = append(SymGCDCases, GCDCase{c.N, c.M, c.D})
	}
}

func TestGCD(t *testing.T) {
	for _, c := range SymGCDCases {
		t.Run(fmt.Sprintf("GCD(%s,%s)", c.M, c.N), func(t *testing.T) {
			if d := bigrat.GCD(c.M, c.N); d.Cmp(c.D) != 0 {
				t.Errorf("GCD(%s, %s) == %s != %s", c.M, c.N, d, c.D)
			}
		})
	}
}

func TestExtGCD(t *testing.T) {
	for _, c := range SymGCDCases {
		t.Run(fmt.Sprintf("ExtGCD(%s,%s)", c.M, c.N), func(t *testing.T) {
			a, b, d := bigrat.ExtGCD(c.M, c.N)
			if d.Cmp(c.D) != 0 {
				t.Errorf("_, _, d := ExtGCD(%s, %s); d == %s != %s", c.M, c.N, d, c.D)
			}
			if g := bigrat.GCD(c.M, c.N); g.Cmp(d) != 0 {
				t.Errorf("GCD(%s, %s) == %s disagrees with ExtGCD", c.M, c.N, g)
			}
			sum := new(big.Int).Mul(a, c.M)
			sum.Add(sum, new(big.Int).Mul(b, c.N))
			if sum.Cmp(d) != 0 {
				t.Errorf("a, b, _ := ExtGCD(%s, %s); a*%s+b*%s == %s != %s", c.M, c.N, c.M, c.N, sum, d)
			}
		})
	}
}

func TestGCD_argumentsUnchanged(t *testing.T) {
	m, n := big.NewInt(-12), big.NewInt(18)
	bigrat.GCD(m, n)
	bigrat.ExtGCD(m, n)
	if m.Int64() != -12 || n.Int64() != 18 {
		t.Errorf("arguments changed to %s, %s", m, n)
	}
}
