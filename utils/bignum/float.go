// Package bignum implements arbitrary precision helpers for the evaluation of functions
// whose values fall outside of the float64 range.
package bignum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint64, float64 or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint64, float64 or *big.Float but is %T", x))
	}

	return
}

// Log returns ln(x) with the precision of x.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Ln2 returns ln(2) with prec bits of precision.
func Ln2(prec uint) *big.Float {
	return Log(NewFloat(2, prec))
}

// Exp returns exp(x) with the precision of x.
// The argument is reduced as x = k*ln(2) + r with 0 <= r < ln(2), so that the magnitude
// of x only affects the exponent of the result. x/ln(2) must fit in an int32.
func Exp(x *big.Float) (exp *big.Float) {

	prec := x.Prec()

	ln2 := Ln2(prec + 64)

	kf, _ := new(big.Float).SetPrec(prec+64).Quo(x, ln2).Float64()
	k := math.Floor(kf)

	r := NewFloat(k, prec+64)
	r.Mul(r, ln2)
	r.Sub(x, r)

	exp = bigfloat.Exp(r)
	exp.SetMantExp(exp, int(k))

	return exp.SetPrec(prec)
}

// Erfc returns the complementary error function of x > 0 with the precision of x,
// using the continued fraction
//
//	erfc(x) = exp(-x^2)/sqrt(pi) * 1/(x + (1/2)/(x + 1/(x + (3/2)/(x + ...))))
//
// truncated after the given number of terms. It converges fast for x >= 5.
// The result has the relative accuracy of a float64 and the exponent range of a big.Float.
func Erfc(x *big.Float, terms int) (erfc *big.Float) {

	prec := x.Prec()

	// evaluated from the innermost term
	t := NewFloat(x, prec)
	num := NewFloat(nil, prec)
	for k := terms; k > 0; k-- {
		num.SetFloat64(float64(k) / 2)
		t.Quo(num, t)
		t.Add(t, x)
	}

	x2 := NewFloat(nil, prec).Mul(x, x)
	erfc = Exp(x2.Neg(x2))
	erfc.Quo(erfc, NewFloat(math.SqrtPi, prec))

	return erfc.Quo(erfc, t)
}
