package lwe

import (
	"github.com/tuneinsight/tlwe/torus"
	"github.com/tuneinsight/tlwe/utils"
	"github.com/tuneinsight/tlwe/utils/contract"
)

// Evaluator evaluates linear combinations of [Ciphertext] with public integer coefficients.
// Every method writes on its output operand in place and does not allocate.
// The variance of the output follows the rule for sums of independent errors:
// the variances of the operands are added, regardless of the sign of the operation,
// and scaling an operand by p scales its variance by p^2.
type Evaluator struct {
	params Parameters
}

// NewEvaluator instantiates a new [Evaluator].
func NewEvaluator(params ParameterProvider) *Evaluator {
	return &Evaluator{params: *params.GetLWEParameters()}
}

// GetLWEParameters returns the underlying [Parameters].
func (eval Evaluator) GetLWEParameters() *Parameters {
	return &eval.params
}

// Clear sets opOut to the noiseless trivial encryption of zero: A = 0, B = 0, Variance = 0.
func (eval Evaluator) Clear(opOut *Ciphertext) {
	eval.NoiselessTrivial(0, opOut)
}

// NoiselessTrivial sets opOut to the noiseless trivial encryption of mu: A = 0, B = mu, Variance = 0.
// Its phase is mu under any key.
func (eval Evaluator) NoiselessTrivial(mu torus.Torus32, opOut *Ciphertext) {

	assertDimension("NoiselessTrivial", eval.params, opOut)

	a := opOut.A[:eval.params.N()]
	for i := range a {
		a[i] = 0
	}
	opOut.B = mu
	opOut.Variance = 0
}

// AddTo evaluates opOut = opOut + ct.
func (eval Evaluator) AddTo(opOut, ct *Ciphertext) {

	eval.assertBinary("AddTo", opOut, ct)

	n := eval.params.N()
	a, b := opOut.A[:n], ct.A[:n]
	for i := range a {
		a[i] += b[i]
	}
	opOut.B += ct.B
	opOut.Variance += ct.Variance
}

// SubTo evaluates opOut = opOut - ct. The variance of ct is added to the variance of opOut.
// The masks are subtracted with [torus.SubVec].
func (eval Evaluator) SubTo(opOut, ct *Ciphertext) {

	eval.assertBinary("SubTo", opOut, ct)

	n := eval.params.N()
	torus.SubVec(opOut.A[:n], ct.A[:n])
	opOut.B -= ct.B
	opOut.Variance += ct.Variance
}

// AddMulTo evaluates opOut = opOut + p * ct.
func (eval Evaluator) AddMulTo(opOut *Ciphertext, p int32, ct *Ciphertext) {

	eval.assertBinary("AddMulTo", opOut, ct)

	n := eval.params.N()
	tp := torus.Torus32(p)
	a, b := opOut.A[:n], ct.A[:n]
	for i := range a {
		a[i] += tp * b[i]
	}
	opOut.B += tp * ct.B
	opOut.Variance += squared(p) * ct.Variance
}

// SubMulTo evaluates opOut = opOut - p * ct. The variance of p * ct is added to the variance of opOut.
func (eval Evaluator) SubMulTo(opOut *Ciphertext, p int32, ct *Ciphertext) {

	eval.assertBinary("SubMulTo", opOut, ct)

	n := eval.params.N()
	tp := torus.Torus32(p)
	a, b := opOut.A[:n], ct.A[:n]
	for i := range a {
		a[i] -= tp * b[i]
	}
	opOut.B -= tp * ct.B
	opOut.Variance += squared(p) * ct.Variance
}

// Copy copies ct on opOut.
func (eval Evaluator) Copy(ct, opOut *Ciphertext) {
	eval.assertBinary("Copy", opOut, ct)
	opOut.Copy(ct)
}

// Negate evaluates opOut = -ct. The variance is unchanged.
func (eval Evaluator) Negate(ct, opOut *Ciphertext) {

	eval.assertBinary("Negate", opOut, ct)

	n := eval.params.N()
	a, b := opOut.A[:n], ct.A[:n]
	for i := range a {
		a[i] = -b[i]
	}
	opOut.B = -ct.B
	opOut.Variance = ct.Variance
}

// LinearCombination evaluates opOut = sum_i coeffs[i] * cts[i].
// opOut must not share its mask with any of the inputs.
func (eval Evaluator) LinearCombination(coeffs []int32, cts []*Ciphertext, opOut *Ciphertext) {

	contract.Assert(len(coeffs) == len(cts), "LinearCombination", "number of coefficients does not match number of ciphertexts")

	if contract.Enabled {
		for _, ct := range cts {
			contract.Assert(!utils.Alias1D(opOut.A, ct.A), "LinearCombination", "output aliases an input")
		}
	}

	eval.Clear(opOut)
	for i, ct := range cts {
		eval.AddMulTo(opOut, coeffs[i], ct)
	}
}

func (eval Evaluator) assertBinary(op string, opOut, ct *Ciphertext) {
	assertDimension(op, eval.params, opOut)
	assertCiphertext(op, eval.params, ct)
}

// squared returns p^2 as a float64, without the overflow of 32-bit integer arithmetic.
func squared(p int32) float64 {
	return float64(p) * float64(p)
}
