package lwe

import (
	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/tlwe/torus"
)

// Ciphertext is an LWE sample (A, B) with B = <A, s> + m + e, together with
// Variance, the tracked estimate of the variance of the error e.
//
// Variance is never negative. Operations only increase it, except the trivial
// constructors of the [Evaluator] which reset it to zero. It is propagated with the
// rules for sums of independent random variables and is meant as an upper bound,
// but nothing in this package proves that it never underestimates the actual error:
// a security or correctness argument relying on it must establish that separately.
type Ciphertext struct {
	A        []torus.Torus32
	B        torus.Torus32
	Variance float64
}

// NewCiphertext allocates a new all-zero [Ciphertext] of dimension params.N().
func NewCiphertext(params ParameterProvider) *Ciphertext {
	return &Ciphertext{
		A: make([]torus.Torus32, params.GetLWEParameters().N()),
	}
}

// N returns the dimension of the mask.
func (ct Ciphertext) N() int {
	return len(ct.A)
}

// Copy copies the input ciphertext on the receiver.
// Both ciphertexts must have the same dimension.
func (ct *Ciphertext) Copy(other *Ciphertext) {
	if ct != other {
		copy(ct.A, other.A)
		ct.B = other.B
		ct.Variance = other.Variance
	}
}

// CopyNew creates a deep copy of the receiver ciphertext and returns it.
func (ct Ciphertext) CopyNew() *Ciphertext {
	a := make([]torus.Torus32, len(ct.A))
	copy(a, ct.A)
	return &Ciphertext{A: a, B: ct.B, Variance: ct.Variance}
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return cmp.Equal(ct.A, other.A) && ct.B == other.B && ct.Variance == other.Variance
}
