package lwe

import (
	"github.com/google/go-cmp/cmp"
)

// SecretKey is a type for LWE secret keys: a vector of N bits in {0, 1}.
// It carries a copy of the [Parameters] it was allocated for.
type SecretKey struct {
	Value  []int32
	params Parameters
}

// NewSecretKey allocates a new all-zero [SecretKey] of dimension params.N().
// The key is populated by [KeyGenerator.GenSecretKey].
func NewSecretKey(params ParameterProvider) *SecretKey {
	p := *params.GetLWEParameters()
	return &SecretKey{
		Value:  make([]int32, p.N()),
		params: p,
	}
}

// GetLWEParameters returns the [Parameters] of the target [SecretKey].
func (sk SecretKey) GetLWEParameters() *Parameters {
	return &sk.params
}

// N returns the dimension of the key.
func (sk SecretKey) N() int {
	return len(sk.Value)
}

// CopyNew creates a deep copy of the receiver secret key and returns it.
func (sk SecretKey) CopyNew() *SecretKey {
	value := make([]int32, len(sk.Value))
	copy(value, sk.Value)
	return &SecretKey{Value: value, params: sk.params}
}

// Equal performs a deep equal.
func (sk SecretKey) Equal(other *SecretKey) bool {
	return sk.params.Equal(&other.params) && cmp.Equal(sk.Value, other.Value)
}
