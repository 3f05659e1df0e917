package lwe

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/tlwe/utils"
)

// ParameterProvider is an interface for types that can provide LWE [Parameters].
type ParameterProvider interface {
	GetLWEParameters() *Parameters
}

// ParametersLiteral is a literal representation of LWE parameters. It has public fields and
// is used to express unchecked user-defined parameters literally into Go programs.
// The [NewParametersFromLiteral] function is used to generate the actual checked parameters
// from the literal representation.
//
// Users must set the dimension N. AlphaMin and AlphaMax bound the standard deviation of the
// encryption noise used with these parameters: AlphaMin is the smallest noise that keeps the
// scheme secure, AlphaMax the largest that keeps decryption correct.
type ParametersLiteral struct {
	N        int
	AlphaMin float64 `json:",omitempty"`
	AlphaMax float64 `json:",omitempty"`
}

// Parameters represents a set of LWE parameters. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	n        int
	alphaMin float64
	alphaMax float64
}

// NewParameters returns a new set of LWE parameters of dimension n with noise bounds
// alphaMin and alphaMax. It returns the empty parameters [Parameters]{} and a non-nil
// error if the specified parameters are invalid.
func NewParameters(n int, alphaMin, alphaMax float64) (params Parameters, err error) {

	if n <= 0 {
		return Parameters{}, fmt.Errorf("cannot NewParameters: invalid dimension N=%d: must be positive", n)
	}

	if math.IsNaN(alphaMin) || math.IsNaN(alphaMax) || alphaMin < 0 || alphaMax < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParameters: invalid noise bounds [%v, %v]: must be non-negative", alphaMin, alphaMax)
	}

	if alphaMin > alphaMax {
		return Parameters{}, fmt.Errorf("cannot NewParameters: invalid noise bounds: AlphaMin=%v > AlphaMax=%v", alphaMin, alphaMax)
	}

	return Parameters{
		n:        n,
		alphaMin: alphaMin,
		alphaMax: alphaMax,
	}, nil
}

// NewParametersFromLiteral instantiates a set of LWE parameters from a [ParametersLiteral].
// It returns the empty parameters [Parameters]{} and a non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {
	return NewParameters(paramDef.N, paramDef.AlphaMin, paramDef.AlphaMax)
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:        p.n,
		AlphaMin: p.alphaMin,
		AlphaMax: p.alphaMax,
	}
}

// GetLWEParameters returns a pointer to the underlying LWE parameters.
func (p Parameters) GetLWEParameters() *Parameters {
	return &p
}

// N returns the dimension of the mask of the ciphertexts and of the secret keys.
func (p Parameters) N() int {
	return p.n
}

// AlphaMin returns the smallest secure noise standard deviation.
func (p Parameters) AlphaMin() float64 {
	return p.alphaMin
}

// AlphaMax returns the largest noise standard deviation for which decryption stays correct.
func (p Parameters) AlphaMax() float64 {
	return p.alphaMax
}

// ClampAlpha returns alpha clamped to [AlphaMin, AlphaMax].
func (p Parameters) ClampAlpha(alpha float64) float64 {
	return utils.Min(utils.Max(alpha, p.alphaMin), p.alphaMax)
}

// Equal returns true if the target and input parameters are equal.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See [json.Marshal].
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver [Parameters]. See [json.Unmarshal].
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
