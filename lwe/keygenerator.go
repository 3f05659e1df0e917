package lwe

import (
	"fmt"

	"github.com/tuneinsight/tlwe/utils/contract"
	"github.com/tuneinsight/tlwe/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to create new keys.
type KeyGenerator struct {
	params Parameters
	source *sampling.Source
}

// NewKeyGenerator creates a new [KeyGenerator], from which the secret keys are generated.
// It draws its randomness from crypto/rand, see [KeyGenerator.WithPRNG] to change it.
func NewKeyGenerator(params ParameterProvider) *KeyGenerator {
	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewKeyGenerator: %w", err))
	}
	return &KeyGenerator{
		params: *params.GetLWEParameters(),
		source: sampling.NewSource(prng),
	}
}

// GetLWEParameters returns the underlying [Parameters].
func (kgen KeyGenerator) GetLWEParameters() *Parameters {
	return &kgen.params
}

// WithPRNG returns a copy of the target [KeyGenerator] drawing its randomness from prng.
// The returned key generator isn't safe to use concurrently with any other user of prng.
func (kgen KeyGenerator) WithPRNG(prng sampling.PRNG) *KeyGenerator {
	kgen.source = sampling.NewSource(prng)
	return &kgen
}

// GenSecretKeyNew generates a new [SecretKey] with uniformly random binary coefficients.
func (kgen KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	sk = NewSecretKey(kgen.params)
	kgen.GenSecretKey(sk)
	return
}

// GenSecretKey fills each coefficient of sk with an independent unbiased coin flip.
func (kgen KeyGenerator) GenSecretKey(sk *SecretKey) {

	if len(sk.Value) != kgen.params.N() {
		panic(&contract.Violation{Op: "GenSecretKey", Reason: fmt.Sprintf("secret key dimension %d does not match parameters dimension %d", len(sk.Value), kgen.params.N())})
	}

	for i := range sk.Value {
		sk.Value[i] = int32(kgen.source.Bit())
	}

	sk.params = kgen.params
}
