package lwe

import (
	"fmt"
	"math"

	"github.com/tuneinsight/tlwe/torus"
	"github.com/tuneinsight/tlwe/utils/contract"
	"github.com/tuneinsight/tlwe/utils/sampling"
)

// Encryptor is a type for encrypting torus values into [Ciphertext] under a [SecretKey].
type Encryptor struct {
	params Parameters
	sk     *SecretKey
	source *sampling.Source
}

// NewEncryptor creates a new [Encryptor] from a secret key.
// It draws its randomness from crypto/rand, see [Encryptor.WithPRNG] to change it.
func NewEncryptor(params ParameterProvider, sk *SecretKey) *Encryptor {

	p := *params.GetLWEParameters()

	if err := CheckSecretKey(p, sk); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewEncryptor: key is not correct: %w", err))
	}

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewEncryptor: %w", err))
	}

	return &Encryptor{
		params: p,
		sk:     sk,
		source: sampling.NewSource(prng),
	}
}

// GetLWEParameters returns the underlying [Parameters].
func (enc Encryptor) GetLWEParameters() *Parameters {
	return &enc.params
}

// WithPRNG returns a copy of the target [Encryptor] drawing its randomness from prng.
// The returned encryptor isn't safe to use concurrently with the original encryptor
// nor with any other user of prng.
func (enc Encryptor) WithPRNG(prng sampling.PRNG) *Encryptor {
	enc.source = sampling.NewSource(prng)
	return &enc
}

// WithKey returns a copy of the target [Encryptor] encrypting under sk.
// The returned encryptor shares its random source with the original one.
func (enc Encryptor) WithKey(sk *SecretKey) *Encryptor {
	if err := CheckSecretKey(enc.params, sk); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot WithKey: %w", err))
	}
	enc.sk = sk
	return &enc
}

// ShallowCopy creates a copy of the [Encryptor] with a new crypto/rand random source,
// so that the two can be used concurrently.
func (enc Encryptor) ShallowCopy() *Encryptor {
	return NewEncryptor(enc.params, enc.sk)
}

// EncryptNew encrypts message with noise standard deviation alpha in a new [Ciphertext].
func (enc Encryptor) EncryptNew(message torus.Torus32, alpha float64) (ct *Ciphertext) {
	ct = NewCiphertext(enc.params)
	enc.Encrypt(message, alpha, ct)
	return
}

// Encrypt encrypts message with noise standard deviation alpha and writes the result on ct:
// the mask is sampled uniformly over the full torus and
//
//	B = Gaussian(message, alpha) + sum_i A[i] * s[i]
//
// The variance of ct is set to alpha^2.
func (enc Encryptor) Encrypt(message torus.Torus32, alpha float64, ct *Ciphertext) {

	contract.Assert(alpha >= 0, "Encrypt", "noise standard deviation must be non-negative")
	assertSecretKey("Encrypt", enc.params, enc.sk)
	assertDimension("Encrypt", enc.params, ct)

	ct.B = torus.Gaussian32(message, alpha, enc.source)
	enc.addMaskTimesKey(ct)
	ct.Variance = alpha * alpha
}

// EncryptWithExternalNoise encrypts message with the caller-provided real-valued noise
// and writes the result on ct. The mask is sampled uniformly over the full torus and
//
//	B = message + noise + sum_i A[i] * s[i]
//
// The variance of ct is set to alpha^2, where alpha is the standard deviation of the
// distribution the noise was drawn from.
func (enc Encryptor) EncryptWithExternalNoise(message torus.Torus32, noise, alpha float64, ct *Ciphertext) {

	contract.Assert(alpha >= 0, "EncryptWithExternalNoise", "noise standard deviation must be non-negative")
	contract.Assert(!math.IsNaN(noise) && !math.IsInf(noise, 0), "EncryptWithExternalNoise", "noise must be finite")
	assertSecretKey("EncryptWithExternalNoise", enc.params, enc.sk)
	assertDimension("EncryptWithExternalNoise", enc.params, ct)

	ct.B = message + torus.FromFloat64(noise)
	enc.addMaskTimesKey(ct)
	ct.Variance = alpha * alpha
}

// addMaskTimesKey samples a fresh uniform mask on ct and adds <A, s> to its body.
func (enc Encryptor) addMaskTimesKey(ct *Ciphertext) {
	s := enc.sk.Value
	a := ct.A[:len(s)]
	for i := range a {
		a[i] = torus.Torus32(enc.source.Uint32())
		ct.B += a[i] * torus.Torus32(s[i])
	}
}
