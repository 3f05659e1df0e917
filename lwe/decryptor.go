package lwe

import (
	"fmt"

	"github.com/tuneinsight/tlwe/torus"
)

// Decryptor is a structure used to decrypt [Ciphertext]. It stores the secret-key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor instantiates a new LWE [Decryptor].
func NewDecryptor(params ParameterProvider, sk *SecretKey) *Decryptor {

	p := *params.GetLWEParameters()

	if err := CheckSecretKey(p, sk); err != nil {
		panic(fmt.Errorf("cannot NewDecryptor: %w", err))
	}

	return &Decryptor{
		params: p,
		sk:     sk,
	}
}

// GetLWEParameters returns the underlying [Parameters].
func (d Decryptor) GetLWEParameters() *Parameters {
	return &d.params
}

// Phase returns B - <A, s>, that is the encoded message plus the error, without rounding.
func (d Decryptor) Phase(ct *Ciphertext) torus.Torus32 {

	assertSecretKey("Phase", d.params, d.sk)
	assertCiphertext("Phase", d.params, ct)

	s := d.sk.Value
	a := ct.A[:len(s)]

	var axs torus.Torus32
	for i := range a {
		axs += a[i] * torus.Torus32(s[i])
	}

	return ct.B - axs
}

// Decrypt returns the phase of ct rounded to the nearest multiple of 1/msize.
//
// Decryption is correct when the actual error is smaller than 1/(2*msize) in absolute
// value, which callers ensure by keeping ct.Variance small compared to 1/msize^2
// (see [DecryptionFailureProbability]). Decrypt itself does not check it.
func (d Decryptor) Decrypt(ct *Ciphertext, msize int32) torus.Torus32 {
	return torus.ApproxPhase(d.Phase(ct), msize)
}

// DecryptSlot returns the index in [0, msize) of the message slot nearest to the phase of ct.
func (d Decryptor) DecryptSlot(ct *Ciphertext, msize int32) int32 {
	return torus.ModSwitchFromTorus32(d.Phase(ct), msize)
}
