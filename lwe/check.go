package lwe

import (
	"fmt"
	"math"

	"github.com/tuneinsight/tlwe/utils/contract"
)

// CheckSecretKey returns an error if sk does not have dimension params.N()
// or has a coefficient outside of {0, 1}.
func CheckSecretKey(params Parameters, sk *SecretKey) (err error) {
	if len(sk.Value) != params.N() {
		return fmt.Errorf("secret key dimension %d does not match parameters dimension %d", len(sk.Value), params.N())
	}
	for i, s := range sk.Value {
		if s != 0 && s != 1 {
			return fmt.Errorf("secret key coefficient %d is %d: must be 0 or 1", i, s)
		}
	}
	return
}

// CheckCiphertext returns an error if ct does not have dimension params.N()
// or carries a negative or NaN variance.
func CheckCiphertext(params Parameters, ct *Ciphertext) (err error) {
	if len(ct.A) != params.N() {
		return fmt.Errorf("ciphertext dimension %d does not match parameters dimension %d", len(ct.A), params.N())
	}
	if math.IsNaN(ct.Variance) || ct.Variance < 0 {
		return fmt.Errorf("ciphertext variance %v must be non-negative", ct.Variance)
	}
	return
}

// assertSecretKey panics with a contract violation if checks are enabled and sk is invalid.
func assertSecretKey(op string, params Parameters, sk *SecretKey) {
	if contract.Enabled {
		if err := CheckSecretKey(params, sk); err != nil {
			panic(&contract.Violation{Op: op, Reason: err.Error()})
		}
	}
}

// assertCiphertext panics with a contract violation if checks are enabled and ct is invalid.
func assertCiphertext(op string, params Parameters, ct *Ciphertext) {
	if contract.Enabled {
		if err := CheckCiphertext(params, ct); err != nil {
			panic(&contract.Violation{Op: op, Reason: err.Error()})
		}
	}
}

// assertDimension panics with a contract violation if checks are enabled and
// the mask of ct does not have dimension params.N(). It is used on outputs,
// whose previous content is irrelevant.
func assertDimension(op string, params Parameters, ct *Ciphertext) {
	if contract.Enabled && len(ct.A) != params.N() {
		panic(&contract.Violation{Op: op, Reason: fmt.Sprintf("ciphertext dimension %d does not match parameters dimension %d", len(ct.A), params.N())})
	}
}
