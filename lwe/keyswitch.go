package lwe

// KeySwitchingKey is the public material that allows to move a [Ciphertext] from an input
// secret key to an output secret key, possibly of a different dimension.
// Its content is defined by the component implementing the key-switching procedure.
type KeySwitchingKey interface {
	// InputDimension returns the dimension of the input secret key.
	InputDimension() int
	// OutputDimension returns the dimension of the output secret key.
	OutputDimension() int
}

// KeySwitchingKeyGenerator is implemented by the components able to derive a
// [KeySwitchingKey] from skIn to skOut.
type KeySwitchingKeyGenerator interface {
	GenKeySwitchingKeyNew(skIn, skOut *SecretKey) (ksk KeySwitchingKey, err error)
}

// KeySwitcher is implemented by the components able to re-encrypt ctIn, a [Ciphertext] under the
// input key of ksk, into ctOut, a [Ciphertext] of the same message under the output key of ksk.
// ctOut must be allocated with the parameters of the output key. Implementations are expected to
// account for the noise they add in ctOut.Variance.
type KeySwitcher interface {
	KeySwitch(ksk KeySwitchingKey, ctIn, ctOut *Ciphertext) (err error)
}
