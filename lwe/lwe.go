// Package lwe implements the LWE encryption scheme over the 32-bit torus: secret-key generation,
// symmetric encryption, phase computation and decryption, and the linear algebra evaluated directly
// on ciphertexts (addition, subtraction, multiply-accumulate by public integers) together with the
// propagation of the noise variance carried by every [Ciphertext].
//
// All operations are synchronous and write into caller-allocated objects. Randomness is drawn from an
// explicit sampling.PRNG, which is crypto/rand by default and can be replaced with a deterministic
// sampling.KeyedPRNG through the WithPRNG methods of [KeyGenerator] and [Encryptor].
package lwe
