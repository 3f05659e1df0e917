/*
Package tlwe is a pure Go implementation of the LWE layer of the TFHE homomorphic encryption scheme
over the 32-bit torus. It provides key generation, symmetric encryption and decryption, the linear
algebra evaluated on ciphertexts with the tracking of their noise variance, and a vectorized kernel
for the subtraction of ciphertext masks.

The torus package implements the fixed-point torus arithmetic, the lwe package the scheme itself.
*/
package tlwe
