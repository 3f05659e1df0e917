package lwe

var (
	// ExampleParameters500 is the dimension-500 LWE parameter set of the original gate-bootstrapping
	// instance of TFHE (about 80 bits of security under the estimates of its time).
	ExampleParameters500 = ParametersLiteral{
		N:        500,
		AlphaMin: 2.44e-5,
		AlphaMax: 0.012467,
	}

	// ExampleParameters630 is a dimension-630 LWE parameter set with noise 2^-15,
	// targeting about 128 bits of security.
	ExampleParameters630 = ParametersLiteral{
		N:        630,
		AlphaMin: 3.0517578125e-05, // 2^-15
		AlphaMax: 0.012467,
	}
)
