//go:build !tlwe_novec

package torus

import (
	"github.com/klauspost/cpuid/v2"
)

// subVec is the multiple-of-8 kernel used by SubVec.
var subVec, kernel = selectKernel()

// selectKernel picks the 8-lane unrolled loop [SubVec8] on CPUs with 256-bit (AVX2) or
// 128-bit (ASIMD) vector units, on which the compiler output of the unrolled loop runs
// faster, and the scalar loop otherwise. Both kernels are pure Go.
func selectKernel() (func(r, a []Torus32), string) {
	if cpuid.CPU.Supports(cpuid.AVX2) || cpuid.CPU.Supports(cpuid.ASIMD) {
		return SubVec8, "lanes8"
	}
	return SubVecScalar, "scalar"
}

// Kernel returns the name of the subtraction kernel selected for this CPU: "lanes8" for the
// unrolled loop or "scalar".
func Kernel() string {
	return kernel
}
