package torus

import (
	"unsafe"

	"github.com/tuneinsight/tlwe/utils/contract"
)

// SubVec evaluates r[i] -= a[i] for 0 <= i < len(r) with wrapping arithmetic.
// The largest multiple-of-8 prefix goes through the kernel selected at start-up
// (see [Kernel]), the remaining 1 to 7 elements through the scalar loop.
// a must be at least as long as r.
func SubVec(r, a []Torus32) {
	n := len(r)
	contract.Assert(len(a) >= n, "SubVec", "operand shorter than result")
	n0 := n &^ 7
	if n0 != 0 {
		subVec(r[:n0], a[:n0])
	}
	SubVecScalar(r[n0:], a[n0:n])
}

// SubVecScalar evaluates r[i] -= a[i] one element at a time.
func SubVecScalar(r, a []Torus32) {
	a = a[:len(r)]
	for i := range r {
		r[i] -= a[i]
	}
}

// SubVec8 evaluates r[i] -= a[i] on groups of 8 lanes of 32 bits (one 256-bit register per step).
// len(r) must be a multiple of 8 and a at least as long as r: the kernel does not handle a tail
// and reads out of bounds otherwise. Use [SubVec] for arbitrary lengths.
func SubVec8(r, a []Torus32) {

	N := len(r)

	contract.Assert(N&7 == 0, "SubVec8", "length is not a multiple of 8")
	contract.Assert(len(a) >= N, "SubVec8", "operand shorter than result")

	for j := 0; j < N; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, possible buffer overflow if len(r)%8 */
		x := (*[8]Torus32)(unsafe.Pointer(&r[j]))
		/* #nosec G103 -- behavior and consequences well understood, possible buffer overflow if len(a)%8 */
		y := (*[8]Torus32)(unsafe.Pointer(&a[j]))

		x[0] -= y[0]
		x[1] -= y[1]
		x[2] -= y[2]
		x[3] -= y[3]
		x[4] -= y[4]
		x[5] -= y[5]
		x[6] -= y[6]
		x[7] -= y[7]
	}
}
