//go:build tlwe_novec

package torus

var subVec = SubVecScalar

// Kernel returns the name of the subtraction kernel; builds tagged tlwe_novec always use the scalar loop.
func Kernel() string {
	return "scalar"
}
