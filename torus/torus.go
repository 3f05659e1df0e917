// Package torus implements arithmetic on the real torus R/Z represented as 32-bit fixed-point
// integers: the value x in [-1/2, 1/2) is stored as round(x * 2^32) in an int32, so that addition,
// subtraction and multiplication by public integers are plain wrapping 32-bit operations.
package torus

import (
	"math"

	"github.com/tuneinsight/tlwe/utils/contract"
	"golang.org/x/exp/constraints"
)

// Torus32 is an element of the torus R/Z scaled by 2^32.
// Overflow is meaningful: it is the reduction modulo 1.
type Torus32 int32

const two32 = 4294967296.0

// FromFloat64 maps the real number d to the torus, keeping only its fractional part.
// The conversion truncates toward zero.
func FromFloat64(d float64) Torus32 {
	return Torus32(int32(int64((d - float64(int64(d))) * two32)))
}

// ToFloat64 maps x to the real number in [-1/2, 1/2) it represents.
func ToFloat64(x Torus32) float64 {
	return float64(x) / two32
}

// FromInteger reduces the integer x modulo 2^32 and returns it as a torus element.
func FromInteger[V constraints.Integer](x V) Torus32 {
	return Torus32(int32(uint32(x)))
}

// NormalSampler is the source of standard normal deviates used by [Gaussian32].
type NormalSampler interface {
	NormFloat64() float64
}

// Gaussian32 returns message perturbed by a centered normal error of standard deviation sigma,
// sampled on the torus. A zero sigma returns message exactly.
func Gaussian32(message Torus32, sigma float64, src NormalSampler) Torus32 {
	return message + FromFloat64(src.NormFloat64()*sigma)
}

// interval returns the width of one of the msize slots of the torus, scaled by 2^64.
func interval(op string, msize int32) uint64 {
	contract.Assert(msize >= 2, op, "message space size must be at least 2")
	return ((uint64(1) << 63) / uint64(msize)) * 2
}

// ApproxPhase rounds phase to the nearest multiple of 1/msize.
func ApproxPhase(phase Torus32, msize int32) Torus32 {
	interv := interval("ApproxPhase", msize)
	phase64 := (uint64(uint32(phase)) << 32) + interv/2
	phase64 -= phase64 % interv
	return Torus32(int32(uint32(phase64 >> 32)))
}

// ModSwitchFromTorus32 returns the index in [0, msize) of the slot nearest to phase.
func ModSwitchFromTorus32(phase Torus32, msize int32) int32 {
	interv := interval("ModSwitchFromTorus32", msize)
	phase64 := (uint64(uint32(phase)) << 32) + interv/2
	return int32((phase64 / interv) % uint64(msize))
}

// ModSwitchToTorus32 returns the torus encoding of mu/msize.
func ModSwitchToTorus32(mu, msize int32) Torus32 {
	interv := interval("ModSwitchToTorus32", msize)
	phase64 := uint64(int64(mu)) * interv
	return Torus32(int32(uint32(phase64 >> 32)))
}

// Distance returns the centered distance between x and y as a real number in [0, 1/2].
func Distance(x, y Torus32) float64 {
	return math.Abs(ToFloat64(x - y))
}
