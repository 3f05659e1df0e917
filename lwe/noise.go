package lwe

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/tlwe/torus"
	"github.com/tuneinsight/tlwe/utils"
	"github.com/tuneinsight/tlwe/utils/bignum"
	"github.com/tuneinsight/tlwe/utils/contract"
)

const (
	// failurePrecision is the precision, in bits, of the big-float tail computations.
	failurePrecision = 256

	// erfcFloat64Limit is the argument below which math.Erfc is used directly:
	// erfc(26) is about 5.7e-296, still a normal float64.
	erfcFloat64Limit = 26

	// erfcBigLimit is the argument above which only the leading asymptotic
	// term of log(erfc) is evaluated. The probability is then below 2^-(2^28).
	erfcBigLimit = 1 << 14

	// erfcTerms is the depth of the continued fraction of erfc.
	erfcTerms = 256
)

// DecryptionFailureProbability returns the probability that a centered Gaussian error of the
// given variance falls outside the decoding window [-1/(2*msize), 1/(2*msize)), that is
// erfc(1/(2*msize*sqrt(2*variance))). This is the probability that [Decryptor.Decrypt] returns
// a wrong slot for a ciphertext whose Variance is exact.
//
// The result is a [big.Float] because the probabilities of interest usually lie far below
// the smallest float64.
func DecryptionFailureProbability(variance float64, msize int32) (p *big.Float) {

	x := failureArgument("DecryptionFailureProbability", variance, msize)

	p = new(big.Float).SetPrec(failurePrecision)

	switch {
	case math.IsInf(x, 1):
		return p
	case x < erfcFloat64Limit:
		return p.SetFloat64(math.Erfc(x))
	case x < erfcBigLimit:
		return erfcBig(x)
	default:
		log2 := log2ErfcAsymptotic(x)
		if log2 < big.MinExp+failurePrecision {
			return p
		}
		// 2^log2 = 2^frac * 2^exp
		exp := math.Floor(log2)
		p.SetFloat64(math.Exp2(log2 - exp))
		return p.SetMantExp(p, int(exp))
	}
}

// Log2DecryptionFailureProbability returns log2 of [DecryptionFailureProbability]
// as a float64, which is representable even when the probability itself is not.
// It returns -Inf for a zero variance.
func Log2DecryptionFailureProbability(variance float64, msize int32) float64 {

	x := failureArgument("Log2DecryptionFailureProbability", variance, msize)

	switch {
	case math.IsInf(x, 1):
		return math.Inf(-1)
	case x < erfcFloat64Limit:
		return math.Log2(math.Erfc(x))
	case x < erfcBigLimit:
		mant := new(big.Float)
		exp := erfcBig(x).MantExp(mant)
		m, _ := mant.Float64()
		return float64(exp) + math.Log2(m)
	default:
		return log2ErfcAsymptotic(x)
	}
}

// failureArgument returns d/(sigma*sqrt(2)) with d = 1/(2*msize) the half-width of a slot.
func failureArgument(op string, variance float64, msize int32) float64 {
	contract.Assert(msize >= 2, op, "message space size must be at least 2")
	contract.Assert(variance >= 0, op, "variance must be non-negative")
	if variance == 0 {
		return math.Inf(1)
	}
	return 1 / (2 * float64(msize) * math.Sqrt(2*variance))
}

// erfcBig evaluates erfc(x) for x >= erfcFloat64Limit in big-float arithmetic.
func erfcBig(x float64) *big.Float {
	return bignum.Erfc(bignum.NewFloat(x, failurePrecision), erfcTerms)
}

// log2ErfcAsymptotic returns the leading terms of log2(erfc(x)) ~ log2(exp(-x^2)/(x*sqrt(pi))).
func log2ErfcAsymptotic(x float64) float64 {
	return -(x*x + math.Log(x*math.SqrtPi)) / math.Ln2
}

// PhaseError returns the signed distance, as a real number in [-1/2, 1/2), between the phase of ct
// and the expected noiseless phase.
func (d Decryptor) PhaseError(ct *Ciphertext, expected torus.Torus32) float64 {
	return torus.ToFloat64(d.Phase(ct) - expected)
}

// NoiseStats summarizes a set of measured phase errors.
type NoiseStats struct {
	Mean   float64
	StdDev float64
	// MaxAbs is the largest absolute error.
	MaxAbs float64
}

// NoiseStatistics returns the empirical mean, standard deviation and largest magnitude of errs,
// typically obtained with [Decryptor.PhaseError].
func NoiseStatistics(errs []float64) (ns NoiseStats, err error) {

	if ns.Mean, err = stats.Mean(errs); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot NoiseStatistics: %w", err)
	}

	if ns.StdDev, err = stats.StandardDeviation(errs); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot NoiseStatistics: %w", err)
	}

	for _, e := range errs {
		ns.MaxAbs = utils.Max(ns.MaxAbs, utils.Abs(e))
	}

	return
}
