package lwe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/tlwe/torus"
)

// newNoiselessPair returns two fresh noiseless encryptions of m0 and m1 with the given variances.
// The variances are set after encryption so that the phases stay exact.
func newNoiselessPair(tc *TestContext, m0, m1 torus.Torus32, v0, v1 float64) (ct0, ct1 *Ciphertext) {
	ct0 = tc.enc.EncryptNew(m0, 0)
	ct1 = tc.enc.EncryptNew(m1, 0)
	ct0.Variance = v0
	ct1.Variance = v1
	return
}

func testEvaluator(tc *TestContext, t *testing.T) {

	params := tc.params
	eval := tc.eval
	dec := tc.dec

	m0 := torus.Torus32(0x12345678)
	m1 := torus.Torus32(-0x6543210)
	v0 := 1.0 / (1 << 20)
	v1 := 1.0 / (1 << 30)

	t.Run(testString(params, "Evaluator/AddTo"), func(t *testing.T) {
		ct0, ct1 := newNoiselessPair(tc, m0, m1, v0, v1)
		eval.AddTo(ct0, ct1)
		require.Equal(t, m0+m1, dec.Phase(ct0))
		require.Equal(t, v0+v1, ct0.Variance)
	})

	t.Run(testString(params, "Evaluator/AddTo/Commutative"), func(t *testing.T) {
		ct0, ct1 := newNoiselessPair(tc, m0, m1, v0, v1)
		ab := ct0.CopyNew()
		eval.AddTo(ab, ct1)
		ba := ct1.CopyNew()
		eval.AddTo(ba, ct0)
		require.True(t, ab.Equal(ba))
	})

	t.Run(testString(params, "Evaluator/SubTo"), func(t *testing.T) {
		ct0, ct1 := newNoiselessPair(tc, m0, m1, v0, v1)

		want := ct0.CopyNew()
		for i := range want.A {
			want.A[i] -= ct1.A[i]
		}
		want.B -= ct1.B

		eval.SubTo(ct0, ct1)
		require.Equal(t, want.A, ct0.A)
		require.Equal(t, want.B, ct0.B)
		require.Equal(t, m0-m1, dec.Phase(ct0))
		require.Equal(t, v0+v1, ct0.Variance)
	})

	t.Run(testString(params, "Evaluator/SubTo/Self"), func(t *testing.T) {
		ct, _ := newNoiselessPair(tc, m0, m1, v0, v1)
		eval.SubTo(ct, ct)
		require.Equal(t, make([]torus.Torus32, params.N()), ct.A)
		require.Equal(t, torus.Torus32(0), ct.B)
		require.Equal(t, 2*v0, ct.Variance)
	})

	t.Run(testString(params, "Evaluator/AddMulTo"), func(t *testing.T) {
		for _, p := range []int32{0, 1, -1, 3, -7, 1 << 12} {
			ct0, ct1 := newNoiselessPair(tc, m0, m1, v0, v1)
			eval.AddMulTo(ct0, p, ct1)
			require.Equal(t, m0+torus.Torus32(p)*m1, dec.Phase(ct0))
			require.Equal(t, v0+float64(p)*float64(p)*v1, ct0.Variance)
		}
	})

	t.Run(testString(params, "Evaluator/SubMulTo"), func(t *testing.T) {
		for _, p := range []int32{0, 1, -1, 3, -7, 1 << 12} {
			ct0, ct1 := newNoiselessPair(tc, m0, m1, v0, v1)
			eval.SubMulTo(ct0, p, ct1)
			require.Equal(t, m0-torus.Torus32(p)*m1, dec.Phase(ct0))
			require.Equal(t, v0+float64(p)*float64(p)*v1, ct0.Variance)
		}
	})

	// p^2 does not fit in 32 bits: the variance must not wrap around.
	t.Run(testString(params, "Evaluator/AddMulTo/LargeCoefficient"), func(t *testing.T) {
		for _, p := range []int32{math.MaxInt32, math.MinInt32, 1 << 16} {
			ct0, ct1 := newNoiselessPair(tc, m0, m1, 0, 1)
			eval.AddMulTo(ct0, p, ct1)
			require.Equal(t, m0+torus.Torus32(p)*m1, dec.Phase(ct0))
			require.InEpsilon(t, float64(p)*float64(p), ct0.Variance, 1e-12)
		}
	})

	t.Run(testString(params, "Evaluator/Negate"), func(t *testing.T) {
		ct, _ := newNoiselessPair(tc, m0, m1, v0, v1)
		out := NewCiphertext(params)
		eval.Negate(ct, out)
		require.Equal(t, -m0, dec.Phase(out))
		require.Equal(t, v0, out.Variance)

		// in place
		eval.Negate(out, out)
		require.True(t, ct.Equal(out))
	})

	t.Run(testString(params, "Evaluator/Copy"), func(t *testing.T) {
		ct, _ := newNoiselessPair(tc, m0, m1, v0, v1)
		out := NewCiphertext(params)
		eval.Copy(ct, out)
		require.True(t, ct.Equal(out))
		out.A[0]++
		require.False(t, ct.Equal(out))
		eval.Copy(out, out)
	})

	t.Run(testString(params, "Evaluator/NoiselessTrivial"), func(t *testing.T) {
		ct, _ := newNoiselessPair(tc, m0, m1, v0, v1)
		eval.NoiselessTrivial(m1, ct)
		require.Equal(t, make([]torus.Torus32, params.N()), ct.A)
		require.Equal(t, m1, ct.B)
		require.Equal(t, 0.0, ct.Variance)

		eval.Clear(ct)
		require.Equal(t, torus.Torus32(0), dec.Phase(ct))
	})

	t.Run(testString(params, "Evaluator/LinearCombination"), func(t *testing.T) {

		coeffs := []int32{1, -2, 3, 0, -(1 << 10)}
		msgs := []torus.Torus32{m0, m1, 0x7fff, -1, 1 << 20}
		variances := []float64{v0, v1, 1.0 / (1 << 16), 1, 1.0 / (1 << 40)}

		cts := make([]*Ciphertext, len(coeffs))
		var want torus.Torus32
		var wantVariance float64
		for i := range cts {
			cts[i] = tc.enc.EncryptNew(msgs[i], 0)
			cts[i].Variance = variances[i]
			want += torus.Torus32(coeffs[i]) * msgs[i]
			wantVariance += float64(coeffs[i]) * float64(coeffs[i]) * variances[i]
		}

		out := tc.enc.EncryptNew(m0, 0)
		eval.LinearCombination(coeffs, cts, out)
		require.Equal(t, want, dec.Phase(out))
		require.Equal(t, wantVariance, out.Variance)

		// empty combination
		eval.LinearCombination(nil, nil, out)
		require.Equal(t, torus.Torus32(0), dec.Phase(out))
		require.Equal(t, 0.0, out.Variance)
	})

	t.Run(testString(params, "Evaluator/Decrypt"), func(t *testing.T) {

		msize := int32(16)
		ecd, err := NewEncoder(msize)
		require.NoError(t, err)

		alpha := 1.0 / (1 << 12)

		acc := NewCiphertext(params)
		eval.Clear(acc)
		var sum int32
		for mu := int32(0); mu < 8; mu++ {
			eval.AddTo(acc, tc.enc.EncryptNew(ecd.Encode(mu), alpha))
			sum += mu
		}
		eval.SubMulTo(acc, 2, tc.enc.EncryptNew(ecd.Encode(5), alpha))
		sum -= 10

		require.Equal(t, 12*alpha*alpha, acc.Variance)
		require.Equal(t, ((sum%msize)+msize)%msize, dec.DecryptSlot(acc, msize))
	})
}

func testContract(tc *TestContext, t *testing.T) {

	params := tc.params
	eval := tc.eval

	other, err := NewParameters(params.N()+1, params.AlphaMin(), params.AlphaMax())
	require.NoError(t, err)

	t.Run(testString(params, "Contract/Dimension"), func(t *testing.T) {
		ct := NewCiphertext(params)
		bad := NewCiphertext(other)
		requireViolation(t, func() { eval.AddTo(ct, bad) })
		requireViolation(t, func() { eval.AddTo(bad, ct) })
		requireViolation(t, func() { eval.SubTo(ct, bad) })
		requireViolation(t, func() { eval.AddMulTo(ct, 2, bad) })
		requireViolation(t, func() { eval.SubMulTo(ct, 2, bad) })
		requireViolation(t, func() { eval.Negate(bad, ct) })
		requireViolation(t, func() { eval.Copy(bad, ct) })
		requireViolation(t, func() { eval.NoiselessTrivial(0, bad) })
		requireViolation(t, func() { tc.dec.Phase(bad) })
		requireViolation(t, func() { tc.enc.Encrypt(0, 0, bad) })
	})

	t.Run(testString(params, "Contract/Variance"), func(t *testing.T) {
		ct := NewCiphertext(params)
		ct.Variance = -1
		requireViolation(t, func() { tc.dec.Phase(ct) })
		requireViolation(t, func() { eval.AddTo(NewCiphertext(params), ct) })
		ct.Variance = math.NaN()
		requireViolation(t, func() { tc.dec.Phase(ct) })

		// an output operand may hold anything before being overwritten
		tc.enc.Encrypt(0, 0, ct)
		require.Equal(t, 0.0, ct.Variance)
	})

	t.Run(testString(params, "Contract/Noise"), func(t *testing.T) {
		ct := NewCiphertext(params)
		requireViolation(t, func() { tc.enc.Encrypt(0, -1, ct) })
		requireViolation(t, func() { tc.enc.EncryptWithExternalNoise(0, 0, -1, ct) })
		requireViolation(t, func() { tc.enc.EncryptWithExternalNoise(0, math.NaN(), 0, ct) })
		requireViolation(t, func() { tc.enc.EncryptWithExternalNoise(0, math.Inf(1), 0, ct) })
	})

	t.Run(testString(params, "Contract/SecretKey"), func(t *testing.T) {
		sk := tc.sk.CopyNew()
		dec := NewDecryptor(params, sk)
		enc := NewEncryptor(params, sk)
		sk.Value[params.N()-1] = -1
		requireViolation(t, func() { dec.Phase(NewCiphertext(params)) })
		requireViolation(t, func() { enc.EncryptNew(0, 0) })
	})

	t.Run(testString(params, "Contract/LinearCombination"), func(t *testing.T) {
		ct0, ct1 := newNoiselessPair(tc, 1, 2, 0, 0)
		out := NewCiphertext(params)
		requireViolation(t, func() { eval.LinearCombination([]int32{1}, []*Ciphertext{ct0, ct1}, out) })
		requireViolation(t, func() { eval.LinearCombination([]int32{1, 1}, []*Ciphertext{ct0, ct1}, ct1) })

		// an output sharing a sub-slice of an input mask is also rejected
		alias := &Ciphertext{A: ct0.A[:params.N():params.N()]}
		requireViolation(t, func() { eval.LinearCombination([]int32{1}, []*Ciphertext{ct0}, alias) })
	})

	t.Run(testString(params, "Contract/MessageSpace"), func(t *testing.T) {
		ct := tc.enc.EncryptNew(0, 0)
		requireViolation(t, func() { tc.dec.Decrypt(ct, 1) })
		requireViolation(t, func() { tc.dec.DecryptSlot(ct, 0) })
		requireViolation(t, func() { DecryptionFailureProbability(1, 1) })
		requireViolation(t, func() { DecryptionFailureProbability(-1, 8) })
	})
}
