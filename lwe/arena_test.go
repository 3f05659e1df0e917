package lwe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/tlwe/torus"
)

func testArena(tc *TestContext, t *testing.T) {

	params := tc.params
	eval := tc.eval

	t.Run(testString(params, "CiphertextArena/Layout"), func(t *testing.T) {
		arena := NewCiphertextArena(params, 5)
		require.Equal(t, 5, arena.Len())
		require.True(t, params.Equal(arena.GetLWEParameters()))

		for i := 0; i < arena.Len(); i++ {
			ct := arena.At(i)
			require.Equal(t, params.N(), ct.N())
			require.Equal(t, params.N(), cap(ct.A))
			require.NoError(t, CheckCiphertext(params, ct))
		}

		// appending to a slot reallocates instead of overwriting its neighbour
		ct0 := arena.At(0)
		_ = append(ct0.A, 42)
		require.Equal(t, torus.Torus32(0), arena.At(1).A[0])
	})

	t.Run(testString(params, "CiphertextArena/Evaluate"), func(t *testing.T) {

		arena := NewCiphertextArena(params, 4)

		tc.enc.Encrypt(1<<28, 0, arena.At(0))
		tc.enc.Encrypt(1<<29, 0, arena.At(1))
		arena.At(0).Variance = 1.0 / (1 << 10)
		arena.At(1).Variance = 1.0 / (1 << 12)

		eval.Copy(arena.At(0), arena.At(2))
		eval.AddTo(arena.At(2), arena.At(1))
		eval.LinearCombination([]int32{3, -1}, arena.Slice(0, 2), arena.At(3))

		require.Equal(t, torus.Torus32(1<<28+1<<29), tc.dec.Phase(arena.At(2)))
		require.Equal(t, torus.Torus32(3<<28-1<<29), tc.dec.Phase(arena.At(3)))
		require.Equal(t, 9.0/(1<<10)+1.0/(1<<12), arena.At(3).Variance)

		// the inputs are untouched
		require.Equal(t, torus.Torus32(1<<28), tc.dec.Phase(arena.At(0)))
		require.Equal(t, torus.Torus32(1<<29), tc.dec.Phase(arena.At(1)))
	})

	t.Run(testString(params, "CiphertextArena/Slice"), func(t *testing.T) {
		arena := NewCiphertextArena(params, 3)
		cts := arena.Slice(1, 3)
		require.Len(t, cts, 2)
		require.True(t, cts[0] == arena.At(1))
		require.True(t, cts[1] == arena.At(2))
		require.Len(t, arena.Slice(3, 3), 0)

		requireViolation(t, func() { arena.Slice(2, 1) })
		requireViolation(t, func() { arena.Slice(0, 4) })
		requireViolation(t, func() { arena.Slice(-1, 1) })
	})

	t.Run(testString(params, "CiphertextArena/Clear"), func(t *testing.T) {
		arena := NewCiphertextArena(params, 3)
		for i := 0; i < arena.Len(); i++ {
			tc.enc.Encrypt(torus.Torus32(i+1), 1.0/(1<<20), arena.At(i))
		}
		arena.Clear()
		for i := 0; i < arena.Len(); i++ {
			require.True(t, arena.At(i).Equal(NewCiphertext(params)))
		}
	})

	t.Run(testString(params, "CiphertextArena/Empty"), func(t *testing.T) {
		arena := NewCiphertextArena(params, 0)
		require.Equal(t, 0, arena.Len())
		require.Len(t, arena.Slice(0, 0), 0)
		arena.Clear()
		require.Panics(t, func() { NewCiphertextArena(params, -1) })
	})
}
