package lwe

import (
	"fmt"

	"github.com/tuneinsight/tlwe/torus"
	"github.com/tuneinsight/tlwe/utils/contract"
)

// CiphertextArena is a fixed-size collection of [Ciphertext] whose masks are carved from
// a single contiguous buffer. Ciphertexts are referenced by their index in the arena, so a
// computation over many samples allocates once and never moves them.
type CiphertextArena struct {
	params  Parameters
	backing []torus.Torus32
	cts     []Ciphertext
}

// NewCiphertextArena allocates an arena of count all-zero ciphertexts of dimension params.N().
func NewCiphertextArena(params ParameterProvider, count int) *CiphertextArena {

	if count < 0 {
		panic(fmt.Errorf("cannot NewCiphertextArena: invalid count %d", count))
	}

	p := *params.GetLWEParameters()
	n := p.N()

	arena := &CiphertextArena{
		params:  p,
		backing: make([]torus.Torus32, n*count),
		cts:     make([]Ciphertext, count),
	}

	for i := range arena.cts {
		// the capacity is capped so that an append can never spill on the next slot
		arena.cts[i].A = arena.backing[i*n : (i+1)*n : (i+1)*n]
	}

	return arena
}

// GetLWEParameters returns the underlying [Parameters].
func (arena CiphertextArena) GetLWEParameters() *Parameters {
	return &arena.params
}

// Len returns the number of ciphertexts in the arena.
func (arena CiphertextArena) Len() int {
	return len(arena.cts)
}

// At returns the i-th ciphertext of the arena.
// The returned pointer stays valid for the lifetime of the arena.
func (arena *CiphertextArena) At(i int) *Ciphertext {
	return &arena.cts[i]
}

// Slice returns pointers to the ciphertexts of index i to j-1.
func (arena *CiphertextArena) Slice(i, j int) (cts []*Ciphertext) {
	contract.Assert(0 <= i && i <= j && j <= len(arena.cts), "Slice", "index range out of bounds")
	cts = make([]*Ciphertext, j-i)
	for k := range cts {
		cts[k] = &arena.cts[i+k]
	}
	return
}

// Clear resets every ciphertext of the arena to the noiseless trivial encryption of zero.
func (arena *CiphertextArena) Clear() {
	for i := range arena.backing {
		arena.backing[i] = 0
	}
	for i := range arena.cts {
		arena.cts[i].B = 0
		arena.cts[i].Variance = 0
	}
}
