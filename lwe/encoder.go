package lwe

import (
	"fmt"

	"github.com/tuneinsight/tlwe/torus"
)

// Encoder maps messages of Z_msize to the torus, message mu being encoded as mu/msize.
type Encoder struct {
	msize int32
}

// NewEncoder creates a new [Encoder] for a message space of msize slots.
func NewEncoder(msize int32) (*Encoder, error) {
	if msize < 2 {
		return nil, fmt.Errorf("cannot NewEncoder: message space size %d must be at least 2", msize)
	}
	return &Encoder{msize: msize}, nil
}

// MessageSpace returns the number of slots of the message space.
func (ecd Encoder) MessageSpace() int32 {
	return ecd.msize
}

// Encode returns the torus encoding of mu mod msize.
func (ecd Encoder) Encode(mu int32) torus.Torus32 {
	if mu %= ecd.msize; mu < 0 {
		mu += ecd.msize
	}
	return torus.ModSwitchToTorus32(mu, ecd.msize)
}

// Decode returns the message of Z_msize nearest to phase.
func (ecd Encoder) Decode(phase torus.Torus32) int32 {
	return torus.ModSwitchFromTorus32(phase, ecd.msize)
}
