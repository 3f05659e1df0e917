// Package sampling implements secure sampling of bytes, machine words, bits and normal deviates
// from an explicit, injectable random source.
package sampling

import (
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source draws uniform words, uniform bits and standard normal deviates from a [PRNG].
// Random bytes are read in chunks of 1024 bytes into an internal buffer.
// A Source is not safe for concurrent use: give every goroutine its own Source,
// for example over a forked [KeyedPRNG].
type Source struct {
	prng PRNG

	buff []byte
	ptr  int

	bits  uint64
	nbits int

	normal *rand.Rand
}

// NewSource creates a new Source reading from prng.
func NewSource(prng PRNG) (s *Source) {
	s = &Source{
		prng: prng,
		buff: make([]byte, 1024),
	}
	s.ptr = len(s.buff)
	s.normal = rand.New(prngSource{s})
	return
}

// PRNG returns the underlying [PRNG].
func (s *Source) PRNG() PRNG {
	return s.prng
}

func (s *Source) refill() {
	if _, err := s.prng.Read(s.buff); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot read from PRNG: %w", err))
	}
	s.ptr = 0
}

// Uint32 returns a uniformly distributed 32-bit word.
func (s *Source) Uint32() uint32 {
	if s.ptr+4 > len(s.buff) {
		s.refill()
	}
	v := binary.LittleEndian.Uint32(s.buff[s.ptr:])
	s.ptr += 4
	return v
}

// Uint64 returns a uniformly distributed 64-bit word.
func (s *Source) Uint64() uint64 {
	if s.ptr+8 > len(s.buff) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buff[s.ptr:])
	s.ptr += 8
	return v
}

// Bit returns an unbiased coin flip in {0, 1}.
// Bits are consumed one at a time from 64-bit words.
func (s *Source) Bit() uint64 {
	if s.nbits == 0 {
		s.bits = s.Uint64()
		s.nbits = 64
	}
	b := s.bits & 1
	s.bits >>= 1
	s.nbits--
	return b
}

// NormFloat64 returns a normally distributed float64 with mean 0 and standard deviation 1,
// using the Ziggurat method of math/rand driven by the underlying PRNG.
func (s *Source) NormFloat64() float64 {
	return s.normal.NormFloat64()
}

// prngSource adapts a Source to the math/rand Source64 interface.
type prngSource struct {
	s *Source
}

func (p prngSource) Int63() int64 {
	return int64(p.s.Uint64() >> 1)
}

func (p prngSource) Uint64() uint64 {
	return p.s.Uint64()
}

// Seed is not supported: the stream is defined by the PRNG.
func (p prngSource) Seed(int64) {
	panic("cannot Seed: sampling.Source is driven by its PRNG")
}
