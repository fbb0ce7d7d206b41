// Copyright 2025 Probekit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source supplies the primitive draws every distribution is built from.
// A Source is mutable and must be driven by at most one logical sequence
// of draws at a time; wrap it with NewLocked when it has to be shared.
type Source interface {
	// UniformUnit returns a variate in [0, 1).
	UniformUnit() float64
	// UniformRange returns a variate in [lo, hi].
	UniformRange(lo, hi float64) float64
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
	// StandardNormal returns a standard normal deviate.
	StandardNormal() float64
	// Gamma returns a gamma deviate with the given shape and scale.
	// The number of underlying uniform draws is algorithm dependent.
	Gamma(shape, scale float64) float64
	// Poisson performs a single lookup draw against a prebuilt table.
	Poisson(table *AliasTable) int
}

type pcgSource struct {
	src  rand.Source
	rng  *rand.Rand
	norm distuv.Normal
}

// NewSource returns a PCG-backed Source. Two sources created with the
// same seed produce identical draw sequences.
func NewSource(seed uint64) Source {
	src := rand.NewSource(seed)

	return &pcgSource{
		src:  src,
		rng:  rand.New(src),
		norm: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

func (s *pcgSource) UniformUnit() float64 {
	return s.rng.Float64()
}

func (s *pcgSource) UniformRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *pcgSource) IntN(n int) int {
	return s.rng.Intn(n)
}

func (s *pcgSource) StandardNormal() float64 {
	return s.norm.Rand()
}

func (s *pcgSource) Gamma(shape, scale float64) float64 {
	// distuv parametrizes gamma by rate, the callers by scale.
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: s.src}.Rand()
}

func (s *pcgSource) Poisson(table *AliasTable) int {
	return table.Lookup(s.rng.Float64())
}

// NewSeed produces a seed from the system entropy pool, falling back to
// a time-derived value when the pool is unavailable.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		return binary.LittleEndian.Uint64(b[:])
	}

	now := time.Now()
	val := uint64(now.Nanosecond() * now.Second())
	return bits.RotateLeft64(val^uint64(now.UnixNano()), -int(val>>58))
}
