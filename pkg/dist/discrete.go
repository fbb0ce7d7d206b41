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

package dist

import (
	"github.com/pkg/errors"

	"github.com/probekit/probe/pkg/metrics"
	"github.com/probekit/probe/pkg/random"
)

// ErrInvalidProbabilityVector reports a weight sequence that cannot
// produce any accepting cumulative bucket for a drawn value, such as an
// empty sequence or one with no positive weight. The failure is
// surfaced on the draw that hit it; nothing is retried.
var ErrInvalidProbabilityVector = errors.New("invalid probability vector")

// Bernoulli yields true with probability p.
func Bernoulli(p float64) Dist[bool] {
	return Map(Uniform(), func(u float64) bool {
		return u < p
	})
}

// Binomial counts successes over n independent Bernoulli(p) draws,
// consuming n primitive draws.
func Binomial(n int, p float64) Dist[int] {
	bern := Bernoulli(p)

	return New(func(src random.Source) (int, error) {
		count := 0
		for i := 0; i < n; i++ {
			hit, err := bern.Sample(src)
			if err != nil {
				return 0, err
			}
			if hit {
				count++
			}
		}
		return count, nil
	})
}

// NegativeBinomial samples the gamma-Poisson mixture: a gamma deviate
// with shape n and scale (1-p)/p sets the rate of a Poisson draw.
func NegativeBinomial(n, p float64) Dist[int] {
	return Bind(Gamma(n, (1-p)/p), Poisson)
}

// Poisson yields a Poisson deviate via a single condensed-table lookup.
// The table is rebuilt on every draw; use PoissonCached when the same
// rate is sampled repeatedly.
func Poisson(rate float64) Dist[int] {
	return New(func(src random.Source) (int, error) {
		table := random.BuildAliasTable(rate)
		metrics.AliasTablesBuilt.Inc()
		return src.Poisson(table), nil
	})
}

// PoissonCached builds the lookup table once, at construction time.
func PoissonCached(rate float64) Dist[int] {
	table := random.BuildAliasTable(rate)
	metrics.AliasTablesBuilt.Inc()

	return New(func(src random.Source) (int, error) {
		return src.Poisson(table), nil
	})
}

// DiscreteUniform picks one of the given values with equal probability;
// one primitive draw. values must be non-empty.
func DiscreteUniform[T any](values []T) Dist[T] {
	return New(func(src random.Source) (T, error) {
		return values[src.IntN(len(values))], nil
	})
}

// Multinomial draws n indices over the given non-negative, not
// necessarily normalized weights by cumulative-sum inversion. A draw
// that no cumulative bucket accepts fails with
// ErrInvalidProbabilityVector.
func Multinomial(n int, weights []float64) Dist[[]int] {
	cum := make([]float64, len(weights))

	var total float64
	for i, w := range weights {
		total += w
		cum[i] = total
	}

	return New(func(src random.Source) ([]int, error) {
		// A non-positive total has no accepting bucket for any drawn
		// value; with a negative total the draw itself goes negative
		// and a negative cumulative entry could wrongly accept, so the
		// degenerate vector is rejected before drawing.
		if total <= 0 {
			return nil, errors.Wrapf(
				ErrInvalidProbabilityVector,
				"total weight %v is not positive (%d weights)",
				total, len(weights),
			)
		}

		out := make([]int, 0, n)
		for i := 0; i < n; i++ {
			z := src.UniformRange(0, total)

			idx := -1
			for i, c := range cum {
				if c > z {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, errors.Wrapf(
					ErrInvalidProbabilityVector,
					"no cumulative bucket exceeds %v (total %v, %d weights)",
					z, total, len(weights),
				)
			}

			out = append(out, idx)
		}
		return out, nil
	})
}

// Categorical draws a single index over the given weights.
func Categorical(weights []float64) Dist[int] {
	single := Multinomial(1, weights)

	return New(func(src random.Source) (int, error) {
		idxs, err := single.Sample(src)
		if err != nil {
			return 0, err
		}
		if len(idxs) != 1 {
			return 0, errors.Wrapf(ErrInvalidProbabilityVector, "expected one index, got %d", len(idxs))
		}
		return idxs[0], nil
	})
}

// Weighted pairs a non-negative weight with the value it selects.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Discrete draws a categorical index over the pair weights and returns
// the paired value.
func Discrete[T any](pairs []Weighted[T]) Dist[T] {
	weights := make([]float64, len(pairs))
	for i, p := range pairs {
		weights[i] = p.Weight
	}

	return Map(Categorical(weights), func(idx int) T {
		return pairs[idx].Value
	})
}
