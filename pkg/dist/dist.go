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

// Package dist implements composable sampling procedures. A Dist[T] is
// an immutable description of how to turn primitive draws from a
// random.Source into a value of type T; nothing is drawn until the
// description is sampled. Combinators fix a strict left-to-right order
// of primitive draws against the source, which is what makes every
// composed model reproducible under a fixed seed.
package dist

import (
	"github.com/pkg/errors"

	"github.com/probekit/probe/pkg/random"
)

// Dist is a sampling procedure producing a T. Values are immutable,
// own no resources, and are safe to share and re-sample from any number
// of goroutines as long as each Sample call gets its own Source.
type Dist[T any] struct {
	draw func(random.Source) (T, error)
}

// New wraps a raw draw procedure. The procedure must consume draws from
// the supplied source only, in a deterministic order.
func New[T any](draw func(random.Source) (T, error)) Dist[T] {
	return Dist[T]{draw: draw}
}

// Pure returns a distribution that always yields v and consumes no
// randomness.
func Pure[T any](v T) Dist[T] {
	return New(func(random.Source) (T, error) {
		return v, nil
	})
}

// Lift embeds an effectful computation unrelated to sampling into a
// draw chain. The effect runs at its position in the chain's total
// order and consumes no randomness.
func Lift[T any](effect func() T) Dist[T] {
	return New(func(random.Source) (T, error) {
		return effect(), nil
	})
}

// Map applies a pure function to the result of a draw. The returned
// distribution consumes exactly the same randomness as d.
func Map[A, B any](d Dist[A], f func(A) B) Dist[B] {
	return New(func(src random.Source) (B, error) {
		a, err := d.draw(src)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// Pair is the result of two independent draws.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Combine draws from a strictly before b against the same source and
// yields both results. The two draws share no intermediate state, so
// they are independent; the fixed order is a correctness contract, not
// an optimization.
func Combine[A, B any](a Dist[A], b Dist[B]) Dist[Pair[A, B]] {
	return New(func(src random.Source) (Pair[A, B], error) {
		av, err := a.draw(src)
		if err != nil {
			return Pair[A, B]{}, err
		}

		bv, err := b.draw(src)
		if err != nil {
			return Pair[A, B]{}, err
		}

		return Pair[A, B]{First: av, Second: bv}, nil
	})
}

// Bind sequences two draws where the second depends on the first
// (monadic bind). Sampling the result draws v from d, then draws from
// f(v), in that order, from the same source. The composite is the
// predictive distribution of the two-level model: operationally just
// two sequential draws, with the intermediate value marginalized out.
func Bind[A, B any](d Dist[A], f func(A) Dist[B]) Dist[B] {
	return New(func(src random.Source) (B, error) {
		v, err := d.draw(src)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v).draw(src)
	})
}

// Sample executes the full draw chain once against src. Nothing is
// cached; every call re-runs the procedure.
func (d Dist[T]) Sample(src random.Source) (T, error) {
	return d.draw(src)
}

// SampleN performs n sequential independent draws from the same source
// in call order. n = 0 yields an empty slice.
func (d Dist[T]) SampleN(n int, src random.Source) ([]T, error) {
	if n < 0 {
		return nil, errors.Errorf("sample count must be non-negative, got %d", n)
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.draw(src)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
