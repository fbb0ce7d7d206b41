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

// Number covers the element types the pointwise arithmetic lifts are
// defined for.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add draws from a then b independently and sums the results. Together
// with Sub and Mul it lets mixture and arithmetic expressions be
// written directly over distributions.
func Add[N Number](a, b Dist[N]) Dist[N] {
	return Map(Combine(a, b), func(p Pair[N, N]) N {
		return p.First + p.Second
	})
}

// Sub draws from a then b independently and subtracts the second from
// the first.
func Sub[N Number](a, b Dist[N]) Dist[N] {
	return Map(Combine(a, b), func(p Pair[N, N]) N {
		return p.First - p.Second
	})
}

// Mul draws from a then b independently and multiplies the results.
func Mul[N Number](a, b Dist[N]) Dist[N] {
	return Map(Combine(a, b), func(p Pair[N, N]) N {
		return p.First * p.Second
	})
}

// Scale multiplies every draw from d by the constant c.
func Scale[N Number](c N, d Dist[N]) Dist[N] {
	return Map(d, func(v N) N {
		return c * v
	})
}

// Shift adds the constant c to every draw from d.
func Shift[N Number](c N, d Dist[N]) Dist[N] {
	return Map(d, func(v N) N {
		return c + v
	})
}
