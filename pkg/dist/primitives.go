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
	"github.com/probekit/probe/pkg/random"
)

// Uniform yields a variate in [0, 1); one primitive draw.
func Uniform() Dist[float64] {
	return New(func(src random.Source) (float64, error) {
		return src.UniformUnit(), nil
	})
}

// UniformRange yields a variate in [lo, hi]; one primitive draw.
func UniformRange(lo, hi float64) Dist[float64] {
	return New(func(src random.Source) (float64, error) {
		return src.UniformRange(lo, hi), nil
	})
}

// StandardNormal yields a standard normal deviate.
func StandardNormal() Dist[float64] {
	return New(func(src random.Source) (float64, error) {
		return src.StandardNormal(), nil
	})
}

// Normal yields a normal deviate with the given mean and standard
// deviation.
func Normal(mean, sd float64) Dist[float64] {
	return Map(StandardNormal(), func(z float64) float64 {
		return mean + sd*z
	})
}

// Gamma yields a gamma deviate with the given shape and scale. The
// underlying algorithm consumes a bounded, algorithm-dependent number
// of primitive draws.
func Gamma(shape, scale float64) Dist[float64] {
	return New(func(src random.Source) (float64, error) {
		return src.Gamma(shape, scale), nil
	})
}

// ChiSquare yields a chi-squared deviate with k degrees of freedom.
func ChiSquare(k float64) Dist[float64] {
	return Gamma(k/2, 2)
}

// Exponential yields an exponential deviate with the given rate.
func Exponential(rate float64) Dist[float64] {
	return Gamma(1, 1/rate)
}
