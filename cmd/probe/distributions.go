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

package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/probekit/probe/pkg/dist"
)

// parseDistribution resolves a CLI distribution name and its positional
// parameters to a float64-valued distribution. Integer-valued
// distributions are widened so every choice feeds the same summary
// pipeline.
func parseDistribution(name string, params []float64) (dist.Dist[float64], error) {
	p := func(i int) float64 {
		if i < len(params) {
			return params[i]
		}
		return 0
	}
	need := func(n int) error {
		if len(params) != n {
			return errors.Errorf("distribution %s takes %d parameters, got %d", name, n, len(params))
		}
		return nil
	}
	asFloat := func(d dist.Dist[int]) dist.Dist[float64] {
		return dist.Map(d, func(v int) float64 { return float64(v) })
	}

	switch strings.ToLower(name) {
	case "uniform":
		if len(params) == 0 {
			return dist.Uniform(), nil
		}
		if err := need(2); err != nil {
			return dist.Dist[float64]{}, err
		}
		return dist.UniformRange(p(0), p(1)), nil
	case "normal":
		return dist.Normal(p(0), p(1)), need(2)
	case "lognormal":
		return dist.LogNormal(p(0), p(1)), need(2)
	case "laplace":
		return dist.Laplace(p(0), p(1)), need(2)
	case "weibull":
		return dist.Weibull(p(0), p(1)), need(2)
	case "exponential":
		return dist.Exponential(p(0)), need(1)
	case "gamma":
		return dist.Gamma(p(0), p(1)), need(2)
	case "inversegamma":
		return dist.InverseGamma(p(0), p(1)), need(2)
	case "chisquare":
		return dist.ChiSquare(p(0)), need(1)
	case "normalgamma":
		return dist.NormalGamma(p(0), p(1), p(2), p(3)), need(4)
	case "beta":
		return dist.Beta(p(0), p(1)), need(2)
	case "pareto":
		return dist.Pareto(p(0), p(1)), need(2)
	case "gstudent":
		return dist.GStudent(p(0), p(1), p(2)), need(3)
	case "student":
		return dist.Student(p(0)), need(1)
	case "inversegaussian":
		return dist.InverseGaussian(p(0), p(1)), need(2)
	case "bernoulli":
		return asFloat(dist.Map(dist.Bernoulli(p(0)), func(hit bool) int {
			if hit {
				return 1
			}
			return 0
		})), need(1)
	case "binomial":
		return asFloat(dist.Binomial(int(p(0)), p(1))), need(2)
	case "negativebinomial":
		return asFloat(dist.NegativeBinomial(p(0), p(1))), need(2)
	case "poisson":
		return asFloat(dist.PoissonCached(p(0))), need(1)
	case "zipf":
		return asFloat(dist.Zipf(p(0))), need(1)
	default:
		return dist.Dist[float64]{}, errors.Errorf("unsupported distribution: %s", name)
	}
}
