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
	"math"

	"go.uber.org/atomic"

	"github.com/probekit/probe/pkg/metrics"
	"github.com/probekit/probe/pkg/random"
)

// Zipf samples positive integers x with probability proportional to
// x^-a via Zipf-Mandelbrot rejection. a must be greater than 0 and not
// equal to 1; the rejection loop has no built-in abort and does not
// terminate for degenerate a near 1.
func Zipf(a float64) Dist[int] {
	return zipf(a, nil)
}

// ZipfWithStats is Zipf with a caller-owned counter incremented once
// per proposal, accepted or not, so harnesses can inspect how hard the
// rejection loop is working.
func ZipfWithStats(a float64, proposals *atomic.Uint64) Dist[int] {
	return zipf(a, proposals)
}

func zipf(a float64, proposals *atomic.Uint64) Dist[int] {
	b := math.Pow(2, a-1)

	return New(func(src random.Source) (int, error) {
		for {
			if proposals != nil {
				proposals.Inc()
			}

			u := src.UniformUnit()
			v := src.UniformUnit()

			x := math.Floor(math.Pow(u, -1/(a-1)))
			t := math.Pow(1+1/x, a-1)

			if v*x*(t-1)/(b-1) <= t/b {
				return int(x), nil
			}

			metrics.ZipfRejections.Inc()
		}
	})
}
