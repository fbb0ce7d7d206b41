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

// Package crp implements the Chinese Restaurant Process, a sequential
// stochastic partition generator. Unlike the stateless distributions in
// pkg/dist, seating decisions depend on all earlier ones; the evolving
// table occupancy never escapes a single draw.
package crp

import (
	"github.com/pkg/errors"

	"github.com/probekit/probe/pkg/dist"
	"github.com/probekit/probe/pkg/random"
)

// New returns the partition distribution over the given number of
// customers with concentration a > 0. Each draw seats customers one by
// one: customer i joins table j with weight counts[j]/(i-1+a) or opens
// a new table with weight a/(i-1+a). A new table's id is always the
// current table count, so ids are dense, monotonically assigned and
// never reused.
//
// The result lists table occupancy counts ordered by table id, which is
// table creation order. Its length is the final table count (at most
// customers) and its sum is exactly customers.
func New(a float64, customers int) dist.Dist[[]int] {
	return dist.New(func(src random.Source) ([]int, error) {
		if customers < 1 {
			return nil, errors.Errorf("customer count must be at least 1, got %d", customers)
		}

		// Customer 0 always opens table 0.
		counts := []int{1}

		for i := 1; i < customers; i++ {
			k := len(counts)
			denom := float64(i-1) + a

			weights := make([]float64, k+1)
			for j, c := range counts {
				weights[j] = float64(c) / denom
			}
			weights[k] = a / denom

			idx, err := dist.Categorical(weights).Sample(src)
			if err != nil {
				return nil, errors.Wrapf(err, "seating customer %d", i)
			}

			if idx == k {
				counts = append(counts, 1)
			} else {
				counts[idx]++
			}
		}

		return counts, nil
	})
}
