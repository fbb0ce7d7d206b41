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

import "math"

// AliasTable is a condensed lookup structure for O(1) draws from a fixed
// discrete distribution over 0..n-1, built with Walker's alias method.
// A single unit-uniform variate selects both the bucket and the
// accept/alias branch.
type AliasTable struct {
	prob  []float64
	alias []int
}

// Len returns the size of the truncated support.
func (t *AliasTable) Len() int {
	return len(t.prob)
}

// Lookup maps one unit-uniform variate to an outcome.
func (t *AliasTable) Lookup(u float64) int {
	scaled := u * float64(len(t.prob))
	i := int(scaled)
	if i >= len(t.prob) {
		i = len(t.prob) - 1
	}

	if scaled-float64(i) < t.prob[i] {
		return i
	}
	return t.alias[i]
}

// BuildAliasTable precomputes the lookup table for a Poisson
// distribution with the given rate. The support is truncated once the
// remaining tail mass is negligible. rate must be positive.
func BuildAliasTable(rate float64) *AliasTable {
	return newAliasTable(poissonPMF(rate))
}

// poissonPMF evaluates the Poisson pmf over a truncated support. The
// terms are computed in log space so large rates do not underflow the
// e^-rate factor.
func poissonPMF(rate float64) []float64 {
	upper := int(rate+10*math.Sqrt(rate+1)) + 16
	logRate := math.Log(rate)

	pmf := make([]float64, upper+1)
	for k := range pmf {
		lg, _ := math.Lgamma(float64(k + 1))
		pmf[k] = math.Exp(float64(k)*logRate - rate - lg)
	}
	return pmf
}

func newAliasTable(weights []float64) *AliasTable {
	n := len(weights)

	var total float64
	for _, w := range weights {
		total += w
	}

	t := &AliasTable{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}

	// Scale so the average bucket holds exactly 1, then split the
	// buckets into under- and overfull and pair them off.
	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / total
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.prob[s] = scaled[s]
		t.alias[s] = l

		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Leftovers are within rounding error of a full bucket.
	for _, i := range large {
		t.prob[i] = 1
		t.alias[i] = i
	}
	for _, i := range small {
		t.prob[i] = 1
		t.alias[i] = i
	}

	return t
}
