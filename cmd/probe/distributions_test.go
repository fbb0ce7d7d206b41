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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probekit/probe/pkg/random"
)

func TestParseDistribution(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	for _, tc := range []struct {
		name   string
		params []float64
	}{
		{name: "uniform"},
		{name: "uniform", params: []float64{-1, 1}},
		{name: "Normal", params: []float64{0, 1}},
		{name: "gamma", params: []float64{2, 3}},
		{name: "beta", params: []float64{2, 3}},
		{name: "poisson", params: []float64{4}},
		{name: "zipf", params: []float64{2}},
		{name: "bernoulli", params: []float64{0.5}},
		{name: "normalgamma", params: []float64{0, 1, 2, 1}},
		{name: "student", params: []float64{5}},
	} {
		d, err := parseDistribution(tc.name, tc.params)
		assert.NoError(err, tc.name)

		v, err := d.Sample(random.NewSource(1))
		assert.NoError(err, tc.name)
		assert.False(v != v, "NaN draw from %s", tc.name)
	}
}

func TestParseDistributionErrors(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	_, err := parseDistribution("nosuch", nil)
	assert.ErrorContains(err, "unsupported distribution")

	_, err = parseDistribution("normal", []float64{1})
	assert.ErrorContains(err, "takes 2 parameters")

	_, err = parseDistribution("uniform", []float64{1, 2, 3})
	assert.ErrorContains(err, "parameters")
}

func TestParseSeed(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	seed, err := parseSeed("1234")
	assert.NoError(err)
	assert.Equal(uint64(1234), seed)

	_, err = parseSeed("not-a-number")
	assert.Error(err)

	first, err := parseSeed("random")
	assert.NoError(err)
	second, err := parseSeed("random")
	assert.NoError(err)
	assert.NotEqual(first, second)
}
