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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probekit/probe/pkg/dist"
	"github.com/probekit/probe/pkg/random"
)

func TestSampleNLength(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	d := dist.Uniform()
	for _, n := range []int{0, 1, 2, 17, 1000} {
		out, err := d.SampleN(n, random.NewSource(5))
		assert.NoError(err)
		assert.Len(out, n)
	}
}

func TestSampleNNegative(t *testing.T) {
	t.Parallel()

	_, err := dist.Uniform().SampleN(-1, random.NewSource(5))
	require.ErrorContains(t, err, "non-negative")
}

func TestPureConsumesNothing(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	src := &random.ScriptedSource{Units: []float64{0.5}}
	v, err := dist.Pure(42).Sample(src)
	assert.NoError(err)
	assert.Equal(42, v)
	assert.Empty(src.Trace)
}

func TestFunctorLaw(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	double := func(v float64) float64 { return 2 * v }
	d := dist.Normal(1, 2)

	// Mapping must consume exactly the same randomness as the
	// underlying draw, so two equal-seed sources stay in lockstep.
	mapped, err := dist.Map(d, double).Sample(random.NewSource(77))
	assert.NoError(err)

	plain, err := d.Sample(random.NewSource(77))
	assert.NoError(err)

	assert.Equal(double(plain), mapped)
}

func TestCombineDrawOrder(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	src := &random.ScriptedSource{Units: []float64{0.25, 0.75}}
	p, err := dist.Combine(dist.Uniform(), dist.StandardNormal()).Sample(src)
	assert.NoError(err)

	assert.Equal(0.25, p.First)
	assert.Equal(0.75, p.Second)
	assert.Equal([]string{"uniform_unit", "standard_normal"}, src.Trace)
}

func TestBindDrawOrder(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	src := &random.ScriptedSource{Units: []float64{0.5, 0.125}}

	var seen float64
	d := dist.Bind(dist.Uniform(), func(v float64) dist.Dist[float64] {
		seen = v
		return dist.StandardNormal()
	})

	v, err := d.Sample(src)
	assert.NoError(err)
	assert.Equal(0.5, seen)
	assert.Equal(0.125, v)
	assert.Equal([]string{"uniform_unit", "standard_normal"}, src.Trace)
}

func TestLiftInterleaving(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	src := &random.ScriptedSource{Units: []float64{0.1, 0.2}}

	var events []string
	record := func(name string) dist.Dist[struct{}] {
		return dist.Lift(func() struct{} {
			events = append(events, name)
			return struct{}{}
		})
	}

	chain := dist.Bind(dist.Uniform(), func(float64) dist.Dist[float64] {
		return dist.Bind(record("between"), func(struct{}) dist.Dist[float64] {
			return dist.Uniform()
		})
	})

	_, err := chain.Sample(src)
	assert.NoError(err)
	assert.Equal([]string{"between"}, events)
	assert.Equal([]string{"uniform_unit", "uniform_unit"}, src.Trace)
}

func TestSampleReexecutes(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	src := random.NewSource(3)
	d := dist.Uniform()

	first, err := d.Sample(src)
	assert.NoError(err)
	second, err := d.Sample(src)
	assert.NoError(err)

	// No caching: the second call advances the source.
	assert.NotEqual(first, second)
}

func TestNumericLifting(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	src := &random.ScriptedSource{Units: []float64{0.25, 0.5}}
	sum, err := dist.Add(dist.Uniform(), dist.Uniform()).Sample(src)
	assert.NoError(err)
	assert.Equal(0.75, sum)

	src = &random.ScriptedSource{Units: []float64{0.75, 0.5}}
	diff, err := dist.Sub(dist.Uniform(), dist.Uniform()).Sample(src)
	assert.NoError(err)
	assert.Equal(0.25, diff)

	src = &random.ScriptedSource{Units: []float64{0.5, 0.5}}
	prod, err := dist.Mul(dist.Uniform(), dist.Uniform()).Sample(src)
	assert.NoError(err)
	assert.Equal(0.25, prod)

	src = &random.ScriptedSource{Units: []float64{0.5}}
	scaled, err := dist.Scale(4.0, dist.Uniform()).Sample(src)
	assert.NoError(err)
	assert.Equal(2.0, scaled)

	src = &random.ScriptedSource{Units: []float64{0.5}}
	shifted, err := dist.Shift(1.0, dist.Uniform()).Sample(src)
	assert.NoError(err)
	assert.Equal(1.5, shifted)
}

func TestDistReusableAcrossSources(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	d := dist.Normal(0, 1)

	a, err := d.Sample(random.NewSource(1))
	assert.NoError(err)
	b, err := d.Sample(random.NewSource(1))
	assert.NoError(err)
	c, err := d.Sample(random.NewSource(2))
	assert.NoError(err)

	assert.Equal(a, b)
	assert.NotEqual(a, c)
}
