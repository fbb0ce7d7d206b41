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

package batch_test

import (
	"context"

	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/probekit/probe/pkg/batch"
	"github.com/probekit/probe/pkg/dist"
	"github.com/probekit/probe/pkg/random"
)

func TestOne(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	v, err := batch.One(dist.UniformRange(5, 6), random.NewSource(1))
	assert.NoError(err)
	assert.GreaterOrEqual(v, 5.0)
	assert.LessOrEqual(v, 6.0)
}

func TestNMatchesSampleN(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	d := dist.Normal(0, 1)

	fromBatch, err := batch.N(100, d, random.NewSource(2))
	assert.NoError(err)

	direct, err := d.SampleN(100, random.NewSource(2))
	assert.NoError(err)

	assert.Empty(cmp.Diff(direct, fromBatch))
}

func TestParallelDeterminism(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	d := dist.Gamma(2, 3)

	first, err := batch.Parallel(context.Background(), 1000, d, 42, 4)
	assert.NoError(err)
	assert.Len(first, 1000)

	second, err := batch.Parallel(context.Background(), 1000, d, 42, 4)
	assert.NoError(err)

	assert.Empty(cmp.Diff(first, second))
}

func TestParallelArgumentChecks(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	d := dist.Uniform()

	_, err := batch.Parallel(context.Background(), -1, d, 1, 2)
	assert.ErrorContains(err, "non-negative")

	_, err = batch.Parallel(context.Background(), 10, d, 1, 0)
	assert.ErrorContains(err, "worker count")

	out, err := batch.Parallel(context.Background(), 0, d, 1, 2)
	assert.NoError(err)
	assert.Empty(out)
}

func TestParallelMoreWorkersThanDraws(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	out, err := batch.Parallel(context.Background(), 3, dist.Uniform(), 7, 16)
	assert.NoError(err)
	assert.Len(out, 3)
}

func TestParallelPropagatesDrawErrors(t *testing.T) {
	t.Parallel()

	degenerate := dist.Categorical([]float64{0, 0})
	_, err := batch.Parallel(context.Background(), 64, degenerate, 3, 4)
	require.ErrorIs(t, err, dist.ErrInvalidProbabilityVector)
}
