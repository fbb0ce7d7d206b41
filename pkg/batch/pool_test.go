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

package batch

import (
	"context"
	"testing"
	"time"

	"github.com/probekit/probe/pkg/dist"
	"github.com/probekit/probe/pkg/random"
)

func TestPoolRunsSamplingJobs(t *testing.T) {
	t.Parallel()

	pool := NewPool(2)
	defer pool.Close()

	src := random.NewSource(1)
	ch := pool.Send(context.Background(), func(context.Context) (any, error) {
		return dist.Uniform().SampleN(10, src)
	})

	result := <-ch
	pool.Release(ch)

	out, err := result.Get()
	if err != nil {
		t.Fatalf("job failed: %v", err)
	}
	if got := len(out.([]float64)); got != 10 {
		t.Errorf("expected 10 draws, got %d", got)
	}
}

func TestPoolPropagatesJobError(t *testing.T) {
	t.Parallel()

	pool := NewPool(1)
	defer pool.Close()

	src := random.NewSource(2)
	ch := pool.Send(context.Background(), func(context.Context) (any, error) {
		return dist.Categorical(nil).Sample(src)
	})

	result := <-ch
	pool.Release(ch)

	if result.IsOk() {
		t.Error("expected an error result for a degenerate weight vector")
	}
}

func TestPoolClosedSend(t *testing.T) {
	t.Parallel()

	pool := NewPool(1)
	if err := pool.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	ch := pool.Send(context.Background(), func(context.Context) (any, error) {
		t.Error("job must not run on a closed pool")
		return nil, nil
	})

	result := <-ch
	if result.IsOk() {
		t.Error("expected an error result from a closed pool")
	}
}

func TestPoolCancelledContext(t *testing.T) {
	t.Parallel()

	pool := NewPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A worker may or may not pick the job up before noticing the
	// cancellation; either way the send must not block, and a result
	// is not guaranteed to arrive.
	ch := pool.Send(ctx, func(context.Context) (any, error) {
		return nil, ctx.Err()
	})

	select {
	case <-ch:
	case <-time.After(time.Second):
	}
	pool.Release(ch)
}

func TestPoolAbandonedChannelNotRecycled(t *testing.T) {
	t.Parallel()

	pool := NewPool(1)
	defer pool.Close()

	// Give up on a job while it is still running. Its channel must not
	// be recycled, or the stale result would be delivered to the next
	// caller instead of that caller's own.
	gate := make(chan struct{})
	abandoned := pool.Send(context.Background(), func(context.Context) (any, error) {
		<-gate
		return "stale", nil
	})
	pool.Release(abandoned)
	close(gate)

	ch := pool.Send(context.Background(), func(context.Context) (any, error) {
		return "fresh", nil
	})
	result := <-ch
	pool.Release(ch)

	v, err := result.Get()
	if err != nil {
		t.Fatalf("job failed: %v", err)
	}
	if v != "fresh" {
		t.Errorf("expected fresh result, got %v", v)
	}
}

func TestPoolDoubleClose(t *testing.T) {
	t.Parallel()

	pool := NewPool(1)
	if err := pool.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}
