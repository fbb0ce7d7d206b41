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
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

const channelSizeMultiplier = 4

type (
	// Job is a sampling task executed on a pool worker. The job owns
	// its source for the duration of the call.
	Job func(context.Context) (any, error)

	item struct {
		ctx context.Context
		ch  chan mo.Result[any]
		job Job
	}

	// Pool runs sampling jobs on a fixed set of workers. It is meant
	// for interleaving several long-running batches, e.g. parameter
	// sweeps, where each job drives its own Source.
	Pool struct {
		chPool sync.Pool
		ch     atomic.Pointer[chan item]
		logger *zap.Logger
		mu     sync.RWMutex
		closed atomic.Bool
		// owed tracks result channels whose job has been queued but
		// whose result has not been delivered yet. Release must not
		// recycle such a channel: a late delivery would hand the stale
		// result to an unrelated Send caller.
		owed sync.Map
	}
)

// NewPool starts count workers. count must be at least 1.
func NewPool(count int) *Pool {
	if count < 1 {
		panic("count must be at least 1")
	}

	logger := zap.L().Named("batchpool")
	logger.Debug("creating sampling pool",
		zap.Int("worker_count", count),
		zap.Int("channel_size", count*channelSizeMultiplier),
	)

	ch := make(chan item, count*channelSizeMultiplier)

	p := &Pool{
		chPool: sync.Pool{
			New: func() any {
				return make(chan mo.Result[any], 1)
			},
		},
		logger: logger,
	}
	p.ch.Store(&ch)

	for i := 0; i < count; i++ {
		workerID := i
		go func() {
			logger.Debug("worker started", zap.Int("worker_id", workerID))
			for it := range ch {
				p.execute(it)
			}
			logger.Debug("worker shutting down", zap.Int("worker_id", workerID))
		}()
	}

	return p
}

func (p *Pool) execute(it item) {
	v, err := it.job(it.ctx)

	result := mo.Err[any](err)
	if err == nil {
		result = mo.Ok(v)
	}

	// The result channel is buffered, but if the receiver gave up we
	// must not wedge the worker. An undelivered result leaves the
	// channel marked as owed, so Release drops it instead of
	// recycling it.
	if it.ctx != nil {
		select {
		case it.ch <- result:
			p.owed.Delete(it.ch)
		case <-it.ctx.Done():
		}
	} else {
		it.ch <- result
		p.owed.Delete(it.ch)
	}
}

// Send queues a job and returns the channel its result will arrive on.
// Return the channel with Release once the result has been read.
func (p *Pool) Send(ctx context.Context, job Job) chan mo.Result[any] {
	if job == nil {
		panic("job must not be nil")
	}

	ch := p.chPool.Get().(chan mo.Result[any])

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		p.logger.Warn("attempt to send to closed pool")
		ch <- mo.Err[any](errors.New("pool is closed"))
		return ch
	}

	sendCh := p.ch.Load()
	if sendCh == nil {
		ch <- mo.Err[any](errors.New("pool channel is nil"))
		return ch
	}

	// Marked before queueing so the mark is always in place by the
	// time a worker delivers.
	p.owed.Store(ch, struct{}{})

	it := item{ctx: ctx, ch: ch, job: job}
	if ctx == nil {
		*sendCh <- it
	} else {
		select {
		case *sendCh <- it:
		case <-ctx.Done():
			p.owed.Delete(ch)
			ch <- mo.Err[any](ctx.Err())
		}
	}

	return ch
}

// Release puts a drained result channel back for reuse. A channel
// whose job has not delivered yet is dropped instead of pooled, so a
// late result can never reach a later Send caller.
func (p *Pool) Release(ch chan mo.Result[any]) {
	if ch == nil {
		return
	}

	if _, undelivered := p.owed.LoadAndDelete(ch); undelivered {
		return
	}

	select {
	case <-ch:
	default:
	}

	p.chPool.Put(ch)
}

func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return nil
	}

	p.closed.Store(true)
	if ch := p.ch.Swap(nil); ch != nil {
		close(*ch)
	}

	p.logger.Debug("pool closed")
	return nil
}
