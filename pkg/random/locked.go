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

import "sync"

// LockedSource serializes access to an underlying Source so it can be
// shared between goroutines. Note that interleaving draws from several
// goroutines still destroys reproducibility of any single draw chain.
type LockedSource struct {
	src Source
	mu  sync.Mutex
}

func NewLocked(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func NewLockedSource(seed uint64) *LockedSource {
	return NewLocked(NewSource(seed))
}

func (l *LockedSource) UniformUnit() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.UniformUnit()
}

func (l *LockedSource) UniformRange(lo, hi float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.UniformRange(lo, hi)
}

func (l *LockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *LockedSource) StandardNormal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.StandardNormal()
}

func (l *LockedSource) Gamma(shape, scale float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Gamma(shape, scale)
}

func (l *LockedSource) Poisson(table *AliasTable) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Poisson(table)
}
