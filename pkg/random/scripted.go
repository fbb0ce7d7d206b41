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

// ScriptedSource replays fixed values and records every primitive call,
// so tests can pin exact draw sequences and verify consumption order.
// Unit-valued primitives consume from Units, integer-valued ones from
// Ints; both wrap around when exhausted. Not safe for concurrent use.
type ScriptedSource struct {
	Units []float64
	Ints  []int
	Trace []string

	unitIdx int
	intIdx  int
}

func (s *ScriptedSource) nextUnit(call string) float64 {
	if len(s.Units) == 0 {
		panic("scripted source has no unit values")
	}

	v := s.Units[s.unitIdx%len(s.Units)]
	s.unitIdx++
	s.Trace = append(s.Trace, call)
	return v
}

func (s *ScriptedSource) nextInt(call string) int {
	if len(s.Ints) == 0 {
		panic("scripted source has no int values")
	}

	v := s.Ints[s.intIdx%len(s.Ints)]
	s.intIdx++
	s.Trace = append(s.Trace, call)
	return v
}

func (s *ScriptedSource) UniformUnit() float64 {
	return s.nextUnit("uniform_unit")
}

// UniformRange maps the next scripted unit value onto [lo, hi].
func (s *ScriptedSource) UniformRange(lo, hi float64) float64 {
	return lo + s.nextUnit("uniform_range")*(hi-lo)
}

func (s *ScriptedSource) IntN(int) int {
	return s.nextInt("int_n")
}

// StandardNormal returns the next scripted unit value untransformed.
func (s *ScriptedSource) StandardNormal() float64 {
	return s.nextUnit("standard_normal")
}

// Gamma returns the next scripted unit value untransformed.
func (s *ScriptedSource) Gamma(_, _ float64) float64 {
	return s.nextUnit("gamma")
}

func (s *ScriptedSource) Poisson(*AliasTable) int {
	return s.nextInt("poisson")
}
