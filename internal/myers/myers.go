// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package myers

import (
	"math"

	"znkr.io/editscript/internal/editgraph"
)

type myers[T any] struct {
	// Inputs to compare.
	x, y []T
	eq   func(a, b T) bool

	// The v-array stores the endpoint of the furthest reaching d-path in diagonal k in v[v0+k]
	// where v0 is the offset that translates k in [-N-M, N+M] to k0 = v0+k in [0, 2*(N+M)]. The
	// endpoints only store the s-coordinate since t = s - k.
	v  []int
	v0 int

	// All explored edges in the order they were discovered.
	trace editgraph.Trace
}

func (m *myers[T]) init(x, y []T, eq func(a, b T) bool) {
	diagonals := len(x) + len(y)
	if diagonals > (math.MaxInt-1)/2 {
		panic("inputs are too large")
	}
	m.x, m.y = x, y
	m.eq = eq
	m.v = make([]int, 2*diagonals+1)
	m.v0 = diagonals
}

func (m *myers[T]) sink() editgraph.Vertex {
	return editgraph.Vertex{X: len(m.x), Y: len(m.y)}
}

// explore searches for the furthest reaching d-paths for increasing d until one of them reaches
// the sink and records every d-path it finds in the trace.
func (m *myers[T]) explore() {
	x, y := m.x, m.y
	N, M := len(x), len(y)
	v, v0 := m.v, m.v0

	// We know that there's a path with d = N+M (delete everything, then insert everything), so the
	// loop always terminates with a return.
	for d := 0; d <= N+M; d++ {
		// The v-array contains the endpoints for the furthest reaching (d-1)-path in elements
		// v[-d+1], v[-d+3], ..., v[d-1]. Lemma 1 tells us that they are disjoint from the ones
		// we're writing here, so it's fine to update the array in place.
		for k := -d; k <= d; k += 2 {
			k0 := k + v0 // k as an index into v

			// Find the endpoint after the horizontal or vertical edge according to Lemma 2.
			var s int
			var from editgraph.Vertex
			var step editgraph.Step
			switch {
			case d == 0:
				// The 0-path starts at the origin without a non-diagonal edge.
				step = editgraph.SameStep()
			case k == -d || k != d && v[k0-1] < v[k0+1]:
				// A vertical edge from diagonal k+1, that is an insertion of y[t-1]. At the lower
				// border there's no diagonal k-1. Using < prefers the insertion if both edges end
				// at the same s.
				s = v[k0+1]
				from = editgraph.Vertex{X: s, Y: s - k - 1}
				step = editgraph.InsertStep(s-k-1, max(s-1, 0))
			default:
				// A horizontal edge from diagonal k-1, that is a deletion of x[s-1].
				s = v[k0-1] + 1
				from = editgraph.Vertex{X: s - 1, Y: s - k}
				step = editgraph.DeleteStep(s - 1)
			}
			t := s - k

			// Then follow the diagonals as long as possible. Paths may leave the edit graph on the
			// right or bottom border. Those never reach the sink, the bounds checks only prevent
			// out of range reads.
			s0 := s
			for s < N && t < M && m.eq(x[s], y[t]) {
				s++
				t++
			}

			m.trace.Append(editgraph.Edge{
				D:     d,
				From:  from,
				To:    editgraph.Vertex{X: s, Y: t},
				Step:  step,
				Snake: s - s0,
			})
			if s == N && t == M {
				return
			}

			// Then store the endpoint of the furthest reaching d-path.
			v[k0] = s
		}
	}
	panic("never reached")
}
