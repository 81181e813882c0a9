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

package wu

import "znkr.io/editscript/internal/editgraph"

// Diff compares the contents of x and y and returns the edit script that transforms x into y.
func Diff[T comparable](x, y []T) []editgraph.Step {
	return DiffFunc(x, y, func(a, b T) bool { return a == b })
}

// DiffFunc compares the contents of x and y using eq and returns the edit script that transforms x
// into y.
//
// If x is empty, the script inserts all elements of y at the head, starting with the last one.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) []editgraph.Step {
	// Handle trivial cases without doing anything extra.
	switch {
	case len(x) == 0 && len(y) == 0:
		return nil
	case len(x) == 0:
		steps := make([]editgraph.Step, 0, len(y))
		for t := len(y) - 1; t >= 0; t-- {
			steps = append(steps, editgraph.InsertToHeadStep(t))
		}
		return steps
	case len(y) == 0:
		steps := make([]editgraph.Step, 0, len(x))
		for s := range x {
			steps = append(steps, editgraph.DeleteStep(s))
		}
		return steps
	}

	var w wu[T]
	if len(x) > len(y) {
		// The search requires a to be the shorter input. Swapping x and y turns deletions into
		// insertions and vice versa, w.swapped takes care of that when creating steps.
		w.init(y, x, func(a, b T) bool { return eq(b, a) }, true)
	} else {
		w.init(x, y, eq, false)
	}
	w.explore()
	sink := editgraph.Vertex{X: len(w.a), Y: len(w.b)}
	return w.trace.Backtrace(sink, editgraph.Vertex{}, endpoint)
}

// endpoint returns where e ends. Edges are recorded before following the snake.
func endpoint(e *editgraph.Edge) editgraph.Vertex {
	return e.To.Offset(e.Snake)
}

type wu[T any] struct {
	// Inputs to compare, len(a) <= len(b).
	a, b []T
	eq   func(a, b T) bool

	// If set, a is the target and b the source of the edit script.
	swapped bool

	// fp stores the furthest reaching t-coordinate on diagonal k in fp[fp0+k] for k in [-N-1,
	// M+1]. The s-coordinate is s = t - k. A value of -1 means that the diagonal hasn't been
	// reached yet.
	fp  []int
	fp0 int

	// All evaluations of the recurrence in the order they were computed.
	trace editgraph.Trace
}

func (w *wu[T]) init(a, b []T, eq func(a, b T) bool, swapped bool) {
	w.a, w.b = a, b
	w.eq = eq
	w.swapped = swapped
	w.fp = make([]int, len(a)+len(b)+2)
	for i := range w.fp {
		w.fp[i] = -1
	}
	w.fp0 = len(a)
}

// explore runs the search until the sink is reached.
func (w *wu[T]) explore() {
	N, M := len(w.a), len(w.b)
	Δ := M - N

	// An optimal path has at most N deletions (delete everything, then insert everything), so
	// the loop always terminates with a return.
	for p := 0; p <= N; p++ {
		for k := -p; k < Δ; k++ {
			w.snake(p, k)
		}
		for k := Δ + p; k > Δ; k-- {
			w.snake(p, k)
		}
		w.snake(p, Δ)
		if w.fp[w.fp0+Δ] >= M {
			return
		}
	}
	panic("never reached")
}

// snake computes the furthest reaching endpoint on diagonal k in iteration p and records it.
func (w *wu[T]) snake(p, k int) {
	a, b := w.a, w.b
	N, M := len(a), len(b)
	fp := w.fp
	k0 := k + w.fp0 // k as an index into fp

	var t int
	var from editgraph.Vertex
	var step editgraph.Step
	switch {
	case p == 0 && k == 0:
		// The very first path starts at the origin without a non-diagonal edge.
		step = editgraph.SameStep()
	case k == -p:
		// The lowest diagonal has no neighbor below it, it can only be reached with a horizontal
		// edge from diagonal k+1. The check also guarantees that we never read below fp[0].
		t = fp[k0+1]
		from = editgraph.Vertex{X: t - k - 1, Y: t}
		step = w.deletion(t-k, t)
	case fp[k0-1]+1 >= fp[k0+1]:
		// A vertical edge from diagonal k-1. We prefer the vertical edge if both end on the same
		// point, that's consistent with internal/myers.
		t = fp[k0-1] + 1
		from = editgraph.Vertex{X: t - k, Y: t - 1}
		step = w.insertion(t-k, t)
	default:
		// A horizontal edge from diagonal k+1.
		t = fp[k0+1]
		from = editgraph.Vertex{X: t - k - 1, Y: t}
		step = w.deletion(t-k, t)
	}
	s := t - k
	to := editgraph.Vertex{X: s, Y: t}

	// Then follow the diagonals as long as possible. Paths that leave the edit graph never reach
	// the sink, the bounds checks only prevent out of range reads.
	for s < N && t < M && w.eq(a[s], b[t]) {
		s++
		t++
	}

	w.trace.Append(editgraph.Edge{
		D:     p,
		From:  from,
		To:    to,
		Step:  step,
		Snake: s - to.X,
	})
	fp[k0] = t
}

// insertion returns the step for the vertical edge from (s, t-1) to (s, t).
func (w *wu[T]) insertion(s, t int) editgraph.Step {
	if w.swapped {
		return editgraph.DeleteStep(t - 1)
	}
	return editgraph.InsertStep(t-1, max(s-1, 0))
}

// deletion returns the step for the horizontal edge from (s-1, t) to (s, t).
func (w *wu[T]) deletion(s, t int) editgraph.Step {
	if w.swapped {
		return editgraph.InsertStep(s-1, max(t-1, 0))
	}
	return editgraph.DeleteStep(s - 1)
}
