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

// Package editgraph contains the vocabulary shared by the edit script algorithms: vertices in the
// edit graph, edit steps, and the exploration trace that connects the forward search with the
// backtrace.
//
// The edit graph for x = "ABCABBA" and y = "CBABAC" looks like this (see the package
// documentation of internal/myers for a longer explanation):
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A step to the right deletes an element of x, a step down inserts an element of y and a diagonal
// step is a match that costs nothing.
package editgraph

import (
	"fmt"
	"slices"
)

// Op describes the kind of an edit step.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Same         Op = iota // No-op, a diagonal move. Never part of a returned script.
	Insert                 // Insert y[From] after x[To]
	Delete                 // Delete x[At]
	InsertToHead           // Insert y[From] at the head, only used when x is empty
)

// Step is a single step of an edit script. Which fields are set depends on Op:
//
//   - Insert: From is an index into y, To is the index into x the element follows (0 for the head).
//   - Delete: At is an index into x.
//   - InsertToHead: From is an index into y.
//   - Same: no field is set.
type Step struct {
	Op       Op
	At       int
	From, To int
}

// InsertStep returns an insertion of y[from] after x[to].
func InsertStep(from, to int) Step { return Step{Op: Insert, From: from, To: to} }

// DeleteStep returns a deletion of x[at].
func DeleteStep(at int) Step { return Step{Op: Delete, At: at} }

// InsertToHeadStep returns an insertion of y[from] at the head of the output.
func InsertToHeadStep(from int) Step { return Step{Op: InsertToHead, From: from} }

// SameStep returns the no-op marker for diagonal moves.
func SameStep() Step { return Step{Op: Same} }

func (s Step) String() string {
	switch s.Op {
	case Same:
		return "S"
	case Insert:
		return fmt.Sprintf("I(%d, %d)", s.From, s.To)
	case Delete:
		return fmt.Sprintf("D(%d)", s.At)
	case InsertToHead:
		return fmt.Sprintf("IH(%d)", s.From)
	default:
		panic(fmt.Sprintf("unknown op: %v", s.Op))
	}
}

// Vertex is a point in the edit graph. X is an offset into x and Y an offset into y.
type Vertex struct {
	X, Y int
}

// Offset moves v by n steps along its diagonal. A negative n moves towards the origin.
func (v Vertex) Offset(n int) Vertex {
	return Vertex{v.X + n, v.Y + n}
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Edge is a single exploration step recorded in a Trace.
type Edge struct {
	D     int    // Cost (Myers) or iteration (Wu) at which the edge was discovered.
	From  Vertex // Endpoint of the path the edge extends.
	To    Vertex // Endpoint of the edge, before or after the snake depending on the algorithm.
	Step  Step   // Script step for the non-diagonal move.
	Snake int    // Number of diagonal moves after the non-diagonal move.
}

// Trace is the append-only record of all edges explored during a search.
type Trace struct {
	edges []Edge
}

// Append records e.
func (t *Trace) Append(e Edge) {
	t.edges = append(t.edges, e)
}

// Len returns the number of recorded edges.
func (t *Trace) Len() int { return len(t.edges) }

// Edge returns the i-th recorded edge.
func (t *Trace) Edge(i int) Edge { return t.edges[i] }

// Backtrace reconstructs the edit script for the path from origin to sink.
//
// The trace is scanned from the most recently discovered edge to the first one. An edge is on the
// path if end(e) is the vertex we're currently looking for, in which case its step is collected
// and the search continues with e.From. end abstracts over where an algorithm records the endpoint
// of an edge, it must return the endpoint after following the snake.
//
// Backtrace panics if the scan doesn't arrive at origin. That is always a bug in the search.
func (t *Trace) Backtrace(sink, origin Vertex, end func(e *Edge) Vertex) []Step {
	var steps []Step
	next := sink
	for i := len(t.edges) - 1; i >= 0 && next != origin; i-- {
		e := &t.edges[i]
		if end(e) != next {
			continue
		}
		if e.Step.Op != Same {
			steps = append(steps, e.Step)
		}
		next = e.From
	}
	if next != origin {
		panic(fmt.Sprintf("backtrace ended at %v, want %v (sink %v, %d edges)", next, origin, sink, len(t.edges)))
	}
	slices.Reverse(steps)
	return steps
}
