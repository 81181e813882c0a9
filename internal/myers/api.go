// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myers

import "znkr.io/editscript/internal/editgraph"

// Diff compares the contents of x and y and returns the edit script that transforms x into y.
func Diff[T comparable](x, y []T) []editgraph.Step {
	return DiffFunc(x, y, func(a, b T) bool { return a == b })
}

// DiffFunc compares the contents of x and y using eq and returns the edit script that transforms x
// into y.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) []editgraph.Step {
	var m myers[T]
	m.init(x, y, eq)
	m.explore()
	return m.trace.Backtrace(m.sink(), editgraph.Vertex{}, endpoint)
}

// endpoint returns where e ends. Edges are recorded after following the snake.
func endpoint(e *editgraph.Edge) editgraph.Vertex {
	return e.To
}
