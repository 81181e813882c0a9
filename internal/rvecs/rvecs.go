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

// Package rvecs contains functions to work with result vectors, a representation of an edit script
// that marks every deleted element of x in rx and every inserted element of y in ry. Result vectors
// don't depend on the order of the steps in a script, which makes them the natural representation
// for applying and validating scripts.
package rvecs

import (
	"fmt"
	"strings"

	"znkr.io/editscript/internal/editgraph"
)

// Make allocates result vectors for inputs of length n and m. Both vectors have a border element
// at the end that is never set, this makes it easier to iterate over the results.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, n+m+2)
	rx = r[: n+1 : n+1]
	ry = r[n+1:]
	return
}

// FromScript translates script into result vectors for inputs of length n and m.
//
// It returns an error if a step references an element outside of the inputs, if an element is
// deleted or inserted twice, or if the number of elements left over in x and y doesn't match. The
// order of the steps isn't checked, see CheckOrder for that.
func FromScript(script []editgraph.Step, n, m int) (rx, ry []bool, err error) {
	rx, ry = Make(n, m)
	ndel, nins := 0, 0
	for i, step := range script {
		switch step.Op {
		case editgraph.Delete:
			if step.At < 0 || step.At >= n {
				return nil, nil, fmt.Errorf("step %d: %v: index out of range [0, %d)", i, step, n)
			}
			if rx[step.At] {
				return nil, nil, fmt.Errorf("step %d: %v: element deleted twice", i, step)
			}
			rx[step.At] = true
			ndel++
		case editgraph.Insert, editgraph.InsertToHead:
			if step.From < 0 || step.From >= m {
				return nil, nil, fmt.Errorf("step %d: %v: index out of range [0, %d)", i, step, m)
			}
			if step.Op == editgraph.Insert && (step.To < 0 || step.To > max(n-1, 0)) {
				return nil, nil, fmt.Errorf("step %d: %v: index out of range [0, %d]", i, step, max(n-1, 0))
			}
			if ry[step.From] {
				return nil, nil, fmt.Errorf("step %d: %v: element inserted twice", i, step)
			}
			ry[step.From] = true
			nins++
		default:
			return nil, nil, fmt.Errorf("step %d: unexpected op %v", i, step.Op)
		}
	}
	if n-ndel != m-nins {
		return nil, nil, fmt.Errorf("script keeps %d elements of x but %d elements of y", n-ndel, m-nins)
	}
	return rx, ry, nil
}

// CheckOrder returns an error unless script is ordered from the start of x and y to their end and
// every insertion's To is the element of x it follows at its position in the script (clamped to 0
// at the head).
//
// Insertions to the head are only used for an empty x and are not checked.
func CheckOrder(script []editgraph.Step) error {
	s, t := 0, 0 // current vertex in the edit graph
	for i, step := range script {
		switch step.Op {
		case editgraph.Delete:
			if step.At < s {
				return fmt.Errorf("step %d: %v: out of order, already at x[%d]", i, step, s)
			}
			t += step.At - s
			s = step.At + 1
		case editgraph.Insert:
			if step.From < t {
				return fmt.Errorf("step %d: %v: out of order, already at y[%d]", i, step, t)
			}
			s += step.From - t
			t = step.From + 1
			if want := max(s-1, 0); step.To != want {
				return fmt.Errorf("step %d: %v: insertion follows x[%d]", i, step, want)
			}
		case editgraph.InsertToHead:
		default:
			return fmt.Errorf("step %d: unexpected op %v", i, step.Op)
		}
	}
	return nil
}

// Render renders result vectors as a string with one character per edit: 'D' for a deletion, 'I'
// for an insertion and 'M' for a match. Deletions are rendered before insertions.
func Render(rx, ry []bool) string {
	var sb strings.Builder
	n, m := len(rx)-1, len(ry)-1
	for s, t := 0, 0; s < n || t < m; {
		if rx[s] {
			sb.WriteRune('D')
			s++
		} else if ry[t] {
			sb.WriteRune('I')
			t++
		} else {
			sb.WriteRune('M')
			s++
			t++
		}
	}
	return sb.String()
}

// Apply reconstructs y from x and the result vectors rx and ry. Every element that isn't deleted
// from x must be equal to the element of y it's kept as, otherwise Apply returns an error.
//
// rx and ry must be consistent, i.e., they keep the same number of elements of x and y as
// guaranteed by FromScript.
func Apply[T any](x, y []T, rx, ry []bool, eq func(a, b T) bool) ([]T, error) {
	n, m := len(x), len(y)
	out := make([]T, 0, m)
	for s, t := 0, 0; s < n || t < m; {
		switch {
		case rx[s]:
			s++
		case ry[t]:
			out = append(out, y[t])
			t++
		default:
			if !eq(x[s], y[t]) {
				return nil, fmt.Errorf("kept element x[%d] doesn't match y[%d]", s, t)
			}
			out = append(out, x[s])
			s++
			t++
		}
	}
	return out, nil
}
