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

package editscript

import (
	"fmt"

	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/editgraph"
	"znkr.io/editscript/internal/myers"
	"znkr.io/editscript/internal/rvecs"
	"znkr.io/editscript/internal/wu"
)

// Op describes the kind of an edit step.
type Op = editgraph.Op

const (
	Insert       = editgraph.Insert       // Insert y[From] after x[To]
	Delete       = editgraph.Delete       // Delete x[At]
	InsertToHead = editgraph.InsertToHead // Insert y[From] at the head of an empty x
)

// Step describes a single step of an edit script.
//
//   - For Insert, From is the index of the inserted element in y and To is the index of the
//     element in x that it follows. An insertion at the head of x has To = 0, just like an
//     insertion after x[0]. Use the order of steps in the script to tell them apart.
//   - For Delete, At is the index of the deleted element in x.
//   - For InsertToHead, From is the index of the inserted element in y. These steps are only
//     produced by [Wu] if x is empty, in which case y is inserted back to front.
//
// A step is printed as I(from, to), D(at), or IH(from).
type Step = editgraph.Step

// Diff compares the contents of x and y and returns a minimal edit script that transforms x into
// y. The script is ordered from the start of the inputs to their end.
//
// If x and y are identical, the output has length zero.
//
// The following option is supported: [editscript.Algorithm]
func Diff[T comparable](x, y []T, opts ...Option) []Step {
	cfg := config.FromOptions(opts, config.AlgorithmFlag)
	switch cfg.Algorithm {
	case config.AlgorithmWu:
		return wu.Diff(x, y)
	default:
		return myers.Diff(x, y)
	}
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns a
// minimal edit script that transforms x into y. eq is always called with an element of x as the
// first argument.
//
// If x and y are identical, the output has length zero.
//
// The following option is supported: [editscript.Algorithm]
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Step {
	cfg := config.FromOptions(opts, config.AlgorithmFlag)
	switch cfg.Algorithm {
	case config.AlgorithmWu:
		return wu.DiffFunc(x, y, eq)
	default:
		return myers.DiffFunc(x, y, eq)
	}
}

// Myers compares x and y with Myers' O(ND) algorithm where N = len(x) + len(y) and D is the number
// of steps in the result.
func Myers[T comparable](x, y []T) []Step {
	return myers.Diff(x, y)
}

// MyersFunc is like [Myers] but uses eq to compare elements.
func MyersFunc[T any](x, y []T, eq func(a, b T) bool) []Step {
	return myers.DiffFunc(x, y, eq)
}

// Wu compares x and y with Wu's O(NP) algorithm where N = max(len(x), len(y)) and P is the number
// of deletions in the result if x is the shorter input (insertions otherwise). It's considerably
// faster than [Myers] if the lengths of the inputs are similar.
//
// If x is empty, the result consists of [InsertToHead] steps for y in reverse order.
func Wu[T comparable](x, y []T) []Step {
	return wu.Diff(x, y)
}

// WuFunc is like [Wu] but uses eq to compare elements.
func WuFunc[T any](x, y []T, eq func(a, b T) bool) []Step {
	return wu.DiffFunc(x, y, eq)
}

// Apply applies script to x and returns the result. Inserted elements are taken from y.
//
// The order of steps in script doesn't matter. Apply returns an error if the script isn't valid
// for x and y: a step refers to an element that doesn't exist, an element is deleted or inserted
// more than once, or an element of x that is kept by the script doesn't match the element of y at
// the same position in the result.
func Apply[T comparable](x, y []T, script []Step) ([]T, error) {
	return ApplyFunc(x, y, script, func(a, b T) bool { return a == b })
}

// ApplyFunc is like [Apply] but uses eq to compare elements. eq is always called with an element
// of x as the first argument.
func ApplyFunc[T any](x, y []T, script []Step, eq func(a, b T) bool) ([]T, error) {
	rx, ry, err := rvecs.FromScript(script, len(x), len(y))
	if err != nil {
		return nil, fmt.Errorf("invalid edit script: %w", err)
	}
	out, err := rvecs.Apply(x, y, rx, ry, eq)
	if err != nil {
		return nil, fmt.Errorf("invalid edit script: %w", err)
	}
	return out, nil
}

// Distance returns the number of insertions and deletions in script.
func Distance(script []Step) int {
	n := 0
	for _, step := range script {
		switch step.Op {
		case Insert, Delete, InsertToHead:
			n++
		}
	}
	return n
}
