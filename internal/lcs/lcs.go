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

// Package lcs computes the length of a longest common subsequence with the textbook dynamic
// programming algorithm.
//
// It's quadratic in time and is only meant as an independent reference for the edit distance
// found by the graph searches: For inputs of length N and M the minimal number of edits is
// N + M - 2*Length(x, y).
package lcs

// Length returns the length of a longest common subsequence of x and y.
func Length[T comparable](x, y []T) int {
	return LengthFunc(x, y, func(a, b T) bool { return a == b })
}

// LengthFunc returns the length of a longest common subsequence of x and y using eq for
// comparisons.
func LengthFunc[T any](x, y []T, eq func(a, b T) bool) int {
	// Only two rows of the table are needed: row s depends on row s-1 only. Both rows have an
	// extra 0th column to avoid bounds checks.
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for s := range x {
		for t := range y {
			switch {
			case eq(x[s], y[t]):
				cur[t+1] = prev[t] + 1
			case prev[t+1] >= cur[t]:
				cur[t+1] = prev[t+1]
			default:
				cur[t+1] = cur[t]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

// Distance returns the minimal number of insertions and deletions needed to transform x into y.
func Distance[T comparable](x, y []T) int {
	return len(x) + len(y) - 2*Length(x, y)
}

// DistanceFunc is like Distance but uses eq for comparisons.
func DistanceFunc[T any](x, y []T, eq func(a, b T) bool) int {
	return len(x) + len(y) - 2*LengthFunc(x, y, eq)
}
