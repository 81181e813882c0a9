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

// Package editscript computes minimal edit scripts between two slices.
//
// An edit script is a sequence of insertions and deletions that transforms a source slice x into a
// target slice y. Every script returned by this package is minimal: Its length is
// len(x) + len(y) - 2*L where L is the length of a longest common subsequence of x and y.
//
// Two algorithms are available: [Myers] explores the edit graph by increasing edit distance and
// [Wu] restricts the search to a band of diagonals determined by the difference in length of the
// inputs. [Diff] and [DiffFunc] use Myers' algorithm unless configured otherwise with [Algorithm].
// Both algorithms need O(N+M) space for their search tables plus O(ND) space for the trace of
// explored edges that is used to reconstruct the script.
//
// Use [Apply] to apply a script and [Distance] to count its steps.
//
// Note: For a line-by-line comparison of text, please see [znkr.io/editscript/textdiff].
//
// [znkr.io/editscript/textdiff]: https://pkg.go.dev/znkr.io/editscript/textdiff
package editscript
