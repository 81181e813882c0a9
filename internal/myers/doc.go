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

// Package myers contains an implementation of Myers' algorithm that records every explored edge
// and reconstructs the edit script with a backtrace.
//
// This is the greedy variant from section 3 of the paper, not the linear space refinement. The
// runtime is O((N+M)D) and the trace needs O((N+M)D) memory, where N = len(x), M = len(y) and D is
// the number of differences.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y
// (see internal/editgraph for a picture). Every vertex (s, t) corresponds to a state where the
// first s elements of x are aligned with the first t elements of y. The top left (0,0) corresponds
// to x and bottom right (N,M) to y.
//
// A step to the right deletes an element of x, a step down inserts an element of y. When both
// elements are identical, there's also a diagonal edge representing a match. The goal is to find a
// minimum-cost path from (0,0) to (N,M) where horizontal and vertical edges have a cost of 1 and
// diagonal edges have a cost of 0.
//
// We're going to use s and t for the horizontal and vertical coordinates and k = s - t for
// diagonals. The k=0 diagonal is the diagonal starting in (0, 0).
//
// A D-path is a path that has exactly D non-diagonal edges. A 0-path consists of only diagonal
// edges. A D-path consists of a (D-1)-path plus a non-diagonal edge plus a possibly empty sequence
// of diagonal edges (the snake).
//
// Lemma 1: A D-path must end on diagonal k in {-D, -D+2, ..., D-2, D}.
//
// A D-path is furthest reaching in diagonal k if and only if it is one of the D-paths ending on
// diagonal k whose end point has the greatest possible column number of all such paths.
//
// Lemma 2: A furthest reaching D-path on diagonal k can without loss of generality be decomposed
// into a furthest reaching (D-1)-path on diagonal k-1, followed by a horizontal edge, followed by
// the longest possible snake or it may be decomposed into a furthest reaching (D-1)-path on
// diagonal k+1, followed by a vertical edge, followed by the longest possible snake.
//
// The lemma provides a greedy algorithm: For D = 0, 1, ... compute the furthest reaching D-path on
// every diagonal from the furthest reaching (D-1)-paths on the neighboring diagonals. The first
// D-path that reaches (N,M) is optimal.
//
// # Trace
//
// Every computed D-path is recorded as an edge in a trace: It holds the endpoint of the (D-1)-path
// it extends, its own endpoint after the snake, the edit step for the non-diagonal edge, and the
// length of the snake. Since the furthest reaching endpoint in a diagonal strictly grows with D,
// no two edges share an endpoint. The backtrace walks the trace backwards from (N,M) and follows
// the edges whose endpoint matches the start of the edge found before.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
