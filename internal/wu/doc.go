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

// Package wu contains an implementation of the O(NP) sequence comparison algorithm by Wu, Manber,
// Myers, and Miller that records every explored edge and reconstructs the edit script with a
// backtrace.
//
// # Wu's Algorithm
//
// The algorithm searches the same edit graph as Myers' algorithm (see internal/myers), but it
// exploits that the difference in length between the inputs forces a minimum number of edits.
// Let a be the shorter input with length N and b the longer one with length M, and let Δ = M - N.
// In contrast to internal/myers, diagonals are numbered k = t - s where s is an offset into a and t
// an offset into b. The sink (N, M) is on diagonal Δ.
//
// Every path to the sink has at least Δ insertions. Let P be the number of deletions of an optimal
// path, the number of edits is then D = Δ + 2P. The algorithm searches for increasing p = 0, 1, ...
// and stores the furthest reaching t-coordinate for every diagonal in fp. A path that ends on
// diagonal k < Δ after iteration p has exactly p deletions, a path that ends on diagonal k > Δ has
// exactly p - (k - Δ) deletions. In iteration p,
//
//   - the diagonals k = -p, ..., Δ-1 are computed in ascending order, then
//   - the diagonals k = Δ+p, ..., Δ+1 are computed in descending order, then
//   - diagonal Δ is computed.
//
// using fp[k] = snake(k, max(fp[k-1]+1, fp[k+1])). The order is important: Every diagonal reads
// the value of one neighbor that was already updated in iteration p and the value of the other
// neighbor from iteration p-1. The search ends once the path on diagonal Δ reaches the sink. With
// that, the runtime is O(NP) which is much better than O(ND) if the inputs have similar lengths.
//
// # Trace
//
// Every evaluation of the recurrence is recorded as an edge in a trace. In contrast to
// internal/myers, the endpoint of an edge is recorded before following the snake, the backtrace
// has to advance it by the snake length to find the endpoint of the path.
//
// ## References:
//
// Wu, S., Manber, U., Myers, G., Miller, W. An O(NP) sequence comparison algorithm. Information
// Processing Letters, Volume 35, Issue 6, 317-323 (1990).
// https://doi.org/10.1016/0020-0190(90)90035-V
package wu
