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

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/editscript/internal/editgraph"
	"znkr.io/editscript/internal/lcs"
	"znkr.io/editscript/internal/rvecs"
)

var (
	I  = editgraph.InsertStep
	D  = editgraph.DeleteStep
	IH = editgraph.InsertToHeadStep
)

func TestWuDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []int
		want []editgraph.Step
	}{
		{
			name: "empty",
		},
		{
			name: "identical",
			x:    []int{1, 2, 3},
			y:    []int{1, 2, 3},
		},
		{
			name: "substitution",
			x:    []int{0},
			y:    []int{1},
			want: []editgraph.Step{D(0), I(0, 0)},
		},
		{
			name: "append",
			x:    []int{1, 2, 3, 4, 5},
			y:    []int{1, 2, 3, 4, 5, 6},
			want: []editgraph.Step{I(5, 4)},
		},
		{
			name: "pure-deletion",
			x:    []int{1},
			want: []editgraph.Step{D(0)},
		},
		{
			name: "pure-deletions",
			x:    []int{1, 2, 3},
			want: []editgraph.Step{D(0), D(1), D(2)},
		},
		{
			name: "pure-insertion",
			y:    []int{1},
			want: []editgraph.Step{IH(0)},
		},
		{
			name: "pure-insertions",
			y:    []int{1, 2, 3},
			want: []editgraph.Step{IH(2), IH(1), IH(0)},
		},
		{
			name: "source-longer",
			x:    []int{1, 2},
			y:    []int{2},
			want: []editgraph.Step{D(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Diff(tt.x, tt.y)); diff != "" {
				t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
			}
			got := DiffFunc(tt.x, tt.y, func(a, b int) bool { return a == b })
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestWuDiff_ABCABBA(t *testing.T) {
	x := strings.Split("ABCABBA", "")
	y := strings.Split("CBABAC", "")
	for _, in := range [][2][]string{{x, y}, {y, x}} {
		got := Diff(in[0], in[1])
		if len(got) != 5 {
			t.Errorf("Diff(%v, %v) has %d steps, want 5: %v", in[0], in[1], len(got), got)
		}
		checkScript(t, in[0], in[1], got)
	}
}

func TestWuDiff_asymmetricEq(t *testing.T) {
	// eq must always be called with an element of x first, also when the inputs are swapped
	// internally because x is longer than y.
	x := []int{11, 12, 13, 14}
	y := []int{2, 4}
	got := DiffFunc(x, y, func(a, b int) bool { return a == b+10 })
	want := []editgraph.Step{D(0), D(2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestWuDiff_randomInputs(t *testing.T) {
	for i := range 200 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := randomInput(rng, 20, 4)
		y := randomInput(rng, 20, 4)
		checkScript(t, x, y, Diff(x, y))
	}
}

func TestWuDiff_similarInputs(t *testing.T) {
	// The algorithm is fast for inputs with few differences, make sure to cover long inputs with
	// a small number of edits.
	for i := range 20 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := randomInput(rng, 2000, 10)
		y := slices.Clone(x)
		for range rng.IntN(10) {
			if len(y) > 0 && rng.IntN(2) == 0 {
				j := rng.IntN(len(y))
				y = slices.Delete(y, j, j+1)
			} else {
				y = slices.Insert(y, rng.IntN(len(y)+1), rng.IntN(10))
			}
		}
		checkScript(t, x, y, Diff(x, y))
	}
}

func TestWuTrace(t *testing.T) {
	// Every edge must consist of exactly one non-diagonal move from From to To, followed by the
	// snake.
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := randomInput(rng, 15, 3)
		y := randomInput(rng, 15, 3)
		if len(x) == 0 || len(y) == 0 {
			continue
		}

		var w wu[int]
		if len(x) > len(y) {
			w.init(y, x, func(a, b int) bool { return a == b }, true)
		} else {
			w.init(x, y, func(a, b int) bool { return a == b }, false)
		}
		w.explore()

		// In the swapped case, vertical edges are deletions from x.
		vertical, horizontal := editgraph.Insert, editgraph.Delete
		if w.swapped {
			vertical, horizontal = editgraph.Delete, editgraph.Insert
		}
		for j := range w.trace.Len() {
			e := w.trace.Edge(j)
			var want editgraph.Vertex
			switch e.Step.Op {
			case editgraph.Same:
				want = editgraph.Vertex{}
			case vertical:
				want = editgraph.Vertex{X: e.From.X, Y: e.From.Y + 1}
			case horizontal:
				want = editgraph.Vertex{X: e.From.X + 1, Y: e.From.Y}
			default:
				t.Fatalf("edge %d has unexpected op %v", j, e.Step.Op)
			}
			if e.To != want {
				t.Errorf("x=%v, y=%v: edge %d ends at %v after a %v from %v, want %v", x, y, j, e.To, e.Step.Op, e.From, want)
			}
		}
	}
}

func FuzzWuDiff(f *testing.F) {
	f.Add([]byte("ABCABBA"), []byte("CBABAC"))
	f.Add([]byte(""), []byte("abc"))
	f.Add([]byte("abc"), []byte(""))
	f.Fuzz(func(t *testing.T, x, y []byte) {
		checkScript(t, x, y, Diff(x, y))
	})
}

func randomInput(rng *rand.Rand, maxLen, alphabet int) []int {
	in := make([]int, rng.IntN(maxLen+1))
	for i := range in {
		in[i] = rng.IntN(alphabet)
	}
	return in
}

// checkScript verifies that script transforms x into y, that every insertion sits where it's
// applied, and that it's minimal.
func checkScript[T comparable](t *testing.T, x, y []T, script []editgraph.Step) {
	t.Helper()
	rx, ry, err := rvecs.FromScript(script, len(x), len(y))
	if err != nil {
		t.Fatalf("invalid script for x=%v, y=%v: %v", x, y, err)
	}
	got, err := rvecs.Apply(x, y, rx, ry, func(a, b T) bool { return a == b })
	if err != nil {
		t.Fatalf("applying script %v to x=%v, y=%v failed: %v", script, x, y, err)
	}
	if !slices.Equal(got, y) {
		t.Errorf("applying script %v to x=%v results in %v, want %v", script, x, got, y)
	}
	if err := rvecs.CheckOrder(script); err != nil {
		t.Errorf("script %v for x=%v, y=%v is inconsistent: %v", script, x, y, err)
	}
	if want := lcs.Distance(x, y); len(script) != want {
		t.Errorf("script %v for x=%v, y=%v has %d steps, want %d", script, x, y, len(script), want)
	}
}
