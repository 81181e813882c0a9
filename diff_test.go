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
	"crypto/sha256"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/tools/txtar"
	"znkr.io/editscript/internal/lcs"
	"znkr.io/editscript/internal/rvecs"
)

var update = flag.Bool("update", false, "update golden files")

var algorithms = []AlgorithmKind{AlgorithmMyers, AlgorithmWu}

func TestGolden(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			for _, a := range algorithms {
				got := render(Diff(tt.x, tt.y, Algorithm(a)))
				if *update {
					tt.ar.Files[tt.want[a]].Data = []byte(got)
					continue
				}
				want := string(tt.ar.Files[tt.want[a]].Data)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Diff(..., Algorithm(%v)) result is different [-want,+got]:\n%s", a, diff)
				}
			}
			if *update {
				if err := os.WriteFile(tt.filename, txtar.Format(tt.ar), 0o644); err != nil {
					t.Fatalf("failed to update golden file: %v", err)
				}
			}
		})
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []int
		want map[AlgorithmKind][]Step
	}{
		{
			name: "empty",
			want: map[AlgorithmKind][]Step{AlgorithmMyers: nil, AlgorithmWu: nil},
		},
		{
			name: "identical",
			x:    []int{1, 2, 3, 4, 5},
			y:    []int{1, 2, 3, 4, 5},
			want: map[AlgorithmKind][]Step{AlgorithmMyers: nil, AlgorithmWu: nil},
		},
		{
			name: "pure-deletion",
			x:    []int{1},
			want: map[AlgorithmKind][]Step{
				AlgorithmMyers: {{Op: Delete, At: 0}},
				AlgorithmWu:    {{Op: Delete, At: 0}},
			},
		},
		{
			name: "pure-insertion",
			y:    []int{1},
			want: map[AlgorithmKind][]Step{
				AlgorithmMyers: {{Op: Insert, From: 0, To: 0}},
				AlgorithmWu:    {{Op: InsertToHead, From: 0}},
			},
		},
		{
			name: "substitution",
			x:    []int{0},
			y:    []int{1},
			want: map[AlgorithmKind][]Step{
				AlgorithmMyers: {{Op: Delete, At: 0}, {Op: Insert, From: 0, To: 0}},
				AlgorithmWu:    {{Op: Delete, At: 0}, {Op: Insert, From: 0, To: 0}},
			},
		},
		{
			name: "append",
			x:    []int{1, 2, 3, 4, 5},
			y:    []int{1, 2, 3, 4, 5, 6},
			want: map[AlgorithmKind][]Step{
				AlgorithmMyers: {{Op: Insert, From: 5, To: 4}},
				AlgorithmWu:    {{Op: Insert, From: 5, To: 4}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, a := range algorithms {
				if diff := cmp.Diff(tt.want[a], Diff(tt.x, tt.y, Algorithm(a))); diff != "" {
					t.Errorf("Diff(..., Algorithm(%v)) result is different [-want,+got]:\n%s", a, diff)
				}
				got := DiffFunc(tt.x, tt.y, func(a, b int) bool { return a == b }, Algorithm(a))
				if diff := cmp.Diff(tt.want[a], got); diff != "" {
					t.Errorf("DiffFunc(..., Algorithm(%v)) result is different [-want,+got]:\n%s", a, diff)
				}
			}
		})
	}
}

func TestDiff_defaultAlgorithm(t *testing.T) {
	x, y := []int{}, []int{1, 2}
	if diff := cmp.Diff(Myers(x, y), Diff(x, y)); diff != "" {
		t.Errorf("Diff(...) doesn't use Myers' algorithm by default [-want,+got]:\n%s", diff)
	}
}

func TestDiff_randomInputs(t *testing.T) {
	for i := range 500 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := randomInput(rng, 30, 5)
		y := randomInput(rng, 30, 5)
		want := lcs.Distance(x, y)

		for name, script := range map[string][]Step{
			"Myers":     Myers(x, y),
			"MyersFunc": MyersFunc(x, y, func(a, b int) bool { return a == b }),
			"Wu":        Wu(x, y),
			"WuFunc":    WuFunc(x, y, func(a, b int) bool { return a == b }),
		} {
			got, err := Apply(x, y, script)
			if err != nil {
				t.Fatalf("%s(%v, %v) returned invalid script %v: %v", name, x, y, script, err)
			}
			if diff := cmp.Diff(y, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("applying %s(%v, %v) = %v doesn't reproduce y [-want,+got]:\n%s", name, x, y, script, diff)
			}
			if got := Distance(script); got != want {
				t.Errorf("%s(%v, %v) has distance %d, want %d", name, x, y, got, want)
			}
			if err := rvecs.CheckOrder(script); err != nil {
				t.Errorf("%s(%v, %v) = %v is inconsistent: %v", name, x, y, script, err)
			}
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []string
		script  []Step
		want    []string
		wantErr string
	}{
		{
			name: "empty",
		},
		{
			name: "no-steps",
			x:    []string{"a", "b"},
			y:    []string{"a", "b"},
			want: []string{"a", "b"},
		},
		{
			name:   "insert-to-head",
			y:      []string{"a", "b"},
			script: []Step{{Op: InsertToHead, From: 1}, {Op: InsertToHead, From: 0}},
			want:   []string{"a", "b"},
		},
		{
			name:   "steps-in-any-order",
			x:      []string{"a", "b", "c"},
			y:      []string{"b", "d"},
			script: []Step{{Op: Insert, From: 1, To: 2}, {Op: Delete, At: 2}, {Op: Delete, At: 0}},
			want:   []string{"b", "d"},
		},
		{
			name:    "delete-out-of-range",
			x:       []string{"a"},
			y:       []string{},
			script:  []Step{{Op: Delete, At: 1}},
			wantErr: "index out of range",
		},
		{
			name:    "insert-out-of-range",
			x:       []string{},
			y:       []string{"a"},
			script:  []Step{{Op: Insert, From: 3, To: 0}},
			wantErr: "index out of range",
		},
		{
			name:    "insert-after-missing-element",
			x:       []string{"a", "b", "c", "d", "e"},
			y:       []string{"a", "b", "c", "d", "e", "f"},
			script:  []Step{{Op: Insert, From: 5, To: 999}},
			wantErr: "index out of range",
		},
		{
			name:    "duplicate-deletion",
			x:       []string{"a", "b"},
			y:       []string{},
			script:  []Step{{Op: Delete, At: 0}, {Op: Delete, At: 0}},
			wantErr: "deleted twice",
		},
		{
			name:    "kept-element-mismatch",
			x:       []string{"a"},
			y:       []string{"b"},
			wantErr: "doesn't match",
		},
		{
			name:    "unbalanced",
			x:       []string{"a", "b"},
			y:       []string{"a"},
			wantErr: "script keeps 2 elements of x but 1 elements of y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.x, tt.y, tt.script)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Apply(...) returned error %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Apply(...) returned unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Apply(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	script := []Step{
		{Op: Delete, At: 0},
		{Op: Insert, From: 0, To: 0},
		{Op: InsertToHead, From: 1},
		{}, // Never part of a script returned by this package, but it doesn't count either.
	}
	if got, want := Distance(script), 3; got != want {
		t.Errorf("Distance(%v) = %d, want %d", script[:3], got, want)
	}
	if got := Distance(nil); got != 0 {
		t.Errorf("Distance(nil) = %d, want 0", got)
	}
}

func FuzzDiff(f *testing.F) {
	for _, tt := range parseTests(f) {
		f.Add(strings.Join(tt.x, ""), strings.Join(tt.y, ""))
	}
	f.Fuzz(func(t *testing.T, x, y string) {
		xr, yr := []rune(x), []rune(y)
		want := lcs.Distance(xr, yr)
		for _, a := range algorithms {
			script := Diff(xr, yr, Algorithm(a))
			got, err := Apply(xr, yr, script)
			if err != nil {
				t.Fatalf("Diff(%q, %q, Algorithm(%v)) returned invalid script: %v", x, y, a, err)
			}
			if string(got) != string(yr) {
				t.Errorf("applying Diff(%q, %q, Algorithm(%v)) results in %q", x, y, a, string(got))
			}
			if d := Distance(script); d != want {
				t.Errorf("Diff(%q, %q, Algorithm(%v)) has distance %d, want %d", x, y, a, d, want)
			}
			if err := rvecs.CheckOrder(script); err != nil {
				t.Errorf("Diff(%q, %q, Algorithm(%v)) = %v is inconsistent: %v", x, y, a, script, err)
			}
		}
	})
}

func randomInput(rng *rand.Rand, maxLen, alphabet int) []int {
	in := make([]int, rng.IntN(maxLen+1))
	for i := range in {
		in[i] = rng.IntN(alphabet)
	}
	return in
}

func render(script []Step) string {
	var sb strings.Builder
	for _, step := range script {
		sb.WriteString(step.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

type test struct {
	name     string
	filename string
	ar       *txtar.Archive
	x, y     []string
	want     map[AlgorithmKind]int // index of the expected script in ar.Files
}

func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := test{
			name:     strings.TrimSuffix(strings.TrimPrefix(filename, "testdata/"), ".test"),
			filename: filename,
			ar:       ar,
			want:     map[AlgorithmKind]int{},
		}
		for i, f := range ar.Files {
			switch f.Name {
			case "source":
				test.x = strings.Fields(string(f.Data))
			case "target":
				test.y = strings.Fields(string(f.Data))
			case "myers":
				test.want[AlgorithmMyers] = i
			case "wu":
				test.want[AlgorithmWu] = i
			default:
				t.Fatalf("unknown file in archive: %v", f.Name)
			}
		}
		if len(test.want) != len(algorithms) {
			t.Fatalf("%s: missing expected result for at least one algorithm", filename)
		}
		tests = append(tests, test)
	}
	return tests
}
