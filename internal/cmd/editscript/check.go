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

package main

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"znkr.io/editscript"
	"znkr.io/editscript/internal/cmd/editscript/internal/git"
	"znkr.io/editscript/internal/lcs"
	"znkr.io/editscript/internal/rvecs"
	"znkr.io/editscript/textdiff"
)

type checkConfig struct {
	iterations int
	seed       uint64
	maxLen     int
	alphabet   int
	parallel   int
	repo       string
	sample     int
	stats      string
	progress   bool
}

func newCheckCmd() *cobra.Command {
	var cfg checkConfig
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check both algorithms on random inputs or on the history of a git repository",
		Long: `Runs both algorithms on pairs of inputs and verifies that the edit scripts reproduce the
target when applied, that both algorithms agree on the distance, and that the distance is minimal.

By default, the inputs are random sequences. With --repo, the inputs are the lines of all files
changed by the commits in a git repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), &cfg, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().IntVar(&cfg.iterations, "iterations", 1000, "number of random input pairs to check")
	cmd.Flags().Uint64Var(&cfg.seed, "seed", 0, "seed for random inputs")
	cmd.Flags().IntVar(&cfg.maxLen, "max-len", 100, "maximum length of random inputs")
	cmd.Flags().IntVar(&cfg.alphabet, "alphabet", 4, "number of distinct elements in random inputs")
	cmd.Flags().IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of checks to run in parallel")
	cmd.Flags().StringVar(&cfg.repo, "repo", "", "check changes in this git repository instead of random inputs")
	cmd.Flags().IntVar(&cfg.sample, "sample", 0, "if >0, sample this many commits from the repository")
	cmd.Flags().StringVar(&cfg.stats, "stats", "", "file to store stats in (CSV)")
	cmd.Flags().BoolVar(&cfg.progress, "progress", false, "render a progress bar")
	return cmd
}

// pair is a single input for a check.
type pair struct {
	name string
	x, y []string
}

// result is the outcome of running one algorithm on a pair.
type result struct {
	name      string
	algorithm editscript.AlgorithmKind
	N, M, D   int
	duration  time.Duration
}

var algorithms = []editscript.AlgorithmKind{editscript.AlgorithmMyers, editscript.AlgorithmWu}

// maxMinimalityCheck limits the size of the table used to compute the LCS.
const maxMinimalityCheck = 1 << 24

// checkPair runs all algorithms on p and returns an error if any of them fails.
func checkPair(p pair) ([]result, error) {
	results := make([]result, 0, len(algorithms))
	for _, algo := range algorithms {
		start := time.Now()
		script := editscript.Diff(p.x, p.y, editscript.Algorithm(algo))
		duration := time.Since(start)

		got, err := editscript.Apply(p.x, p.y, script)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %v", p.name, algo, err)
		}
		if !slices.Equal(got, p.y) {
			return nil, fmt.Errorf("%s: %v: applying %v doesn't reproduce the target", p.name, algo, script)
		}
		if err := rvecs.CheckOrder(script); err != nil {
			return nil, fmt.Errorf("%s: %v: %v", p.name, algo, err)
		}
		results = append(results, result{
			name:      p.name,
			algorithm: algo,
			N:         len(p.x),
			M:         len(p.y),
			D:         editscript.Distance(script),
			duration:  duration,
		})
	}

	for _, r := range results[1:] {
		if r.D != results[0].D {
			return nil, fmt.Errorf("%s: %v found distance %d, but %v found %d", p.name, results[0].algorithm, results[0].D, r.algorithm, r.D)
		}
	}
	if len(p.x)*len(p.y) <= maxMinimalityCheck {
		if want := lcs.Distance(p.x, p.y); results[0].D != want {
			return nil, fmt.Errorf("%s: found distance %d, want %d", p.name, results[0].D, want)
		}
	}
	return results, nil
}

// randomPair returns the i-th random pair. The result only depends on cfg.seed and i.
func randomPair(cfg *checkConfig, i int) pair {
	seed := sha256.Sum256(fmt.Append(nil, cfg.seed, i))
	rng := rand.New(rand.NewChaCha8(seed))
	gen := func() []string {
		in := make([]string, rng.IntN(cfg.maxLen+1))
		for i := range in {
			in[i] = string(rune('a' + rng.IntN(cfg.alphabet)))
		}
		return in
	}
	x := gen()
	y := gen()
	return pair{
		name: fmt.Sprintf("random/%d/%d", cfg.seed, i),
		x:    x,
		y:    y,
	}
}

// source produces pairs until yield returns false. total reports the number of expected pairs
// once known, or 0.
type source func(total *atomic.Int64, yield func(pair) bool) error

func randomSource(cfg *checkConfig) source {
	return func(total *atomic.Int64, yield func(pair) bool) error {
		total.Store(int64(cfg.iterations))
		for i := range cfg.iterations {
			if !yield(randomPair(cfg, i)) {
				return nil
			}
		}
		return nil
	}
}

func repoSource(cfg *checkConfig) source {
	return func(total *atomic.Int64, yield func(pair) bool) error {
		repo, err := git.Open(cfg.repo)
		if err != nil {
			return fmt.Errorf("opening git repository: %v", err)
		}
		defer repo.Close()

		commits, err := repo.Commits()
		if err != nil {
			return fmt.Errorf("reading commits: %v", err)
		}
		if cfg.sample > 0 && cfg.sample < len(commits) {
			rng := rand.New(rand.NewPCG(cfg.seed, 0))
			rng.Shuffle(len(commits), func(i, j int) { commits[i], commits[j] = commits[j], commits[i] })
			commits = commits[:cfg.sample]
		}
		// Read all changes up front to know the number of pairs.
		type commitChange struct {
			commit string
			change git.Change
		}
		var todo []commitChange
		for _, commit := range commits {
			changes, err := repo.Changes(commit)
			if err != nil {
				return fmt.Errorf("reading changes of %s: %v", commit, err)
			}
			for _, change := range changes {
				if strings.HasSuffix(change.Name, ".zip") || strings.HasSuffix(change.Name, ".syso") {
					continue
				}
				todo = append(todo, commitChange{commit, change})
			}
		}
		total.Store(int64(len(todo)))

		for _, cc := range todo {
			old, err := repo.Blob(cc.change.OldID)
			if err != nil {
				return fmt.Errorf("reading %s in %s: %v", cc.change.Name, cc.commit, err)
			}
			cur, err := repo.Blob(cc.change.NewID)
			if err != nil {
				return fmt.Errorf("reading %s in %s: %v", cc.change.Name, cc.commit, err)
			}
			p := pair{
				name: cc.commit + ":" + cc.change.Name,
				x:    textdiff.SplitLines(string(old)),
				y:    textdiff.SplitLines(string(cur)),
			}
			if !yield(p) {
				return nil
			}
		}
		return nil
	}
}

func runCheck(ctx context.Context, cfg *checkConfig, progressOut io.Writer) error {
	if cfg.alphabet < 1 || cfg.maxLen < 0 || cfg.parallel < 1 {
		return fmt.Errorf("invalid configuration: --alphabet and --parallel must be positive, --max-len must not be negative")
	}
	start := time.Now()

	src := randomSource(cfg)
	if cfg.repo != "" {
		src = repoSource(cfg)
	}

	var stats *statsWriter
	if cfg.stats != "" {
		f, err := os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer f.Close()
		stats = newStatsWriter(f)
	}

	var prog progress
	if cfg.progress {
		stop := prog.start(progressOut)
		defer stop()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallel)
	srcErr := src(&prog.total, func(p pair) bool {
		if gctx.Err() != nil {
			return false
		}
		g.Go(func() error {
			results, err := checkPair(p)
			if err != nil {
				return err
			}
			if stats != nil {
				stats.write(results)
			}
			prog.done.Add(1)
			return nil
		})
		return true
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if srcErr != nil {
		return srcErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if stats != nil {
		if err := stats.flush(); err != nil {
			return fmt.Errorf("writing stats: %v", err)
		}
	}
	log.Printf("Checked %d pairs in %v, no problems found", prog.done.Load(), time.Since(start).Round(time.Millisecond))
	return nil
}

// statsWriter writes results as CSV.
type statsWriter struct {
	mu sync.Mutex
	w  *csv.Writer
}

func newStatsWriter(w io.Writer) *statsWriter {
	s := &statsWriter{w: csv.NewWriter(w)}
	s.w.Write([]string{"name", "algorithm", "N", "M", "D", "duration_ns"})
	return s
}

func (s *statsWriter) write(results []result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range results {
		s.w.Write([]string{
			r.name,
			r.algorithm.String(),
			strconv.Itoa(r.N),
			strconv.Itoa(r.M),
			strconv.Itoa(r.D),
			strconv.FormatInt(r.duration.Nanoseconds(), 10),
		})
	}
}

// flush writes any buffered data and returns the first error that occurred while writing.
func (s *statsWriter) flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Flush()
	return s.w.Error()
}
