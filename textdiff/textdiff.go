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

// Package textdiff provides functions to compute edit scripts between texts line by line.
package textdiff

import (
	"znkr.io/editscript"
	"znkr.io/editscript/internal/byteview"
	"znkr.io/editscript/internal/config"
)

// Lines compares the lines in x and y and returns a minimal edit script that transforms the lines
// of x into the lines of y. Indices in the script refer to the lines returned by [SplitLines].
//
// Lines are compared including their line ending, a last line without a newline character is
// different from the same line with a newline character.
//
// The following options are supported: [editscript.Algorithm], [IgnoreSpace]
func Lines(x, y string, opts ...editscript.Option) []editscript.Step {
	return lines(x, y, opts)
}

// LinesBytes is like [Lines] but for byte slices.
//
// The following options are supported: [editscript.Algorithm], [IgnoreSpace]
func LinesBytes(x, y []byte, opts ...editscript.Option) []editscript.Step {
	return lines(x, y, opts)
}

func lines[T string | []byte](x, y T, opts []editscript.Option) []editscript.Step {
	cfg := config.FromOptions(opts, config.AlgorithmFlag|config.IgnoreSpace)
	xlines := byteview.SplitLines(byteview.From(x))
	ylines := byteview.SplitLines(byteview.From(y))

	algo := editscript.Algorithm(cfg.Algorithm)
	if cfg.IgnoreSpace {
		eq := func(a, b byteview.ByteView) bool { return a.TrimSpace() == b.TrimSpace() }
		return editscript.DiffFunc(xlines, ylines, eq, algo)
	}
	return editscript.Diff(xlines, ylines, algo)
}

// SplitLines splits s into lines. Every line includes its newline character, except for the last
// line if s doesn't end with a newline character.
func SplitLines(s string) []string {
	views := byteview.SplitLines(byteview.From(s))
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.String()
	}
	return out
}
