package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/editscript"
	"znkr.io/editscript/textdiff"
)

// Impl computes the number of inserted and deleted lines needed to transform x into y.
type Impl struct {
	Name     string
	Distance func(x, y []byte) int
}

var Impls = []Impl{
	{
		Name: "myers",
		Distance: func(x, y []byte) int {
			return editscript.Distance(textdiff.LinesBytes(x, y, editscript.Algorithm(editscript.AlgorithmMyers)))
		},
	},
	{
		Name: "wu",
		Distance: func(x, y []byte) int {
			return editscript.Distance(textdiff.LinesBytes(x, y, editscript.Algorithm(editscript.AlgorithmWu)))
		},
	},
	{
		Name: "go-internal",
		Distance: func(x, y []byte) int {
			return countUnified(gointernal.Diff("x", x, "y", y))
		},
	},
	{
		Name: "diffmatchpatch",
		Distance: func(x, y []byte) int {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			n := 0
			for _, diff := range diffs {
				if diff.Type == diffmatchpatch.DiffEqual {
					continue
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line != "" {
						n++
					}
				}
			}
			return n
		},
	},
	{
		Name: "godebug",
		Distance: func(x, y []byte) int {
			return countUnified([]byte(godebug.Diff(string(x), string(y))))
		},
	},
	{
		Name: "mb0",
		Distance: func(x, y []byte) int {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			n := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				n += ch.Del + ch.Ins
			}
			return n
		},
	},
	{
		Name: "udiff",
		Distance: func(x, y []byte) int {
			return countUnified([]byte(udiff.Unified("x", "y", string(x), string(y))))
		},
	},
}

// countUnified counts the inserted and deleted lines in a unified diff. Everything before the first
// hunk header is a file header. Output without hunk headers has no file headers either.
func countUnified(diff []byte) int {
	lines := bytes.Split(diff, []byte("\n"))
	for i, line := range lines {
		if bytes.HasPrefix(line, []byte("@@")) {
			lines = lines[i:]
			break
		}
	}
	n := 0
	for _, line := range lines {
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			n++
		}
	}
	return n
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
