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

// Package git provides a simplified git interface for reading the history of a repository.
package git

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// NullID is the object id git uses for a file that doesn't exist on one side of a change.
const NullID = "0000000000000000000000000000000000000000"

const gitlinkMode = "160000"

// Repo is a git repository opened for reading.
type Repo struct {
	dir string

	mu  sync.Mutex // guards cat, r, and w
	cat *exec.Cmd
	r   *bufio.Reader
	w   io.WriteCloser
}

// Open opens the repository in dir. The repository must be closed after use.
func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	cat := exec.Command("git", "-C", dir, "cat-file", "--batch")
	w, err := cat.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %v", err)
	}
	r, err := cat.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %v", err)
	}
	if err := cat.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %v", err)
	}
	return &Repo{
		dir: dir,
		cat: cat,
		r:   bufio.NewReader(r),
		w:   w,
	}, nil
}

// Close stops all processes started for the repository.
func (r *Repo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w.Close()
	return r.cat.Wait()
}

// Commits returns the ids of all non-merge commits reachable from HEAD, newest first.
func (r *Repo) Commits() ([]string, error) {
	out, err := git("-C", r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// Change describes a file changed by a commit.
type Change struct {
	Name  string
	OldID string // NullID if the file was added
	NewID string // NullID if the file was removed
}

// Changes returns the files changed by commit.
func (r *Repo) Changes(commit string) ([]Change, error) {
	out, err := git("-C", r.dir, "diff-tree", "-r", "--no-commit-id", commit)
	if err != nil {
		return nil, err
	}
	var changes []Change
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if len(line) == 0 {
			continue
		}
		// Format: ":<old mode> <new mode> <old id> <new id> <status>\t<name>"
		if line[0] != ':' {
			return nil, fmt.Errorf("diff-tree line not starting with ':': %q", line)
		}
		meta, name, ok := strings.Cut(line[1:], "\t")
		fields := strings.Fields(meta)
		if !ok || len(fields) != 5 {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		if fields[0] == gitlinkMode || fields[1] == gitlinkMode {
			continue // submodule
		}
		changes = append(changes, Change{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return changes, nil
}

// Blob returns the contents of the blob with the given id. It returns an empty blob for NullID.
func (r *Repo) Blob(id string) ([]byte, error) {
	if id == NullID {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.w, "%s\n", id); err != nil {
		return nil, fmt.Errorf("writing to git cat-file: %v", err)
	}

	// Format: "<id> <type> <size>\n<contents>\n"
	header, err := r.r.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("reading from git cat-file: %v", err)
	}
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return nil, fmt.Errorf("unexpected git cat-file output for %s: %q", id, header)
	}
	if fields[0] != id {
		return nil, fmt.Errorf("git cat-file returned %s, want %s", fields[0], id)
	}
	n, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing size of %s: %v", id, err)
	}
	buf := make([]byte, n+1)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, fmt.Errorf("reading %s: %v", id, err)
	}
	return buf[:n], nil
}

func git(args ...string) (string, error) {
	var wout, werr bytes.Buffer
	cmd := exec.Command("git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %v\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
