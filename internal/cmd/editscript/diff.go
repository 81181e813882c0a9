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
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"znkr.io/editscript"
	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/textdiff"
)

type diffConfig struct {
	algorithm   string
	ignoreSpace bool
	watch       bool
}

func newDiffCmd() *cobra.Command {
	var cfg diffConfig
	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Print the edit script that transforms OLD into NEW line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := config.ParseAlgorithm(cfg.algorithm)
			if err != nil {
				return err
			}
			opts := []editscript.Option{editscript.Algorithm(algo)}
			if cfg.ignoreSpace {
				opts = append(opts, textdiff.IgnoreSpace())
			}

			oldFile, newFile := args[0], args[1]
			if err := printDiff(cmd.OutOrStdout(), oldFile, newFile, opts); err != nil {
				return err
			}
			if !cfg.watch {
				return nil
			}
			return watch(cmd.Context(), []string{oldFile, newFile}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), "---")
				if err := printDiff(cmd.OutOrStdout(), oldFile, newFile, opts); err != nil {
					log.Printf("failed to update diff: %v", err)
				}
			})
		},
	}
	cmd.Flags().StringVar(&cfg.algorithm, "algorithm", "myers", "algorithm to use: myers or wu")
	cmd.Flags().BoolVar(&cfg.ignoreSpace, "ignore-space", false, "ignore leading and trailing white space when comparing lines")
	cmd.Flags().BoolVar(&cfg.watch, "watch", false, "print the edit script again whenever one of the files changes")
	return cmd
}

// printDiff prints the edit script between the lines of oldFile and newFile, one step per line,
// followed by the distance.
func printDiff(w io.Writer, oldFile, newFile string, opts []editscript.Option) error {
	x, err := os.ReadFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	y, err := os.ReadFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}
	script := textdiff.LinesBytes(x, y, opts...)
	for _, step := range script {
		fmt.Fprintln(w, step)
	}
	fmt.Fprintf(w, "distance: %d\n", editscript.Distance(script))
	return nil
}

// watch calls update whenever one of files changes until ctx is done.
func watch(ctx context.Context, files []string, update func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %v", err)
	}
	defer watcher.Close()

	// Editors often replace files instead of writing them, watching the directories keeps track of
	// the files across renames.
	var names []string
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("resolving %s: %v", file, err)
		}
		names = append(names, abs)
		dir := filepath.Dir(abs)
		if slices.Contains(watcher.WatchList(), dir) {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("starting watch: %v", err)
		}
	}
	log.Printf("Watching %v, press Ctrl-C to stop", files)

	for {
		select {
		case event := <-watcher.Events:
			// Absolutely no need to react to chmod.
			if event.Has(fsnotify.Chmod) || !slices.Contains(names, filepath.Clean(event.Name)) {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				// The file is going to be replaced, wait for the Create event.
				continue
			}
			update()
		case err := <-watcher.Errors:
			return fmt.Errorf("watching: %v", err)
		case <-ctx.Done():
			fmt.Print("\r") // remove Ctrl-C output characters
			log.Printf("Received Ctrl-C, shutting down")
			return nil
		}
	}
}
