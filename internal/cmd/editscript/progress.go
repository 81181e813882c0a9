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
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

// progress tracks the number of checked pairs.
type progress struct {
	total atomic.Int64 // 0 if unknown
	done  atomic.Int64
	t0    time.Time
}

// start renders the progress to w periodically until the returned function is called.
func (p *progress) start(w io.Writer) (stop func()) {
	p.t0 = time.Now()
	quit := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fmt.Fprint(w, "\r"+p.render(60))
			case <-quit:
				fmt.Fprint(w, "\r"+p.render(60)+"\n")
				return
			}
		}
	}()
	return func() {
		close(quit)
		wg.Wait()
	}
}

// render returns the progress bar with the given width.
func (p *progress) render(width int) string {
	done := p.done.Load()
	var perSec int
	if done > 0 {
		perSec = int((time.Duration(done) * time.Second) / max(time.Since(p.t0), time.Millisecond))
	}

	total := p.total.Load()
	if total <= 0 {
		return fmt.Sprintf("%d checks (%d checks/s) ", done, perSec)
	}
	ratio := min(1, float64(done)/float64(total))
	whole := int(ratio * float64(width))
	remainder := math.Mod(ratio*float64(width), 1)
	last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
	if width-whole < 1 {
		last = ""
	}
	bar := strings.Repeat(bars[len(bars)-1], whole) + last
	return fmt.Sprintf("[%-*s] % 3.1f%% (%d checks/s) ", width, bar, 100*ratio, perSec)
}
