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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
package byteview

import (
	"strings"
	"unsafe"
)

// ByteView is an immutable view of a string or a []byte. ByteViews are comparable with ==.
type ByteView struct {
	data string
}

// From returns a view of in without copying it. in must not be modified while the view is in use.
func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

func (v ByteView) String() string { return v.data }

// TrimSpace returns v without leading and trailing white space.
func (v ByteView) TrimSpace() ByteView {
	return ByteView{strings.TrimSpace(v.data)}
}

// SplitLines splits the input on '\n' and returns the lines including the newline character. The
// last line doesn't end with a newline character if the input doesn't.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	n := strings.Count(v.data, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	a := make([]ByteView, n)
	for i := range n {
		m := strings.Index(s, "\n")
		if m < 0 {
			break
		}
		a[i] = ByteView{s[:m+1]}
		s = s[m+1:]
	}
	if len(s) > 0 {
		a[n-1] = ByteView{s}
	}
	return a
}
