// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/OpenChemistry/ocrunner/pkg/defaults"
)

var sizeUnits = []string{"k", "M", "G", "T", "P", "E", "Z", "Y"}

// FormatSize renders a byte count with a binary prefix and two decimals.
// The unit only advances while the value is strictly greater than 1024.
func FormatSize(n int64) string {
	size := float64(n)
	unit := ""
	for _, u := range sizeUnits {
		if size <= 1024 {
			break
		}
		size /= 1024
		unit = u
	}
	return fmt.Sprintf("%.2f%s", size, unit)
}

// Enabled reports whether f is a terminal.
func Enabled(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Option configures a Bar.
type Option func(*Bar)

// WithThreshold sets the number of bytes after which the bar starts drawing.
func WithThreshold(n int64) Option {
	return func(b *Bar) {
		b.threshold = n
	}
}

// WithWidth sets the number of cells in the bar.
func WithWidth(n int) Option {
	return func(b *Bar) {
		if n > 0 {
			b.width = n
		}
	}
}

// WithThrottle sets the minimum interval between redraws.
func WithThrottle(d time.Duration) Option {
	return func(b *Bar) {
		b.throttle = d
	}
}

// Bar tracks the position of a single transfer.
type Bar struct {
	mu        sync.Mutex
	w         io.Writer
	label     string
	length    int64
	pos       int64
	width     int
	threshold int64
	throttle  time.Duration
	pb        *progressbar.ProgressBar
	finished  bool
}

// NewBar returns a Bar for a transfer of length bytes; length <= 0 means unknown.
func NewBar(w io.Writer, label string, length int64, opts ...Option) *Bar {
	b := &Bar{
		w:         w,
		label:     label,
		length:    length,
		width:     defaults.ProgressBarWidth,
		threshold: defaults.ProgressThreshold,
		throttle:  defaults.ProgressThrottle,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add advances the bar by n bytes.
func (b *Bar) Add(n int64) {
	if n <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pos += n
	if b.finished || b.pos < b.threshold {
		return
	}
	if b.pb == nil {
		b.start()
		return
	}
	b.pb.Describe(b.describe())
	_ = b.pb.Add64(n)
}

// Pos returns the number of bytes seen so far.
func (b *Bar) Pos() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pos
}

// Finish terminates the line if anything was drawn. Safe to call more than once.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return
	}
	b.finished = true
	if b.pb == nil {
		return
	}
	b.pb.Describe(b.describe())
	_ = b.pb.Finish()
	fmt.Fprintln(b.w)
}

// start must be called with mu held.
func (b *Bar) start() {
	max := b.length
	if max <= 0 {
		max = -1
	}
	b.pb = progressbar.NewOptions64(max,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetWidth(b.width),
		progressbar.OptionThrottle(b.throttle),
		progressbar.OptionSetDescription(b.describe()),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	_ = b.pb.Set64(b.pos)
}

func (b *Bar) describe() string {
	if b.length <= 0 {
		return fmt.Sprintf("%s  %s", FormatSize(b.pos), b.label)
	}
	return fmt.Sprintf("%s/%s  %s", FormatSize(b.pos), FormatSize(b.length), b.label)
}
