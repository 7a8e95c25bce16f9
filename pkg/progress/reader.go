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
	"errors"
	"io"
)

// Reader reports every read to a Bar and finishes the bar at EOF or Close.
type Reader struct {
	r   io.Reader
	bar *Bar
}

// NewReader wraps r so reads advance bar.
func NewReader(r io.Reader, bar *Bar) *Reader {
	return &Reader{r: r, bar: bar}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.bar.Add(int64(n))
	if errors.Is(err, io.EOF) {
		r.bar.Finish()
	}
	return n, err
}

// Close finishes the bar and closes the underlying reader when it is an io.Closer.
func (r *Reader) Close() error {
	r.bar.Finish()
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
