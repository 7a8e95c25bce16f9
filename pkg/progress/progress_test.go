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
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{512, "512.00"},
		{1024, "1024.00"},
		{1025, "1.00k"},
		{2048, "2.00k"},
		{1536, "1.50k"},
		{1024 * 1024, "1024.00k"},
		{3 * 1024 * 1024, "3.00M"},
		{5 * 1024 * 1024 * 1024, "5.00G"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.in))
		})
	}
}

func TestBarStaysSilentBelowThreshold(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(&out, "GET /jobs", 100, WithThreshold(1024))

	bar.Add(100)
	bar.Finish()

	assert.Zero(t, out.Len())
	assert.EqualValues(t, 100, bar.Pos())
}

func TestBarDrawsPastThreshold(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(&out, "upload", 4096, WithThreshold(1024), WithWidth(10), WithThrottle(0))

	bar.Add(2048)
	assert.Contains(t, out.String(), "2.00k/4.00k  upload")
	assert.Contains(t, out.String(), "[")

	bar.Add(2048)
	bar.Finish()
	bar.Finish()

	assert.Contains(t, out.String(), "4.00k/4.00k  upload")
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
	assert.EqualValues(t, 4096, bar.Pos())
}

func TestBarIgnoresAddAfterFinish(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(&out, "upload", 10, WithThreshold(1), WithThrottle(0))

	bar.Add(10)
	bar.Finish()
	drawn := out.Len()

	bar.Add(5)
	assert.Equal(t, drawn, out.Len())
	assert.EqualValues(t, 15, bar.Pos())
}

func TestBarUnknownLength(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(&out, "download", 0, WithThreshold(1), WithWidth(4), WithThrottle(0))

	bar.Add(10)

	assert.Contains(t, out.String(), "10.00  download")
}

func TestReaderReportsBytes(t *testing.T) {
	var out bytes.Buffer
	payload := strings.Repeat("x", 3000)
	bar := NewBar(&out, "body", int64(len(payload)), WithThreshold(1000), WithThrottle(0))

	r := NewReader(strings.NewReader(payload), bar)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	assert.Len(t, data, 3000)
	assert.EqualValues(t, 3000, bar.Pos())
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestEnabled(t *testing.T) {
	assert.False(t, Enabled(nil))

	f, err := os.CreateTemp(t.TempDir(), "progress")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, Enabled(f))
}
