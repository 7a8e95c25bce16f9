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

package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentFormat(t *testing.T) {
	tests := []struct {
		format string
		args   any
		want   string
	}{
		{"%s", []any{"x"}, "x"},
		{"%r", []any{"x"}, "'x'"},
		{"%s", []any{[]any{"a", float64(1)}}, "['a', 1]"},
		{"%s and %s", []any{nil, true}, "None and True"},
		{"%5s|%-5s|", []any{"ab", "cd"}, "   ab|cd   |"},
		{"%.3s", []any{"abcdef"}, "abc"},
		{"%d", []any{3.9}, "3"},
		{"%05d", []any{float64(42)}, "00042"},
		{"%+d", []any{float64(7)}, "+7"},
		{"%x %X %#x", []any{float64(255), float64(255), float64(255)}, "ff FF 0xff"},
		{"%o %#o", []any{float64(8), float64(8)}, "10 0o10"},
		{"%f", []any{1.5}, "1.500000"},
		{"%.1e", []any{12345.0}, "1.2e+04"},
		{"%g", []any{0.5}, "0.5"},
		{"%*d", []any{float64(4), float64(7)}, "   7"},
		{"%c", []any{float64(65)}, "A"},
		{"%(n)d items", map[string]any{"n": float64(3)}, "3 items"},
		{"single value", "ignored", ""},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			args, ok := newPercentArgs(tt.args)
			require.True(t, ok)
			got, err := percentFormat(tt.format, args)
			if tt.want == "" {
				assert.ErrorIs(t, err, errTooManyArgs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPercentFormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		args    any
		wantErr error
	}{
		{"too few", "%s %s", []any{"a"}, errTooFewArgs},
		{"too many", "%s", []any{"a", "b"}, errTooManyArgs},
		{"missing key", "%(x)s", map[string]any{"y": "1"}, errTooFewArgs},
		{"number from string", "%d", []any{"a"}, errBadConversion},
		{"unknown conversion", "%q", []any{"a"}, errBadConversion},
		{"dangling percent", "50%", []any{"a"}, errBadConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, ok := newPercentArgs(tt.args)
			require.True(t, ok)
			_, err := percentFormat(tt.format, args)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNewPercentArgsEmpty(t *testing.T) {
	for _, v := range []any{nil, []any{}, map[string]any{}} {
		_, ok := newPercentArgs(v)
		assert.False(t, ok, "%#v", v)
	}
}
