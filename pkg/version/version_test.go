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

package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr error
	}{
		{input: "3", want: Version{Major: 3, Precision: 1}},
		{input: "3.1", want: Version{Major: 3, Minor: 1, Precision: 2}},
		{input: "v3.1.14", want: Version{Major: 3, Minor: 1, Patch: 14, Precision: 3}},
		{input: "3.2.0.dev5", want: Version{Major: 3, Minor: 2, Precision: 3, Extras: ".dev5"}},
		{input: "2.0.0-rc1", want: Version{Major: 2, Precision: 3, Extras: "-rc1"}},
		{input: "3.1.0+abc", want: Version{Major: 3, Minor: 1, Precision: 3, Extras: "+abc"}},
		{input: "", wantErr: ErrEmptyVersion},
		{input: "1.2.3.4", wantErr: ErrTooManyComponents},
		{input: "1..2", wantErr: ErrNonNumeric},
		{input: "dev", wantErr: ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "3", MustParse("3").String())
	assert.Equal(t, "3.1", MustParse("3.1").String())
	assert.Equal(t, "3.2.0", MustParse("3.2.0.dev5").String())
	assert.Equal(t, "1.2.3", NewVersion(1, 2, 3).String())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"3.1.14", "3.1.14", 0},
		{"3.1", "3.1.0", 0},
		{"3.1.14", "3.0", 1},
		{"2.5.9", "3.0", -1},
		{"3.2.0.dev5", "3.2.0", 0},
		{"10.0", "9.9.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.a).Compare(MustParse(tt.b)))
			assert.Equal(t, tt.want >= 0, MustParse(tt.a).AtLeast(MustParse(tt.b)))
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not-a-version") })
}
