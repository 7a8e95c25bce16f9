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
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogRecordLevel(t *testing.T) {
	tests := []struct {
		levelname any
		want      slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"CRITICAL", slog.LevelError + 4},
		{"error", slog.LevelError},
		{nil, slog.LevelInfo},
		{float64(40), slog.LevelInfo},
	}

	for _, tt := range tests {
		rec := LogRecord{"levelname": tt.levelname}
		assert.Equal(t, tt.want, rec.Level(), "levelname %v", tt.levelname)
	}
}

func TestLogRecordMessage(t *testing.T) {
	assert.Equal(t, "hello", LogRecord{"msg": "hello", "message": "other"}.Message())
	assert.Equal(t, "other", LogRecord{"message": "other"}.Message())
	assert.Equal(t, "42", LogRecord{"msg": float64(42)}.Message())
	assert.Empty(t, LogRecord{}.Message())
}

func TestLogRecordTime(t *testing.T) {
	rec := LogRecord{"created": 1700000000.25}
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 250000000, time.UTC), rec.Time())

	assert.True(t, LogRecord{}.Time().IsZero())
	assert.True(t, LogRecord{"created": "yesterday"}.Time().IsZero())
}

func TestLogRecordAttrs(t *testing.T) {
	rec := LogRecord{
		"msg":       "started",
		"levelname": "INFO",
		"levelno":   float64(20),
		"created":   1700000000.0,
		"name":      "task.123",
		"funcName":  "run",
	}

	attrs := rec.Attrs()
	if assert.Len(t, attrs, 2) {
		assert.Equal(t, "funcName", attrs[0].Key)
		assert.Equal(t, "name", attrs[1].Key)
		assert.Equal(t, "task.123", attrs[1].Value.String())
	}
}

func TestLogRecordArgs(t *testing.T) {
	tests := []struct {
		name     string
		rec      LogRecord
		wantMsg  string
		wantArgs bool
	}{
		{
			name:    "positional",
			rec:     LogRecord{"msg": "hello %s", "args": []any{"w"}},
			wantMsg: "hello w",
		},
		{
			name:    "several conversions",
			rec:     LogRecord{"msg": "job %s took %.2f s (%d%%)", "args": []any{"j1", 1.5, float64(40)}},
			wantMsg: "job j1 took 1.50 s (40%)",
		},
		{
			name:    "mapping",
			rec:     LogRecord{"msg": "cluster %(id)s is %(status)s", "args": []any{map[string]any{"id": "c1", "status": "running"}}},
			wantMsg: "cluster c1 is running",
		},
		{
			name:    "empty args leave percent signs alone",
			rec:     LogRecord{"msg": "100% done", "args": []any{}},
			wantMsg: "100% done",
		},
		{
			name:     "mismatch keeps the raw message and args",
			rec:      LogRecord{"msg": "hello %s %s", "args": []any{"w"}},
			wantMsg:  "hello %s %s",
			wantArgs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.rec.Message())

			var keys []string
			for _, a := range tt.rec.Attrs() {
				keys = append(keys, a.Key)
			}
			if tt.wantArgs {
				assert.Contains(t, keys, "args")
			} else {
				assert.NotContains(t, keys, "args")
			}
		})
	}
}
