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

package serializer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ocerrors "github.com/OpenChemistry/ocrunner/pkg/errors"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestNewReader(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}

	r, err := NewReader(FormatYAML, strings.NewReader("name: relax\nstatus: queued\n"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var job testJob
	if err := r.Deserialize(&job); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if job.Name != "relax" || job.Status != "queued" {
		t.Errorf("unexpected job %+v", job)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&struct{}{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil reader = %v", err)
	}

	r = &Reader{format: FormatJSON}
	if err := r.Deserialize(&struct{}{}); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestReadJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"object", `{"taskFlowClass": "a.B", "input": {"n": 1}}`, false},
		{"object with trailing whitespace", "{\"a\": 1}\n\n", false},
		{"empty object", `{}`, false},
		{"array", `[1, 2]`, true},
		{"string", `"taskflow"`, true},
		{"null", `null`, true},
		{"invalid", `{"a": `, true},
		{"empty file", ``, true},
		{"trailing data", `{"a": 1} {"b": 2}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "doc.json", tt.content)

			doc, err := ReadJSONObject(path)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ReadJSONObject failed: %v", err)
				}
				if doc == nil {
					t.Fatal("expected non-nil document")
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error, got document %v", doc)
			}
			if code := ocerrors.CodeOf(err); code != ocerrors.ErrCodeInvalidRequest {
				t.Errorf("error code = %s, want %s", code, ocerrors.ErrCodeInvalidRequest)
			}
		})
	}
}

func TestReadJSONObject_MissingFile(t *testing.T) {
	_, err := ReadJSONObject(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
	if ocerrors.CodeOf(err) != ocerrors.ErrCodeInvalidRequest {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}
