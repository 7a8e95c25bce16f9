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

package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type route struct {
	status int
	body   string
}

// fakeServer mimics the job server under /api/v1 and records each request.
type fakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]route
	requests []string
	bodies   map[string]string
}

func newFakeServer(t *testing.T, routes map[string]route) *fakeServer {
	t.Helper()

	fs := &fakeServer{
		routes: map[string]route{
			"POST /api/v1/api_key/token": {body: `{"authToken":{"token":"tok","expires":"2030-01-01"}}`},
		},
		bodies: make(map[string]string),
	}
	for k, v := range routes {
		fs.routes[k] = v
	}

	fs.Server = httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	data, _ := io.ReadAll(r.Body)

	fs.mu.Lock()
	fs.requests = append(fs.requests, key)
	fs.bodies[key] = string(data)
	rt, ok := fs.routes[key]
	fs.mu.Unlock()

	if key != "POST /api/v1/api_key/token" && r.Header.Get("Girder-Token") != "tok" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"You must be logged in.","type":"access"}`)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"No matching route.","type":"rest"}`)
		return
	}

	status := rt.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, rt.body)
}

func (fs *fakeServer) Requests() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.requests...)
}

func (fs *fakeServer) Body(key string) string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.bodies[key]
}

type result struct {
	stdout string
	stderr string
	code   int
}

// isolateEnv clears variables that would otherwise leak into flag resolution.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OCRUNNER_API_URL", "")
	t.Setenv("OCRUNNER_API_KEY", "")
	t.Setenv("OCRUNNER_METRICS_FILE", "")
	t.Setenv("LOG_LEVEL", "error")
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{name}, args...), &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// runAgainst runs the CLI authenticated against fs.
func runAgainst(t *testing.T, fs *fakeServer, args ...string) result {
	t.Helper()
	isolateEnv(t)
	base := []string{"--api-url", fs.URL + "/api/v1", "--api-key", "key"}
	return runCLI(t, append(base, args...)...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
