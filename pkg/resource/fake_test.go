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
	"context"
	"encoding/json"
	"net/url"
)

type call struct {
	method string
	path   string
	params url.Values
	body   any
}

type reply struct {
	body string
	err  error
}

// fakeRequester answers by "METHOD path" and records every call.
type fakeRequester struct {
	replies map[string]reply
	calls   []call
}

func newFake(replies map[string]reply) *fakeRequester {
	return &fakeRequester{replies: replies}
}

func (f *fakeRequester) do(method, path string, params url.Values, body, out any) error {
	f.calls = append(f.calls, call{method: method, path: path, params: params, body: body})
	r, ok := f.replies[method+" "+path]
	if !ok {
		return &notFoundError{path: path}
	}
	if r.err != nil {
		return r.err
	}
	if out == nil || r.body == "" {
		return nil
	}
	return json.Unmarshal([]byte(r.body), out)
}

func (f *fakeRequester) Get(_ context.Context, path string, params url.Values, out any) error {
	return f.do("GET", path, params, nil, out)
}

func (f *fakeRequester) Post(_ context.Context, path string, params url.Values, body, out any) error {
	return f.do("POST", path, params, body, out)
}

func (f *fakeRequester) Put(_ context.Context, path string, params url.Values, body, out any) error {
	return f.do("PUT", path, params, body, out)
}

func (f *fakeRequester) Delete(_ context.Context, path string, params url.Values, out any) error {
	return f.do("DELETE", path, params, nil, out)
}

type notFoundError struct {
	path string
}

func (e *notFoundError) Error() string {
	return "no fake reply for " + e.path
}
