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

package girder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	ocerrors "github.com/OpenChemistry/ocrunner/pkg/errors"
)

// HTTPError is returned for every response whose status is not a success status.
type HTTPError struct {
	Status int
	Method string
	URL    string
	Body   []byte
}

type errorDocument struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	msg := e.Message()
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("HTTP error %d: %s %s: %s", e.Status, e.Method, e.URL, msg)
}

// Message returns the server supplied message. Girder error documents yield
// their "message" field; any other body is returned trimmed.
func (e *HTTPError) Message() string {
	trimmed := bytes.TrimSpace(e.Body)
	if len(trimmed) == 0 {
		return ""
	}
	var doc errorDocument
	if err := json.Unmarshal(trimmed, &doc); err == nil && doc.Message != "" {
		return doc.Message
	}
	return string(trimmed)
}

// Decode unmarshals the response body into out. An empty body leaves out untouched.
func (e *HTTPError) Decode(out any) error {
	if len(bytes.TrimSpace(e.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Body, out); err != nil {
		return fmt.Errorf("failed to decode %d response body: %w", e.Status, err)
	}
	return nil
}

// Code classifies the status.
func (e *HTTPError) Code() ocerrors.ErrorCode {
	return ocerrors.CodeForStatus(e.Status)
}

func isSuccess(status int) bool {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return true
	default:
		return false
	}
}
