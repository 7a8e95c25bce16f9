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
	"errors"
	"fmt"
	"net/http"

	ocerrors "github.com/OpenChemistry/ocrunner/pkg/errors"
	"github.com/OpenChemistry/ocrunner/pkg/girder"
)

const (
	taskflowsPath         = "/taskflows"
	taskflowsAllPath      = "/taskflows/all"
	taskflowPath          = "/taskflows/{id}"
	taskflowStartPath     = "/taskflows/{id}/start"
	taskflowTerminatePath = "/taskflows/{id}/terminate"
)

// ErrMetaMissing is returned by Taskflows.Jobs when the taskflow carries no meta.
var ErrMetaMissing = ocerrors.New(ocerrors.ErrCodeNotFound, "meta data not present in taskflow")

// Taskflows manages taskflows.
type Taskflows struct {
	r Requester
}

// NewTaskflows returns a Taskflows client.
func NewTaskflows(r Requester) *Taskflows {
	return &Taskflows{r: r}
}

// List returns the caller's taskflows.
func (t *Taskflows) List(ctx context.Context) ([]Taskflow, error) {
	var out []Taskflow
	if err := t.r.Get(ctx, taskflowsPath, unbounded(), &out); err != nil {
		return nil, fmt.Errorf("failed to list taskflows: %w", err)
	}
	return out, nil
}

// ListAll returns every taskflow on the server. Requires an admin key.
func (t *Taskflows) ListAll(ctx context.Context) ([]Taskflow, error) {
	var out []Taskflow
	if err := t.r.Get(ctx, taskflowsAllPath, unbounded(), &out); err != nil {
		return nil, fmt.Errorf("failed to list all taskflows: %w", err)
	}
	return out, nil
}

// Create posts body as a new taskflow definition.
func (t *Taskflows) Create(ctx context.Context, body Document) (*Taskflow, error) {
	var out Taskflow
	if err := t.r.Post(ctx, taskflowsPath, nil, body, &out); err != nil {
		return nil, fmt.Errorf("failed to create taskflow: %w", err)
	}
	return &out, nil
}

// Get fetches a single taskflow.
func (t *Taskflows) Get(ctx context.Context, id string) (*Taskflow, error) {
	path, err := expandID(taskflowPath, id)
	if err != nil {
		return nil, err
	}

	var out Taskflow
	if err := t.r.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get taskflow %s: %w", id, err)
	}
	return &out, nil
}

// Start starts a taskflow. A nil body sends no payload.
func (t *Taskflows) Start(ctx context.Context, id string, body Document) (Document, error) {
	path, err := expandID(taskflowStartPath, id)
	if err != nil {
		return nil, err
	}

	var payload any
	if body != nil {
		payload = body
	}

	var out Document
	if err := t.r.Put(ctx, path, nil, payload, &out); err != nil {
		return nil, fmt.Errorf("failed to start taskflow %s: %w", id, err)
	}
	return out, nil
}

// Terminate asks the server to stop a running taskflow.
func (t *Taskflows) Terminate(ctx context.Context, id string) (Document, error) {
	path, err := expandID(taskflowTerminatePath, id)
	if err != nil {
		return nil, err
	}

	var out Document
	if err := t.r.Put(ctx, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to terminate taskflow %s: %w", id, err)
	}
	return out, nil
}

// Delete removes a taskflow. The server answers 202 Accepted while the
// deletion is still in progress; that response counts as success and its
// body is returned.
func (t *Taskflows) Delete(ctx context.Context, id string) (Document, error) {
	path, err := expandID(taskflowPath, id)
	if err != nil {
		return nil, err
	}

	var out Document
	err = t.r.Delete(ctx, path, nil, &out)
	if err == nil {
		return out, nil
	}

	var httpErr *girder.HTTPError
	if errors.As(err, &httpErr) && httpErr.Status == http.StatusAccepted {
		var accepted Document
		if derr := httpErr.Decode(&accepted); derr != nil {
			return nil, fmt.Errorf("failed to delete taskflow %s: %w", id, derr)
		}
		return accepted, nil
	}
	return nil, fmt.Errorf("failed to delete taskflow %s: %w", id, err)
}

// Log returns the log records of a taskflow.
func (t *Taskflows) Log(ctx context.Context, id string) ([]LogRecord, error) {
	tf, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return tf.Log, nil
}

// Status returns the status of a taskflow.
func (t *Taskflows) Status(ctx context.Context, id string) (string, error) {
	tf, err := t.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return tf.Status, nil
}

// Jobs returns the jobs recorded in a taskflow's meta, or ErrMetaMissing when
// meta is absent or empty.
func (t *Taskflows) Jobs(ctx context.Context, id string) ([]Job, error) {
	tf, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tf.Meta.Empty() {
		return nil, ErrMetaMissing
	}
	return tf.Meta.Jobs, nil
}
