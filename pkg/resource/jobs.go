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
	"fmt"
)

const jobsPath = "/jobs"

// Jobs lists jobs.
type Jobs struct {
	r Requester
}

// NewJobs returns a Jobs client.
func NewJobs(r Requester) *Jobs {
	return &Jobs{r: r}
}

// List returns every job visible to the caller.
func (j *Jobs) List(ctx context.Context) ([]Job, error) {
	var out []Job
	if err := j.r.Get(ctx, jobsPath, unbounded(), &out); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return out, nil
}
