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

const clustersPath = "/clusters"

// Clusters lists clusters.
type Clusters struct {
	r Requester
}

// NewClusters returns a Clusters client.
func NewClusters(r Requester) *Clusters {
	return &Clusters{r: r}
}

// List returns every cluster visible to the caller.
func (c *Clusters) List(ctx context.Context) ([]Cluster, error) {
	var out []Cluster
	if err := c.r.Get(ctx, clustersPath, unbounded(), &out); err != nil {
		return nil, fmt.Errorf("failed to list clusters: %w", err)
	}
	return out, nil
}
