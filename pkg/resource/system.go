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

const systemVersionPath = "/system/version"

// ServerVersion is the release information a server reports about itself.
type ServerVersion struct {
	Release    string `json:"release" yaml:"release"`
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	SHA        string `json:"SHA,omitempty" yaml:"SHA,omitempty"`
}

// System reads server wide information.
type System struct {
	r Requester
}

// NewSystem returns a System client.
func NewSystem(r Requester) *System {
	return &System{r: r}
}

// Version returns the release the server is running.
func (s *System) Version(ctx context.Context) (*ServerVersion, error) {
	var out ServerVersion
	if err := s.r.Get(ctx, systemVersionPath, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get server version: %w", err)
	}
	return &out, nil
}
