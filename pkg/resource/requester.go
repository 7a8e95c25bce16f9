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
	"net/url"
)

// Requester is the HTTP capability the resource clients depend on.
// *girder.Client implements it.
type Requester interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
	Post(ctx context.Context, path string, params url.Values, body, out any) error
	Put(ctx context.Context, path string, params url.Values, body, out any) error
	Delete(ctx context.Context, path string, params url.Values, out any) error
}

// unbounded returns the query parameters for a list without a page limit.
func unbounded() url.Values {
	return url.Values{"limit": {"0"}}
}
