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

// Package girder implements an authenticated JSON client for a Girder REST API.
//
// A Client is bound to one API base URL (for example
// http://localhost:8080/api/v1). Authenticate exchanges an API key for a
// session token which is then sent as the Girder-Token header on every
// request.
//
//	c, err := girder.New(apiURL, girder.WithTotalTimeout(10*time.Second))
//	if err != nil {
//		return err
//	}
//	if err := c.Authenticate(ctx, apiKey); err != nil {
//		return err
//	}
//	var clusters []map[string]any
//	err = c.Get(ctx, "/clusters", url.Values{"limit": {"0"}}, &clusters)
//
// Responses with status 200, 201 or 204 are successful. Every other status,
// 202 Accepted included, is returned as *HTTPError carrying the raw body so
// callers can decide how to classify it.
//
// Requests are never retried. Every request carries an X-Request-Id header
// and is counted in the ocrunner_http_* prometheus metrics.
package girder
