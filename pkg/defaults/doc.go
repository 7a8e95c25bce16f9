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

// Package defaults provides centralized configuration constants for ocrunner.
//
// This package defines the compiled-in API endpoint, environment variable names,
// HTTP client timeouts, and other defaults used across the codebase.
// Centralizing these values keeps the CLI, the HTTP client, and the tests in agreement.
//
// # Categories
//
//   - Endpoint defaults: API base URL and the environment variables that override it
//   - HTTP client timeouts: For outbound requests to the API server
//   - Transfer defaults: When the progress indicator starts drawing
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/OpenChemistry/ocrunner/pkg/defaults"
//
//	client, err := girder.New(defaults.APIURL,
//		girder.WithTotalTimeout(defaults.HTTPClientTimeout))
//
// # Timeout Guidelines
//
// No request is ever retried, so the total timeout bounds the whole command:
//
//   - Total request timeout: 30s
//   - Connect and TLS handshake: 5s each
//   - Response headers: 10s
package defaults
