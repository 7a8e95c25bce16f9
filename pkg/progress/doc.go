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

// Package progress renders a single-line transfer indicator for request and
// response bodies.
//
// A Bar counts bytes as they pass through a Reader and hands them to a
// progressbar.ProgressBar, which it creates only after the transfer moves
// more than the configured threshold, so short JSON exchanges stay silent.
// The description carries the position in binary-prefix units from FormatSize.
//
//	bar := progress.NewBar(os.Stderr, "GET /taskflows", resp.ContentLength)
//	body := progress.NewReader(resp.Body, bar)
//
// Enabled reports whether a file is attached to a terminal; callers use it to
// decide whether to attach a Bar at all.
package progress
