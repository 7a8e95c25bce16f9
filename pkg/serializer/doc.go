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

// Package serializer provides encoding of command results and decoding of
// input documents.
//
// # Output Formats
//
// JSON:
//   - Indented, machine-parseable representation of the API records
//
// YAML:
//   - Human-readable representation with 2-space indentation
//
// Table:
//   - Fixed-width tables for lists (see Table)
//   - Flattened FIELD/VALUE tables for single records (Writer)
//
// # Usage
//
// Writing a record:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, taskflow); err != nil {
//		return err
//	}
//
// Rendering a fixed-width list:
//
//	t := serializer.NewTable(68,
//		serializer.Column{Title: "jobId", Width: 28},
//		serializer.Column{Title: "name", Width: 20},
//		serializer.Column{Title: "status", Width: 30})
//	t.Append(job.ID, job.Name, job.Status)
//	err := t.Render(os.Stdout)
//
// Reading a taskflow definition:
//
//	doc, err := serializer.ReadJSONObject("taskflow.json")
package serializer
