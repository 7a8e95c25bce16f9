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

// Package resource provides typed clients for the clusters, jobs, taskflows
// and users endpoints of the job orchestration API.
//
// Each client wraps a Requester, normally a *girder.Client, and maps one
// method to one REST call:
//
//	tfs := resource.NewTaskflows(client)
//	tf, err := tfs.Create(ctx, resource.Document{"taskFlowClass": cls})
//	if err != nil {
//		return err
//	}
//	err = tfs.Start(ctx, tf.ID, nil)
//
// Identifiers are opaque server strings. They are path-escaped into URL
// templates by ExpandPath and never validated.
//
// List operations always request an unbounded page (limit=0).
package resource
