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

package defaults

// Endpoint defaults.
const (
	// APIURL is used when neither --api-url nor OCRUNNER_API_URL is set.
	APIURL = "http://localhost:8080/api/v1"

	// EnvAPIURL overrides the API base URL.
	EnvAPIURL = "OCRUNNER_API_URL"

	// EnvAPIKey supplies the API key when --api-key is not given.
	EnvAPIKey = "OCRUNNER_API_KEY"

	// EnvMetricsFile names the prometheus text file written after each command.
	EnvMetricsFile = "OCRUNNER_METRICS_FILE"

	// EnvLogLevel sets the log level when --log-level is not given.
	EnvLogLevel = "LOG_LEVEL"

	// DotEnvFile is loaded from the working directory before flags are parsed.
	DotEnvFile = ".env"
)

// Transfer defaults.
const (
	// ProgressThreshold is the number of bytes a single transfer must move
	// before the progress bar starts drawing.
	ProgressThreshold int64 = 256 * 1024

	// ProgressBarWidth is the number of cells in the rendered bar.
	ProgressBarWidth = 36

	// MinServerRelease is the oldest server release the client is tested against.
	MinServerRelease = "3.0"
)
