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

package girder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Outbound request metrics
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ocrunner_http_requests_total",
			Help: "Total number of API requests by method and response code",
		},
		[]string{"method", "code"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ocrunner_http_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method"},
	)
	responseBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ocrunner_http_response_bytes_total",
			Help: "Total number of response body bytes read from the API",
		},
	)
	rateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ocrunner_http_rate_limit_waits_total",
			Help: "Total number of requests delayed by the outbound rate limit",
		},
	)
)
