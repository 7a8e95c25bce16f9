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
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"
)

// Document is an arbitrary JSON object, used for caller supplied request
// bodies and for responses that are passed through untyped.
type Document = map[string]any

// Cluster is a compute cluster registered with the server.
type Cluster struct {
	ID     string        `json:"_id" yaml:"_id"`
	Name   string        `json:"name,omitempty" yaml:"name,omitempty"`
	Type   string        `json:"type,omitempty" yaml:"type,omitempty"`
	Status string        `json:"status" yaml:"status"`
	UserID string        `json:"userId" yaml:"userId"`
	Config ClusterConfig `json:"config" yaml:"config"`
}

// ClusterConfig holds the connection details of a cluster.
type ClusterConfig struct {
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// Job is a unit of work submitted to a cluster.
type Job struct {
	ID        string `json:"_id" yaml:"_id"`
	Name      string `json:"name" yaml:"name"`
	Status    string `json:"status" yaml:"status"`
	ClusterID string `json:"clusterId,omitempty" yaml:"clusterId,omitempty"`
}

// Taskflow is a server-side workflow that owns jobs.
type Taskflow struct {
	ID            string        `json:"_id" yaml:"_id"`
	Status        string        `json:"status" yaml:"status"`
	TaskFlowClass string        `json:"taskFlowClass" yaml:"taskFlowClass"`
	Meta          *TaskflowMeta `json:"meta,omitempty" yaml:"meta,omitempty"`
	Log           []LogRecord   `json:"log,omitempty" yaml:"log,omitempty"`
}

// TaskflowMeta is the metadata the server attaches once a taskflow has jobs.
type TaskflowMeta struct {
	Jobs []Job `json:"jobs,omitempty" yaml:"jobs,omitempty"`

	// populated is set when the decoded meta object had at least one field.
	populated bool
}

// UnmarshalJSON decodes the meta object and remembers whether it was empty.
func (m *TaskflowMeta) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode taskflow meta: %w", err)
	}

	type plain TaskflowMeta
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to decode taskflow meta: %w", err)
	}
	*m = TaskflowMeta(p)
	m.populated = len(fields) > 0
	return nil
}

// Empty reports whether the meta is absent or an object without fields.
func (m *TaskflowMeta) Empty() bool {
	return m == nil || (!m.populated && len(m.Jobs) == 0)
}

// User identifies the owner of a cluster.
type User struct {
	ID    string `json:"_id" yaml:"_id"`
	Login string `json:"login" yaml:"login"`
}

// LogRecord is one entry of a taskflow log, shaped like a Python logging record.
type LogRecord map[string]any

var logRecordCoreKeys = map[string]bool{
	"msg":       true,
	"message":   true,
	"levelname": true,
	"levelno":   true,
	"created":   true,
}

// Level maps the record's levelname onto a slog level.
func (r LogRecord) Level() slog.Level {
	name, _ := r["levelname"].(string)
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "CRITICAL", "FATAL":
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}

// Message returns msg, falling back to message. When the record carries
// args, they are substituted into msg with %-style conversions; a message
// that does not match its args is returned unformatted.
func (r LogRecord) Message() string {
	msg, _ := r.message()
	return msg
}

func (r LogRecord) message() (string, bool) {
	var msg string
	for _, key := range []string{"msg", "message"} {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString {
			msg = s
		} else {
			msg = fmt.Sprint(v)
		}
		break
	}

	args, ok := newPercentArgs(r["args"])
	if !ok {
		return msg, false
	}
	formatted, err := percentFormat(msg, args)
	if err != nil {
		return msg, false
	}
	return formatted, true
}

// Time returns the record's creation time, zero when absent.
func (r LogRecord) Time() time.Time {
	created, ok := r["created"].(float64)
	if !ok || created <= 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(created)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// Attrs returns every field except the ones exposed by Level, Message and
// Time, sorted by key. args is kept only when it could not be applied.
func (r LogRecord) Attrs() []slog.Attr {
	_, applied := r.message()
	_, hasArgs := newPercentArgs(r["args"])

	keys := make([]string, 0, len(r))
	for k := range r {
		if logRecordCoreKeys[k] {
			continue
		}
		if k == "args" && (applied || !hasArgs) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, r[k]))
	}
	return attrs
}
