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
	"fmt"
	"net/url"
	"strings"
)

// ExpandPath replaces every {name} in template with the path-escaped value of
// params[name]. A placeholder without a value or an unbalanced brace is an error.
func ExpandPath(template string, params map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return "", fmt.Errorf("unbalanced '}' in path template %q", template)
			}
			b.WriteString(rest)
			return b.String(), nil
		}
		if strings.IndexByte(rest[:open], '}') >= 0 {
			return "", fmt.Errorf("unbalanced '}' in path template %q", template)
		}

		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return "", fmt.Errorf("unterminated placeholder in path template %q", template)
		}
		name := rest[open+1 : open+closing]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("missing value for {%s} in path template %q", name, template)
		}

		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+closing+1:]
	}
}

// expandID expands a template with a single {id} placeholder.
func expandID(template, id string) (string, error) {
	return ExpandPath(template, map[string]string{"id": id})
}
