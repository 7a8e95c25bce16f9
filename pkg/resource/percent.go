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
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	errTooFewArgs    = errors.New("not enough arguments for format string")
	errTooManyArgs   = errors.New("not all arguments converted during string formatting")
	errBadConversion = errors.New("unsupported format conversion")
)

// percentArgs holds the arguments of a %-style format: either a positional
// list or a mapping addressed by %(name)s.
type percentArgs struct {
	list   []any
	named  map[string]any
	cursor int
}

// newPercentArgs follows the logging rule that a single non-empty mapping
// argument is used for named lookups.
func newPercentArgs(args any) (*percentArgs, bool) {
	switch v := args.(type) {
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		if len(v) == 1 {
			if m, ok := v[0].(map[string]any); ok && len(m) > 0 {
				return &percentArgs{named: m}, true
			}
		}
		return &percentArgs{list: v}, true
	case map[string]any:
		if len(v) == 0 {
			return nil, false
		}
		return &percentArgs{named: v}, true
	case nil:
		return nil, false
	default:
		return &percentArgs{list: []any{v}}, true
	}
}

func (a *percentArgs) next() (any, error) {
	if a.named != nil {
		return nil, fmt.Errorf("%w: format requires a mapping key", errBadConversion)
	}
	if a.cursor >= len(a.list) {
		return nil, errTooFewArgs
	}
	v := a.list[a.cursor]
	a.cursor++
	return v, nil
}

func (a *percentArgs) lookup(key string) (any, error) {
	if a.named == nil {
		return nil, fmt.Errorf("%w: format requires a mapping", errBadConversion)
	}
	v, ok := a.named[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", errTooFewArgs, key)
	}
	return v, nil
}

// percentFormat applies printf-style conversions the way Python's % operator
// does for log messages.
func percentFormat(format string, args *percentArgs) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			b.WriteByte(ch)
			continue
		}
		i++
		if i >= len(format) {
			return "", fmt.Errorf("%w: incomplete format", errBadConversion)
		}
		if format[i] == '%' {
			b.WriteByte('%')
			continue
		}

		var (
			value    any
			hasValue bool
		)
		if format[i] == '(' {
			end := strings.IndexByte(format[i:], ')')
			if end < 0 {
				return "", fmt.Errorf("%w: incomplete format key", errBadConversion)
			}
			v, err := args.lookup(format[i+1 : i+end])
			if err != nil {
				return "", err
			}
			value, hasValue = v, true
			i += end + 1
		}

		start := i
		for i < len(format) && strings.IndexByte("#0- +", format[i]) >= 0 {
			i++
		}
		flags := format[start:i]

		width, next, err := readCount(format, i, args)
		if err != nil {
			return "", err
		}
		i = next

		precision := -1
		if i < len(format) && format[i] == '.' {
			precision, next, err = readCount(format, i+1, args)
			if err != nil {
				return "", err
			}
			if precision < 0 {
				precision = 0
			}
			i = next
		}
		for i < len(format) && strings.IndexByte("hlL", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			return "", fmt.Errorf("%w: incomplete format", errBadConversion)
		}

		if !hasValue {
			if value, err = args.next(); err != nil {
				return "", err
			}
		}

		out, err := convert(format[i], flags, width, precision, value)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}

	if args.named == nil && args.cursor < len(args.list) {
		return "", errTooManyArgs
	}
	return b.String(), nil
}

// readCount parses a width or precision, which may be * to take the next argument.
func readCount(format string, i int, args *percentArgs) (int, int, error) {
	if i < len(format) && format[i] == '*' {
		v, err := args.next()
		if err != nil {
			return 0, i, err
		}
		n, ok := v.(float64)
		if !ok {
			return 0, i, fmt.Errorf("%w: * wants an integer", errBadConversion)
		}
		return int(n), i + 1, nil
	}
	start := i
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	if start == i {
		return -1, i, nil
	}
	n, err := strconv.Atoi(format[start:i])
	if err != nil {
		return 0, i, fmt.Errorf("%w: %v", errBadConversion, err)
	}
	return n, i, nil
}

func convert(verb byte, flags string, width, precision int, value any) (string, error) {
	switch verb {
	case 's', 'r', 'a':
		s := pyStr(value)
		if verb != 's' {
			s = pyRepr(value)
		}
		if precision >= 0 && precision < len([]rune(s)) {
			s = string([]rune(s)[:precision])
		}
		return pad(s, flags, width), nil

	case 'c':
		switch v := value.(type) {
		case float64:
			return pad(string(rune(int64(v))), flags, width), nil
		case string:
			if len([]rune(v)) == 1 {
				return pad(v, flags, width), nil
			}
		}
		return "", fmt.Errorf("%w: %%c requires an int or a single character", errBadConversion)

	case 'd', 'i', 'u', 'o', 'x', 'X':
		n, ok := value.(float64)
		if !ok {
			if bv, isBool := value.(bool); isBool {
				n, ok = boolNumber(bv), true
			}
		}
		if !ok {
			return "", fmt.Errorf("%w: %%%c requires a number, not %T", errBadConversion, verb, value)
		}
		goVerb := verb
		switch verb {
		case 'i', 'u':
			goVerb = 'd'
		case 'o':
			if strings.Contains(flags, "#") {
				flags = strings.ReplaceAll(flags, "#", "")
				goVerb = 'O'
			}
		}
		return fmt.Sprintf(goFormat(flags, width, precision, goVerb), int64(math.Trunc(n))), nil

	case 'e', 'E', 'f', 'F', 'g', 'G':
		n, ok := value.(float64)
		if !ok {
			if bv, isBool := value.(bool); isBool {
				n, ok = boolNumber(bv), true
			}
		}
		if !ok {
			return "", fmt.Errorf("%w: %%%c requires a number, not %T", errBadConversion, verb, value)
		}
		if precision < 0 {
			precision = 6
		}
		return fmt.Sprintf(goFormat(flags, width, precision, verb), n), nil

	default:
		return "", fmt.Errorf("%w: %%%c", errBadConversion, verb)
	}
}

func goFormat(flags string, width, precision int, verb byte) string {
	var b strings.Builder
	b.WriteByte('%')
	b.WriteString(flags)
	if width > 0 {
		b.WriteString(strconv.Itoa(width))
	}
	if precision >= 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(precision))
	}
	b.WriteByte(verb)
	return b.String()
}

func pad(s, flags string, width int) string {
	n := len([]rune(s))
	if width <= n {
		return s
	}
	fill := strings.Repeat(" ", width-n)
	if strings.Contains(flags, "-") {
		return s + fill
	}
	return fill + s
}

func boolNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// pyStr renders a decoded JSON value the way str() renders the original value.
func pyStr(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return pyRepr(v)
}

// pyRepr renders a decoded JSON value the way repr() renders the original value.
func pyRepr(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	case string:
		if strings.Contains(t, "'") && !strings.Contains(t, `"`) {
			return `"` + t + `"`
		}
		return "'" + strings.ReplaceAll(t, "'", `\'`) + "'"
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e16 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = pyRepr(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = pyRepr(k) + ": " + pyRepr(t[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(t)
	}
}
