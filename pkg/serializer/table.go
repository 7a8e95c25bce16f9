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

package serializer

import (
	"fmt"
	"io"
	"strings"
)

// Column describes one fixed-width table column.
type Column struct {
	Title string
	Width int
}

// Table renders rows as fixed-width, left-justified columns separated by a
// single space, framed by a rule line above and below the header. Cells
// longer than their column are printed in full.
type Table struct {
	rule    int
	columns []Column
	rows    [][]string
}

// NewTable returns a Table whose rule lines are rule characters wide.
func NewTable(rule int, columns ...Column) *Table {
	return &Table{rule: rule, columns: columns}
}

// Append adds a row. Missing trailing values render as empty cells.
func (t *Table) Append(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows appended so far.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	rule := strings.Repeat("=", t.rule)

	titles := make([]string, len(t.columns))
	for i, c := range t.columns {
		titles[i] = c.Title
	}

	if _, err := fmt.Fprintln(w, rule); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	if _, err := fmt.Fprintln(w, t.format(titles)); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, t.format(row)); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	return nil
}

func (t *Table) format(cells []string) string {
	parts := make([]string, len(t.columns))
	for i, c := range t.columns {
		parts[i] = fmt.Sprintf("%-*s", c.Width, cells[i])
	}
	return strings.Join(parts, " ")
}
