/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/OpenChemistry/ocrunner/pkg/resource"
	"github.com/OpenChemistry/ocrunner/pkg/serializer"
)

// out returns the writer for command output.
func out(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// errOut returns the writer for diagnostics.
func errOut(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// requireArgs returns the positional arguments when their count is between
// len(required) and len(required)+len(optional).
func requireArgs(cmd *cli.Command, required []string, optional ...string) ([]string, error) {
	n := cmd.NArg()
	if n < len(required) || n > len(required)+len(optional) {
		usage := make([]string, 0, len(required)+len(optional))
		for _, r := range required {
			usage = append(usage, "<"+r+">")
		}
		for _, o := range optional {
			usage = append(usage, "[<"+o+">]")
		}
		return nil, fmt.Errorf("%s: expected arguments %s, got %d", cmd.Name, strings.Join(usage, " "), n)
	}
	return cmd.Args().Slice(), nil
}

func serialize(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	return serializer.NewWriter(format, out(cmd)).Serialize(ctx, v)
}

func jobsTable(jobs []resource.Job) *serializer.Table {
	t := serializer.NewTable(68,
		serializer.Column{Title: "jobId", Width: 28},
		serializer.Column{Title: "name", Width: 20},
		serializer.Column{Title: "status", Width: 30},
	)
	for _, j := range jobs {
		t.Append(j.ID, j.Name, j.Status)
	}
	return t
}

// writeTaskflowLog prints records as logfmt lines between two banners.
func writeTaskflowLog(ctx context.Context, w io.Writer, id string, records []resource.LogRecord) error {
	if _, err := fmt.Fprintf(w, "**** Printing log for taskflow %s ****\n", id); err != nil {
		return err
	}

	h := slog.NewTextHandler(w, nil)
	for _, rec := range records {
		r := slog.NewRecord(rec.Time(), rec.Level(), rec.Message(), 0)
		r.AddAttrs(rec.Attrs()...)
		if err := h.Handle(ctx, r); err != nil {
			return fmt.Errorf("failed to write log record: %w", err)
		}
	}

	_, err := fmt.Fprintln(w, "**** Done printing log ****")
	return err
}
