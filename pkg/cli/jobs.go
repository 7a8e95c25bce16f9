/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/OpenChemistry/ocrunner/pkg/resource"
	"github.com/OpenChemistry/ocrunner/pkg/serializer"
)

func jobsCmd() *cli.Command {
	return &cli.Command{
		Name:  "jobs",
		Usage: "Inspect jobs",
		Commands: []*cli.Command{
			{
				Name:  "ls",
				Usage: "List jobs",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					format, err := parseOutputFormat(cmd)
					if err != nil {
						return err
					}

					client, err := connect(ctx, cmd)
					if err != nil {
						return err
					}

					jobs, err := resource.NewJobs(client).List(ctx)
					if err != nil {
						return err
					}

					if format != serializer.FormatTable {
						return serialize(ctx, cmd, format, jobs)
					}
					return jobsTable(jobs).Render(out(cmd))
				},
			},
		},
	}
}
