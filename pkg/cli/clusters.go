/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/OpenChemistry/ocrunner/pkg/resource"
	"github.com/OpenChemistry/ocrunner/pkg/serializer"
)

// clusterRow is a cluster with its owner's login resolved.
type clusterRow struct {
	resource.Cluster `yaml:",inline"`
	User             string `json:"user" yaml:"user"`
}

func clustersCmd() *cli.Command {
	return &cli.Command{
		Name:  "clusters",
		Usage: "Inspect clusters registered with the server",
		Commands: []*cli.Command{
			{
				Name:  "ls",
				Usage: "List clusters",
				Description: `List every cluster visible to the API key with its host, id, status
and the login of the user that owns it. The owner is looked up with one
request per cluster.`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					format, err := parseOutputFormat(cmd)
					if err != nil {
						return err
					}

					client, err := connect(ctx, cmd)
					if err != nil {
						return err
					}

					clusters, err := resource.NewClusters(client).List(ctx)
					if err != nil {
						return err
					}

					rows, err := resolveOwners(ctx, resource.NewUsers(client), clusters)
					if err != nil {
						return err
					}

					if format != serializer.FormatTable {
						return serialize(ctx, cmd, format, rows)
					}

					t := serializer.NewTable(72,
						serializer.Column{Title: "host", Width: 15},
						serializer.Column{Title: "id", Width: 28},
						serializer.Column{Title: "status", Width: 12},
						serializer.Column{Title: "user", Width: 15},
					)
					for _, r := range rows {
						t.Append(r.Config.Host, r.ID, r.Status, r.User)
					}
					return t.Render(out(cmd))
				},
			},
		},
	}
}

// resolveOwners looks up the owner login of each cluster, one request per row.
func resolveOwners(ctx context.Context, users *resource.Users, clusters []resource.Cluster) ([]clusterRow, error) {
	rows := make([]clusterRow, 0, len(clusters))
	for _, c := range clusters {
		row := clusterRow{Cluster: c}
		if c.UserID != "" {
			login, err := users.Login(ctx, c.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve owner of cluster %s: %w", c.ID, err)
			}
			row.User = login
		}
		rows = append(rows, row)
	}
	return rows, nil
}
