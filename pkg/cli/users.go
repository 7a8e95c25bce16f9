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

type currentUser struct {
	ID    string `json:"_id" yaml:"_id"`
	Login string `json:"login" yaml:"login"`
}

func whoamiCmd() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the user the API key authenticates as",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			users := resource.NewUsers(client)
			id, err := users.CurrentUserID(ctx)
			if err != nil {
				return err
			}

			me := currentUser{ID: id}
			if id != "" {
				if me.Login, err = users.Login(ctx, id); err != nil {
					return err
				}
			}

			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, me)
			}
			_, err = fmt.Fprintf(out(cmd), "id: %s\nlogin: %s\n", me.ID, me.Login)
			return err
		},
	}
}
