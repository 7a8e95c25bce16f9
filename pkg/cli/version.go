/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/OpenChemistry/ocrunner/pkg/defaults"
	"github.com/OpenChemistry/ocrunner/pkg/resource"
	"github.com/OpenChemistry/ocrunner/pkg/serializer"
	ocversion "github.com/OpenChemistry/ocrunner/pkg/version"
)

type versionInfo struct {
	Client     string `json:"client" yaml:"client"`
	Server     string `json:"server" yaml:"server"`
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Supported  bool   `json:"supported" yaml:"supported"`
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show the client and server versions",
		Description: fmt.Sprintf(`Print the client version and the release reported by the server. A warning
is printed when the server is older than %s.`, defaults.MinServerRelease),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			sv, err := resource.NewSystem(client).Version(ctx)
			if err != nil {
				return err
			}

			info := versionInfo{
				Client:     version,
				Server:     sv.Release,
				APIVersion: sv.APIVersion,
				Supported:  serverSupported(sv.Release),
			}
			if !info.Supported {
				fmt.Fprintf(errOut(cmd), "Warning: server release %q is older than %s or unrecognized\n",
					sv.Release, defaults.MinServerRelease)
			}

			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, info)
			}
			_, err = fmt.Fprintf(out(cmd), "client: %s\nserver: %s\n", info.Client, info.Server)
			return err
		},
	}
}

func serverSupported(release string) bool {
	v, err := ocversion.Parse(release)
	if err != nil {
		slog.Debug("unrecognized server release", "release", release, "error", err)
		return false
	}
	return v.AtLeast(ocversion.MustParse(defaults.MinServerRelease))
}
