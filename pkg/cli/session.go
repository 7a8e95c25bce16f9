/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/OpenChemistry/ocrunner/pkg/defaults"
	ocerrors "github.com/OpenChemistry/ocrunner/pkg/errors"
	"github.com/OpenChemistry/ocrunner/pkg/girder"
	"github.com/OpenChemistry/ocrunner/pkg/progress"
)

var (
	errMissingAPIKey = ocerrors.New(ocerrors.ErrCodeUnauthorized,
		"An api key is required to run this script. See --help for more info")

	// errNoClient is returned after the bootstrap already reported why no
	// client could be created.
	errNoClient = errors.New("no authenticated client")
)

// sessionConfig is everything the bootstrap needs from the command line.
type sessionConfig struct {
	apiURL      string
	apiKey      string
	insecureTLS    bool
	timeout        time.Duration
	connectTimeout time.Duration
	rateLimit      float64
	progress       io.Writer
}

func sessionConfigFromCmd(cmd *cli.Command) sessionConfig {
	cfg := sessionConfig{
		apiURL:         cmd.String("api-url"),
		apiKey:         cmd.String("api-key"),
		insecureTLS:    cmd.Bool("insecure-tls"),
		timeout:        cmd.Duration("timeout"),
		connectTimeout: cmd.Duration("connect-timeout"),
		rateLimit:      cmd.Float("rate-limit"),
	}
	if progress.Enabled(os.Stderr) {
		cfg.progress = os.Stderr
	}
	return cfg
}

// resolveClient builds a client and authenticates it. A missing API key is
// fatal and happens before any request. When the server rejects the key or
// cannot be reached, the reason is written to diag and no client is returned.
func resolveClient(ctx context.Context, cfg sessionConfig, diag io.Writer) (*girder.Client, error) {
	apiURL := cfg.apiURL
	if apiURL == "" {
		apiURL = defaults.APIURL
	}
	if cfg.apiKey == "" {
		return nil, errMissingAPIKey
	}

	opts := []girder.Option{
		girder.WithUserAgent(fmt.Sprintf("%s/%s", name, version)),
		girder.WithRateLimit(cfg.rateLimit, 1),
		girder.WithProgress(cfg.progress),
	}
	if cfg.insecureTLS {
		opts = append(opts, girder.WithInsecureSkipVerify(true))
	}
	if cfg.timeout > 0 {
		opts = append(opts, girder.WithTotalTimeout(cfg.timeout))
	}
	if cfg.connectTimeout > 0 {
		opts = append(opts, girder.WithConnectTimeout(cfg.connectTimeout))
	}

	client, err := girder.New(apiURL, opts...)
	if err != nil {
		return nil, err
	}

	err = client.Authenticate(ctx, cfg.apiKey)
	if err == nil {
		return client, nil
	}

	var httpErr *girder.HTTPError
	switch {
	case errors.As(err, &httpErr) && httpErr.Status >= 500:
		slog.Debug("authentication rejected", "status", httpErr.Status, "message", httpErr.Message())
		fmt.Fprintln(diag, "Error: invalid api key")
		return nil, nil
	case httpErr != nil:
		return nil, fmt.Errorf("authentication failed: %w", err)
	case errors.Is(err, context.Canceled):
		return nil, err
	default:
		fmt.Fprintf(diag, "Failed to connect to server.\n\nThe following error occurred:\n %v\n", err)
		return nil, nil
	}
}

// connect returns the authenticated client for this invocation or errNoClient.
func connect(ctx context.Context, cmd *cli.Command) (*girder.Client, error) {
	client, err := resolveClient(ctx, sessionConfigFromCmd(cmd), errOut(cmd))
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errNoClient
	}
	return client, nil
}
