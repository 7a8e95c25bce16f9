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
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/OpenChemistry/ocrunner/pkg/defaults"
	ocerrors "github.com/OpenChemistry/ocrunner/pkg/errors"
	"github.com/OpenChemistry/ocrunner/pkg/logging"
	"github.com/OpenChemistry/ocrunner/pkg/serializer"
)

const (
	name           = "ocrunner"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with os.Args and exits with the resulting code.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	loadDotEnv(defaults.DotEnvFile)

	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes one invocation and maps its outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.Writer = stdout
	root.ErrWriter = stderr

	err := root.Run(ctx, args)
	if err == nil {
		return 0
	}
	report(stderr, err)
	if errors.Is(err, context.Canceled) {
		return 2
	}
	return 1
}

// report writes the diagnostic for a failed command. The bootstrap has already
// explained errNoClient.
func report(w io.Writer, err error) {
	slog.Debug("command failed", "code", ocerrors.CodeOf(err), "error", err)

	switch {
	case errors.Is(err, errNoClient):
	case errors.Is(err, errMissingAPIKey):
		fmt.Fprintln(w, errMissingAPIKey.Message)
	default:
		fmt.Fprintln(w, err)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Manage clusters, jobs and taskflows on a job orchestration server",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Description: `ocrunner authenticates with an API key and issues one request per command
against the server's REST API. The key and URL may also be supplied through
OCRUNNER_API_KEY and OCRUNNER_API_URL, or a .env file in the working directory.`,
		Flags:  globalFlags(),
		Before: initLogger,
		After:  writeMetrics,
		Commands: []*cli.Command{
			clustersCmd(),
			jobsCmd(),
			taskflowsCmd(),
			whoamiCmd(),
			versionCmd(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api-url",
			Usage:   fmt.Sprintf("API base URL (default: %s)", defaults.APIURL),
			Sources: cli.EnvVars(defaults.EnvAPIURL),
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "API key used to authenticate",
			Sources: cli.EnvVars(defaults.EnvAPIKey),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   string(serializer.FormatTable),
			Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars(defaults.EnvLogLevel),
		},
		&cli.BoolFlag{
			Name:  "insecure-tls",
			Usage: "Skip TLS certificate verification",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: defaults.HTTPClientTimeout,
			Usage: "Total timeout for each API request",
		},
		&cli.DurationFlag{
			Name:  "connect-timeout",
			Value: defaults.HTTPConnectTimeout,
			Usage: "Timeout for establishing a connection to the server",
		},
		&cli.FloatFlag{
			Name:  "rate-limit",
			Usage: "Maximum API requests per second (0 disables the limit)",
		},
		&cli.StringFlag{
			Name:    "metrics-file",
			Usage:   "Write request metrics in prometheus text format to this file after the command",
			Sources: cli.EnvVars(defaults.EnvMetricsFile),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}

func writeMetrics(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("metrics-file")
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	slog.Debug("metrics written", "path", path)
	return nil
}

// loadDotEnv exports variables from path unless they are already set.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}
