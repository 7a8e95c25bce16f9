// Package cli implements the ocrunner command-line interface.
//
// # Overview
//
// ocrunner talks to a job orchestration server (a Girder instance with the
// cumulus plugin) and manages three kinds of resources: clusters, jobs and
// taskflows. Each command authenticates once with an API key and issues a
// single request, except the cluster listing which looks up the owner of
// every cluster.
//
// # Commands
//
//	ocrunner clusters ls
//	ocrunner jobs ls
//	ocrunner taskflows ls [--all]
//	ocrunner taskflows create <jsonFile>
//	ocrunner taskflows get <taskflowId>
//	ocrunner taskflows start <taskflowId> <jsonFile>
//	ocrunner taskflows terminate <taskflowId>
//	ocrunner taskflows delete <taskflowId>
//	ocrunner taskflows log <taskflowId>
//	ocrunner taskflows status <taskflowId>
//	ocrunner taskflows jobs <taskflowId>
//	ocrunner whoami
//	ocrunner version
//
// # Global Flags
//
//	--api-url         API base URL (env OCRUNNER_API_URL, default http://localhost:8080/api/v1)
//	--api-key         API key (env OCRUNNER_API_KEY, required)
//	--format, -t      Output format: table, json, yaml (default: table)
//	--log-level       Log level (env LOG_LEVEL, default: warn)
//	--insecure-tls    Skip TLS certificate verification
//	--timeout         Total timeout per request (default: 30s)
//	--connect-timeout Timeout for establishing a connection (default: 5s)
//	--rate-limit      Maximum requests per second (default: unlimited)
//	--metrics-file    Write prometheus request metrics to a file (env OCRUNNER_METRICS_FILE)
//	--help, -h        Show command help
//	--version, -v     Show version information
//
// A .env file in the working directory is loaded before flags are parsed.
// Variables already present in the environment take precedence over it.
//
// # Output Formats
//
// Table (default):
//   - Fixed-width lists framed by rule lines
//   - Short key: value reports for single taskflows
//
// JSON and YAML:
//   - The records returned by the server, for scripting
//
// # Exit Codes
//
//	0  Success (a taskflow without job metadata is reported but not fatal)
//	1  Missing API key, authentication or connection failure, server or input error
//	2  Interrupted by SIGINT/SIGTERM
package cli
