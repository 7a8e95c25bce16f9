/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/OpenChemistry/ocrunner/pkg/resource"
	"github.com/OpenChemistry/ocrunner/pkg/serializer"
)

type taskflowStatus struct {
	ID     string `json:"taskflow" yaml:"taskflow"`
	Status string `json:"status" yaml:"status"`
}

func taskflowsCmd() *cli.Command {
	return &cli.Command{
		Name:  "taskflows",
		Usage: "Create, run and inspect taskflows",
		Commands: []*cli.Command{
			taskflowsLsCmd(),
			taskflowsCreateCmd(),
			taskflowsGetCmd(),
			taskflowsStartCmd(),
			taskflowsTerminateCmd(),
			taskflowsDeleteCmd(),
			taskflowsLogCmd(),
			taskflowsStatusCmd(),
			taskflowsJobsCmd(),
		},
	}
}

func taskflowsLsCmd() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "List taskflows",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "List the taskflows of every user (requires an admin key)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			tfs := resource.NewTaskflows(client)
			var list []resource.Taskflow
			if cmd.Bool("all") {
				list, err = tfs.ListAll(ctx)
			} else {
				list, err = tfs.List(ctx)
			}
			if err != nil {
				return err
			}

			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, list)
			}

			t := serializer.NewTable(100,
				serializer.Column{Title: "id", Width: 28},
				serializer.Column{Title: "status", Width: 12},
				serializer.Column{Title: "TaskFlowClass", Width: 60},
			)
			for _, tf := range list {
				t.Append(tf.ID, tf.Status, tf.TaskFlowClass)
			}
			return t.Render(out(cmd))
		},
	}
}

func taskflowsCreateCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a taskflow from a JSON definition",
		ArgsUsage: "<jsonFile>",
		Description: `Create a taskflow from a file holding one JSON object, for example:

  {"taskFlowClass": "cumulus.taskflow.core.test.mytaskflows.SimpleTaskFlow"}

The file is validated locally; nothing is sent when it does not parse.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			args, err := requireArgs(cmd, []string{"jsonFile"})
			if err != nil {
				return err
			}
			body, err := serializer.ReadJSONObject(args[0])
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			tf, err := resource.NewTaskflows(client).Create(ctx, body)
			if err != nil {
				return err
			}

			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, tf)
			}
			_, err = fmt.Fprintf(out(cmd), "Taskflow created\nid: %s\nstatus: %s\n", tf.ID, tf.Status)
			return err
		},
	}
}

func taskflowsGetCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show a taskflow",
		ArgsUsage: "<taskflowId>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			args, err := requireArgs(cmd, []string{"taskflowId"})
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			tf, err := resource.NewTaskflows(client).Get(ctx, args[0])
			if err != nil {
				return err
			}
			return serialize(ctx, cmd, format, tf)
		},
	}
}

func taskflowsStartCmd() *cli.Command {
	return &cli.Command{
		Name:      "start",
		Usage:     "Start a taskflow",
		ArgsUsage: "<taskflowId> <jsonFile>",
		Description: `Start a taskflow. The file holds one JSON object passed to the taskflow
as its start parameters.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			args, err := requireArgs(cmd, []string{"taskflowId", "jsonFile"})
			if err != nil {
				return err
			}
			body, err := serializer.ReadJSONObject(args[1])
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			id := args[0]
			if format == serializer.FormatTable {
				fmt.Fprintf(out(cmd), "Starting task flow: %s\n", id)
			}
			resp, err := resource.NewTaskflows(client).Start(ctx, id, body)
			if err != nil {
				return err
			}
			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, resp)
			}
			return nil
		},
	}
}

func taskflowsTerminateCmd() *cli.Command {
	return &cli.Command{
		Name:      "terminate",
		Usage:     "Terminate a running taskflow",
		ArgsUsage: "<taskflowId>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			args, err := requireArgs(cmd, []string{"taskflowId"})
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			id := args[0]
			if format == serializer.FormatTable {
				fmt.Fprintf(out(cmd), "Terminating task flow: %s\n", id)
			}
			resp, err := resource.NewTaskflows(client).Terminate(ctx, id)
			if err != nil {
				return err
			}
			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, resp)
			}
			return nil
		},
	}
}

func taskflowsDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a taskflow",
		ArgsUsage: "<taskflowId>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			args, err := requireArgs(cmd, []string{"taskflowId"})
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			id := args[0]
			if format == serializer.FormatTable {
				fmt.Fprintf(out(cmd), "Deleting task flow: %s\n", id)
			}
			resp, err := resource.NewTaskflows(client).Delete(ctx, id)
			if err != nil {
				return err
			}
			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, resp)
			}
			return nil
		},
	}
}

func taskflowsLogCmd() *cli.Command {
	return &cli.Command{
		Name:      "log",
		Usage:     "Print the log of a taskflow",
		ArgsUsage: "<taskflowId>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			args, err := requireArgs(cmd, []string{"taskflowId"})
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			id := args[0]
			records, err := resource.NewTaskflows(client).Log(ctx, id)
			if err != nil {
				return err
			}
			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, records)
			}
			return writeTaskflowLog(ctx, out(cmd), id, records)
		},
	}
}

func taskflowsStatusCmd() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Print the status of a taskflow",
		ArgsUsage: "<taskflowId>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			args, err := requireArgs(cmd, []string{"taskflowId"})
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			id := args[0]
			status, err := resource.NewTaskflows(client).Status(ctx, id)
			if err != nil {
				return err
			}

			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, taskflowStatus{ID: id, Status: status})
			}
			_, err = fmt.Fprintf(out(cmd), "taskflow: %s\nstatus: %s\n", id, status)
			return err
		},
	}
}

func taskflowsJobsCmd() *cli.Command {
	return &cli.Command{
		Name:      "jobs",
		Usage:     "List the jobs a taskflow has submitted",
		ArgsUsage: "<taskflowId>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			args, err := requireArgs(cmd, []string{"taskflowId"})
			if err != nil {
				return err
			}

			client, err := connect(ctx, cmd)
			if err != nil {
				return err
			}

			jobs, err := resource.NewTaskflows(client).Jobs(ctx, args[0])
			if errors.Is(err, resource.ErrMetaMissing) {
				fmt.Fprintln(errOut(cmd), "Error: meta data not present in taskflow!")
				return nil
			}
			if err != nil {
				return err
			}

			if format != serializer.FormatTable {
				return serialize(ctx, cmd, format, jobs)
			}
			return jobsTable(jobs).Render(out(cmd))
		},
	}
}
