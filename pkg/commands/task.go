package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/commands/options"
	"github.com/yuvraj-makani/event-ease/pkg/runner/add"
	"github.com/yuvraj-makani/event-ease/pkg/runner/complete"
	"github.com/yuvraj-makani/event-ease/pkg/runner/get"
	"github.com/yuvraj-makani/event-ease/pkg/runner/remove"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func addTask(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the selected event's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd, s)
	addTaskDone(cmd, s)
	addTaskRm(cmd, s)
	addTaskList(cmd, s)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command, s *session.Session) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
task add "Book caterer" --desc="Get three quotes" --deadline=2026-08-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			to.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := add.Task{
				Session:     s,
				Title:       to.Title,
				Description: to.Description,
				Deadline:    to.Deadline,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddTaskArgs(cmd, to)
	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a task between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			r := complete.Toggle{Session: s, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTaskRm(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			r := remove.Remove{Session: s, Kind: remove.Task, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the selected event's tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := get.Get{Session: s, Kind: get.Tasks}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
