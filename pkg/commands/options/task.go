package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions
type TaskOptions struct {
	Title       string
	Description string
	Deadline    string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "desc", "d", "",
		`What the task involves.`)
	cmd.Flags().StringVar(&o.Deadline, "deadline", "",
		`Due date for the task, example: --deadline="2026-08-15".`)
}
