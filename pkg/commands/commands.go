// Package commands builds the cobra tree for the planning shell. Every
// command closes over the shared session; the shell rebuilds the tree
// per line so flag state never leaks between invocations.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// New assembles the root command over one session.
func New(s *session.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "eventease",
		Short:         "Plan events: tasks, guests, budgets, and a helpful assistant.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd, s)
	return cmd
}

// AddCommands attaches every command family to the root.
func AddCommands(topLevel *cobra.Command, s *session.Session) {
	addEvent(topLevel, s)
	addTask(topLevel, s)
	addGuest(topLevel, s)
	addBudget(topLevel, s)
	addExpense(topLevel, s)
	addAnalytics(topLevel, s)
	addChat(topLevel, s)
	addTemplates(topLevel, s)
	addVenues(topLevel, s)
	addVersion(topLevel)
}
