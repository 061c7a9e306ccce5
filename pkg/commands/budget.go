package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/commands/options"
	"github.com/yuvraj-makani/event-ease/pkg/runner/add"
	"github.com/yuvraj-makani/event-ease/pkg/runner/get"
	"github.com/yuvraj-makani/event-ease/pkg/runner/remove"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func addBudget(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the selected event's budget lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addBudgetAdd(cmd, s)
	addBudgetRm(cmd, s)
	addBudgetList(cmd, s)

	topLevel.AddCommand(cmd)
}

func addBudgetAdd(topLevel *cobra.Command, s *session.Session) {
	mo := &options.MoneyOptions{}

	cmd := &cobra.Command{
		Use:   "add CATEGORY",
		Short: "Add a budget line",
		Example: `
budget add Catering --amount=50000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a category")
			}
			mo.Category = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := add.Budget{
				Session:  s,
				Category: mo.Category,
				Amount:   mo.Amount,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddAmountArg(cmd, mo)
	topLevel.AddCommand(cmd)
}

func addBudgetRm(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a budget line, leaving its expenses behind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			r := remove.Remove{Session: s, Kind: remove.Budget, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addBudgetList(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the selected event's budget lines with spend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := get.Get{Session: s, Kind: get.Budgets}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
