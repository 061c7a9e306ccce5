package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/commands/options"
	"github.com/yuvraj-makani/event-ease/pkg/runner/add"
	"github.com/yuvraj-makani/event-ease/pkg/runner/get"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// Expenses have add and list only. There is no expense rm: spends are
// permanent records until their event is deleted.
func addExpense(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and list the selected event's spending",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addExpenseAdd(cmd, s)
	addExpenseList(cmd, s)

	topLevel.AddCommand(cmd)
}

func addExpenseAdd(topLevel *cobra.Command, s *session.Session) {
	mo := &options.MoneyOptions{}
	description := ""

	cmd := &cobra.Command{
		Use:   "add DESCRIPTION",
		Short: "Record an expense",
		Example: `
expense add "Deposit to caterer" --category=Catering --amount=15000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a description")
			}
			description = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := add.Expense{
				Session:     s,
				Category:    mo.Category,
				Description: description,
				Amount:      mo.Amount,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddCategoryArg(cmd, mo)
	options.AddAmountArg(cmd, mo)
	topLevel.AddCommand(cmd)
}

func addExpenseList(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the selected event's expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := get.Get{Session: s, Kind: get.Expenses}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
