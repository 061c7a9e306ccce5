package options

import (
	"github.com/spf13/cobra"
)

// MoneyOptions
type MoneyOptions struct {
	Category string
	Amount   string
}

// AddAmountArg wires the shared --amount flag. The amount stays a string
// until the core validates it; a bad value is rejected there, not here.
func AddAmountArg(cmd *cobra.Command, o *MoneyOptions) {
	cmd.Flags().StringVarP(&o.Amount, "amount", "a", "",
		`Amount of money, example: --amount=2500.`)
}

func AddCategoryArg(cmd *cobra.Command, o *MoneyOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		`Budget category the expense counts against. Matched exactly.`)
}
