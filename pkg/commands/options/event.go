package options

import (
	"github.com/spf13/cobra"
)

// EventOptions
type EventOptions struct {
	Name     string
	Date     string
	Time     string
	Template string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Event date, example: --date="2026-09-01".`)
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Event start time, example: --time="18:00".`)
	cmd.Flags().StringVarP(&o.Template, "template", "t", "",
		`Template to seed tasks and budgets from, example: --template=wedding.`)
}
