package commands

import (
	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/runner/report"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func addAnalytics(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:     "analytics",
		Aliases: []string{"report"},
		Short:   "Show budget bars and the performance summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := report.Report{Session: s}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
