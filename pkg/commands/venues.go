package commands

import (
	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/runner/get"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func addVenues(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Browse the venue directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := get.Get{Session: s, Kind: get.Venues}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
