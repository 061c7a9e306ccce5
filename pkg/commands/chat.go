package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuvraj-makani/event-ease/pkg/runner/chat"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

func addChat(topLevel *cobra.Command, s *session.Session) {
	cmd := &cobra.Command{
		Use:   "chat [question]",
		Short: "Talk to the planning assistant",
		Example: `
chat
chat how is my budget looking
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				r := chat.Ask{Session: s, Text: strings.Join(args, " ")}
				return r.Do(cmd.Context())
			}
			r := chat.Chat{Session: s}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
