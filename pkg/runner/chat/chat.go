// Package chat provides the assistant view. Replies are computed the
// moment a message is sent; the typing pause before they appear is
// purely cosmetic and never reorders or drops a reply.
package chat

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yuvraj-makani/event-ease/pkg/printers"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

// Chat opens the interactive assistant view.
type Chat struct {
	Session *session.Session
}

func (n *Chat) Do(ctx context.Context) error {
	m := newModel(n.Session)
	if err := tea.NewProgram(m).Start(); err != nil {
		fmt.Fprintln(os.Stderr, "error running chat:", err)
		return err
	}
	return nil
}

// Ask answers a single question without opening the chat view.
type Ask struct {
	Session *session.Session
	Text    string
}

func (n *Ask) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Currency: n.Session.Config.Currency}
	reply := n.Session.Responder.Respond(n.Text, n.Session.Snapshot())
	pp.NewLine()
	fmt.Println(reply)
	pp.NewLine()
	return nil
}

// delayFor reads the configured typing delay. Even a zero delay goes
// through the timer so replies always land after the message that
// prompted them.
func delayFor(s *session.Session) time.Duration {
	d := s.Config.TypingDelay
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}
