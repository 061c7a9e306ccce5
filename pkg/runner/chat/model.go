package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/yuvraj-makani/event-ease/pkg/assistant"
	"github.com/yuvraj-makani/event-ease/pkg/session"
)

type sender int

const (
	fromUser sender = iota
	fromBot
)

type message struct {
	from sender
	text string
}

// typedMsg fires when the typing pause for the oldest queued reply ends.
type typedMsg struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).PaddingLeft(1)
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).PaddingLeft(4)
	typingStyle = lipgloss.NewStyle().Faint(true).Italic(true).PaddingLeft(1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type model struct {
	sess  *session.Session
	input textinput.Model
	delay time.Duration

	messages []message
	// queued holds computed replies waiting out their typing pause,
	// oldest first. Replies leave the queue in arrival order.
	queued []string
	typing bool

	width int
}

func newModel(s *session.Session) *model {
	ti := textinput.New()
	ti.Placeholder = "Ask me anything..."
	ti.Focus()
	ti.CharLimit = 200

	return &model{
		sess:     s,
		input:    ti,
		delay:    delayFor(s),
		messages: []message{{from: fromBot, text: assistant.Greeting}},
		width:    80,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case typedMsg:
		if len(m.queued) > 0 {
			m.messages = append(m.messages, message{from: fromBot, text: m.queued[0]})
			m.queued = m.queued[1:]
		}
		if len(m.queued) > 0 {
			return m, m.tick()
		}
		m.typing = false
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()

			// The user line lands in the transcript immediately; only
			// the reply waits out the typing pause.
			m.messages = append(m.messages, message{from: fromUser, text: text})
			reply := m.sess.Responder.Respond(text, m.sess.Snapshot())
			m.queued = append(m.queued, reply)
			if m.typing {
				return m, nil
			}
			m.typing = true
			return m, m.tick()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return typedMsg{}
	})
}

func (m *model) View() string {
	var b strings.Builder

	title := "EventEase Assistant"
	if e, ok := m.sess.Selected(); ok {
		title += " — " + e.Name
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	wrapAt := m.width - 8
	if wrapAt < 20 {
		wrapAt = 20
	}
	for _, msg := range m.messages {
		text := wordwrap.String(msg.text, wrapAt)
		if msg.from == fromUser {
			b.WriteString(userStyle.Render("you: " + text))
		} else {
			b.WriteString(botStyle.Render(text))
		}
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString(typingStyle.Render("assistant is typing..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("try: status · tasks · budget · guests · tips — esc to leave"))
	b.WriteString("\n")
	return b.String()
}
