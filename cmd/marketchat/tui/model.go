// Package tui renders the KeshoMarket conversation in the terminal. It is a
// pure consumer of the chat engine: all message structure arrives as display
// blocks, resolved products and citations; this package only decides how
// they look.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"keshomarket/internal/chat"
)

// settledMsg signals that a submitted turn has settled (success or fallback).
type settledMsg struct{}

// rejectedMsg signals that the engine refused the input (blank, or a turn
// already pending).
type rejectedMsg struct{}

// Model is the bubbletea model for the chat screen.
type Model struct {
	conv *chat.Conversation

	input    textarea.Model
	viewport viewport.Model
	spin     spinner.Model

	styles Styles
	width  int
	height int
	ready  bool
}

// NewModel builds the chat screen around an existing conversation.
func NewModel(conv *chat.Conversation) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask me anything about the local market..."
	ta.CharLimit = 2000
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		conv:   conv,
		input:  ta,
		spin:   sp,
		styles: DefaultStyles(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input, submission and settle notifications.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.SetWidth(msg.Width - 4)
		m.refreshTranscript()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := m.input.Value()
			m.input.Reset()
			return m.submit(text)
		}

	case settledMsg, rejectedMsg:
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.conv.Pending() {
			m.refreshTranscript()
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit routes one input line into the engine. Quick-reply shortcuts /1../3
// expand to the predefined hints; everything goes through the same Submit.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	text = expandQuickReply(text)
	m.refreshTranscript()
	return m, tea.Batch(m.spin.Tick, submitCmd(m.conv, text))
}

func expandQuickReply(text string) string {
	hints := chat.QuickReplies()
	switch strings.TrimSpace(text) {
	case "/1":
		return hints[0]
	case "/2":
		return hints[1]
	case "/3":
		return hints[2]
	}
	return text
}

// submitCmd runs the blocking Submit off the UI goroutine. The engine
// guarantees at most one in-flight request; a second enter while pending
// settles immediately as a rejection.
func submitCmd(conv *chat.Conversation, text string) tea.Cmd {
	return func() tea.Msg {
		if _, ok := conv.Submit(context.Background(), text); !ok {
			return rejectedMsg{}
		}
		return settledMsg{}
	}
}

func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
