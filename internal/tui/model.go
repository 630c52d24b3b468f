package tui

import (
	"context"
	"strings"
	"time"

	"cryptobuddy/internal/domain"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const askTimeout = 30 * time.Second

// Asker answers one chat message.
type Asker interface {
	Ask(ctx context.Context, userMessage string) (*domain.Exchange, error)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	userStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// replyMsg carries the result of an Ask back into the update loop.
type replyMsg struct {
	exchange *domain.Exchange
	err      error
}

type line struct {
	who  string
	text string
}

// ChatModel is a single-screen chat: scrolling transcript on top, input below.
type ChatModel struct {
	asker    Asker
	input    textinput.Model
	view     viewport.Model
	lines    []line
	waiting  bool
	width    int
	height   int
	quitting bool
}

func NewChatModel(asker Asker) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about profitable, green or specific coins..."
	ti.Prompt = "› "
	ti.CharLimit = 500
	ti.Focus()

	m := &ChatModel{
		asker: asker,
		input: ti,
		view:  viewport.New(80, 20),
	}
	m.lines = append(m.lines, line{who: "bot", text: headlineStyle.Render("👋 Hi, I'm CryptoBuddy! Type 'help' to see what I can do.")})
	m.refresh()
	return m
}

// SetSize resizes the transcript and input to fit a terminal of w×h.
func (m *ChatModel) SetSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width, m.height = w, h
	m.view.Width = w
	// title, blank, input, help
	m.view.Height = max(h-4, 3)
	m.input.Width = max(w-4, 10)
	m.refresh()
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.lines = append(m.lines, line{who: "bot", text: errorStyle.Render("Something went wrong: " + msg.err.Error())})
		} else {
			m.lines = append(m.lines, line{who: "bot", text: renderReply(msg.exchange.Reply)})
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.waiting {
		return nil
	}
	m.input.Reset()

	switch strings.ToLower(text) {
	case "quit", "exit", "bye":
		m.quitting = true
		return tea.Quit
	}

	m.lines = append(m.lines, line{who: "user", text: text})
	m.waiting = true
	m.refresh()
	return askCmd(m.asker, text)
}

func askCmd(asker Asker, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()
		ex, err := asker.Ask(ctx, text)
		return replyMsg{exchange: ex, err: err}
	}
}

func (m *ChatModel) View() string {
	if m.quitting {
		return "💰 Happy investing! Remember to do your own research.\n"
	}
	status := "enter: send • pgup/pgdn: scroll • esc: quit"
	if m.waiting {
		status = "thinking..."
	}
	return strings.Join([]string{
		titleStyle.Render("CryptoBuddy"),
		m.view.View(),
		m.input.View(),
		helpStyle.Render(status),
	}, "\n")
}

func (m *ChatModel) refresh() {
	parts := make([]string, 0, len(m.lines))
	for _, l := range m.lines {
		if l.who == "user" {
			parts = append(parts, userStyle.Render("You: ")+l.text)
			continue
		}
		parts = append(parts, l.text)
	}
	content := strings.Join(parts, "\n\n")
	if m.width > 0 {
		content = lipgloss.NewStyle().Width(m.width).Render(content)
	}
	m.view.SetContent(content)
	m.view.GotoBottom()
}

func renderReply(r domain.Reply) string {
	if r.Detail == "" {
		return headlineStyle.Render(r.Headline)
	}
	return headlineStyle.Render(r.Headline) + "\n" + r.Detail
}
