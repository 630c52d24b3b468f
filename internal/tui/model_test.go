package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cryptobuddy/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAsker struct {
	reply domain.Reply
	err   error
	got   []string
}

func (s *stubAsker) Ask(ctx context.Context, msg string) (*domain.Exchange, error) {
	s.got = append(s.got, msg)
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Exchange{UserMessage: msg, Reply: s.reply}, nil
}

func typeText(m *ChatModel, text string) {
	m.input.SetValue(text)
}

func TestSubmitAsksAndRendersReply(t *testing.T) {
	asker := &stubAsker{reply: domain.Reply{Intent: domain.IntentHelp, Headline: "💬 I can help you with:", Detail: "• stuff"}}
	m := NewChatModel(asker)
	m.SetSize(80, 24)

	typeText(m, "  help  ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.waiting)
	assert.Equal(t, "", m.input.Value())

	msg := cmd()
	_, _ = m.Update(msg)

	assert.False(t, m.waiting)
	assert.Equal(t, []string{"help"}, asker.got)
	require.Len(t, m.lines, 3)
	assert.Equal(t, "user", m.lines[1].who)
	assert.Contains(t, m.lines[2].text, "I can help you with")
	assert.Contains(t, m.lines[2].text, "• stuff")
}

func TestSubmitIgnoresBlankAndBusy(t *testing.T) {
	asker := &stubAsker{}
	m := NewChatModel(asker)

	typeText(m, "   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	m.waiting = true
	typeText(m, "bitcoin")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, asker.got)
}

func TestAskErrorIsShown(t *testing.T) {
	m := NewChatModel(&stubAsker{err: errors.New("context canceled")})
	typeText(m, "bitcoin")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())

	last := m.lines[len(m.lines)-1]
	assert.Contains(t, last.text, "context canceled")
}

func TestQuitWords(t *testing.T) {
	for _, word := range []string{"quit", "EXIT", "bye"} {
		m := NewChatModel(&stubAsker{})
		typeText(m, word)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd, word)
		assert.IsType(t, tea.QuitMsg{}, cmd(), word)
		assert.True(t, strings.Contains(m.View(), "Happy investing"), word)
	}
}

func TestEscQuits(t *testing.T) {
	m := NewChatModel(&stubAsker{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestWindowResize(t *testing.T) {
	m := NewChatModel(&stubAsker{})
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.view.Width)
	assert.Equal(t, 36, m.view.Height)

	m.SetSize(0, 0)
	assert.Equal(t, 100, m.width)
}

func TestViewShowsThinkingWhileWaiting(t *testing.T) {
	m := NewChatModel(&stubAsker{})
	assert.Contains(t, m.View(), "esc: quit")
	m.waiting = true
	assert.Contains(t, m.View(), "thinking...")
}
