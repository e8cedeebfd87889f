package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/vocab/internal/session"
)

// ToastDuration is how long a notice stays on screen.
const ToastDuration = 2 * time.Second

// NoticeMsg asks the app to show a notice.
type NoticeMsg struct {
	Notice session.Notice
}

// Notify wraps a notice as a command.
func Notify(n session.Notice) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Notice: n}
	}
}

// toastExpiredMsg dismisses toast seq if it is still showing.
type toastExpiredMsg struct {
	seq int
}

// Toast shows one transient notice at a time. A newer notice replaces the
// older one; the older one's dismiss tick is then ignored.
type Toast struct {
	seq     int
	notice  session.Notice
	visible bool
}

// Show displays n and returns the dismiss timer.
func (t *Toast) Show(n session.Notice) tea.Cmd {
	t.seq++
	t.notice = n
	t.visible = true

	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Update handles dismiss ticks. It reports whether msg was consumed.
func (t *Toast) Update(msg tea.Msg) bool {
	expired, ok := msg.(toastExpiredMsg)
	if !ok {
		return false
	}
	if expired.seq == t.seq {
		t.visible = false
	}
	return true
}

// Visible reports whether a notice is showing.
func (t Toast) Visible() bool { return t.visible }

// Notice returns the notice being shown.
func (t Toast) Notice() session.Notice { return t.notice }

// View renders the toast, or "" when hidden.
func (t Toast) View(theme Theme) string {
	if !t.visible {
		return ""
	}

	color := theme.Secondary
	if t.notice.Kind == session.NoticeSuccess {
		color = theme.Success
	}

	text := t.notice.Text
	switch {
	case t.notice.Icon != "":
		text = t.notice.Icon + "  " + text
	case t.notice.Kind == session.NoticeSuccess:
		text = "✓  " + text
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(theme.Text).
		Padding(0, 2).
		Render(text)
}
