package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/vocab/internal/deck"
	"github.com/f3rmion/vocab/internal/tui/components"
	"github.com/f3rmion/vocab/internal/vocab"
)

// Screen identifies one of the top-level views.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenWords
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenWords:
		return "words"
	case ScreenSettings:
		return "settings"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// SwitchMsg requests a screen change.
type SwitchMsg struct {
	To Screen
}

func switchTo(s Screen) tea.Cmd {
	return func() tea.Msg {
		return SwitchMsg{To: s}
	}
}

type homeAction struct {
	title  string
	detail string
	to     Screen
}

var homeActions = []homeAction{
	{title: "▶ Continue Learning", detail: "Pick up where you left off", to: ScreenWords},
	{title: "⚙ Settings", detail: "Preferences and appearance", to: ScreenSettings},
}

var (
	homeUp     = key.NewBinding(key.WithKeys("up", "k"))
	homeDown   = key.NewBinding(key.WithKeys("down", "j"))
	homeSelect = key.NewBinding(key.WithKeys("enter", " "))
)

// HomeModel is the landing view: stats, quick actions and wordbooks.
type HomeModel struct {
	deck     *deck.Deck
	selected int
	theme    components.Theme

	width  int
	height int
}

// NewHomeModel creates a new home view model.
func NewHomeModel(d *deck.Deck, dark bool) HomeModel {
	return HomeModel{
		deck:  d,
		theme: components.ThemeFor(dark),
	}
}

// SetSize updates the view dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme switches the palette.
func (m *HomeModel) SetTheme(t components.Theme) {
	m.theme = t
}

// Update handles messages.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, homeUp):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, homeDown):
		if m.selected < len(homeActions)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, homeSelect):
		return m, switchTo(homeActions[m.selected].to)
	}
	return m, nil
}

// View renders the home view.
func (m HomeModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Help().Render("Welcome back"))
	b.WriteString("\n")
	b.WriteString(t.Title().Render("I'm Learning Words"))
	b.WriteString("\n\n")

	b.WriteString(m.renderStats())
	b.WriteString("\n\n")

	for i, a := range homeActions {
		title := t.Body().Bold(true).Render(a.title)
		if i == m.selected {
			title = t.Selected().Render(a.title)
		}
		b.WriteString(title + "  " + t.Help().Render(a.detail) + "\n")
	}
	b.WriteString("\n")

	if len(m.deck.Wordbooks) > 0 {
		b.WriteString(t.Subtitle().Render("Wordbooks"))
		b.WriteString("\n")
		b.WriteString(m.renderWordbooks())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Help().Render("↑/↓ select • enter open"))

	return b.String()
}

func (m HomeModel) renderStats() string {
	t := m.theme
	s := m.deck.Stats

	stat := func(label string, value int) string {
		return t.Box().Padding(0, 2).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				t.Title().Render(fmt.Sprintf("%d", value)),
				t.Help().Render(label),
			),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Total words", s.Total),
		" ",
		stat("Learned", s.Learned),
		" ",
		stat("Day streak", s.StreakDays),
	)
}

// renderWordbooks lays the wordbooks out two per row.
func (m HomeModel) renderWordbooks() string {
	var rows []string
	var row []string
	for _, wb := range m.deck.Wordbooks {
		row = append(row, m.renderWordbook(wb), " ")
		if len(row) == 4 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m HomeModel) renderWordbook(wb vocab.Wordbook) string {
	t := m.theme
	color := t.Border
	if wb.Color != "" {
		color = lipgloss.Color(wb.Color)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(20).
		Render(
			lipgloss.NewStyle().Bold(true).Foreground(color).Render(wb.Title) + "\n" +
				t.Help().Render(fmt.Sprintf("%d words", wb.Count)),
		)
}
