package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/vocab/internal/config"
	"github.com/f3rmion/vocab/internal/deck"
	"github.com/f3rmion/vocab/internal/speech"
	"github.com/f3rmion/vocab/internal/tui/components"
	"github.com/f3rmion/vocab/internal/tui/views"
	"go.uber.org/zap"
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	Screen   views.Screen
	Shortcut string
}

// AppModel is the main TUI model
type AppModel struct {
	logger *zap.Logger

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	current       views.Screen
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	homeView     views.HomeModel
	wordsView    views.WordsModel
	settingsView views.SettingsModel

	toast   components.Toast
	theme   components.Theme
	styles  styles
	initCmd tea.Cmd

	// Help overlay
	showHelp bool
}

// NewApp creates the TUI application on the home screen.
func NewApp(d *deck.Deck, cfg *config.Config, speaker speech.Speaker, logger *zap.Logger) AppModel {
	return NewAppAt(d, cfg, speaker, logger, views.ScreenHome)
}

// NewAppAt creates the TUI application opened on screen start.
func NewAppAt(d *deck.Deck, cfg *config.Config, speaker speech.Speaker, logger *zap.Logger, start views.Screen) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	menuItems := []MenuItem{
		{Label: "Home", Screen: views.ScreenHome, Shortcut: "1"},
		{Label: "Words", Screen: views.ScreenWords, Shortcut: "2"},
		{Label: "Settings", Screen: views.ScreenSettings, Shortcut: "3"},
	}

	theme := components.ThemeFor(cfg.Settings.DarkMode)
	app := AppModel{
		logger:       logger,
		sidebarWidth: 16,
		menuItems:    menuItems,
		theme:        theme,
		styles:       newStyles(theme),

		homeView:     views.NewHomeModel(d, cfg.Settings.DarkMode),
		wordsView:    views.NewWordsModel(d, cfg, speaker, logger),
		settingsView: views.NewSettingsModel(cfg, logger),
	}

	app.current = start
	app.selectMenu(start)
	if start == views.ScreenWords {
		app.initCmd = app.wordsView.Mount()
	}
	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.toast.Update(msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "1", "2", "3":
			for _, item := range m.menuItems {
				if item.Shortcut == msg.String() {
					return m, m.switchTo(item.Screen)
				}
			}
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				return m, m.switchTo(m.menuItems[m.selectedMenu].Screen)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.homeView.SetSize(contentWidth, contentHeight)
		m.wordsView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		return m, nil

	case views.SwitchMsg:
		return m, m.switchTo(msg.To)

	case components.NoticeMsg:
		return m, m.toast.Show(msg.Notice)

	case views.SettingsChangedMsg:
		m.theme = components.ThemeFor(msg.Settings.DarkMode)
		m.styles = newStyles(m.theme)
		m.homeView.SetTheme(m.theme)
		m.wordsView.SetSettings(msg.Settings)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.current {
	case views.ScreenHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case views.ScreenWords:
		m.wordsView, cmd = m.wordsView.Update(msg)
	case views.ScreenSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

// switchTo changes the active screen. Entering the words screen from
// another screen starts a fresh session.
func (m *AppModel) switchTo(s views.Screen) tea.Cmd {
	m.sidebarActive = false
	m.selectMenu(s)
	if s == m.current {
		return nil
	}

	m.logger.Debug("screen switched", zap.Stringer("from", m.current), zap.Stringer("to", s))
	m.current = s
	if s == views.ScreenWords {
		return m.wordsView.Mount()
	}
	return nil
}

func (m *AppModel) selectMenu(s views.Screen) {
	for i, item := range m.menuItems {
		if item.Screen == s {
			m.selectedMenu = i
			return
		}
	}
}

// Screen returns the active screen.
func (m AppModel) Screen() views.Screen {
	return m.current
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.current {
	case views.ScreenHome:
		content = m.homeView.View()
	case views.ScreenWords:
		content = m.wordsView.View()
	case views.ScreenSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	if toast := m.toast.View(m.theme); toast != "" {
		content = lipgloss.PlaceHorizontal(contentWidth-4, lipgloss.Right, toast) + "\n" + content
	}

	mainContent := m.styles.Content.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, m.styles.SidebarTitle.Render("vocab"))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		style := m.styles.SidebarItem
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = m.styles.SidebarItemActive
			} else {
				style = m.styles.SidebarItemOpen
			}
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, m.styles.SidebarHelp.Render("? Help  q Quit"))

	return m.styles.Sidebar.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	s := m.styles
	var b strings.Builder

	line := func(k, desc string) {
		b.WriteString(s.HelpKey.Render(k) + s.HelpDesc.Render(desc) + "\n")
	}

	b.WriteString(s.HelpTitle.Render("vocab - Word Flashcards") + "\n\n")

	b.WriteString(s.HelpSection.Render("Global Keys") + "\n")
	line("1-3", "Switch views")
	line("tab", "Toggle sidebar focus")
	line("?", "Show this help")
	line("q", "Quit")

	b.WriteString(s.HelpSection.Render("Words View") + "\n")
	line("←/→", "Prev/next card")
	line("drag", "Swipe to change card")
	line("f", "Toggle favorite")
	line("m/enter", "Toggle learned")
	line("s/space", "Pronounce")

	b.WriteString(s.HelpSection.Render("Settings View") + "\n")
	line("↑/↓", "Select")
	line("enter", "Toggle or run")
	line("←/→", "Adjust font size")
	line("d", "Done")

	b.WriteString("\n" + s.SidebarHelp.Italic(true).Render("Press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.HelpBox.Render(b.String()))
}
