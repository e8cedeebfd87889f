package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/vocab/internal/config"
	"github.com/f3rmion/vocab/internal/session"
	"github.com/f3rmion/vocab/internal/tui/components"
	"go.uber.org/zap"
)

// Settings notices.
const (
	TextSettingsSaved = "Settings saved successfully!"
	TextExporting     = "Downloading data..."
	TextImportStub    = "Upload feature would open file picker"
)

// fontSizeStep is how far one key press moves the font size slider.
const fontSizeStep = 5

// SettingsChangedMsg carries the preferences after a change.
type SettingsChangedMsg struct {
	Settings config.Settings
}

type settingsItem int

const (
	itemAutoPlay settingsItem = iota
	itemRandomOrder
	itemDarkMode
	itemFontSize
	itemExport
	itemImport
	itemCount
)

// SettingsModel is the settings view model. Changes live only in memory.
type SettingsModel struct {
	settings config.Settings
	selected settingsItem
	logger   *zap.Logger

	keys   settingsKeyMap
	help   help.Model
	slider progress.Model
	theme  components.Theme

	width  int
	height int
}

// NewSettingsModel creates a new settings model seeded from cfg.
func NewSettingsModel(cfg *config.Config, logger *zap.Logger) SettingsModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := SettingsModel{
		settings: cfg.Settings,
		logger:   logger,
		keys:     newSettingsKeyMap(),
		help:     help.New(),
	}
	m.setTheme(components.ThemeFor(cfg.Settings.DarkMode))
	return m
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Settings returns the current preferences.
func (m SettingsModel) Settings() config.Settings {
	return m.settings
}

func (m *SettingsModel) setTheme(t components.Theme) {
	m.theme = t
	m.slider = progress.New(
		progress.WithSolidFill(string(t.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(24),
	)
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Secondary)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.Muted)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.Border)
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < itemCount-1 {
			m.selected++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		return m, m.activate()
	case key.Matches(keyMsg, m.keys.Less):
		if m.selected == itemFontSize {
			return m, m.setFontSize(m.settings.FontSize - fontSizeStep)
		}
	case key.Matches(keyMsg, m.keys.More):
		if m.selected == itemFontSize {
			return m, m.setFontSize(m.settings.FontSize + fontSizeStep)
		}
	case key.Matches(keyMsg, m.keys.Done):
		m.logger.Info("settings confirmed",
			zap.Bool("dark_mode", m.settings.DarkMode),
			zap.Bool("autoplay", m.settings.AutoPlay),
			zap.Bool("random_order", m.settings.RandomOrder),
			zap.Int("font_size", m.settings.FontSize),
		)
		return m, components.Notify(session.Notice{Kind: session.NoticeSuccess, Text: TextSettingsSaved})
	}

	return m, nil
}

func (m *SettingsModel) activate() tea.Cmd {
	switch m.selected {
	case itemAutoPlay:
		m.settings.AutoPlay = !m.settings.AutoPlay
	case itemRandomOrder:
		m.settings.RandomOrder = !m.settings.RandomOrder
	case itemDarkMode:
		m.settings.DarkMode = !m.settings.DarkMode
		m.setTheme(components.ThemeFor(m.settings.DarkMode))
	case itemExport:
		return components.Notify(session.Notice{Kind: session.NoticeInfo, Text: TextExporting})
	case itemImport:
		return components.Notify(session.Notice{Kind: session.NoticeInfo, Text: TextImportStub})
	default:
		return nil
	}
	return m.changed()
}

func (m *SettingsModel) setFontSize(size int) tea.Cmd {
	size = max(0, min(100, size))
	if size == m.settings.FontSize {
		return nil
	}
	m.settings.FontSize = size
	return m.changed()
}

func (m SettingsModel) changed() tea.Cmd {
	s := m.settings
	m.logger.Debug("settings changed", zap.Any("settings", s))
	return func() tea.Msg {
		return SettingsChangedMsg{Settings: s}
	}
}

// View renders the settings view.
func (m SettingsModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title().Render("Settings"))
	b.WriteString("\n\n")

	section := lipgloss.NewStyle().Bold(true).Foreground(t.Label)

	b.WriteString(section.Render("Preferences"))
	b.WriteString("\n")
	b.WriteString(m.row(itemAutoPlay, "Auto-pronunciation", m.toggle(m.settings.AutoPlay)))
	b.WriteString(m.row(itemRandomOrder, "Random Order", m.toggle(m.settings.RandomOrder)))
	b.WriteString("\n")

	b.WriteString(section.Render("Appearance"))
	b.WriteString("\n")
	b.WriteString(m.row(itemDarkMode, "Dark Mode", m.toggle(m.settings.DarkMode)))
	slider := m.slider.ViewAs(float64(m.settings.FontSize)/100) + fmt.Sprintf(" %3d", m.settings.FontSize)
	b.WriteString(m.row(itemFontSize, "Font Size", slider))
	b.WriteString("\n")

	b.WriteString(section.Render("Data Management"))
	b.WriteString("\n")
	b.WriteString(m.row(itemExport, "Export CSV", ""))
	b.WriteString(m.row(itemImport, "Import Data", ""))
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m SettingsModel) row(item settingsItem, label, value string) string {
	t := m.theme
	cursor := "  "
	style := t.Body()
	if item == m.selected {
		cursor = "▸ "
		style = t.Selected()
	}
	return cursor + style.Width(22).Render(label) + value + "\n"
}

func (m SettingsModel) toggle(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true).Render("● on")
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("○ off")
}
