// Package components provides shared UI components for the TUI.
package components

import "github.com/charmbracelet/lipgloss"

// Theme is a colour palette. Dark mode swaps the whole palette.
type Theme struct {
	Name      string
	Primary   lipgloss.Color // Orange - titles, accents
	Secondary lipgloss.Color // Teal - subtitles, info
	Accent    lipgloss.Color // Yellow - favorites, stars
	Muted     lipgloss.Color // Gray - help text
	Success   lipgloss.Color // Green - learned, success notices
	Text      lipgloss.Color
	Label     lipgloss.Color
	Bg        lipgloss.Color
	BgAlt     lipgloss.Color
	Border    lipgloss.Color
}

// Palettes
var (
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#ff8c42"),
		Secondary: lipgloss.Color("#4ecdc4"),
		Accent:    lipgloss.Color("#ffe66d"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#a8e6cf"),
		Text:      lipgloss.Color("#f1faee"),
		Label:     lipgloss.Color("#a8dadc"),
		Bg:        lipgloss.Color("#18181b"),
		BgAlt:     lipgloss.Color("#27272a"),
		Border:    lipgloss.Color("#3f3f46"),
	}

	LightTheme = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#ea580c"),
		Secondary: lipgloss.Color("#0f766e"),
		Accent:    lipgloss.Color("#ca8a04"),
		Muted:     lipgloss.Color("#a1a1aa"),
		Success:   lipgloss.Color("#16a34a"),
		Text:      lipgloss.Color("#18181b"),
		Label:     lipgloss.Color("#52525b"),
		Bg:        lipgloss.Color("#fafafa"),
		BgAlt:     lipgloss.Color("#f4f4f5"),
		Border:    lipgloss.Color("#e4e4e7"),
	}
)

// ThemeFor returns the palette for the dark mode setting.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// Style helpers shared by views.

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t Theme) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)
}

func (t Theme) Help() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t Theme) Box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}

func (t Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Background(t.BgAlt)
}
