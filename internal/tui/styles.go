// Package tui provides the interactive terminal UI for vocab.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/vocab/internal/tui/components"
)

// styles are the app chrome styles for one theme.
type styles struct {
	Sidebar           lipgloss.Style
	SidebarTitle      lipgloss.Style
	SidebarItem       lipgloss.Style
	SidebarItemActive lipgloss.Style
	SidebarItemOpen   lipgloss.Style
	SidebarHelp       lipgloss.Style
	Content           lipgloss.Style

	HelpTitle   lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpBox     lipgloss.Style
}

func newStyles(t components.Theme) styles {
	return styles{
		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(t.Border).
			Padding(1, 1),

		SidebarTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1).
			MarginBottom(1),

		SidebarItem: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),

		SidebarItemActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Background(t.BgAlt).
			Padding(0, 1),

		SidebarItemOpen: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			Padding(0, 1),

		SidebarHelp: lipgloss.NewStyle().
			Foreground(t.Muted).
			MarginTop(1).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			MarginBottom(1),

		HelpSection: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Accent).
			Width(12),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Text),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Secondary).
			Padding(1, 2).
			Width(50),
	}
}
