package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/vocab/internal/config"
	"github.com/f3rmion/vocab/internal/deck"
	"github.com/f3rmion/vocab/internal/session"
	"github.com/f3rmion/vocab/internal/tui/components"
	"github.com/f3rmion/vocab/internal/tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, start views.Screen) AppModel {
	t.Helper()

	cfg := config.Defaults()
	cfg.Settings.AutoPlay = false
	app := NewAppAt(deck.Default(), &cfg, nil, nil, start)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	app, ok := model.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_StartsOnHome(t *testing.T) {
	app := newTestApp(t, views.ScreenHome)
	assert.Equal(t, views.ScreenHome, app.Screen())
	assert.Nil(t, app.Init())
	assert.Contains(t, app.View(), "I'm Learning Words")
}

func TestApp_ShortcutsSwitchScreens(t *testing.T) {
	app := newTestApp(t, views.ScreenHome)

	app, _ = update(t, app, runes("2"))
	assert.Equal(t, views.ScreenWords, app.Screen())
	assert.Contains(t, app.View(), "Daily Mix")

	app, _ = update(t, app, runes("3"))
	assert.Equal(t, views.ScreenSettings, app.Screen())
	assert.Contains(t, app.View(), "Dark Mode")

	app, _ = update(t, app, views.SwitchMsg{To: views.ScreenHome})
	assert.Equal(t, views.ScreenHome, app.Screen())
}

func TestApp_EnteringWordsRestartsSession(t *testing.T) {
	app := newTestApp(t, views.ScreenWords)

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyRight})
	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, app.View(), "3 / 5")

	// re-selecting the open screen keeps the session
	app, _ = update(t, app, runes("2"))
	assert.Contains(t, app.View(), "3 / 5")

	app, _ = update(t, app, runes("1"))
	app, _ = update(t, app, runes("2"))
	assert.Contains(t, app.View(), "1 / 5")
}

func TestApp_NoticeShowsToast(t *testing.T) {
	app := newTestApp(t, views.ScreenWords)

	app, cmd := update(t, app, components.NoticeMsg{Notice: session.Notice{Text: session.TextAddedFavorite, Icon: session.IconAddedFavorite}})
	assert.NotNil(t, cmd)
	assert.Contains(t, app.View(), session.TextAddedFavorite)
}

func TestApp_SettingsChangeSwitchesTheme(t *testing.T) {
	app := newTestApp(t, views.ScreenSettings)
	assert.Equal(t, "light", app.theme.Name)

	s := config.Defaults().Settings
	s.DarkMode = true
	app, _ = update(t, app, views.SettingsChangedMsg{Settings: s})
	assert.Equal(t, "dark", app.theme.Name)
}

func TestApp_HelpOverlay(t *testing.T) {
	app := newTestApp(t, views.ScreenHome)

	app, _ = update(t, app, runes("?"))
	assert.Contains(t, app.View(), "Press any key to close")

	app, _ = update(t, app, runes("x"))
	assert.NotContains(t, app.View(), "Press any key to close")
}

func TestApp_SidebarNavigation(t *testing.T) {
	app := newTestApp(t, views.ScreenHome)

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyTab})
	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyDown})
	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyDown})
	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, views.ScreenSettings, app.Screen())
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, views.ScreenHome)

	_, cmd := update(t, app, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
