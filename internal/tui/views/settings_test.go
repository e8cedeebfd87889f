package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/vocab/internal/config"
	"github.com/f3rmion/vocab/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettings() SettingsModel {
	cfg := config.Defaults()
	return NewSettingsModel(&cfg, nil)
}

// changedIn returns the last settings change carried by msgs.
func changedIn(t *testing.T, msgs []tea.Msg) config.Settings {
	t.Helper()
	for i := len(msgs) - 1; i >= 0; i-- {
		if c, ok := msgs[i].(SettingsChangedMsg); ok {
			return c.Settings
		}
	}
	require.Fail(t, "no SettingsChangedMsg")
	return config.Settings{}
}

func TestSettings_Toggles(t *testing.T) {
	tests := []struct {
		name  string
		moves int
		check func(config.Settings) bool
	}{
		{name: "autoplay", moves: 0, check: func(s config.Settings) bool { return !s.AutoPlay }},
		{name: "random order", moves: 1, check: func(s config.Settings) bool { return s.RandomOrder }},
		{name: "dark mode", moves: 2, check: func(s config.Settings) bool { return s.DarkMode }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestSettings()
			for i := 0; i < tt.moves; i++ {
				m, _ = m.Update(keyDown)
			}

			m, cmd := m.Update(keyEnter)
			s := changedIn(t, collect(cmd))
			assert.True(t, tt.check(s))
			assert.Equal(t, s, m.Settings())
		})
	}
}

func TestSettings_DarkModeSwitchesTheme(t *testing.T) {
	m := newTestSettings()
	assert.Equal(t, "light", m.theme.Name)

	m, _ = m.Update(keyDown)
	m, _ = m.Update(keyDown)
	m, _ = m.Update(runes(" "))
	assert.Equal(t, "dark", m.theme.Name)
}

func TestSettings_FontSizeSlider(t *testing.T) {
	m := newTestSettings()
	for i := 0; i < 3; i++ {
		m, _ = m.Update(keyDown)
	}

	m, cmd := m.Update(keyRight)
	assert.Equal(t, 55, changedIn(t, collect(cmd)).FontSize)

	m, _ = m.Update(keyLeft)
	m, _ = m.Update(keyLeft)
	assert.Equal(t, 45, m.Settings().FontSize)

	m.settings.FontSize = 100
	m, cmd = m.Update(runes("+"))
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.Settings().FontSize)

	m.settings.FontSize = 2
	m, _ = m.Update(runes("-"))
	assert.Equal(t, 0, m.Settings().FontSize)
}

func TestSettings_SliderIgnoredOnOtherRows(t *testing.T) {
	m := newTestSettings()
	m, cmd := m.Update(keyRight)
	assert.Nil(t, cmd)
	assert.Equal(t, 50, m.Settings().FontSize)
}

func TestSettings_Actions(t *testing.T) {
	tests := []struct {
		name  string
		moves int
		key   tea.KeyMsg
		want  string
		kind  session.NoticeKind
	}{
		{name: "export", moves: 4, key: keyEnter, want: TextExporting, kind: session.NoticeInfo},
		{name: "import", moves: 5, key: keyEnter, want: TextImportStub, kind: session.NoticeInfo},
		{name: "done", moves: 0, key: runes("d"), want: TextSettingsSaved, kind: session.NoticeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestSettings()
			for i := 0; i < tt.moves; i++ {
				m, _ = m.Update(keyDown)
			}

			before := m.Settings()
			m, cmd := m.Update(tt.key)
			notices := noticesIn(collect(cmd))
			require.Len(t, notices, 1)
			assert.Equal(t, tt.want, notices[0].Text)
			assert.Equal(t, tt.kind, notices[0].Kind)
			assert.Equal(t, before, m.Settings())
		})
	}
}

func TestSettings_CursorBounds(t *testing.T) {
	m := newTestSettings()
	m, _ = m.Update(keyUp)
	assert.Equal(t, itemAutoPlay, m.selected)

	for i := 0; i < 20; i++ {
		m, _ = m.Update(keyDown)
	}
	assert.Equal(t, itemImport, m.selected)
}

func TestSettings_View(t *testing.T) {
	out := newTestSettings().View()
	for _, label := range []string{"Auto-pronunciation", "Random Order", "Dark Mode", "Font Size", "Export CSV", "Import Data"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "● on")
	assert.Contains(t, out, " 50")
}
