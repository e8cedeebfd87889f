package views

import (
	"testing"

	"github.com/f3rmion/vocab/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_Actions(t *testing.T) {
	m := NewHomeModel(deck.Default(), false)

	_, cmd := m.Update(keyEnter)
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, SwitchMsg{To: ScreenWords}, msgs[0])

	m, _ = m.Update(keyDown)
	m, _ = m.Update(keyDown)
	_, cmd = m.Update(runes(" "))
	msgs = collect(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, SwitchMsg{To: ScreenSettings}, msgs[0])
}

func TestHome_View(t *testing.T) {
	m := NewHomeModel(deck.Default(), true)
	m.SetSize(100, 40)

	out := m.View()
	assert.Contains(t, out, "I'm Learning Words")
	assert.Contains(t, out, "1240")
	assert.Contains(t, out, "856")
	assert.Contains(t, out, "Continue Learning")
	for _, title := range []string{"Core 100", "Business", "Travel", "Daily Life"} {
		assert.Contains(t, out, title)
	}
}

func TestScreen_String(t *testing.T) {
	assert.Equal(t, "home", ScreenHome.String())
	assert.Equal(t, "words", ScreenWords.String())
	assert.Equal(t, "settings", ScreenSettings.String())
	assert.Equal(t, "screen(9)", Screen(9).String())
}
