package views

import "github.com/charmbracelet/bubbles/key"

// wordsKeyMap are the bindings of the words view.
type wordsKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Favorite key.Binding
	Learned  key.Binding
	Speak    key.Binding
}

func newWordsKeyMap() wordsKeyMap {
	return wordsKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "prev"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f", "*"),
			key.WithHelp("f", "favorite"),
		),
		Learned: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m", "learned"),
		),
		Speak: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s", "pronounce"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k wordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Favorite, k.Learned, k.Speak}
}

// FullHelp implements help.KeyMap.
func (k wordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Favorite, k.Learned, k.Speak}}
}

// settingsKeyMap are the bindings of the settings view.
type settingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Less   key.Binding
	More   key.Binding
	Done   key.Binding
}

func newSettingsKeyMap() settingsKeyMap {
	return settingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle/select"),
		),
		Less: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "smaller"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/l", "larger"),
		),
		Done: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "done"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Less, k.More, k.Done}
}

// FullHelp implements help.KeyMap.
func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Less, k.More}, {k.Done}}
}
