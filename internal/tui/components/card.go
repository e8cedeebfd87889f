package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/vocab/internal/tui/banner"
	"github.com/f3rmion/vocab/internal/vocab"
	"github.com/mattn/go-runewidth"
)

// CardOptions control how a word card is drawn.
type CardOptions struct {
	Width      int
	BannerRows int // 0 disables the banner
	Direction  vocab.Direction
	Theme      Theme
}

// RenderCard draws one word card.
func RenderCard(w *vocab.Word, opts CardOptions) string {
	t := opts.Theme
	inner := opts.Width - 8 // border + padding
	if inner < 20 {
		inner = 20
	}

	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	var b strings.Builder

	// Headword: block banner when it fits, plain bold text otherwise
	head := ""
	if opts.BannerRows > 0 {
		head = banner.GetCached(w.Headword, opts.BannerRows, inner)
	}
	if head == "" {
		head = lipgloss.NewStyle().Bold(true).Render(w.Headword)
	}
	b.WriteString(center.Foreground(t.Text).Render(head))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(t.Muted).Render(Wrap(w.Translation, inner)))
	b.WriteString("\n")

	if w.Example != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(t.Label).Italic(true).Render(Wrap("“"+w.Example+"”", inner)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Render(renderMarkers(w, t)))

	border := t.Border
	switch {
	case w.Learned:
		border = t.Success
	case w.Favorite:
		border = t.Accent
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 3).
		Render(b.String())

	hint := ""
	if d := opts.Direction.String(); d != "" {
		hint = lipgloss.NewStyle().Foreground(t.Muted).Render(d)
	}
	if hint == "" {
		return card
	}
	if opts.Direction == vocab.DirectionForward {
		return lipgloss.JoinHorizontal(lipgloss.Center, card, " ", hint)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, hint, " ", card)
}

// renderMarkers draws the difficulty stars and the two flag buttons.
func renderMarkers(w *vocab.Word, t Theme) string {
	stars := lipgloss.NewStyle().Foreground(t.Accent).Render(Stars(w.Difficulty))

	fav := lipgloss.NewStyle().Foreground(t.Muted).Render("☆ favorite")
	if w.Favorite {
		fav = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("★ favorite")
	}

	learned := lipgloss.NewStyle().Foreground(t.Muted).Render("○ learned")
	if w.Learned {
		learned = lipgloss.NewStyle().Foreground(t.Success).Bold(true).Render("✓ learned")
	}

	return stars + "   " + fav + "   " + learned
}

// Stars renders a 1-5 difficulty rating.
func Stars(difficulty int) string {
	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty > vocab.MaxDifficulty {
		difficulty = vocab.MaxDifficulty
	}
	return strings.Repeat("★", difficulty) + strings.Repeat("☆", vocab.MaxDifficulty-difficulty)
}

// Wrap breaks s into lines no wider than width display cells. It breaks at
// spaces where it can and inside a word (e.g. CJK runs without spaces)
// where it must.
func Wrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)

		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}

		for wordWidth > width-lineWidth {
			head := runewidth.Truncate(word, width-lineWidth, "")
			if head == "" {
				// a single rune wider than the line
				head = string([]rune(word)[:1])
			}
			line.WriteString(head)
			flush()
			word = word[len(head):]
			wordWidth = runewidth.StringWidth(word)
		}

		line.WriteString(word)
		lineWidth += wordWidth
	}
	if line.Len() > 0 {
		flush()
	}

	return strings.Join(lines, "\n")
}
