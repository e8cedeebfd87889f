package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/vocab/internal/config"
	"github.com/f3rmion/vocab/internal/deck"
	"github.com/f3rmion/vocab/internal/session"
	"github.com/f3rmion/vocab/internal/speech"
	"github.com/f3rmion/vocab/internal/tui/banner"
	"github.com/f3rmion/vocab/internal/tui/components"
	"go.uber.org/zap"
)

// speakTimeout bounds one pronunciation.
const speakTimeout = 10 * time.Second

// autoAdvanceMsg fires when a learned card's delay has elapsed.
type autoAdvanceMsg struct {
	ticket session.Ticket
}

// WordsModel is the flashcard review view model.
type WordsModel struct {
	deck     *deck.Deck
	session  session.Session
	auto     *session.AutoAdvance
	speaker  speech.Speaker
	language string
	settings config.Settings
	logger   *zap.Logger

	keys     wordsKeyMap
	help     help.Model
	progress progress.Model
	swipe    components.Swipe
	theme    components.Theme

	width  int
	height int
}

// NewWordsModel creates a new words view model. speaker may be nil.
func NewWordsModel(d *deck.Deck, cfg *config.Config, speaker speech.Speaker, logger *zap.Logger) WordsModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := WordsModel{
		deck:     d,
		session:  session.New(d.Words),
		auto:     session.NewAutoAdvance(cfg.AutoAdvanceDelay),
		speaker:  speaker,
		language: cfg.Language,
		settings: cfg.Settings,
		logger:   logger,
		keys:     newWordsKeyMap(),
		help:     help.New(),
	}
	m.setTheme(components.ThemeFor(cfg.Settings.DarkMode))
	return m
}

// Mount starts a fresh session from the deck, discarding any flags set
// during a previous visit.
func (m *WordsModel) Mount() tea.Cmd {
	if n := m.auto.CancelAll(); n > 0 {
		m.logger.Debug("auto-advance cancelled on mount", zap.Int("pending", n))
	}
	m.session = session.New(m.deck.Words)
	m.swipe = components.Swipe{}
	m.logger.Debug("words view mounted", zap.Int("words", m.session.Len()))
	return m.autoplay()
}

// SetSize updates the view dimensions.
func (m *WordsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.progress.Width = m.barWidth()
}

// SetSettings applies changed preferences.
func (m *WordsModel) SetSettings(s config.Settings) {
	m.settings = s
	m.setTheme(components.ThemeFor(s.DarkMode))
}

func (m *WordsModel) setTheme(t components.Theme) {
	m.theme = t
	m.progress = progress.New(
		progress.WithSolidFill(string(t.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(m.barWidth()),
	)
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Secondary)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.Muted)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.Border)
}

// Session returns the current review session.
func (m WordsModel) Session() session.Session {
	return m.session
}

// Update handles messages.
func (m WordsModel) Update(msg tea.Msg) (WordsModel, tea.Cmd) {
	if m.session.Empty() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.next(true)
		case key.Matches(msg, m.keys.Prev):
			return m, m.prev()
		case key.Matches(msg, m.keys.Favorite):
			return m, m.toggleFavorite()
		case key.Matches(msg, m.keys.Learned):
			return m, m.toggleLearned()
		case key.Matches(msg, m.keys.Speak):
			if w, ok := m.session.Current(); ok {
				return m, m.speak(w.Headword)
			}
		}

	case tea.MouseMsg:
		switch m.swipe.Update(msg) {
		case components.SwipeLeft:
			return m, m.next(true)
		case components.SwipeRight:
			return m, m.prev()
		}

	case autoAdvanceMsg:
		if !m.auto.Claim(msg.ticket) {
			m.logger.Debug("stale auto-advance ignored", zap.Int("word", msg.ticket.WordID))
			return m, nil
		}
		return m, m.next(false)
	}

	return m, nil
}

// next moves forward. Manual moves cancel pending auto-advances so a card
// marked learned never causes a second step.
func (m *WordsModel) next(manual bool) tea.Cmd {
	if manual {
		if n := m.auto.CancelAll(); n > 0 {
			m.logger.Debug("auto-advance cancelled", zap.Int("pending", n))
		}
	}

	before := m.session.Cursor()
	var notice *session.Notice
	m.session, notice = m.session.Advance()

	var cmds []tea.Cmd
	if notice != nil {
		cmds = append(cmds, components.Notify(*notice))
	}
	if m.session.Cursor() != before {
		cmds = append(cmds, m.autoplay())
	}
	return tea.Batch(cmds...)
}

func (m *WordsModel) prev() tea.Cmd {
	if n := m.auto.CancelAll(); n > 0 {
		m.logger.Debug("auto-advance cancelled", zap.Int("pending", n))
	}

	before := m.session.Cursor()
	m.session = m.session.Retreat()
	if m.session.Cursor() == before {
		return nil
	}
	return m.autoplay()
}

func (m *WordsModel) toggleFavorite() tea.Cmd {
	w, ok := m.session.Current()
	if !ok {
		return nil
	}

	var notice *session.Notice
	m.session, notice = m.session.ToggleFavorite(w.ID)
	if notice == nil {
		return nil
	}
	m.logger.Info("favorite toggled", zap.Int("word", w.ID), zap.Bool("favorite", !w.Favorite))
	return components.Notify(*notice)
}

func (m *WordsModel) toggleLearned() tea.Cmd {
	w, ok := m.session.Current()
	if !ok {
		return nil
	}

	next, notice, advance := m.session.ToggleLearned(w.ID)
	m.session = next
	m.logger.Info("learned toggled", zap.Int("word", w.ID), zap.Bool("learned", !w.Learned))

	var cmds []tea.Cmd
	if notice != nil {
		cmds = append(cmds, components.Notify(*notice))
	}
	if advance {
		ticket := m.auto.Schedule(w.ID)
		cmds = append(cmds, tea.Tick(m.auto.Delay(), func(time.Time) tea.Msg {
			return autoAdvanceMsg{ticket: ticket}
		}))
	} else {
		m.auto.Cancel(w.ID)
	}
	return tea.Batch(cmds...)
}

// autoplay pronounces the current card when autoplay is on.
func (m WordsModel) autoplay() tea.Cmd {
	if !m.settings.AutoPlay {
		return nil
	}
	w, ok := m.session.Current()
	if !ok {
		return nil
	}
	return m.speak(w.Headword)
}

// speak runs the speech engine in the background. Failures are logged only.
func (m WordsModel) speak(text string) tea.Cmd {
	if m.speaker == nil {
		return nil
	}

	speaker, lang, logger := m.speaker, m.language, m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		defer cancel()

		if err := speaker.Speak(ctx, text, lang); err != nil {
			logger.Debug("speech failed", zap.String("text", text), zap.Error(err))
		}
		return nil
	}
}

func (m WordsModel) barWidth() int {
	w := m.width - 8
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

// View renders the words view.
func (m WordsModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Help().Render("REVIEWING"))
	b.WriteString("\n")
	b.WriteString(t.Title().Render(m.deck.Title))
	b.WriteString("\n\n")

	if m.session.Empty() {
		b.WriteString(t.Help().Render("No words in this deck."))
		return b.String()
	}

	current, total, ratio := m.session.Progress()
	b.WriteString(m.progress.ViewAs(ratio))
	b.WriteString("\n")
	counter := fmt.Sprintf("%d / %d", current, total)
	b.WriteString(t.Help().Width(m.barWidth()).Align(lipgloss.Right).Render(counter))
	b.WriteString("\n\n")

	w, _ := m.session.Current()
	b.WriteString(components.RenderCard(w, components.CardOptions{
		Width:      m.barWidth() + 8,
		BannerRows: banner.RowsForFontSize(m.settings.FontSize),
		Direction:  m.session.Direction(),
		Theme:      t,
	}))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))

	return b.String()
}
