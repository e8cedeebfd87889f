// Package session holds the state of one study session: the ordered word
// list, the cursor into it and the pending auto-advance.
//
// Session is a value. Every operation returns the next Session and leaves
// the receiver untouched, so views can treat it like a reducer.
package session

import "github.com/f3rmion/vocab/internal/vocab"

// Session is the word list plus a cursor.
type Session struct {
	words     []*vocab.Word
	cursor    int
	direction vocab.Direction
}

// New seeds a session from a fixture. The records are copied so the
// fixture is never shared with the session.
func New(words []vocab.Word) Session {
	ws := make([]*vocab.Word, len(words))
	for i := range words {
		w := words[i]
		ws[i] = &w
	}
	return Session{words: ws}
}

// Words returns the current records. Callers must not modify them.
func (s Session) Words() []*vocab.Word { return s.words }

// Len returns the number of words.
func (s Session) Len() int { return len(s.words) }

// Empty reports whether there is nothing to show.
func (s Session) Empty() bool { return len(s.words) == 0 }

// Cursor returns the index of the displayed word.
func (s Session) Cursor() int { return s.cursor }

// Direction returns the direction of the last successful move.
func (s Session) Direction() vocab.Direction { return s.direction }

// Current returns the displayed word.
func (s Session) Current() (*vocab.Word, bool) {
	if s.Empty() {
		return nil, false
	}
	return s.words[s.cursor], true
}

// Find returns the word with the given id.
func (s Session) Find(id int) (*vocab.Word, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.words[i], true
}

// Progress returns the 1-based position, the total and the completed ratio.
func (s Session) Progress() (current, total int, ratio float64) {
	total = len(s.words)
	if total == 0 {
		return 0, 0, 0
	}
	current = s.cursor + 1
	ratio = float64(current) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	return current, total, ratio
}

// Advance moves to the next word. At the last word the cursor stays put
// and an end-of-list notice is returned.
func (s Session) Advance() (Session, *Notice) {
	if s.Empty() {
		return s, nil
	}
	if s.cursor < len(s.words)-1 {
		s.cursor++
		s.direction = vocab.DirectionForward
		return s, nil
	}
	return s, &Notice{Kind: NoticeSuccess, Text: TextEndOfList}
}

// Retreat moves to the previous word. At the first word it does nothing.
func (s Session) Retreat() Session {
	if s.cursor > 0 {
		s.cursor--
		s.direction = vocab.DirectionBackward
	}
	return s
}

// ToggleFavorite flips the favorite flag of the word with id.
// An unknown id returns the session unchanged and no notice.
func (s Session) ToggleFavorite(id int) (Session, *Notice) {
	next, w, ok := s.replace(id, vocab.Word.WithFavorite)
	if !ok {
		return s, nil
	}
	if w.Favorite {
		return next, &Notice{Kind: NoticeInfo, Text: TextAddedFavorite, Icon: IconAddedFavorite}
	}
	return next, &Notice{Kind: NoticeInfo, Text: TextRemovedFavorite, Icon: IconRemovedFavorite}
}

// ToggleLearned flips the learned flag of the word with id. When the word
// becomes learned it returns a notice and autoAdvance is true; the caller
// is expected to schedule the advance.
func (s Session) ToggleLearned(id int) (next Session, notice *Notice, autoAdvance bool) {
	next, w, ok := s.replace(id, vocab.Word.WithLearned)
	if !ok {
		return s, nil, false
	}
	if w.Learned {
		return next, &Notice{Kind: NoticeSuccess, Text: TextMarkedLearned}, true
	}
	return next, nil, false
}

// replace returns a session with a fresh slice in which only the record
// with id is swapped for fn(record). All other pointers are shared.
func (s Session) replace(id int, fn func(vocab.Word) vocab.Word) (Session, *vocab.Word, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, nil, false
	}

	words := make([]*vocab.Word, len(s.words))
	copy(words, s.words)

	updated := fn(*s.words[i])
	words[i] = &updated

	s.words = words
	return s, &updated, true
}

func (s Session) indexOf(id int) int {
	for i, w := range s.words {
		if w.ID == id {
			return i
		}
	}
	return -1
}
