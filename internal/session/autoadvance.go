package session

import "time"

// DefaultAutoAdvanceDelay is how long a freshly learned card stays on
// screen before the session moves on.
const DefaultAutoAdvanceDelay = 500 * time.Millisecond

// Ticket identifies one scheduled auto-advance.
type Ticket struct {
	WordID int
	Seq    uint64
}

// AutoAdvance tracks delayed advances keyed by word id. The timer itself
// lives outside (a tea.Tick in the TUI); AutoAdvance only decides whether
// a fired ticket is still wanted.
//
// Any manual navigation cancels every pending ticket so a learned card can
// never cause a second advance after the user already moved on.
type AutoAdvance struct {
	delay   time.Duration
	seq     uint64
	pending map[int]uint64
}

// NewAutoAdvance creates a scheduler. A non-positive delay falls back to
// DefaultAutoAdvanceDelay.
func NewAutoAdvance(delay time.Duration) *AutoAdvance {
	if delay <= 0 {
		delay = DefaultAutoAdvanceDelay
	}
	return &AutoAdvance{
		delay:   delay,
		pending: make(map[int]uint64),
	}
}

// Delay returns the configured delay.
func (a *AutoAdvance) Delay() time.Duration { return a.delay }

// Schedule registers an advance for wordID, replacing any earlier ticket
// for the same word.
func (a *AutoAdvance) Schedule(wordID int) Ticket {
	a.seq++
	a.pending[wordID] = a.seq
	return Ticket{WordID: wordID, Seq: a.seq}
}

// Cancel drops the pending ticket for wordID, if any.
func (a *AutoAdvance) Cancel(wordID int) {
	delete(a.pending, wordID)
}

// CancelAll drops every pending ticket and reports how many were dropped.
func (a *AutoAdvance) CancelAll() int {
	n := len(a.pending)
	for id := range a.pending {
		delete(a.pending, id)
	}
	return n
}

// Claim consumes t. It returns true only if t is still the live ticket for
// its word; the caller should advance exactly then.
func (a *AutoAdvance) Claim(t Ticket) bool {
	seq, ok := a.pending[t.WordID]
	if !ok || seq != t.Seq {
		return false
	}
	delete(a.pending, t.WordID)
	return true
}

// Pending returns the number of live tickets.
func (a *AutoAdvance) Pending() int { return len(a.pending) }
