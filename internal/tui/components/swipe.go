package components

import tea "github.com/charmbracelet/bubbletea"

// SwipeThreshold is the horizontal drag, in cells, that counts as a swipe.
const SwipeThreshold = 10

// SwipeResult is what a finished drag means for the card.
type SwipeResult int

const (
	SwipeNone  SwipeResult = iota
	SwipeLeft              // drag left: next card
	SwipeRight             // drag right: previous card
)

// Swipe turns a left-button press, drag and release into a swipe.
type Swipe struct {
	startX   int
	dragging bool
}

// Update feeds a mouse event and returns the swipe completed by it, if any.
func (s *Swipe) Update(msg tea.MouseMsg) SwipeResult {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.startX = msg.X
			s.dragging = true
		}
	case tea.MouseActionRelease:
		if !s.dragging {
			return SwipeNone
		}
		s.dragging = false

		offset := msg.X - s.startX
		switch {
		case offset > SwipeThreshold:
			return SwipeRight
		case offset < -SwipeThreshold:
			return SwipeLeft
		}
	}
	return SwipeNone
}
