package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAutoAdvance_Delay(t *testing.T) {
	assert.Equal(t, DefaultAutoAdvanceDelay, NewAutoAdvance(0).Delay())
	assert.Equal(t, 2*time.Second, NewAutoAdvance(2*time.Second).Delay())
}

func TestAutoAdvance_ClaimOnce(t *testing.T) {
	a := NewAutoAdvance(0)
	ticket := a.Schedule(4)

	assert.Equal(t, 1, a.Pending())
	assert.True(t, a.Claim(ticket))
	assert.False(t, a.Claim(ticket), "a ticket fires at most once")
	assert.Equal(t, 0, a.Pending())
}

func TestAutoAdvance_RescheduleReplaces(t *testing.T) {
	a := NewAutoAdvance(0)
	first := a.Schedule(4)
	second := a.Schedule(4)

	assert.Equal(t, 1, a.Pending())
	assert.False(t, a.Claim(first))
	assert.True(t, a.Claim(second))
}

func TestAutoAdvance_Cancel(t *testing.T) {
	a := NewAutoAdvance(0)
	t1 := a.Schedule(1)
	t2 := a.Schedule(2)

	a.Cancel(1)
	assert.False(t, a.Claim(t1))

	assert.Equal(t, 1, a.CancelAll())
	assert.False(t, a.Claim(t2))
	assert.Equal(t, 0, a.CancelAll())
}

// Marking the current word learned and then advancing by hand within the
// delay must move the cursor by exactly one.
func TestAutoAdvance_ManualNavigationWins(t *testing.T) {
	s := New(fixture(5))
	a := NewAutoAdvance(0)

	cur, _ := s.Current()
	s, _, auto := s.ToggleLearned(cur.ID)
	assert.True(t, auto)
	ticket := a.Schedule(cur.ID)

	// user presses "next" before the timer fires
	a.CancelAll()
	s, _ = s.Advance()

	// timer fires
	if a.Claim(ticket) {
		s, _ = s.Advance()
	}

	assert.Equal(t, 1, s.Cursor())
}

func TestAutoAdvance_FiresWhenLeftAlone(t *testing.T) {
	s := New(fixture(5))
	a := NewAutoAdvance(0)

	s, _, _ = s.ToggleLearned(1)
	ticket := a.Schedule(1)

	if a.Claim(ticket) {
		s, _ = s.Advance()
	}

	assert.Equal(t, 1, s.Cursor())
}
