// Package vocab provides the core types for vocabulary flashcards.
package vocab

// Word is a single flashcard record.
// Only the Learned and Favorite flags ever change, and they change by
// replacing the whole record (see WithFavorite and WithLearned).
type Word struct {
	ID          int    `yaml:"id" json:"id" validate:"gt=0"`
	Headword    string `yaml:"headword" json:"headword" validate:"required"`
	Translation string `yaml:"translation" json:"translation" validate:"required"`
	Example     string `yaml:"example,omitempty" json:"example,omitempty"`
	Difficulty  int    `yaml:"difficulty" json:"difficulty" validate:"min=1,max=5"`
	Learned     bool   `yaml:"learned" json:"learned"`
	Favorite    bool   `yaml:"favorite" json:"favorite"`
}

// WithFavorite returns a copy of w with Favorite inverted.
func (w Word) WithFavorite() Word {
	w.Favorite = !w.Favorite
	return w
}

// WithLearned returns a copy of w with Learned inverted.
func (w Word) WithLearned() Word {
	w.Learned = !w.Learned
	return w
}

// Wordbook is a named word list shown on the home screen.
type Wordbook struct {
	ID    int    `yaml:"id" json:"id" validate:"gt=0"`
	Title string `yaml:"title" json:"title" validate:"required"`
	Count int    `yaml:"count" json:"count" validate:"gte=0"`
	Color string `yaml:"color,omitempty" json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// Stats are the headline figures on the home screen.
type Stats struct {
	Total      int `yaml:"total" json:"total" validate:"gte=0"`
	Learned    int `yaml:"learned" json:"learned" validate:"gte=0,ltefield=Total"`
	StreakDays int `yaml:"streak_days" json:"streak_days" validate:"gte=0"`
}

// Direction records which way the cursor last moved.
// It only drives the card transition hint.
type Direction int

const (
	DirectionNone     Direction = 0
	DirectionForward  Direction = 1  // Next card
	DirectionBackward Direction = -1 // Previous card
)

// String returns a short arrow for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "→"
	case DirectionBackward:
		return "←"
	default:
		return ""
	}
}

// MaxDifficulty is the highest difficulty rating a word can carry.
const MaxDifficulty = 5
