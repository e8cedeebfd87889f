package vocab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidWord is returned when a word record fails validation.
	ErrInvalidWord = errors.New("invalid word")

	// ErrDuplicateID is returned when two words in one list share an ID.
	ErrDuplicateID = errors.New("duplicate word ID")
)

var validate = validator.New()

// Validate checks a single word record.
func (w Word) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("%w %d: %s", ErrInvalidWord, w.ID, describe(err))
	}
	return nil
}

// ValidateWords checks every record and that IDs are unique.
func ValidateWords(words []Word) error {
	seen := make(map[int]bool, len(words))
	for _, w := range words {
		if err := w.Validate(); err != nil {
			return err
		}
		if seen[w.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, w.ID)
		}
		seen[w.ID] = true
	}
	return nil
}

// ValidateWordbooks checks the home screen wordbook entries.
func ValidateWordbooks(books []Wordbook) error {
	for _, b := range books {
		if err := validate.Struct(b); err != nil {
			return fmt.Errorf("invalid wordbook %q: %s", b.Title, describe(err))
		}
	}
	return nil
}

// ValidateStats checks the home screen figures.
func ValidateStats(st Stats) error {
	if err := validate.Struct(st); err != nil {
		return fmt.Errorf("invalid stats: %s", describe(err))
	}
	return nil
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), rule))
	}
	return strings.Join(parts, ", ")
}
