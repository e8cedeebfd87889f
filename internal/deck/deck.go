// Package deck loads the word fixtures that seed a study session.
package deck

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/f3rmion/vocab/internal/vocab"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDeck []byte

// Deck is a titled list of words plus the wordbooks shown on the home screen.
type Deck struct {
	Title     string           `yaml:"title"`
	Words     []vocab.Word     `yaml:"words"`
	Wordbooks []vocab.Wordbook `yaml:"wordbooks,omitempty"`
	Stats     vocab.Stats      `yaml:"stats,omitempty"`
}

// Default returns the built-in fixture deck.
// The embedded file is validated by tests, so a parse failure here is a
// programming error.
func Default() *Deck {
	d, err := Parse(defaultDeck)
	if err != nil {
		panic(fmt.Sprintf("deck: embedded fixture: %v", err))
	}
	return d
}

// DefaultYAML returns the raw embedded fixture, used as the init template.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultDeck))
	copy(out, defaultDeck)
	return out
}

// Parse decodes and validates a deck from YAML.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}

	if err := vocab.ValidateWords(d.Words); err != nil {
		return nil, fmt.Errorf("validating deck %q: %w", d.Title, err)
	}
	if err := vocab.ValidateWordbooks(d.Wordbooks); err != nil {
		return nil, fmt.Errorf("validating deck %q: %w", d.Title, err)
	}

	if err := vocab.ValidateStats(d.Stats); err != nil {
		return nil, fmt.Errorf("validating deck %q: %w", d.Title, err)
	}

	if d.Title == "" {
		d.Title = "Untitled"
	}

	return &d, nil
}

// LoadFile reads a deck from a YAML file.
func LoadFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}
	return Parse(data)
}

// Load returns the deck at path, or the built-in deck when path is empty.
func Load(path string) (*Deck, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Counts returns how many words are learned and how many are favorites.
func Counts(words []*vocab.Word) (learned, favorites int) {
	for _, w := range words {
		if w.Learned {
			learned++
		}
		if w.Favorite {
			favorites++
		}
	}
	return learned, favorites
}
