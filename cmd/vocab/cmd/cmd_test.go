package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/vocab/internal/config"
	"github.com/f3rmion/vocab/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command. Flag values persist between runs, so
// callers pass every flag they depend on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestInitThenList(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init", "--config", dir, "--force=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Created settings.yaml")
	assert.Contains(t, out, "Created deck.yaml")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, deckFileName), cfg.Deck)
	assert.True(t, cfg.Settings.AutoPlay)

	_, err = execute(t, "init", "--config", dir, "--force=false")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "init", "--config", dir, "--force")
	require.NoError(t, err)

	out, err = execute(t, "list", "--config", dir, "--favorites=false", "--learned=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily Mix")
	assert.Contains(t, out, "comprise")
	assert.Contains(t, out, "5 words, 0 learned, 2 favorites")

	out, err = execute(t, "list", "--config", dir, "--favorites", "--learned=false")
	require.NoError(t, err)
	assert.Contains(t, out, "heyday")
	assert.NotContains(t, out, "comprise")
	assert.Contains(t, out, "2 words, 0 learned, 2 favorites")

	out, err = execute(t, "list", "--config", dir, "--favorites=false", "--learned")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching words.")
}

func TestList_BadDeck(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("title: x\nwords:\n  - id: 0\n"), 0644))

	_, err := execute(t, "list", "--config", dir, "--deck", bad, "--favorites=false", "--learned=false")
	assert.ErrorIs(t, err, vocab.ErrInvalidWord)

	// reset the persistent flag for later tests
	_, err = execute(t, "list", "--config", dir, "--deck", "", "--favorites=false", "--learned=false")
	require.NoError(t, err)
}

func TestFilterWords(t *testing.T) {
	words := []*vocab.Word{
		{ID: 1, Favorite: true},
		{ID: 2, Learned: true},
		{ID: 3, Favorite: true, Learned: true},
		{ID: 4},
	}

	ids := func(ws []*vocab.Word) []int {
		var out []int
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}

	assert.Equal(t, []int{1, 2, 3, 4}, ids(filterWords(words, false, false)))
	assert.Equal(t, []int{1, 3}, ids(filterWords(words, true, false)))
	assert.Equal(t, []int{2, 3}, ids(filterWords(words, false, true)))
	assert.Equal(t, []int{3}, ids(filterWords(words, true, true)))
}

func TestRenderWordTable(t *testing.T) {
	out := renderWordTable([]*vocab.Word{
		{ID: 7, Headword: "leisure", Translation: "n. 休闲；闲暇", Difficulty: 5, Favorite: true},
	})
	assert.Contains(t, out, "WORD")
	assert.Contains(t, out, "leisure")
	assert.Contains(t, out, "★★★★★")
	assert.Contains(t, out, "休闲")
}
