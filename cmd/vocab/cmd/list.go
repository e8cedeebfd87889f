package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/f3rmion/vocab/internal/deck"
	"github.com/f3rmion/vocab/internal/session"
	"github.com/f3rmion/vocab/internal/tui/components"
	"github.com/f3rmion/vocab/internal/vocab"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// listTranslationWidth truncates translations in the table.
const listTranslationWidth = 40

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the words of the deck",
	Long: `Print the deck as a table.

Example:
  vocab list
  vocab list --favorites
  vocab list --deck ./my-words.yaml --learned`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("favorites", false, "only favorite words")
	listCmd.Flags().Bool("learned", false, "only learned words")
}

func runList(cmd *cobra.Command, args []string) error {
	favorites, _ := cmd.Flags().GetBool("favorites")
	learned, _ := cmd.Flags().GetBool("learned")

	_, d, err := loadConfig()
	if err != nil {
		return err
	}

	words := filterWords(session.New(d.Words).Words(), favorites, learned)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", lipgloss.NewStyle().Bold(true).Render(d.Title))
	if len(words) == 0 {
		fmt.Fprintln(out, "No matching words.")
		return nil
	}

	fmt.Fprintln(out, renderWordTable(words))

	nLearned, nFavorites := deck.Counts(words)
	fmt.Fprintf(out, "\n%d words, %d learned, %d favorites\n", len(words), nLearned, nFavorites)
	return nil
}

func filterWords(words []*vocab.Word, favorites, learned bool) []*vocab.Word {
	var out []*vocab.Word
	for _, w := range words {
		if favorites && !w.Favorite {
			continue
		}
		if learned && !w.Learned {
			continue
		}
		out = append(out, w)
	}
	return out
}

func renderWordTable(words []*vocab.Word) string {
	mark := func(b bool, s string) string {
		if b {
			return s
		}
		return ""
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "WORD", "LEVEL", "FAV", "LEARNED", "TRANSLATION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, w := range words {
		t.Row(
			strconv.Itoa(w.ID),
			w.Headword,
			components.Stars(w.Difficulty),
			mark(w.Favorite, "★"),
			mark(w.Learned, "✓"),
			runewidth.Truncate(w.Translation, listTranslationWidth, "…"),
		)
	}
	return t.String()
}
