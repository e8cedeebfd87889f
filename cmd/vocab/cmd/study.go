package cmd

import (
	"github.com/f3rmion/vocab/internal/tui/views"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:     "study",
	Aliases: []string{"s", "review"},
	Short:   "Review the deck as flashcards",
	Long: `Open the TUI directly on the word cards.

Controls:
  →/l/n     Next card
  ←/h/p     Previous card
  drag      Swipe the card left or right
  f         Toggle favorite
  m/enter   Toggle learned (advances after a short delay)
  s/space   Pronounce the headword
  ?         Help
  q         Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(views.ScreenWords)
	},
}

func init() {
	rootCmd.AddCommand(studyCmd)
}
