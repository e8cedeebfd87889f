package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/vocab/internal/config"
	"github.com/f3rmion/vocab/internal/deck"
	"github.com/spf13/cobra"
)

// deckFileName is the deck template written by init.
const deckFileName = "deck.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize vocab configuration",
	Long: `Initialize vocab configuration files in your config directory.

This creates:
  - settings.yaml   (preferences, speech language, auto-advance delay)
  - deck.yaml       (a copy of the built-in deck to edit)

Edit deck.yaml to add your own words.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	settingsPath := filepath.Join(configDir, config.SettingsFile)
	if _, err := os.Stat(settingsPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", settingsPath)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing vocab configuration in %s\n\n", configDir)

	deckPath := filepath.Join(configDir, deckFileName)
	files := []struct {
		name    string
		content []byte
	}{
		{config.SettingsFile, []byte(fmt.Sprintf(settingsTemplate, deckPath))},
		{deckFileName, deck.DefaultYAML()},
	}

	for _, f := range files {
		if err := os.WriteFile(filepath.Join(configDir, f.name), f.content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		fmt.Fprintf(out, "  Created %s\n", f.name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration initialized!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit deck.yaml to add your own words")
	fmt.Fprintln(out, "  2. Run 'vocab list' to check the deck")
	fmt.Fprintln(out, "  3. Run 'vocab study' to start reviewing")

	return nil
}

const settingsTemplate = `# vocab settings
#
# Every key can be overridden with a VOCAB_ environment variable,
# e.g. VOCAB_SETTINGS_DARK_MODE=true or VOCAB_LANGUAGE=en-GB.

settings:
  dark_mode: false
  # speak the headword whenever a new card appears
  autoplay: true
  # shown on the settings screen; the study order is not shuffled
  random_order: false
  # 0-100, picks the height of the headword banner
  font_size: 50

# deck file; remove to use the built-in deck
deck: %q

# how long a card marked learned stays before moving on
auto_advance_delay: 500ms

# language tag passed to the speech engine
language: en-US

# log_file: /tmp/vocab.log
`
