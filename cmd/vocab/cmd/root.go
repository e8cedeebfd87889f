// Package cmd contains all CLI commands for vocab.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/vocab/internal/config"
	"github.com/f3rmion/vocab/internal/deck"
	"github.com/f3rmion/vocab/internal/logging"
	"github.com/f3rmion/vocab/internal/speech"
	"github.com/f3rmion/vocab/internal/tui"
	"github.com/f3rmion/vocab/internal/tui/views"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// logFileName is used when --verbose is given without a log_file setting.
const logFileName = "vocab.log"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Vocabulary flashcards in your terminal",
	Long: `vocab is a flashcard reviewer for vocabulary words.

Each card shows a headword, its translation, an optional example and a
difficulty rating. Step through the deck, mark words as favorites or as
learned, and have them pronounced by the system speech engine.

Running 'vocab' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(views.ScreenHome)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/vocab)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("deck", "", "deck file (default is the built-in deck)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("deck", rootCmd.PersistentFlags().Lookup("deck"))
}

// initConfig reads in a .env file and sets the config directory.
func initConfig() {
	// a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("VOCAB")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads the settings and the deck they point at.
func loadConfig() (*config.Config, *deck.Deck, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if path := viper.GetString("deck"); path != "" {
		cfg.Deck = path
	}

	d, err := deck.Load(cfg.Deck)
	if err != nil {
		return nil, nil, err
	}
	return cfg, d, nil
}

// newLogger opens the log file named by the settings, or the default one
// under the config directory when --verbose is set.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	verbose := viper.GetBool("verbose")

	path := cfg.LogFile
	if path == "" && verbose {
		path = filepath.Join(getConfigDir(), logFileName)
	}
	return logging.New(path, verbose)
}

// runTUI launches the TUI on the given screen.
func runTUI(start views.Screen) error {
	cfg, d, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger = logger.With(zap.String("session", uuid.NewString()))

	speaker := speech.NewSystem()
	if !speaker.Available() {
		logger.Warn("no speech engine found; pronunciation disabled")
	}

	logger.Info("starting",
		zap.String("deck", d.Title),
		zap.Int("words", len(d.Words)),
		zap.Stringer("screen", start),
		zap.Duration("auto_advance_delay", cfg.AutoAdvanceDelay),
	)

	p := tea.NewProgram(
		tui.NewAppAt(d, cfg, speaker, logger, start),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	logger.Info("exiting")
	return nil
}
