// Package config handles loading user configuration for vocab.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// SettingsFile is the name of the settings file inside the config directory.
const SettingsFile = "settings.yaml"

// ErrInvalidSettings is returned when settings fail validation.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the user preferences shown on the settings screen.
// They seed the screen at startup; changes made in the UI are never
// written back.
type Settings struct {
	DarkMode bool `mapstructure:"dark_mode" yaml:"dark_mode"`

	// AutoPlay speaks the headword whenever a new card appears.
	AutoPlay bool `mapstructure:"autoplay" yaml:"autoplay"`

	// RandomOrder is shown and toggled but the study order is never shuffled.
	RandomOrder bool `mapstructure:"random_order" yaml:"random_order"`

	// FontSize is the slider position (0-100); it picks the headword banner height.
	FontSize int `mapstructure:"font_size" yaml:"font_size" validate:"min=0,max=100"`
}

// Config holds all user configuration.
type Config struct {
	Settings Settings `mapstructure:"settings" yaml:"settings"`

	// Deck is an optional YAML deck file; empty means the built-in deck.
	Deck string `mapstructure:"deck" yaml:"deck,omitempty"`

	// AutoAdvanceDelay is how long a card marked learned stays visible.
	AutoAdvanceDelay time.Duration `mapstructure:"auto_advance_delay" yaml:"auto_advance_delay" validate:"gte=0"`

	// Language passed to the speech engine.
	Language string `mapstructure:"language" yaml:"language" validate:"required"`

	// LogFile enables the debug log when set.
	LogFile string `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Settings: Settings{
			DarkMode:    false,
			AutoPlay:    true,
			RandomOrder: false,
			FontSize:    50,
		},
		AutoAdvanceDelay: 500 * time.Millisecond,
		Language:         "en-US",
	}
}

// Load reads settings.yaml from dir (if present) and VOCAB_* environment
// variables on top of the defaults.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(SettingsFile, filepath.Ext(SettingsFile)))
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("VOCAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("settings.dark_mode", d.Settings.DarkMode)
	v.SetDefault("settings.autoplay", d.Settings.AutoPlay)
	v.SetDefault("settings.random_order", d.Settings.RandomOrder)
	v.SetDefault("settings.font_size", d.Settings.FontSize)
	v.SetDefault("deck", d.Deck)
	v.SetDefault("auto_advance_delay", d.AutoAdvanceDelay)
	v.SetDefault("language", d.Language)
	v.SetDefault("log_file", d.LogFile)
}

var validate = validator.New()

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidSettings, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vocab"), nil
}
