// Package speech pronounces words through the platform's text-to-speech tool.
package speech

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoEngine is returned when no speech tool is installed.
var ErrNoEngine = errors.New("no speech engine available")

// Speaker says text aloud in a language such as "en-US".
type Speaker interface {
	Speak(ctx context.Context, text, lang string) error
}

// System speaks through say (macOS), spd-say or espeak (Linux) or
// System.Speech via PowerShell (Windows).
type System struct {
	goos     string
	lookPath func(file string) (string, error)
}

// NewSystem returns a Speaker for the current platform.
func NewSystem() *System {
	return &System{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// Speak runs the speech tool and waits for it to finish.
func (s *System) Speak(ctx context.Context, text, lang string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cmd, err := s.command(ctx, text, lang)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Available reports whether a speech tool was found.
func (s *System) Available() bool {
	_, err := s.command(context.Background(), "x", "en-US")
	return err == nil
}

func (s *System) command(ctx context.Context, text, lang string) (*exec.Cmd, error) {
	switch s.goos {
	case "darwin":
		if _, err := s.lookPath("say"); err == nil {
			return exec.CommandContext(ctx, "say", "--", text), nil
		}
	case "windows":
		script := "Add-Type -AssemblyName System.Speech; " +
			"(New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak('" +
			strings.ReplaceAll(text, "'", "''") + "')"
		return exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", script), nil
	default:
		// Try spd-say first, fall back to espeak
		if _, err := s.lookPath("spd-say"); err == nil {
			return exec.CommandContext(ctx, "spd-say", "--wait", "-l", language(lang), "--", text), nil
		}
		if _, err := s.lookPath("espeak"); err == nil {
			return exec.CommandContext(ctx, "espeak", "-v", strings.ToLower(lang), "--", text), nil
		}
	}
	return nil, ErrNoEngine
}

// language strips the region from a tag: "en-US" -> "en".
func language(tag string) string {
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		return strings.ToLower(tag[:i])
	}
	if tag == "" {
		return "en"
	}
	return strings.ToLower(tag)
}
