package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssantos/wordkids/internal/app"
	"github.com/ssantos/wordkids/internal/assets"
	"github.com/ssantos/wordkids/internal/auth"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/speech"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a learning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp assembles the dependency graph and starts the TUI. Speech is
// optional: without a provider the games run silent, and without a
// recognizer the pronunciation game degrades to self-reported practice.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg, err := speech.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("speech config: %w", err)
	}

	speaker, err := speech.NewSpeaker(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech not configured:", err)
		fmt.Fprintln(os.Stderr, "Audio will be unavailable.")
	}

	recognizer, err := speech.NewRecognizer(cfg)
	if err != nil && !errors.Is(err, speech.ErrNoRecognizer) {
		fmt.Fprintln(os.Stderr, "Speech recognition not configured:", err)
	}

	deps := &screens.Deps{
		Items:      st,
		Users:      st,
		Auth:       auth.NewProvider(st),
		Cache:      assets.NewCache(st, nil),
		Gate:       assets.NewGate(),
		Speaker:    speaker,
		Recognizer: recognizer,
		Session:    session.NewState(),
	}

	return app.Run(deps)
}
