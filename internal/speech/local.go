package speech

import (
	"context"
	"errors"
	"os/exec"
	"sync"
)

// LocalSpeaker shells out to the OS speech synthesizer (say on macOS,
// espeak/spd-say on Linux). No API key, no network, no recognizer.
type LocalSpeaker struct {
	language string

	mu      sync.Mutex
	current *exec.Cmd
}

var localSynthCommands = [][]string{
	{"say"},
	{"espeak"},
	{"spd-say", "--wait"},
}

// NewLocalSpeaker creates a speaker backed by the local OS synthesizer.
func NewLocalSpeaker(cfg Config) *LocalSpeaker {
	return &LocalSpeaker{language: cfg.Language}
}

func (s *LocalSpeaker) ProviderID() string { return ProviderLocal }

// Speak runs the first synthesizer found on PATH and blocks until it
// finishes. A new utterance stops the previous one.
func (s *LocalSpeaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	argv := findLocalSynth()
	if argv == nil {
		return &ErrUnavailable{Err: errors.New("no speech synthesizer found on PATH")}
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], text)...)

	s.mu.Lock()
	if s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
	}
	s.current = cmd
	s.mu.Unlock()

	err := cmd.Run()

	s.mu.Lock()
	if s.current == cmd {
		s.current = nil
	}
	s.mu.Unlock()

	if err != nil && ctx.Err() == nil {
		return &ErrUnavailable{Err: err}
	}
	return nil
}

func findLocalSynth() []string {
	for _, argv := range localSynthCommands {
		if _, err := exec.LookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}
