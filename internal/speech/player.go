package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// player serializes audio playback: starting a new clip stops whatever
// is currently playing. Shared by the external-API speakers, which
// synthesize to an audio file and hand it off here.
type player struct {
	mu      sync.Mutex
	current *exec.Cmd
}

var playbackCommands = [][]string{
	{"afplay"},
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"mplayer", "-really-quiet"},
}

// play writes audio to a temp file and plays it with the first playback
// tool found on PATH. Blocks until playback finishes or ctx is done.
func (p *player) play(ctx context.Context, audio []byte, ext string) error {
	f, err := os.CreateTemp("", "wordkids-*"+ext)
	if err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)
	if _, err := f.Write(audio); err != nil {
		f.Close()
		return fmt.Errorf("write audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}

	argv := findPlayback()
	if argv == nil {
		return &ErrUnavailable{Err: fmt.Errorf("no audio player found on PATH")}
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)

	p.mu.Lock()
	if p.current != nil && p.current.Process != nil {
		_ = p.current.Process.Kill()
	}
	p.current = cmd
	p.mu.Unlock()

	err = cmd.Run()

	p.mu.Lock()
	if p.current == cmd {
		p.current = nil
	}
	p.mu.Unlock()

	if err != nil && ctx.Err() == nil {
		return &ErrUnavailable{Err: err}
	}
	return nil
}

func findPlayback() []string {
	for _, argv := range playbackCommands {
		if _, err := exec.LookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}
