package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// captureWindow is how long the recognizer records the microphone for
// one attempt. Long enough for a single word plus hesitation.
const captureWindow = 4 * time.Second

// OpenAISpeaker synthesizes speech with the OpenAI TTS API and plays it
// through the shared player.
type OpenAISpeaker struct {
	client *openai.Client
	voice  openai.SpeechVoice
	out    player
}

// NewOpenAISpeaker creates a speaker backed by the OpenAI TTS API.
func NewOpenAISpeaker(cfg Config) *OpenAISpeaker {
	c := openai.DefaultConfig(cfg.APIKey)
	voice := openai.VoiceNova
	if cfg.Voice != "" {
		voice = openai.SpeechVoice(cfg.Voice)
	}
	return &OpenAISpeaker{
		client: openai.NewClientWithConfig(c),
		voice:  voice,
	}
}

func (s *OpenAISpeaker) ProviderID() string { return ProviderOpenAI }

// Speak synthesizes text and blocks until playback ends.
func (s *OpenAISpeaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return &ErrUnavailable{Err: fmt.Errorf("openai tts: %w", err)}
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return &ErrUnavailable{Err: fmt.Errorf("openai tts: %w", err)}
	}
	return s.out.play(ctx, audio, ".mp3")
}

// OpenAIRecognizer records one microphone clip and transcribes it with
// the Whisper API.
type OpenAIRecognizer struct {
	client   *openai.Client
	language string
}

// NewOpenAIRecognizer creates a recognizer backed by the Whisper API.
func NewOpenAIRecognizer(cfg Config) *OpenAIRecognizer {
	return &OpenAIRecognizer{
		client:   openai.NewClientWithConfig(openai.DefaultConfig(cfg.APIKey)),
		language: cfg.Language,
	}
}

// Listen captures one clip and returns its transcript.
func (r *OpenAIRecognizer) Listen(ctx context.Context) (*Result, error) {
	path, err := recordClip(ctx, captureWindow)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	resp, err := r.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
		Language: r.language,
	})
	if err != nil {
		return nil, &ErrUnavailable{Err: fmt.Errorf("whisper: %w", err)}
	}
	if resp.Text == "" {
		return &Result{}, nil
	}
	return &Result{Transcripts: []string{resp.Text}}, nil
}

var captureCommands = []func(path string, seconds int) []string{
	func(path string, seconds int) []string {
		return []string{"arecord", "-q", "-f", "cd", "-d", fmt.Sprint(seconds), path}
	},
	func(path string, seconds int) []string {
		return []string{"rec", "-q", path, "trim", "0", fmt.Sprint(seconds)}
	},
	func(path string, seconds int) []string {
		return []string{"ffmpeg", "-y", "-loglevel", "quiet", "-f", "avfoundation", "-i", ":0", "-t", fmt.Sprint(seconds), path}
	},
}

// recordClip records the default microphone for the given window using
// the first capture tool found on PATH. Returns the wav path; the
// caller removes it.
func recordClip(ctx context.Context, window time.Duration) (string, error) {
	f, err := os.CreateTemp("", "wordkids-*.wav")
	if err != nil {
		return "", fmt.Errorf("record: %w", err)
	}
	path := f.Name()
	f.Close()

	seconds := int(window.Seconds())
	for _, build := range captureCommands {
		argv := build(path, seconds)
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		if err := cmd.Run(); err != nil {
			os.Remove(path)
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", &ErrUnavailable{Err: fmt.Errorf("record with %s: %w", argv[0], err)}
		}
		return path, nil
	}
	os.Remove(path)
	return "", &ErrUnavailable{Err: errors.New("no audio capture tool found on PATH")}
}
