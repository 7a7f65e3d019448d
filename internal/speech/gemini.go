package speech

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

const geminiTTSModel = "gemini-2.5-flash-preview-tts"

// Gemini TTS returns raw 16-bit mono PCM at this rate.
const geminiSampleRate = 24000

// GeminiSpeaker synthesizes speech with the Gemini TTS models. Gemini
// has no recognition endpoint here, so it is speak-only.
type GeminiSpeaker struct {
	apiKey string
	voice  string

	mu     sync.Mutex
	client *genai.Client

	out player
}

// NewGeminiSpeaker creates a speaker backed by the Gemini API. The
// client is dialed lazily on first use.
func NewGeminiSpeaker(cfg Config) *GeminiSpeaker {
	voice := cfg.Voice
	if voice == "" {
		voice = "Kore"
	}
	return &GeminiSpeaker{apiKey: cfg.APIKey, voice: voice}
}

func (s *GeminiSpeaker) ProviderID() string { return ProviderGemini }

func (s *GeminiSpeaker) ensureClient(ctx context.Context) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &ErrUnavailable{Err: fmt.Errorf("gemini client: %w", err)}
	}
	s.client = client
	return client, nil
}

// Speak synthesizes text and blocks until playback ends.
func (s *GeminiSpeaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	client, err := s.ensureClient(ctx)
	if err != nil {
		return err
	}

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: text}}},
	}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, geminiTTSModel, contents, config)
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			return &ErrUnavailable{Err: fmt.Errorf("gemini tts: %s (status %d)", apiErr.Message, apiErr.Code)}
		}
		return &ErrUnavailable{Err: fmt.Errorf("gemini tts: %w", err)}
	}

	pcm := extractAudio(resp)
	if len(pcm) == 0 {
		return &ErrUnavailable{Err: errors.New("gemini tts: empty audio response")}
	}
	return s.out.play(ctx, wrapWAV(pcm, geminiSampleRate), ".wav")
}

func extractAudio(resp *genai.GenerateContentResponse) []byte {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}

// wrapWAV prefixes raw 16-bit mono PCM with a RIFF header so the
// playback tools accept it.
func wrapWAV(pcm []byte, sampleRate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := make([]byte, 44+len(pcm))
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(pcm)))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1)
	binary.LittleEndian.PutUint16(buf[22:24], channels)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(pcm)))
	copy(buf[44:], pcm)
	return buf
}
