package speech

import (
	"context"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"openai with key", Config{Provider: ProviderOpenAI, APIKey: "sk-test"}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"local needs no key", Config{Provider: ProviderLocal}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "siri"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg := DiscoverConfig()
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("provider = %q, want openai first", cfg.Provider)
	}
	if cfg.APIKey != "sk-openai" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
}

func TestDiscoverConfigFallsBackToGemini(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg := DiscoverConfig()
	if cfg.Provider != ProviderGemini {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
}

func TestDiscoverConfigDefaultsToLocal(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := DiscoverConfig()
	if cfg.Provider != ProviderLocal {
		t.Errorf("provider = %q, want local", cfg.Provider)
	}
}

func TestConfigFromEnvExplicitProvider(t *testing.T) {
	t.Setenv("WORDKIDS_SPEECH_PROVIDER", "openai")
	t.Setenv("WORDKIDS_SPEECH_API_KEY", "sk-explicit")
	t.Setenv("WORDKIDS_SPEECH_VOICE", "alloy")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Provider != ProviderOpenAI || cfg.APIKey != "sk-explicit" || cfg.Voice != "alloy" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigFromEnvRejectsKeylessProvider(t *testing.T) {
	t.Setenv("WORDKIDS_SPEECH_PROVIDER", "gemini")
	t.Setenv("WORDKIDS_SPEECH_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := ConfigFromEnv(); err == nil {
		t.Error("gemini without key accepted")
	}
}

func TestFactoryRecognizerAvailability(t *testing.T) {
	if _, err := NewRecognizer(Config{Provider: ProviderLocal}); err != ErrNoRecognizer {
		t.Errorf("local recognizer err = %v, want ErrNoRecognizer", err)
	}
	if _, err := NewRecognizer(Config{Provider: ProviderGemini, APIKey: "k"}); err != ErrNoRecognizer {
		t.Errorf("gemini recognizer err = %v, want ErrNoRecognizer", err)
	}
	if _, err := NewRecognizer(Config{Provider: ProviderMock}); err != nil {
		t.Errorf("mock recognizer err = %v", err)
	}
}

func TestMockSpeakerRecords(t *testing.T) {
	m := NewMockSpeaker()
	ctx := context.Background()

	if err := m.Speak(ctx, "apple"); err != nil {
		t.Fatal(err)
	}
	if err := m.Speak(ctx, "banana"); err != nil {
		t.Fatal(err)
	}

	got := m.SpokenTexts()
	if len(got) != 2 || got[0] != "apple" || got[1] != "banana" {
		t.Errorf("spoken = %v", got)
	}
}

func TestMockRecognizerFIFO(t *testing.T) {
	m := NewMockRecognizer()
	m.Queue("apple")
	m.Queue("the banana")
	ctx := context.Background()

	first, err := m.Listen(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Transcripts) != 1 || first.Transcripts[0] != "apple" {
		t.Errorf("first = %v", first.Transcripts)
	}

	second, _ := m.Listen(ctx)
	if second.Transcripts[0] != "the banana" {
		t.Errorf("second = %v", second.Transcripts)
	}

	// Queue exhausted: empty result, no error.
	third, err := m.Listen(ctx)
	if err != nil || len(third.Transcripts) != 0 {
		t.Errorf("third = %v, err = %v", third.Transcripts, err)
	}
	if m.Calls != 3 {
		t.Errorf("calls = %d, want 3", m.Calls)
	}
}
