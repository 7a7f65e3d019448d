package speech

import "fmt"

// NewSpeaker constructs the Speaker named by cfg.Provider.
func NewSpeaker(cfg Config) (Speaker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAISpeaker(cfg), nil
	case ProviderGemini:
		return NewGeminiSpeaker(cfg), nil
	case ProviderLocal:
		return NewLocalSpeaker(cfg), nil
	case ProviderMock:
		return NewMockSpeaker(), nil
	}
	return nil, fmt.Errorf("unknown speech provider %q", cfg.Provider)
}

// NewRecognizer constructs the Recognizer for cfg.Provider.
// Returns ErrNoRecognizer for providers that only speak; callers use
// that to switch the pronunciation game into its manual mode.
func NewRecognizer(cfg Config) (Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIRecognizer(cfg), nil
	case ProviderMock:
		return NewMockRecognizer(), nil
	case ProviderGemini, ProviderLocal:
		return nil, ErrNoRecognizer
	}
	return nil, fmt.Errorf("unknown speech provider %q", cfg.Provider)
}
