package speech

import (
	"fmt"
	"os"
	"strings"
)

// Provider names accepted by the factory.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderLocal  = "local"
	ProviderMock   = "mock"
)

// Config selects and parameterizes a speech provider.
type Config struct {
	// Provider is one of openai, gemini, local, mock.
	Provider string

	// APIKey authenticates against the external provider. Unused by
	// local and mock.
	APIKey string

	// Voice selects the synthesis voice where the provider supports it.
	Voice string

	// Language hints the recognizer. BCP-47 tag.
	Language string
}

// DefaultConfig returns the baseline config for a provider.
func DefaultConfig(provider string) Config {
	cfg := Config{
		Provider: provider,
		Language: "en",
	}
	switch provider {
	case ProviderOpenAI:
		cfg.Voice = "nova"
	case ProviderGemini:
		cfg.Voice = "Kore"
	}
	return cfg
}

// ConfigFromEnv builds a Config from WORDKIDS_-prefixed environment
// variables, falling back to provider-specific key variables.
//
//	WORDKIDS_SPEECH_PROVIDER  provider name
//	WORDKIDS_SPEECH_API_KEY   explicit key (wins over provider keys)
//	WORDKIDS_SPEECH_VOICE     voice override
//	WORDKIDS_SPEECH_LANGUAGE  recognizer language hint
func ConfigFromEnv() (Config, error) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("WORDKIDS_SPEECH_PROVIDER")))
	if provider == "" {
		return DiscoverConfig(), nil
	}

	cfg := DefaultConfig(provider)
	if key := os.Getenv("WORDKIDS_SPEECH_API_KEY"); key != "" {
		cfg.APIKey = key
	} else {
		cfg.APIKey = providerKeyFromEnv(provider)
	}
	if v := os.Getenv("WORDKIDS_SPEECH_VOICE"); v != "" {
		cfg.Voice = v
	}
	if l := os.Getenv("WORDKIDS_SPEECH_LANGUAGE"); l != "" {
		cfg.Language = l
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DiscoverConfig probes well-known key variables in priority order and
// returns the first provider with credentials. Without any key it
// settles on the local OS synthesizer.
func DiscoverConfig() Config {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg := DefaultConfig(ProviderOpenAI)
		cfg.APIKey = key
		return cfg
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg := DefaultConfig(ProviderGemini)
		cfg.APIKey = key
		return cfg
	}
	return DefaultConfig(ProviderLocal)
}

func providerKeyFromEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	}
	return ""
}

// Validate checks the config for obvious misconfiguration.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
		if c.APIKey == "" {
			return fmt.Errorf("speech provider %q requires an API key", c.Provider)
		}
	case ProviderLocal, ProviderMock:
	default:
		return fmt.Errorf("unknown speech provider %q", c.Provider)
	}
	return nil
}
