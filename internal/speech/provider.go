// Package speech provides the speaking and listening capabilities behind
// the games: text-to-speech for word pronunciation and one-shot speech
// recognition for the pronunciation game. Providers follow a factory
// pattern; the external-API providers fall back to local OS synthesis
// when no key is configured.
package speech

import "context"

// Speaker synthesizes and plays one utterance. Callers treat Speak as
// fire-and-forget: it is launched off the update loop and its error is
// swallowed (best-effort audio). Starting a new utterance stops any
// prior one first; only one audio stream plays at a time.
type Speaker interface {
	Speak(ctx context.Context, text string) error

	// ProviderID returns the configured provider name.
	ProviderID() string
}

// Result is one recognition outcome: the recognizer's best-effort
// transcript alternatives, most confident first.
type Result struct {
	Transcripts []string
}

// Recognizer captures one spoken attempt and transcribes it. One-shot
// per invocation. Recognizers are optional per environment; when none is
// available the pronunciation game runs in its degraded manual mode.
type Recognizer interface {
	Listen(ctx context.Context) (*Result, error)
}
