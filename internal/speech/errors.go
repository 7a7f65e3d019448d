package speech

import (
	"errors"
	"fmt"
)

// ErrNoRecognizer reports that the configured provider has no speech
// recognition capability. The pronunciation game treats this as its
// degraded manual mode, not an error.
var ErrNoRecognizer = errors.New("speech provider has no recognizer")

// ErrUnavailable indicates the speech provider is down, unreachable, or
// missing its playback/capture tooling. Always swallowed by callers.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("speech unavailable: %v", e.Err)
	}
	return "speech unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }
