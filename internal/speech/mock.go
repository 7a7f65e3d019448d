package speech

import (
	"context"
	"sync"
)

// MockSpeaker records utterances for tests. Safe for concurrent use.
type MockSpeaker struct {
	mu sync.Mutex

	// Spoken holds every text passed to Speak, in order.
	Spoken []string

	// Err, when set, is returned by every Speak call.
	Err error
}

// NewMockSpeaker creates a recording speaker for tests.
func NewMockSpeaker() *MockSpeaker { return &MockSpeaker{} }

func (m *MockSpeaker) ProviderID() string { return ProviderMock }

func (m *MockSpeaker) Speak(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Spoken = append(m.Spoken, text)
	return m.Err
}

// SpokenTexts returns a copy of everything spoken so far.
func (m *MockSpeaker) SpokenTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Spoken))
	copy(out, m.Spoken)
	return out
}

// MockRecognizer replays canned results in FIFO order. When the queue
// runs dry it returns an empty result.
type MockRecognizer struct {
	mu sync.Mutex

	// Results are consumed front to back, one per Listen call.
	Results []*Result

	// Err, when set, is returned by every Listen call.
	Err error

	// Calls counts Listen invocations.
	Calls int
}

// NewMockRecognizer creates a canned recognizer for tests.
func NewMockRecognizer() *MockRecognizer { return &MockRecognizer{} }

// Queue appends a canned transcript set.
func (m *MockRecognizer) Queue(transcripts ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results = append(m.Results, &Result{Transcripts: transcripts})
}

func (m *MockRecognizer) Listen(_ context.Context) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Results) == 0 {
		return &Result{}, nil
	}
	r := m.Results[0]
	m.Results = m.Results[1:]
	return r, nil
}
