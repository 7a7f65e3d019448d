package session

import "github.com/ssantos/wordkids/internal/catalog"

// Mode selects how the active category is being played.
type Mode int

const (
	ModeNone Mode = iota
	ModeLearn
	ModeMemory
	ModePronunciation
	ModeQuiz
	ModeVideo
)

// String returns the mode's display name (Portuguese, matching the UI).
func (m Mode) String() string {
	switch m {
	case ModeLearn:
		return "Aprender"
	case ModeMemory:
		return "Jogo da Memória"
	case ModePronunciation:
		return "Pratique Falar"
	case ModeQuiz:
		return "Quiz"
	case ModeVideo:
		return "Vídeos"
	default:
		return ""
	}
}

// LearnPoints is awarded per card completed in learn mode.
const LearnPoints = 10

// State is the learning-session state: which category and mode are
// active, how far into the item sequence the player is, and the score.
// Created on category selection, mutated by game engines and navigation,
// reset on "back to categories" or "back to modes".
type State struct {
	Category     catalog.CategoryKey // empty when no category selected
	Mode         Mode
	CurrentIndex int
	Score        int
	Completed    bool
}

// NewState creates an empty session at the category picker.
func NewState() *State {
	return &State{}
}

// HasCategory reports whether a category has been selected.
func (s *State) HasCategory() bool {
	return s.Category != ""
}
