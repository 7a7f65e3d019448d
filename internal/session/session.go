package session

import "github.com/ssantos/wordkids/internal/catalog"

// SelectCategory sets the active category and clears everything else.
// The player lands on the mode picker.
func SelectCategory(s *State, c catalog.CategoryKey) {
	s.Category = c
	s.Mode = ModeNone
	s.CurrentIndex = 0
	s.Score = 0
	s.Completed = false
}

// SelectMode sets the active mode and starts it fresh. Re-selecting the
// current mode is how "play again" resets a finished round.
func SelectMode(s *State, m Mode) {
	s.Mode = m
	s.CurrentIndex = 0
	s.Score = 0
	s.Completed = false
}

// Advance moves to the next card in learn mode, awarding LearnPoints per
// card. Advancing past the last index completes the session instead of
// moving the index, so CurrentIndex never reaches itemCount.
func Advance(s *State, itemCount int) {
	s.Score += LearnPoints
	if s.CurrentIndex < itemCount-1 {
		s.CurrentIndex++
	} else {
		s.Completed = true
	}
}

// GameComplete records an engine's final score and completes the session.
func GameComplete(s *State, finalScore int) {
	s.Score = finalScore
	s.Completed = true
}

// BackToModes returns to the mode picker, keeping the category.
func BackToModes(s *State) {
	s.Mode = ModeNone
	s.CurrentIndex = 0
	s.Score = 0
	s.Completed = false
}

// BackToCategories returns to the category picker, clearing everything.
func BackToCategories(s *State) {
	s.Category = ""
	s.Mode = ModeNone
	s.CurrentIndex = 0
	s.Score = 0
	s.Completed = false
}
