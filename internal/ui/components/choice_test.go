package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestWordChoiceSubmitLocksSelection(t *testing.T) {
	w := NewWordChoice("Qual é a tradução?", []string{"maçã", "banana", "uva"}, 1)

	w, _ = w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	w, _ = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !w.Submitted {
		t.Fatal("enter did not submit")
	}
	if w.ChosenIndex != 1 {
		t.Errorf("chosen = %d, want 1", w.ChosenIndex)
	}
	if !w.IsCorrect() {
		t.Error("IsCorrect() = false for the correct option")
	}

	// Locked: navigation after submission is ignored.
	w, _ = w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if w.ChosenIndex != 1 {
		t.Errorf("chosen changed after submit: %d", w.ChosenIndex)
	}
}

func TestWordChoiceWrongPick(t *testing.T) {
	w := NewWordChoice("Qual é a tradução?", []string{"maçã", "banana"}, 1)

	w, _ = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !w.Submitted || w.ChosenIndex != 0 {
		t.Fatalf("submitted=%v chosen=%d", w.Submitted, w.ChosenIndex)
	}
	if w.IsCorrect() {
		t.Error("IsCorrect() = true for a wrong option")
	}
}

func TestWordChoiceNotCorrectBeforeSubmit(t *testing.T) {
	w := NewWordChoice("?", []string{"a", "b"}, 0)
	if w.IsCorrect() {
		t.Error("IsCorrect() = true before any submission")
	}
}
