package quiz

import (
	"math/rand"
	"testing"

	"github.com/ssantos/wordkids/internal/catalog"
)

func testItems(n int) []catalog.LearningItem {
	words := []string{"dog", "cat", "bird", "fish", "lion", "bear"}
	items := make([]catalog.LearningItem, n)
	for i := range items {
		items[i] = catalog.LearningItem{
			ID:             words[i],
			EnglishWord:    words[i],
			PortugueseWord: words[i] + "-pt",
		}
	}
	return items
}

func newTestGame(n int) *Game {
	return New(testItems(n), rand.New(rand.NewSource(7)))
}

func countTarget(r *Round) int {
	n := 0
	for _, opt := range r.Options {
		if opt.ID == r.Target.ID {
			n++
		}
	}
	return n
}

func TestRoundHasTargetExactlyOnce(t *testing.T) {
	g := newTestGame(6)
	for round := 0; ; round++ {
		r := g.Round
		if len(r.Options) != OptionCount {
			t.Errorf("round %d: options = %d, want %d", round, len(r.Options), OptionCount)
		}
		if n := countTarget(r); n != 1 {
			t.Errorf("round %d: target appears %d times, want 1", round, n)
		}
		g.Select(r.Target.ID)
		if g.AdvanceRound() {
			break
		}
	}
}

func TestRoundDegradesWithFewItems(t *testing.T) {
	g := newTestGame(2)
	if len(g.Round.Options) != 2 {
		t.Errorf("options = %d, want 2 with a two-item category", len(g.Round.Options))
	}
	if n := countTarget(g.Round); n != 1 {
		t.Errorf("target appears %d times, want 1", n)
	}
}

func TestCorrectSelectionScores(t *testing.T) {
	g := newTestGame(4)
	accepted, correct := g.Select(g.Round.Target.ID)
	if !accepted || !correct {
		t.Fatalf("accepted=%v correct=%v, want both true", accepted, correct)
	}
	if g.Score() != PointsPerCorrect {
		t.Errorf("score = %d, want %d", g.Score(), PointsPerCorrect)
	}
}

func TestWrongSelectionScoresNothing(t *testing.T) {
	g := newTestGame(4)
	var wrong string
	for _, opt := range g.Round.Options {
		if opt.ID != g.Round.Target.ID {
			wrong = opt.ID
			break
		}
	}
	_, correct := g.Select(wrong)
	if correct {
		t.Fatal("wrong option judged correct")
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
}

func TestRoundLocksAfterSelection(t *testing.T) {
	g := newTestGame(4)
	g.Select(g.Round.Target.ID)
	accepted, _ := g.Select(g.Round.Target.ID)
	if accepted {
		t.Error("second selection accepted on a locked round")
	}
	if g.Score() != PointsPerCorrect {
		t.Errorf("score = %d, want %d (no double scoring)", g.Score(), PointsPerCorrect)
	}
}

func TestAdvancePastLastRoundCompletes(t *testing.T) {
	g := newTestGame(2)
	g.Select(g.Round.Target.ID)
	if g.AdvanceRound() {
		t.Fatal("completed after first of two rounds")
	}
	g.Select(g.Round.Target.ID)
	if !g.AdvanceRound() {
		t.Fatal("expected completion after last round")
	}
	if !g.Complete() {
		t.Error("Complete() = false after final advance")
	}
	if g.Round != nil {
		t.Error("round not cleared on completion")
	}
	if g.Score() != 2*PointsPerCorrect {
		t.Errorf("score = %d, want %d", g.Score(), 2*PointsPerCorrect)
	}
}

func TestEmptyItemsCompleteImmediately(t *testing.T) {
	g := New(nil, nil)
	if !g.Complete() {
		t.Error("empty quiz not complete")
	}
	if g.Round != nil {
		t.Error("empty quiz has a round")
	}
}
