package game_test

import (
	"math/rand"
	"testing"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/game"
	"github.com/ssantos/wordkids/internal/game/memory"
	"github.com/ssantos/wordkids/internal/game/pronounce"
	"github.com/ssantos/wordkids/internal/game/quiz"
)

// TestEnginesReportCompletionUniformly plays each engine to the end and
// reads the outcome through the shared contract, the way the session
// flow consumes a finished game.
func TestEnginesReportCompletionUniformly(t *testing.T) {
	items := []catalog.LearningItem{
		{ID: "1", EnglishWord: "apple", PortugueseWord: "maçã"},
		{ID: "2", EnglishWord: "banana", PortugueseWord: "banana"},
	}
	rng := rand.New(rand.NewSource(1))

	mem := memory.New(items, rng)
	for first := 0; first < len(mem.Cards); first++ {
		for second := first + 1; second < len(mem.Cards); second++ {
			mem.Flip(first)
			mem.Flip(second)
			mem.Resolve()
		}
	}

	qz := quiz.New(items, rng)
	for qz.Round != nil {
		qz.Select(qz.Round.Target.ID)
		qz.AdvanceRound()
	}

	pr := pronounce.New(items)
	for !pr.Complete() {
		pr.Submit([]string{pr.Current().EnglishWord})
		pr.AdvanceAfterFeedback()
	}

	engines := map[string]game.Engine{
		"memory":    mem,
		"quiz":      qz,
		"pronounce": pr,
	}
	for name, e := range engines {
		if !e.Complete() {
			t.Errorf("%s: Complete() = false after full play", name)
		}
		if e.Score() <= 0 {
			t.Errorf("%s: score = %d, want > 0 after perfect play", name, e.Score())
		}
	}
}
