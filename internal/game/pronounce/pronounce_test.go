package pronounce

import (
	"testing"

	"github.com/ssantos/wordkids/internal/catalog"
)

func TestJudge(t *testing.T) {
	tests := []struct {
		name        string
		transcripts []string
		target      string
		want        bool
	}{
		{"exact", []string{"apple"}, "apple", true},
		{"case insensitive", []string{"Apple"}, "apple", true},
		{"surrounding words", []string{"the apple"}, "apple", true},
		{"prefix noise", []string{"happle"}, "apple", false},
		{"suffix noise", []string{"apples"}, "apple", false},
		{"miss", []string{"banana"}, "apple", false},
		{"later alternative", []string{"banana", "apple"}, "apple", true},
		{"whitespace", []string{"  apple  "}, "apple", true},
		{"empty transcripts", nil, "apple", false},
		{"empty target", []string{"apple"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Judge(tt.transcripts, tt.target); got != tt.want {
				t.Errorf("Judge(%q, %q) = %v, want %v", tt.transcripts, tt.target, got, tt.want)
			}
		})
	}
}

func testItems() []catalog.LearningItem {
	return []catalog.LearningItem{
		{ID: "1", EnglishWord: "apple"},
		{ID: "2", EnglishWord: "banana"},
	}
}

func TestCorrectAttemptScoresAndAdvances(t *testing.T) {
	g := New(testItems())

	if fb := g.Submit([]string{"apple"}); fb != FeedbackCorrect {
		t.Fatalf("feedback = %v, want correct", fb)
	}
	if g.Score() != Points {
		t.Errorf("score = %d, want %d", g.Score(), Points)
	}
	if g.AdvanceAfterFeedback() {
		t.Fatal("completed with an item left")
	}
	if g.Index != 1 {
		t.Errorf("index = %d, want 1", g.Index)
	}
}

func TestIncorrectAttemptRetries(t *testing.T) {
	g := New(testItems())

	if fb := g.Submit([]string{"grape"}); fb != FeedbackIncorrect {
		t.Fatalf("feedback = %v, want incorrect", fb)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if g.AdvanceAfterFeedback() {
		t.Fatal("completed on incorrect feedback")
	}
	if g.Index != 0 {
		t.Errorf("index = %d, want 0 (retry same word)", g.Index)
	}
	if g.Feedback != FeedbackNone {
		t.Errorf("feedback not cleared: %v", g.Feedback)
	}
}

func TestNearMissDoesNotScore(t *testing.T) {
	g := New(testItems())

	if fb := g.Submit([]string{"happle"}); fb != FeedbackIncorrect {
		t.Fatalf("feedback = %v, want incorrect", fb)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	g.AdvanceAfterFeedback()
	if g.Index != 0 {
		t.Errorf("index = %d, want 0 (retry same word)", g.Index)
	}
}

func TestLastCorrectAttemptCompletes(t *testing.T) {
	g := New(testItems())
	g.Submit([]string{"apple"})
	g.AdvanceAfterFeedback()
	g.Submit([]string{"banana"})

	if !g.AdvanceAfterFeedback() {
		t.Fatal("expected completion after last word")
	}
	if !g.Complete() {
		t.Error("Complete() = false")
	}
	if g.Score() != 2*Points {
		t.Errorf("score = %d, want %d", g.Score(), 2*Points)
	}
}

func TestManualAdvanceHalfPoints(t *testing.T) {
	g := New(testItems())

	if g.ManualAdvance() {
		t.Fatal("completed with an item left")
	}
	if g.Score() != ManualPoints {
		t.Errorf("score = %d, want %d", g.Score(), ManualPoints)
	}
	if !g.ManualAdvance() {
		t.Fatal("expected completion")
	}
	if g.Score() != 2*ManualPoints {
		t.Errorf("score = %d, want %d", g.Score(), 2*ManualPoints)
	}
}

func TestEmptyRunIsComplete(t *testing.T) {
	g := New(nil)
	if !g.Complete() {
		t.Error("empty run not complete")
	}
	if fb := g.Submit([]string{"apple"}); fb != FeedbackNone {
		t.Errorf("submit on complete run gave feedback %v", fb)
	}
}
