// Package pronounce implements the pronunciation game: the player hears
// the target word, speaks it, and a recognizer transcript is judged
// against the spelling.
package pronounce

import (
	"strings"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/game"
)

const (
	// Points is awarded for a verified pronunciation.
	Points = 100
	// ManualPoints is the smaller award in the degraded no-recognizer
	// mode, where the player self-reports with an "I said it" button.
	ManualPoints = 50
)

// Feedback is the judgement shown after an attempt.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Judge compares a recognizer's transcript alternatives against the
// target word: an attempt counts when any whole word of a transcript
// equals the target, case-insensitive. "the apple" counts for "apple";
// "happle" does not, the target has to appear as its own word.
func Judge(transcripts []string, target string) bool {
	want := strings.ToLower(strings.TrimSpace(target))
	if want == "" {
		return false
	}
	for _, t := range transcripts {
		for _, word := range strings.Fields(strings.ToLower(t)) {
			if word == want {
				return true
			}
		}
	}
	return false
}

// Game is one run through a category's items in pronunciation mode.
type Game struct {
	Items    []catalog.LearningItem
	Index    int
	Feedback Feedback

	score    int
	complete bool
}

var _ game.Engine = (*Game)(nil)

// New starts a pronunciation run over items.
func New(items []catalog.LearningItem) *Game {
	g := &Game{Items: items}
	if len(items) == 0 {
		g.complete = true
	}
	return g
}

// Current returns the active item.
func (g *Game) Current() catalog.LearningItem {
	return g.Items[g.Index]
}

// Submit judges one recognition attempt. A correct attempt scores Points
// and sets correct feedback; an incorrect one sets incorrect feedback and
// leaves score and index untouched so the player can retry.
func (g *Game) Submit(transcripts []string) Feedback {
	if g.complete {
		return FeedbackNone
	}
	if Judge(transcripts, g.Current().EnglishWord) {
		g.score += Points
		g.Feedback = FeedbackCorrect
	} else {
		g.Feedback = FeedbackIncorrect
	}
	return g.Feedback
}

// AdvanceAfterFeedback is called when the feedback display period ends.
// Only correct feedback advances (or completes past the last item);
// incorrect feedback just clears so the player may retry. It reports
// completion.
func (g *Game) AdvanceAfterFeedback() bool {
	fb := g.Feedback
	g.Feedback = FeedbackNone
	if fb != FeedbackCorrect || g.complete {
		return g.complete
	}
	if g.Index < len(g.Items)-1 {
		g.Index++
		return false
	}
	g.complete = true
	return true
}

// ManualAdvance is the degraded-mode advance: ManualPoints without
// verification, then next item or completion. It reports completion.
func (g *Game) ManualAdvance() bool {
	if g.complete {
		return true
	}
	g.score += ManualPoints
	if g.Index < len(g.Items)-1 {
		g.Index++
		return false
	}
	g.complete = true
	return true
}

// Complete reports whether every item has been pronounced.
func (g *Game) Complete() bool {
	return g.complete
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}
