// Package quiz implements the multiple-choice game: each round shows the
// current word and four candidate images; the player picks the matching
// one.
package quiz

import (
	"math/rand"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/game"
)

// OptionCount is the target layout size per round, target included.
const OptionCount = 4

// PointsPerCorrect is awarded for each correct selection.
const PointsPerCorrect = 100

// Round is one question: the target item and its shuffled options. The
// target is always present exactly once; the rest are distractors drawn
// without replacement from the remaining items.
type Round struct {
	Target   catalog.LearningItem
	Options  []catalog.LearningItem
	Selected string // item id, empty until the player picks
	Correct  bool
}

// Locked reports whether the round has received a selection; further
// input is ignored once locked.
func (r *Round) Locked() bool {
	return r.Selected != ""
}

// Game is one run through a category's items in quiz mode.
type Game struct {
	Items []catalog.LearningItem
	Index int
	Round *Round

	score    int
	complete bool
	rng      *rand.Rand
}

var _ game.Engine = (*Game)(nil)

// New starts a quiz over items, generating the first round. rng may be
// nil for the default source.
func New(items []catalog.LearningItem, rng *rand.Rand) *Game {
	g := &Game{Items: items, rng: rng}
	if len(items) > 0 {
		g.Round = g.newRound()
	} else {
		g.complete = true
	}
	return g
}

// newRound builds a round for the current index: 3 distractors chosen
// uniformly without replacement, degrading to fewer when the category is
// short, then a shuffle of target plus distractors.
func (g *Game) newRound() *Round {
	target := g.Items[g.Index]

	others := make([]catalog.LearningItem, 0, len(g.Items)-1)
	for _, item := range g.Items {
		if item.ID != target.ID {
			others = append(others, item)
		}
	}
	g.shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if len(others) > OptionCount-1 {
		others = others[:OptionCount-1]
	}

	options := append(others, target)
	g.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Round{Target: target, Options: options}
}

func (g *Game) shuffle(n int, swap func(i, j int)) {
	if g.rng != nil {
		g.rng.Shuffle(n, swap)
	} else {
		rand.Shuffle(n, swap)
	}
}

// Select records the player's pick and locks the round. It reports
// whether the selection was accepted and whether it was correct; a
// correct pick scores PointsPerCorrect.
func (g *Game) Select(optionID string) (accepted, correct bool) {
	if g.Round == nil || g.Round.Locked() {
		return false, false
	}
	g.Round.Selected = optionID
	g.Round.Correct = optionID == g.Round.Target.ID
	if g.Round.Correct {
		g.score += PointsPerCorrect
	}
	return true, g.Round.Correct
}

// AdvanceRound moves to the next question after the feedback delay, or
// completes the game past the last item. It reports completion.
func (g *Game) AdvanceRound() bool {
	if g.complete {
		return true
	}
	if g.Index < len(g.Items)-1 {
		g.Index++
		g.Round = g.newRound()
		return false
	}
	g.complete = true
	g.Round = nil
	return true
}

// Complete reports whether every round has been played.
func (g *Game) Complete() bool {
	return g.complete
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}
