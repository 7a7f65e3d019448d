// Package memory implements the pair-matching game: each item becomes a
// word card and an image card, shuffled into a board; the player flips
// two at a time looking for pairs.
package memory

import (
	"math/rand"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/game"
)

// MaxPairs caps the board at 6 items (12 cards).
const MaxPairs = 6

// Face distinguishes a card's content kind.
type Face int

const (
	FaceWord Face = iota
	FaceImage
)

// Card is one board cell. ItemID back-references the learning item; two
// cards share it, one per face.
type Card struct {
	ID      string
	ItemID  string
	Face    Face
	Content string // english word or image URL depending on Face
	Flipped bool
	Matched bool
}

// Outcome classifies the effect of a flip.
type Outcome int

const (
	// OutcomeIgnored means the flip was a no-op: the card was already
	// resolved, already up, or two cards are awaiting resolution.
	OutcomeIgnored Outcome = iota
	// OutcomeFlipped means the first card of a pair attempt went up.
	OutcomeFlipped
	// OutcomePending means a second card went up; the pair awaits
	// Resolve after the reveal delay.
	OutcomePending
)

// FlipResult reports a flip's outcome and, for word cards, the text to
// pronounce as a non-blocking side effect.
type FlipResult struct {
	Outcome Outcome
	Speak   string
}

// Game is one run of the memory board.
type Game struct {
	Cards   []Card
	Moves   int
	Matches int

	pairs  int   // distinct items on the board
	faceUp []int // unresolved face-up card indexes, at most 2
}

var _ game.Engine = (*Game)(nil)

// New builds a shuffled board from at most MaxPairs items. rng may be nil
// for the default source; tests inject a seeded one.
func New(items []catalog.LearningItem, rng *rand.Rand) *Game {
	if len(items) > MaxPairs {
		items = items[:MaxPairs]
	}

	cards := make([]Card, 0, len(items)*2)
	for _, item := range items {
		cards = append(cards, Card{
			ID:      "word-" + item.ID,
			ItemID:  item.ID,
			Face:    FaceWord,
			Content: item.EnglishWord,
		})
		cards = append(cards, Card{
			ID:      "image-" + item.ID,
			ItemID:  item.ID,
			Face:    FaceImage,
			Content: item.ImageURL,
		})
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Game{Cards: cards, pairs: len(items)}
}

// Flip turns the card at index face up. Selecting a third card while two
// are unresolved is a no-op, as is selecting a resolved or already-up
// card. When the second card goes up the move counts and the pair awaits
// Resolve.
func (g *Game) Flip(index int) FlipResult {
	if index < 0 || index >= len(g.Cards) {
		return FlipResult{Outcome: OutcomeIgnored}
	}
	if len(g.faceUp) == 2 {
		return FlipResult{Outcome: OutcomeIgnored}
	}
	card := &g.Cards[index]
	if card.Flipped || card.Matched {
		return FlipResult{Outcome: OutcomeIgnored}
	}

	card.Flipped = true
	g.faceUp = append(g.faceUp, index)

	res := FlipResult{Outcome: OutcomeFlipped}
	if card.Face == FaceWord {
		res.Speak = card.Content
	}

	if len(g.faceUp) == 2 {
		g.Moves++
		res.Outcome = OutcomePending
	}
	return res
}

// Pending reports whether two cards are face up awaiting Resolve.
func (g *Game) Pending() bool {
	return len(g.faceUp) == 2
}

// Resolve judges the two face-up cards after the reveal delay: a pair
// referencing the same item is marked matched, otherwise both go back
// face down. It reports whether they matched.
func (g *Game) Resolve() bool {
	if len(g.faceUp) != 2 {
		return false
	}
	first, second := &g.Cards[g.faceUp[0]], &g.Cards[g.faceUp[1]]
	g.faceUp = g.faceUp[:0]

	if first.ItemID == second.ItemID {
		first.Matched = true
		second.Matched = true
		g.Matches++
		return true
	}
	first.Flipped = false
	second.Flipped = false
	return false
}

// Complete reports whether every pair on the board has been matched.
func (g *Game) Complete() bool {
	return g.pairs > 0 && g.Matches == g.pairs
}

// Score is 1000 minus 10 per move, clamped at zero.
func (g *Game) Score() int {
	score := 1000 - g.Moves*10
	if score < 0 {
		score = 0
	}
	return score
}
