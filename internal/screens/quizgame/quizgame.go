// Package quizgame implements the quiz screen: hear the English word,
// pick the Portuguese match out of four options.
package quizgame

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/game/quiz"
	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/screens/completion"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/ui/components"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

// feedbackDelay keeps the revealed answer on screen before the next
// round.
const feedbackDelay = 1500 * time.Millisecond

// nextRoundMsg advances to the next question after the feedback delay.
type nextRoundMsg struct {
	Gen int
}

// QuizScreen drives one quiz run.
type QuizScreen struct {
	deps  *screens.Deps
	items []catalog.LearningItem
	game  *quiz.Game

	choice  components.WordChoice
	waiting bool
	gen     int
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a quiz over the loaded items.
func New(deps *screens.Deps, items []catalog.LearningItem) *QuizScreen {
	q := &QuizScreen{
		deps:  deps,
		items: items,
		game:  quiz.New(items, nil),
	}
	q.choice = q.buildChoice()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	q.deps.Log(catalog.ActivityGameStart, "quiz", 0, map[string]string{
		"category": string(q.deps.Session.Category),
	})
	if q.game.Complete() {
		return q.finish()
	}
	q.deps.Speak(q.game.Round.Target.SpokenText())
	return nil
}

func (q *QuizScreen) buildChoice() components.WordChoice {
	round := q.game.Round
	if round == nil {
		return components.WordChoice{}
	}
	options := make([]string, len(round.Options))
	correct := 0
	for i, opt := range round.Options {
		options[i] = opt.PortugueseWord
		if opt.ID == round.Target.ID {
			correct = i
		}
	}
	prompt := fmt.Sprintf("Qual é a tradução de %q?", round.Target.EnglishWord)
	return components.NewWordChoice(prompt, options, correct)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case nextRoundMsg:
		if msg.Gen != q.gen {
			return q, nil
		}
		q.waiting = false
		if q.game.AdvanceRound() {
			return q, q.finish()
		}
		q.choice = q.buildChoice()
		q.deps.Speak(q.game.Round.Target.SpokenText())
		return q, nil

	case tea.KeyMsg:
		if q.waiting || q.game.Round == nil {
			return q, nil
		}
		if msg.String() == "s" {
			q.deps.Speak(q.game.Round.Target.SpokenText())
			return q, nil
		}
	}

	wasSubmitted := q.choice.Submitted
	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)
	if q.choice.Submitted && !wasSubmitted {
		return q, q.lockIn()
	}
	return q, cmd
}

// lockIn records the selection with the engine and schedules the next
// round.
func (q *QuizScreen) lockIn() tea.Cmd {
	round := q.game.Round
	picked := round.Options[q.choice.ChosenIndex]
	q.game.Select(picked.ID)
	if q.choice.IsCorrect() {
		q.deps.Speak(round.Target.SpokenText())
	}

	q.waiting = true
	q.gen++
	gen := q.gen
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return nextRoundMsg{Gen: gen}
	})
}

func (q *QuizScreen) finish() tea.Cmd {
	score := q.game.Score()
	session.GameComplete(q.deps.Session, score)
	q.deps.Log(catalog.ActivityGameComplete, "quiz", score, map[string]string{
		"category": string(q.deps.Session.Category),
	})
	deps, items := q.deps, q.items
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: completion.New(deps, func() screen.Screen {
			return New(deps, items)
		})}
	}
}

// BlockBack implements screen.BackBlocker.
func (q *QuizScreen) BlockBack() bool {
	return q.waiting
}

func (q *QuizScreen) View(width, height int) string {
	if q.game.Round == nil {
		return ""
	}

	progress := components.NewStepProgress(q.game.Index+1, len(q.game.Items), 40)
	score := theme.Subtitle.Render(fmt.Sprintf("Pontos: %d", q.game.Score()))

	body := theme.Card.Render(q.choice.View()) + "\n\n" + progress.View() + "\n" + score

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Responder"},
		{Key: "S", Description: "Ouvir"},
		{Key: "Esc", Description: "Voltar"},
	}
}
