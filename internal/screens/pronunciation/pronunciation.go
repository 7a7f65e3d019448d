// Package pronunciation implements the speaking practice screen. With a
// recognizer the child speaks the word into the microphone; without one
// the screen degrades to self-reported practice for fewer points.
package pronunciation

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/game/pronounce"
	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/screens/completion"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/speech"
	"github.com/ssantos/wordkids/internal/ui/components"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

// feedbackDelay keeps the verdict on screen before moving on.
const feedbackDelay = 1500 * time.Millisecond

// transcriptMsg carries one recognition attempt's result.
type transcriptMsg struct {
	Gen    int
	Result *speech.Result
	Err    error
}

// feedbackDoneMsg ends the verdict display.
type feedbackDoneMsg struct {
	Gen int
}

// PronunciationScreen drives one pronunciation run.
type PronunciationScreen struct {
	deps  *screens.Deps
	items []catalog.LearningItem
	game  *pronounce.Game

	listening bool
	errText   string
	gen       int
}

var _ screen.Screen = (*PronunciationScreen)(nil)

// New creates a pronunciation run over the loaded items.
func New(deps *screens.Deps, items []catalog.LearningItem) *PronunciationScreen {
	return &PronunciationScreen{
		deps:  deps,
		items: items,
		game:  pronounce.New(items),
	}
}

// manual reports whether the screen runs without a recognizer.
func (p *PronunciationScreen) manual() bool {
	return p.deps.Recognizer == nil
}

func (p *PronunciationScreen) Init() tea.Cmd {
	p.deps.Log(catalog.ActivityGameStart, "pronunciation", 0, map[string]string{
		"category": string(p.deps.Session.Category),
	})
	if p.game.Complete() {
		return p.finish()
	}
	p.deps.Speak(p.game.Current().SpokenText())
	return nil
}

func (p *PronunciationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case transcriptMsg:
		if msg.Gen != p.gen {
			return p, nil
		}
		p.listening = false
		if msg.Err != nil {
			p.errText = "Não consegui ouvir, tente de novo"
			return p, nil
		}
		p.errText = ""
		p.game.Submit(msg.Result.Transcripts)
		gen := p.nextGen()
		return p, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
			return feedbackDoneMsg{Gen: gen}
		})

	case feedbackDoneMsg:
		if msg.Gen != p.gen {
			return p, nil
		}
		if p.game.AdvanceAfterFeedback() {
			return p, p.finish()
		}
		if p.game.Feedback == pronounce.FeedbackNone {
			p.deps.Speak(p.game.Current().SpokenText())
		}
		return p, nil

	case tea.KeyMsg:
		if p.listening || p.game.Feedback != pronounce.FeedbackNone || p.game.Complete() {
			return p, nil
		}
		switch msg.String() {
		case "s":
			p.deps.Speak(p.game.Current().SpokenText())
			return p, nil
		case "r", " ":
			if p.manual() {
				return p, nil
			}
			return p, p.listen()
		case "enter":
			if !p.manual() {
				return p, nil
			}
			if p.game.ManualAdvance() {
				return p, p.finish()
			}
			p.deps.Speak(p.game.Current().SpokenText())
			return p, nil
		}
	}
	return p, nil
}

func (p *PronunciationScreen) nextGen() int {
	p.gen++
	return p.gen
}

func (p *PronunciationScreen) listen() tea.Cmd {
	p.listening = true
	p.errText = ""
	gen := p.nextGen()
	recognizer := p.deps.Recognizer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		result, err := recognizer.Listen(ctx)
		return transcriptMsg{Gen: gen, Result: result, Err: err}
	}
}

func (p *PronunciationScreen) finish() tea.Cmd {
	score := p.game.Score()
	session.GameComplete(p.deps.Session, score)
	p.deps.Log(catalog.ActivityGameComplete, "pronunciation", score, map[string]string{
		"category": string(p.deps.Session.Category),
	})
	deps, items := p.deps, p.items
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: completion.New(deps, func() screen.Screen {
			return New(deps, items)
		})}
	}
}

// BlockBack implements screen.BackBlocker.
func (p *PronunciationScreen) BlockBack() bool {
	return p.listening
}

func (p *PronunciationScreen) View(width, height int) string {
	if len(p.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("Sem palavras para praticar"))
	}

	item := p.game.Current()
	word := theme.BigWord.Render(item.EnglishWord)
	if item.Pronunciation != "" {
		word += "\n" + theme.Hint.Render("/"+item.Pronunciation+"/")
	}

	var status string
	switch {
	case p.listening:
		status = theme.Hint.Render("🎤 Ouvindo... fale agora!")
	case p.game.Feedback == pronounce.FeedbackCorrect:
		status = theme.Correct.Render(fmt.Sprintf("✓ Muito bem! +%d pontos", pronounce.Points))
	case p.game.Feedback == pronounce.FeedbackIncorrect:
		status = theme.Incorrect.Render("✗ Quase! Tente de novo")
	case p.errText != "":
		status = theme.Incorrect.Render(p.errText)
	case p.manual():
		status = theme.Hint.Render("Fale a palavra em voz alta e aperte Enter")
	default:
		status = theme.Hint.Render("Aperte R e fale a palavra")
	}

	progress := components.NewStepProgress(p.game.Index+1, len(p.items), 40)
	score := theme.Subtitle.Render(fmt.Sprintf("Pontos: %d", p.game.Score()))

	body := theme.Card.Render(word) + "\n\n" + status + "\n\n" + progress.View() + "\n" + score

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (p *PronunciationScreen) Title() string {
	return "Pronúncia"
}

// KeyHints implements screen.KeyHintProvider.
func (p *PronunciationScreen) KeyHints() []layout.KeyHint {
	if p.manual() {
		return []layout.KeyHint{
			{Key: "S", Description: "Ouvir"},
			{Key: "Enter", Description: "Eu falei!"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Ouvir"},
		{Key: "R", Description: "Falar"},
		{Key: "Esc", Description: "Voltar"},
	}
}
