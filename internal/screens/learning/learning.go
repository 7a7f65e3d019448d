// Package learning implements the flashcard mode: one card per word,
// flip to reveal the translation, advance to earn points.
package learning

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/screens/completion"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/ui/components"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

// overlayDuration is how long the "+10" reward flash stays up between
// cards.
const overlayDuration = 800 * time.Millisecond

// overlayDoneMsg ends the reward flash. Gen guards against a flash
// scheduled before the player navigated away and back.
type overlayDoneMsg struct {
	Gen int
}

// LearningScreen pages through the category's flashcards.
type LearningScreen struct {
	deps  *screens.Deps
	items []catalog.LearningItem

	flipped bool
	overlay bool
	gen     int
}

var _ screen.Screen = (*LearningScreen)(nil)

// New creates the flashcard screen over the loaded items.
func New(deps *screens.Deps, items []catalog.LearningItem) *LearningScreen {
	return &LearningScreen{deps: deps, items: items}
}

func (l *LearningScreen) Init() tea.Cmd {
	label := l.categoryLabel()
	l.deps.Log(catalog.ActivityLessonView, label, 0, map[string]string{
		"category": string(l.deps.Session.Category),
	})
	if item := l.current(); item != nil {
		l.deps.Speak(item.SpokenText())
	}
	return nil
}

func (l *LearningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overlayDoneMsg:
		if msg.Gen != l.gen {
			return l, nil
		}
		l.overlay = false
		if l.deps.Session.Completed {
			deps, items := l.deps, l.items
			return l, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: completion.New(deps, func() screen.Screen {
					return New(deps, items)
				})}
			}
		}
		l.flipped = false
		if item := l.current(); item != nil {
			l.deps.Speak(item.SpokenText())
		}
		return l, nil

	case tea.KeyMsg:
		if l.overlay || len(l.items) == 0 {
			return l, nil
		}
		switch msg.String() {
		case " ", "f":
			l.flipped = !l.flipped
			return l, nil
		case "s":
			if item := l.current(); item != nil {
				l.deps.Speak(item.SpokenText())
			}
			return l, nil
		case "enter", "right":
			session.Advance(l.deps.Session, len(l.items))
			l.overlay = true
			l.gen++
			gen := l.gen
			return l, tea.Tick(overlayDuration, func(time.Time) tea.Msg {
				return overlayDoneMsg{Gen: gen}
			})
		}
	}
	return l, nil
}

func (l *LearningScreen) current() *catalog.LearningItem {
	idx := l.deps.Session.CurrentIndex
	if idx < 0 || idx >= len(l.items) {
		return nil
	}
	return &l.items[idx]
}

func (l *LearningScreen) categoryLabel() string {
	if cat := catalog.CategoryByKey(l.deps.Session.Category); cat != nil {
		return cat.Label
	}
	return string(l.deps.Session.Category)
}

func (l *LearningScreen) View(width, height int) string {
	if len(l.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("Esta categoria ainda não tem palavras"))
	}

	item := l.current()
	if item == nil {
		return ""
	}

	var card string
	if l.overlay {
		card = theme.Card.Render(theme.Correct.Render(fmt.Sprintf("✓  +%d pontos!", session.LearnPoints)))
	} else if l.flipped {
		card = theme.Card.Render(
			theme.BigWord.Render(item.PortugueseWord) + "\n\n" +
				theme.Subtitle.Render("em português"))
	} else {
		face := theme.BigWord.Render(item.EnglishWord)
		if item.Pronunciation != "" {
			face += "\n" + theme.Hint.Render("/"+item.Pronunciation+"/")
		}
		face += "\n\n" + l.imageLine(item)
		card = theme.Card.Render(face)
	}

	progress := components.NewStepProgress(l.deps.Session.CurrentIndex+1, len(l.items), 40)
	score := theme.Subtitle.Render(fmt.Sprintf("Pontos da sessão: %d", l.deps.Session.Score))

	body := card + "\n\n" + progress.View() + "\n" + score

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

// imageLine shows whether the card's picture made it into the cache.
// Terminals get a marker, not the image itself.
func (l *LearningScreen) imageLine(item *catalog.LearningItem) string {
	if item.ImageURL == "" {
		return theme.Hint.Render("(sem imagem)")
	}
	h := l.deps.Cache.Preload(item.ImageURL)
	if h.Settled() && h.Err() == nil && len(h.Bytes()) > 0 {
		return theme.Hint.Render("🖼  imagem pronta")
	}
	return theme.Hint.Render("🖼  ...")
}

func (l *LearningScreen) Title() string {
	return "Aprender"
}

// KeyHints implements screen.KeyHintProvider.
func (l *LearningScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Espaço", Description: "Virar carta"},
		{Key: "S", Description: "Ouvir"},
		{Key: "Enter", Description: "Próxima"},
		{Key: "Esc", Description: "Voltar"},
	}
}
