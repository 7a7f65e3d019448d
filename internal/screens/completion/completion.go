// Package completion implements the end-of-round celebration screen.
package completion

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/ui/components"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

// CompletionScreen shows the final score and where to go next.
type CompletionScreen struct {
	deps *screens.Deps
	menu components.Menu

	mode  session.Mode
	score int
}

var _ screen.Screen = (*CompletionScreen)(nil)

// New creates the celebration screen. replay rebuilds the screen that
// just finished, so "play again" restarts the same mode with the same
// vocabulary.
func New(deps *screens.Deps, replay func() screen.Screen) *CompletionScreen {
	mode := deps.Session.Mode
	score := deps.Session.Score

	items := []components.MenuItem{
		{Label: "Jogar de novo", Action: func() tea.Cmd {
			session.SelectMode(deps.Session, mode)
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: replay()}
			}
		}},
		{Label: "Outros modos", Action: func() tea.Cmd {
			session.BackToModes(deps.Session)
			return func() tea.Msg {
				return router.PopScreenMsg{}
			}
		}},
		{Label: "Escolher categoria", Action: func() tea.Cmd {
			session.BackToCategories(deps.Session)
			return func() tea.Msg {
				return router.PopToRootMsg{}
			}
		}},
	}

	return &CompletionScreen{
		deps:  deps,
		menu:  components.NewMenu(items),
		mode:  mode,
		score: score,
	}
}

func (c *CompletionScreen) Init() tea.Cmd {
	c.deps.Speak("Great job!")
	return func() tea.Msg {
		return screens.RefreshProfileMsg{}
	}
}

func (c *CompletionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CompletionScreen) View(width, height int) string {
	title := theme.Title.Render("Parabéns! 🎉")
	subtitle := theme.Subtitle.Render(fmt.Sprintf("Você terminou: %s", c.mode))
	score := theme.BigWord.Render(fmt.Sprintf("%d pontos", c.score)) + "\n" + stars(c.score)

	body := title + "\n" + subtitle + "\n\n" + theme.Card.Render(score) + "\n\n" + c.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

// stars gives a rough visual grade: one star per few hundred points.
func stars(score int) string {
	n := 1 + score/300
	if n > 5 {
		n = 5
	}
	out := ""
	for i := 0; i < n; i++ {
		out += "⭐"
	}
	return theme.Subtitle.Render(out)
}

func (c *CompletionScreen) Title() string {
	return "Fim"
}

// KeyHints implements screen.KeyHintProvider.
func (c *CompletionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Escolher"},
	}
}
