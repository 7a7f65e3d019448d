// Package categories implements the category picker, the root screen
// of a signed-in session.
package categories

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/screens/modes"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/ui/components"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

// CategoriesScreen lets the child pick what to study.
type CategoriesScreen struct {
	deps *screens.Deps
	menu components.Menu
}

var _ screen.Screen = (*CategoriesScreen)(nil)

// New creates the category picker.
func New(deps *screens.Deps) *CategoriesScreen {
	items := make([]components.MenuItem, 0, len(catalog.Categories)+1)
	for _, cat := range catalog.Categories {
		cat := cat
		items = append(items, components.MenuItem{
			Label: cat.Label,
			Action: func() tea.Cmd {
				session.SelectCategory(deps.Session, cat.Key)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: modes.New(deps)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Sair",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &CategoriesScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (c *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CategoriesScreen) View(width, height int) string {
	title := theme.Title.Render("O que vamos aprender hoje?")
	body := title + "\n\n" + c.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (c *CategoriesScreen) Title() string {
	return "Categorias"
}

// KeyHints implements screen.KeyHintProvider.
func (c *CategoriesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Escolher"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}
