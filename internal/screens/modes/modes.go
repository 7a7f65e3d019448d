// Package modes implements the learning-mode picker for a category.
// Entering it kicks off the item fetch and image prefetch for the
// chosen category; the game entries unlock when everything is ready.
package modes

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/assets"
	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/screens/learning"
	"github.com/ssantos/wordkids/internal/screens/memorygame"
	"github.com/ssantos/wordkids/internal/screens/pronunciation"
	"github.com/ssantos/wordkids/internal/screens/quizgame"
	"github.com/ssantos/wordkids/internal/screens/video"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/ui/components"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

// itemsLoadedMsg is sent when the category's vocabulary arrives.
type itemsLoadedMsg struct {
	Token assets.Token
	Items []catalog.LearningItem
	Err   error
}

// assetsReadyMsg is sent when every image preload for this load
// generation has settled.
type assetsReadyMsg struct {
	Token assets.Token
}

// ModesScreen picks the learning mode for the selected category.
type ModesScreen struct {
	deps  *screens.Deps
	menu  components.Menu
	token assets.Token

	items   []catalog.LearningItem
	loading bool
	errText string
}

var _ screen.Screen = (*ModesScreen)(nil)

// New creates the mode picker for the session's category.
func New(deps *screens.Deps) *ModesScreen {
	m := &ModesScreen{
		deps:    deps,
		loading: true,
	}
	m.menu = components.NewMenu(m.menuItems())
	return m
}

func (m *ModesScreen) Init() tea.Cmd {
	category := m.deps.Session.Category
	m.token = m.deps.Gate.Begin()
	token := m.token
	cache := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		items, err := cache.GetOrFetch(ctx, category)
		return itemsLoadedMsg{Token: token, Items: items, Err: err}
	}
}

func (m *ModesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.Token != m.token {
			return m, nil // stale load from an abandoned visit
		}
		if msg.Err != nil {
			m.loading = false
			m.errText = "Não foi possível carregar as palavras"
			return m, nil
		}
		m.items = msg.Items
		handles := m.deps.Cache.PreloadAll(msg.Items)
		gate := m.deps.Gate
		token := m.token
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			gate.AwaitReady(ctx, token, handles)
			return assetsReadyMsg{Token: token}
		}

	case assetsReadyMsg:
		if msg.Token != m.token {
			return m, nil
		}
		m.loading = false
		m.menu = components.NewMenu(m.menuItems())
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" && m.errText != "" {
			return m, m.retry()
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// retry re-runs the item fetch after a failed load.
func (m *ModesScreen) retry() tea.Cmd {
	m.errText = ""
	m.loading = true
	m.menu = components.NewMenu(m.menuItems())
	return m.Init()
}

func (m *ModesScreen) menuItems() []components.MenuItem {
	deps := m.deps
	push := func(mode session.Mode, build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			session.SelectMode(deps.Session, mode)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := m.items
	return []components.MenuItem{
		{Label: "Aprender", Disabled: m.loading, Action: push(session.ModeLearn, func() screen.Screen {
			return learning.New(deps, items)
		})},
		{Label: "Jogo da Memória", Disabled: m.loading, Action: push(session.ModeMemory, func() screen.Screen {
			return memorygame.New(deps, items)
		})},
		{Label: "Pronúncia", Disabled: m.loading, Action: push(session.ModePronunciation, func() screen.Screen {
			return pronunciation.New(deps, items)
		})},
		{Label: "Quiz", Disabled: m.loading, Action: push(session.ModeQuiz, func() screen.Screen {
			return quizgame.New(deps, items)
		})},
		{Label: "Vídeo da Aula", Action: push(session.ModeVideo, func() screen.Screen {
			return video.New(deps)
		})},
	}
}

func (m *ModesScreen) View(width, height int) string {
	cat := catalog.CategoryByKey(m.deps.Session.Category)
	label := string(m.deps.Session.Category)
	if cat != nil {
		label = cat.Label
	}

	title := theme.Title.Render(label)
	var status string
	switch {
	case m.loading:
		status = theme.Hint.Render("Preparando as palavras...")
	case m.errText != "":
		status = theme.Incorrect.Render(m.errText) + "\n" +
			theme.Hint.Render("Aperte R para tentar de novo")
	default:
		status = theme.Subtitle.Render("Como você quer aprender?")
	}

	body := title + "\n" + status + "\n\n" + m.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (m *ModesScreen) Title() string {
	return "Modos"
}

// KeyHints implements screen.KeyHintProvider.
func (m *ModesScreen) KeyHints() []layout.KeyHint {
	if m.errText != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Tentar de novo"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Escolher"},
		{Key: "Esc", Description: "Voltar"},
	}
}
