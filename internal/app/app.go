// Package app wires the root Bubble Tea model: router, header, footer,
// and the global key handling.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/screens/categories"
	"github.com/ssantos/wordkids/internal/screens/login"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/ui/layout"
)

// profileRefreshedMsg reports a background profile reload; the header
// reads the fresh values straight from auth on the next render.
type profileRefreshedMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   *screens.Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model. Sign-in comes first unless a
// session is already open.
func newAppModel(deps *screens.Deps) AppModel {
	var initial screen.Screen
	if deps.Auth != nil && deps.Auth.CurrentUser() != nil {
		initial = categories.New(deps)
	} else {
		initial = login.New(deps)
	}
	return AppModel{
		deps:   deps,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screens.RefreshProfileMsg:
		auth := m.deps.Auth
		if auth == nil || auth.CurrentUser() == nil {
			return m, nil
		}
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, _ = auth.RefreshProfile(ctx)
			return profileRefreshedMsg{}
		}

	case profileRefreshedMsg:
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if blocker, ok := m.router.Active().(screen.BackBlocker); ok && blocker.BlockBack() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				// Depth 2 is the mode picker over the category root; any
				// deeper screen pops back onto the picker.
				if m.router.Depth() == 2 {
					session.BackToCategories(m.deps.Session)
				} else {
					session.BackToModes(m.deps.Session)
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	userName := ""
	points := 0
	if m.deps.Auth != nil {
		if user := m.deps.Auth.CurrentUser(); user != nil {
			userName = user.DisplayName
			points = user.Points
		}
	}

	header := layout.RenderHeader(title, userName, points, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Sair"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	} else if m.router.Depth() > 1 {
		footerHints = append([]layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
		}, footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over the assembled dependencies.
func Run(deps *screens.Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	if deps.Logger != nil {
		deps.Logger.Wait()
	}
	return nil
}
