// Package video implements the lesson-video mode: the category's video
// opens in the system browser and the watch is logged.
package video

import (
	"os/exec"
	"runtime"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/ui/components"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

// openedMsg reports the browser launch attempt.
type openedMsg struct {
	Err error
}

// VideoScreen hands the lesson video to the system browser.
type VideoScreen struct {
	deps *screens.Deps

	url     string
	label   string
	button  components.Button
	opened  bool
	errText string
}

var _ screen.Screen = (*VideoScreen)(nil)

// New creates the video screen for the session's category.
func New(deps *screens.Deps) *VideoScreen {
	v := &VideoScreen{deps: deps}
	if cat := catalog.CategoryByKey(deps.Session.Category); cat != nil {
		v.url = cat.VideoURL
		v.label = cat.Label
	}
	url := v.url
	v.button = components.NewButton("Assistir no navegador", url != "", func() tea.Cmd {
		return func() tea.Msg {
			return openedMsg{Err: openBrowser(url)}
		}
	})
	return v
}

func (v *VideoScreen) Init() tea.Cmd {
	return nil
}

func (v *VideoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		if msg.Err != nil {
			v.errText = "Não foi possível abrir o navegador"
			return v, nil
		}
		v.opened = true
		v.deps.Log(catalog.ActivityVideoWatch, v.label, 0, map[string]string{
			"category": string(v.deps.Session.Category),
			"url":      v.url,
		})
		return v, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		v.button, cmd = v.button.Update(msg)
		return v, cmd
	}
	return v, nil
}

// openBrowser launches the platform's URL opener.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

func (v *VideoScreen) View(width, height int) string {
	title := theme.Title.Render("Vídeo da Aula: " + v.label)

	var status string
	switch {
	case v.url == "":
		status = theme.Hint.Render("Esta categoria não tem vídeo")
	case v.errText != "":
		status = theme.Incorrect.Render(v.errText) + "\n" + theme.Hint.Render(v.url)
	case v.opened:
		status = theme.Correct.Render("▶ Vídeo aberto no navegador!") + "\n" + theme.Hint.Render(v.url)
	default:
		status = v.button.View() + "\n" + theme.Hint.Render(v.url)
	}

	body := title + "\n\n" + theme.Card.Render(status)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (v *VideoScreen) Title() string {
	return "Vídeo"
}

// KeyHints implements screen.KeyHintProvider.
func (v *VideoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Assistir"},
		{Key: "Esc", Description: "Voltar"},
	}
}
