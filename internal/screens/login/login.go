// Package login implements the sign-in screen. Signing in unlocks
// activity logging and the points total; guest mode skips both.
package login

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/activity"
	"github.com/ssantos/wordkids/internal/auth"
	"github.com/ssantos/wordkids/internal/repo"
	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/screens/categories"
	"github.com/ssantos/wordkids/internal/ui/components"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldPassword
)

// signInResultMsg is sent when the credential check finishes.
type signInResultMsg struct {
	User *repo.User
	Err  error
}

// LoginScreen collects credentials and opens the session.
type LoginScreen struct {
	deps *screens.Deps

	email    components.TextInput
	password components.TextInput
	focused  int

	checking bool
	errText  string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates the sign-in screen.
func New(deps *screens.Deps) *LoginScreen {
	email := components.NewTextInput("email", false, 64)
	password := components.NewTextInput("senha", true, 64)
	return &LoginScreen{
		deps:     deps,
		email:    email,
		password: password,
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.email.Focus()
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		l.checking = false
		if msg.Err != nil {
			if errors.Is(msg.Err, auth.ErrInvalidCredentials) {
				l.errText = "Email ou senha incorretos"
			} else {
				l.errText = "Não foi possível entrar agora"
			}
			return l, nil
		}
		l.deps.Logger = activity.NewLogger(l.deps.Items, l.deps.Users, msg.User.ID)
		return l, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: categories.New(l.deps)}
		}

	case tea.KeyMsg:
		if l.checking {
			return l, nil
		}
		switch msg.String() {
		case "tab", "down":
			return l, l.focusField(l.focused + 1)
		case "shift+tab", "up":
			return l, l.focusField(l.focused - 1)
		case "enter":
			if l.focused == fieldEmail {
				return l, l.focusField(fieldPassword)
			}
			return l, l.submit()
		case "ctrl+g":
			// guest mode: no logging, no points
			return l, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: categories.New(l.deps)}
			}
		}
	}

	var cmd tea.Cmd
	if l.focused == fieldEmail {
		l.email, cmd = l.email.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) focusField(idx int) tea.Cmd {
	if idx < fieldEmail {
		idx = fieldEmail
	}
	if idx > fieldPassword {
		idx = fieldPassword
	}
	l.focused = idx
	if idx == fieldEmail {
		l.password.Blur()
		return l.email.Focus()
	}
	l.email.Blur()
	return l.password.Focus()
}

func (l *LoginScreen) submit() tea.Cmd {
	email := strings.TrimSpace(l.email.Value())
	password := l.password.Value()
	if email == "" || password == "" {
		l.errText = "Preencha email e senha"
		return nil
	}

	l.checking = true
	l.errText = ""
	provider := l.deps.Auth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		user, err := provider.SignIn(ctx, email, password)
		return signInResultMsg{User: user, Err: err}
	}
}

func (l *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("Bem-vindo ao WordKids!")
	subtitle := theme.Subtitle.Render("Aprenda inglês brincando")

	emailLabel := "  Email: "
	passLabel := "  Senha: "
	form := emailLabel + l.email.View() + "\n" + passLabel + l.password.View()

	status := ""
	switch {
	case l.checking:
		status = theme.Hint.Render("Entrando...")
	case l.errText != "":
		status = theme.Incorrect.Render(l.errText)
	}

	body := title + "\n" + subtitle + "\n\n" + theme.Card.Render(form)
	if status != "" {
		body += "\n\n" + status
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (l *LoginScreen) Title() string {
	return "Entrar"
}

// KeyHints implements screen.KeyHintProvider.
func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Próximo campo"},
		{Key: "Enter", Description: "Entrar"},
		{Key: "Ctrl+G", Description: "Convidado"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}
