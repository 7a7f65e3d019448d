// Package memorygame implements the memory board screen: pair each
// English word with its picture card. Picture cards render as the
// Portuguese word, the terminal stand-in for the image itself.
package memorygame

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/game/memory"
	"github.com/ssantos/wordkids/internal/router"
	"github.com/ssantos/wordkids/internal/screen"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/screens/completion"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/ui/layout"
	"github.com/ssantos/wordkids/internal/ui/theme"
)

// resolveDelay keeps a mismatched pair visible long enough to read.
const resolveDelay = time.Second

const columns = 4

// resolveMsg triggers pair resolution after the reveal delay.
type resolveMsg struct {
	Gen int
}

// MemoryScreen drives one memory board.
type MemoryScreen struct {
	deps  *screens.Deps
	items []catalog.LearningItem
	game  *memory.Game

	cursor int
	gen    int

	// byItem maps item IDs to their Portuguese word for picture cards.
	byItem map[string]string
}

var _ screen.Screen = (*MemoryScreen)(nil)

// New creates a memory board over the loaded items.
func New(deps *screens.Deps, items []catalog.LearningItem) *MemoryScreen {
	byItem := make(map[string]string, len(items))
	for _, it := range items {
		byItem[it.ID] = it.PortugueseWord
	}
	return &MemoryScreen{
		deps:   deps,
		items:  items,
		game:   memory.New(items, nil),
		byItem: byItem,
	}
}

func (m *MemoryScreen) Init() tea.Cmd {
	m.deps.Log(catalog.ActivityGameStart, "memory", 0, map[string]string{
		"category": string(m.deps.Session.Category),
	})
	return nil
}

func (m *MemoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.game.Resolve()
		if m.game.Complete() {
			return m, m.finish()
		}
		return m, nil

	case tea.KeyMsg:
		if m.game.Pending() {
			return m, nil // pair on display, input waits for Resolve
		}
		switch msg.String() {
		case "left", "h":
			m.moveCursor(-1)
		case "right", "l":
			m.moveCursor(1)
		case "up", "k":
			m.moveCursor(-columns)
		case "down", "j":
			m.moveCursor(columns)
		case "enter", " ":
			return m, m.flip()
		}
	}
	return m, nil
}

func (m *MemoryScreen) moveCursor(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.game.Cards) {
		m.cursor = next
	}
}

func (m *MemoryScreen) flip() tea.Cmd {
	result := m.game.Flip(m.cursor)
	if result.Speak != "" {
		m.deps.Speak(result.Speak)
	}
	if result.Outcome != memory.OutcomePending {
		return nil
	}
	m.gen++
	gen := m.gen
	return tea.Tick(resolveDelay, func(time.Time) tea.Msg {
		return resolveMsg{Gen: gen}
	})
}

func (m *MemoryScreen) finish() tea.Cmd {
	score := m.game.Score()
	session.GameComplete(m.deps.Session, score)
	m.deps.Log(catalog.ActivityGameComplete, "memory", score, map[string]string{
		"category": string(m.deps.Session.Category),
		"moves":    fmt.Sprint(m.game.Moves),
	})
	deps, items := m.deps, m.items
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: completion.New(deps, func() screen.Screen {
			return New(deps, items)
		})}
	}
}

// BlockBack implements screen.BackBlocker: leaving mid-resolution would
// drop the scheduled resolve.
func (m *MemoryScreen) BlockBack() bool {
	return m.game.Pending()
}

func (m *MemoryScreen) View(width, height int) string {
	if len(m.game.Cards) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("Sem cartas para jogar"))
	}

	cardWidth := 14
	if layout.IsCompactWidth(width) {
		cardWidth = 10
	}

	var rows []string
	for start := 0; start < len(m.game.Cards); start += columns {
		end := start + columns
		if end > len(m.game.Cards) {
			end = len(m.game.Cards)
		}
		var row []string
		for i := start; i < end; i++ {
			row = append(row, m.renderCard(i, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	board := lipgloss.JoinVertical(lipgloss.Center, rows...)
	status := theme.Subtitle.Render(fmt.Sprintf("Jogadas: %d   Pares: %d/%d",
		m.game.Moves, m.game.Matches, len(m.game.Cards)/2))

	body := board + "\n" + status

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (m *MemoryScreen) renderCard(i, cardWidth int) string {
	card := m.game.Cards[i]

	style := theme.CardFaceDown
	label := "?"
	switch {
	case card.Matched:
		style = theme.CardMatched
		label = m.cardLabel(card)
	case card.Flipped:
		style = theme.CardFaceUp
		label = m.cardLabel(card)
	}

	if i == m.cursor {
		style = style.BorderForeground(theme.Accent)
	}
	return style.Width(cardWidth).Render(label)
}

// cardLabel shows the English word for word cards and the Portuguese
// word for picture cards.
func (m *MemoryScreen) cardLabel(card memory.Card) string {
	if card.Face == memory.FaceWord {
		return card.Content
	}
	if pt, ok := m.byItem[card.ItemID]; ok {
		return "🖼 " + pt
	}
	return "🖼"
}

func (m *MemoryScreen) Title() string {
	return "Jogo da Memória"
}

// KeyHints implements screen.KeyHintProvider.
func (m *MemoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Mover"},
		{Key: "Enter", Description: "Virar"},
		{Key: "Esc", Description: "Voltar"},
	}
}
