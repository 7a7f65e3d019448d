package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssantos/wordkids/internal/ui/theme"
)

// WordChoice is the answer selector for the quiz: a prompt plus lettered
// word options. After submission it reveals the correct answer and
// locks out further input.
type WordChoice struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewWordChoice creates a word choice selector.
func NewWordChoice(prompt string, options []string, correctIndex int) WordChoice {
	return WordChoice{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (w WordChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (w WordChoice) Update(msg tea.Msg) (WordChoice, tea.Cmd) {
	if w.Submitted {
		return w, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if w.Selected > 0 {
			w.Selected--
		}
	case "down", "j":
		if w.Selected < len(w.Options)-1 {
			w.Selected++
		}
	case "enter":
		w.Submitted = true
		w.ChosenIndex = w.Selected
	}

	return w, nil
}

// View renders the prompt and options.
func (w WordChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(w.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range w.Options {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == w.Selected && !w.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if w.Submitted {
			switch {
			case i == w.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == w.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else if i == w.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect returns true if the chosen option is the correct one.
func (w WordChoice) IsCorrect() bool {
	return w.Submitted && w.ChosenIndex == w.CorrectIndex
}
