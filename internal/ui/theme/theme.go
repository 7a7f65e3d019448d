package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — playful, high contrast for young readers
var (
	Primary   = lipgloss.Color("#A855F7") // Purple
	Secondary = lipgloss.Color("#EC4899") // Pink
	Accent    = lipgloss.Color("#FACC15") // Sunny Yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Info      = lipgloss.Color("#38BDF8") // Sky Blue
	Text      = lipgloss.Color("#FDF4FF") // Near White
	TextDim   = lipgloss.Color("#A1A1AA") // Zinc
	BgDark    = lipgloss.Color("#1E1B4B") // Deep Indigo
	BgCard    = lipgloss.Color("#312E81") // Indigo
	Border    = lipgloss.Color("#4C1D95") // Violet
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	BigWord = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Align(lipgloss.Center)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Memory board cards
var (
	CardFaceDown = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Align(lipgloss.Center).
			Padding(0, 1)

	CardFaceUp = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Align(lipgloss.Center).
			Padding(0, 1)

	CardMatched = lipgloss.NewStyle().
			Foreground(Success).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success).
			Align(lipgloss.Center).
			Padding(0, 1)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
