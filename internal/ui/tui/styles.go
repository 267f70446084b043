package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette
var (
	base     = lipgloss.Color("#24273a")
	surface1 = lipgloss.Color("#494d64")
	overlay0 = lipgloss.Color("#6e738d")
	text     = lipgloss.Color("#cad3f5")
	red      = lipgloss.Color("#ed8796")
	peach    = lipgloss.Color("#f5a97f")
	green    = lipgloss.Color("#a6da95")
	teal     = lipgloss.Color("#8bd5ca")
	blue     = lipgloss.Color("#8aadf4")
	mauve    = lipgloss.Color("#c6a0f6")
)

// Styles holds the terminal styles.
type Styles struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Stage    func(focus bool) lipgloss.Style
	Clock    lipgloss.Style
	Counter  lipgloss.Style
	Paused   lipgloss.Style
	Key      lipgloss.Style
	KeyOff   lipgloss.Style
	Hint     lipgloss.Style
	Toast    lipgloss.Style
	ToastErr lipgloss.Style
}

// NewStyles creates the default styles.
func NewStyles() Styles {
	focusStage := lipgloss.NewStyle().Bold(true).Foreground(base).Background(red).Padding(0, 1)
	breakStage := lipgloss.NewStyle().Bold(true).Foreground(base).Background(green).Padding(0, 1)

	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(surface1).
			Padding(1, 3),
		Title: lipgloss.NewStyle().Bold(true).Foreground(mauve),
		Stage: func(focus bool) lipgloss.Style {
			if focus {
				return focusStage
			}
			return breakStage
		},
		Clock:   lipgloss.NewStyle().Bold(true).Foreground(text).Padding(1, 0),
		Counter: lipgloss.NewStyle().Foreground(overlay0),
		Paused:  lipgloss.NewStyle().Italic(true).Foreground(peach),
		Key:     lipgloss.NewStyle().Bold(true).Foreground(blue),
		KeyOff:  lipgloss.NewStyle().Foreground(surface1),
		Hint:    lipgloss.NewStyle().Foreground(overlay0),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(teal).
			Foreground(teal).
			Padding(0, 1),
		ToastErr: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(red).
			Foreground(red).
			Padding(0, 1),
	}
}
