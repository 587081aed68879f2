package report

import "github.com/charmbracelet/lipgloss"

// Styles holds the terminal styling for the console report.
type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Filename lipgloss.Style
	Muted    lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3")).
			Bold(true),

		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")).
			Bold(true),

		Filename: lipgloss.NewStyle().
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")),

		High: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")).
			Bold(true),

		Medium: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107")).
			Bold(true),

		Low: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")),
	}
}

// PlainStyles returns an unstyled set for --no-color and for tests that
// assert on exact output.
func PlainStyles() Styles {
	return Styles{}
}
